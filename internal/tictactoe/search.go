package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	scoreWin  = 1
	scoreLoss = -1
	scoreDraw = 0

	// sentinel bounds, outside any reachable score
	scoreFloor   = -1000
	scoreCeiling = 1000
)

var (
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrInvalidPlayer    = errors.New("invalid player")
)

// FindBestMove returns the flat index of the optimal move for player. Every
// empty cell is tried in ascending order and the first one with the strictly
// greatest minimax score wins. The board itself is never modified.
func FindBestMove(board *entity.Board, player entity.Cell) (int, error) {
	if !player.IsPlayer() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
	}

	if board.IsFull() {
		return 0, ErrNoAvailableMoves
	}

	// the search works on a copy and restores every cell it touches
	cells := board.Cells()
	lines := scanLines(board)

	bestVal := scoreFloor
	bestMove := 0

	for idx, cell := range cells {
		if cell != entity.Empty {
			continue
		}

		cells[idx] = player
		moveVal := minimax(cells, lines, 0, false, player)
		cells[idx] = entity.Empty

		if moveVal > bestVal {
			bestMove = idx
			bestVal = moveVal
		}
	}

	return bestMove, nil
}

// evaluate scores a position from player's point of view: 1 when player owns
// a complete line, -1 when the opponent does, 0 otherwise. Lines are checked
// in scan order and the first complete one decides.
func evaluate(cells []entity.Cell, lines [][]int, player entity.Cell) int {
	opponent := player.Opponent()

	for _, line := range lines {
		if isSuccession(cells, line, player) {
			return scoreWin
		}

		if isSuccession(cells, line, opponent) {
			return scoreLoss
		}
	}

	return scoreDraw
}

// minimax returns the game value of cells for player under optimal play.
// depth only tracks the ply and does not discount scores.
func minimax(cells []entity.Cell, lines [][]int, depth int, maximizing bool, player entity.Cell) int {
	switch score := evaluate(cells, lines, player); score {
	case scoreWin, scoreLoss:
		return score
	}

	if !hasEmptyCell(cells) {
		return scoreDraw
	}

	mark, best := player.Opponent(), scoreCeiling
	if maximizing {
		mark, best = player, scoreFloor
	}

	for idx, cell := range cells {
		if cell != entity.Empty {
			continue
		}

		cells[idx] = mark
		score := minimax(cells, lines, depth+1, !maximizing, player)
		cells[idx] = entity.Empty

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}

func hasEmptyCell(cells []entity.Cell) bool {
	for _, cell := range cells {
		if cell == entity.Empty {
			return true
		}
	}

	return false
}

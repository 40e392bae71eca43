package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// winLength is the number of marks in a row needed to win.
const winLength = 3

// Outcome is the result of a win/draw query. A concluded outcome with an
// Empty player and no line is a draw.
type Outcome struct {
	Concluded bool
	Line      []int
	Player    entity.Cell
}

func (that Outcome) IsDraw() bool {
	return that.Concluded && that.Player == entity.Empty
}

func (that Outcome) IsWin() bool {
	return that.Concluded && that.Player != entity.Empty
}

// FindWinner reports whether player has completed a line or the board is a
// draw. Rows are checked before columns, columns before the anti-diagonal,
// and the anti-diagonal before the main diagonal; the first match is returned.
func FindWinner(board *entity.Board, player entity.Cell) Outcome {
	// fewer than 5 marks means nobody can have three yet
	if board.MoveCount() < 2*winLength-1 {
		return Outcome{Line: []int{}, Player: player}
	}

	cells := board.Cells()
	for _, line := range scanLines(board) {
		if isSuccession(cells, line, player) {
			return Outcome{Concluded: true, Line: line, Player: player}
		}
	}

	if board.IsFull() {
		return Outcome{Concluded: true, Line: []int{}, Player: entity.Empty}
	}

	return Outcome{Line: []int{}, Player: player}
}

// scanLines lists every line of the board as flat indices in scan order:
// rows, columns, anti-diagonal, main diagonal.
func scanLines(board *entity.Board) [][]int {
	lines := make([][]int, 0, board.Width()+board.Height()+2)

	for row := range board.Height() {
		lines = append(lines, board.RowIndices(row))
	}

	for col := range board.Width() {
		lines = append(lines, board.ColIndices(col))
	}

	lines = append(lines, board.DiagonalIndices(false), board.DiagonalIndices(true))

	return lines
}

// isSuccession reports whether every cell of line holds player.
func isSuccession(cells []entity.Cell, line []int, player entity.Cell) bool {
	if player == entity.Empty || len(line) != winLength {
		return false
	}

	for _, idx := range line {
		if cells[idx] != player {
			return false
		}
	}

	return true
}

package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBestMove(t *testing.T) {
	tests := []struct {
		name     string
		board    []entity.Cell
		player   entity.Cell
		expected int
	}{
		{
			name:     "Takes the immediate win",
			board:    []entity.Cell{x, x, e, o, o, e, x, e, e},
			player:   o,
			expected: 5,
		},
		{
			name:     "Blocks the open row",
			board:    []entity.Cell{x, e, x, e, o, e, e, e, e},
			player:   o,
			expected: 1,
		},
		{
			// the fork at 2 scores the same as the immediate win at 5 and is
			// scanned first
			name:     "First of equally winning moves",
			board:    []entity.Cell{x, x, e, o, o, e, e, e, e},
			player:   o,
			expected: 2,
		},
		{
			name:     "X completes the column",
			board:    []entity.Cell{x, o, e, x, o, e, e, e, e},
			player:   x,
			expected: 6,
		},
		{
			name:     "Last empty cell",
			board:    []entity.Cell{x, o, x, x, o, o, o, x, e},
			player:   x,
			expected: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board position
			board := mustBoard(t, tt.board...)
			before := board.Cells()

			// When: asking for the best move
			move, err := FindBestMove(board, tt.player)

			// Then: the expected cell is chosen and the board is untouched
			require.NoError(t, err)
			require.Equal(t, tt.expected, move)
			require.Equal(t, before, board.Cells())
		})
	}
}

func TestFindBestMove_Errors(t *testing.T) {
	t.Run("Full board", func(t *testing.T) {
		// Given: a drawn board
		board := mustBoard(t, x, o, x, x, o, o, o, x, x)

		// When: asking for a move
		_, err := FindBestMove(board, o)

		// Then: there is nothing to choose
		require.ErrorIs(t, err, ErrNoAvailableMoves)
	})

	t.Run("Empty is not a player", func(t *testing.T) {
		_, err := FindBestMove(entity.NewBoard(), e)

		require.ErrorIs(t, err, ErrInvalidPlayer)
	})
}

func TestFindBestMove_NeverPicksOccupiedCell(t *testing.T) {
	// Given: every position reachable in three plies
	var walk func(board *entity.Board, turn entity.Cell)
	walk = func(board *entity.Board, turn entity.Cell) {
		if board.MoveCount() == 3 {
			// When: asking for the next move
			move, err := FindBestMove(board, turn)
			require.NoError(t, err)

			// Then: the chosen cell is empty
			require.Equal(t, entity.Empty, board.At(move), board.String())

			return
		}

		for idx := range board.Size() {
			next := board.Clone()
			if next.PlaceAt(idx, turn) {
				walk(next, turn.Opponent())
			}
		}
	}

	walk(entity.NewBoard(), x)
}

func TestFindBestMove_SelfPlayDraws(t *testing.T) {
	playOut := func(t *testing.T, board *entity.Board, turn entity.Cell) {
		t.Helper()

		for {
			if FindWinner(board, turn.Opponent()).Concluded {
				break
			}

			move, err := FindBestMove(board, turn)
			require.NoError(t, err)
			require.True(t, board.PlaceAt(move, turn))

			turn = turn.Opponent()
		}

		// Then: optimal play from both sides is a draw
		require.True(t, board.IsFull(), board.String())
		require.True(t, FindWinner(board, x).IsDraw(), board.String())
		require.True(t, FindWinner(board, o).IsDraw(), board.String())
	}

	t.Run("From an empty board", func(t *testing.T) {
		for _, first := range []entity.Cell{x, o} {
			playOut(t, entity.NewBoard(), first)
		}
	})

	t.Run("From every opening move", func(t *testing.T) {
		for idx := range 9 {
			// Given: X opened at idx
			board := entity.NewBoard()
			require.True(t, board.PlaceAt(idx, x))

			// When: both sides play the engine's move
			playOut(t, board, o)
		}
	})
}

func TestEvaluate(t *testing.T) {
	lines := scanLines(entity.NewBoard())

	t.Run("Own line", func(t *testing.T) {
		cells := []entity.Cell{x, x, x, o, o, e, e, e, e}

		assert.Equal(t, 1, evaluate(cells, lines, x))
		assert.Equal(t, -1, evaluate(cells, lines, o))
	})

	t.Run("No line", func(t *testing.T) {
		cells := []entity.Cell{x, o, x, x, o, o, o, x, x}

		assert.Equal(t, 0, evaluate(cells, lines, x))
		assert.Equal(t, 0, evaluate(cells, lines, o))
	})

	t.Run("First line in scan order decides", func(t *testing.T) {
		// O owns row 0, X owns row 1
		cells := []entity.Cell{o, o, o, x, x, x, e, e, e}

		assert.Equal(t, -1, evaluate(cells, lines, x))
		assert.Equal(t, 1, evaluate(cells, lines, o))
	})
}

func TestEvaluate_AgreesWithFindWinner(t *testing.T) {
	lines := scanLines(entity.NewBoard())
	terminals := 0

	// Given: every legal game played out to the end
	var walk func(board *entity.Board, turn entity.Cell)
	walk = func(board *entity.Board, turn entity.Cell) {
		winX, winO := FindWinner(board, x), FindWinner(board, o)
		if !winX.Concluded && !winO.Concluded {
			for idx := range board.Size() {
				next := board.Clone()
				if next.PlaceAt(idx, turn) {
					walk(next, turn.Opponent())
				}
			}

			return
		}

		terminals++
		score := evaluate(board.Cells(), lines, x)

		// Then: both classify the final position the same way
		switch {
		case winX.IsWin():
			require.Equal(t, 1, score, board.String())
		case winO.IsWin():
			require.Equal(t, -1, score, board.String())
		default:
			require.True(t, winX.IsDraw() && winO.IsDraw(), board.String())
			require.Equal(t, 0, score, board.String())
		}
	}

	walk(entity.NewBoard(), x)

	// 255168 possible games of tic-tac-toe
	assert.Equal(t, 255168, terminals)
}

func TestMinimax_RestoresCells(t *testing.T) {
	// Given: a mid-game position
	cells := []entity.Cell{x, e, e, e, o, e, e, e, x}
	before := append([]entity.Cell(nil), cells...)

	// When: searching it
	score := minimax(cells, scanLines(entity.NewBoard()), 0, true, o)

	// Then: the cells are restored and the position is a draw
	require.Equal(t, before, cells)
	assert.Equal(t, 0, score)
}

func TestMinimax_Terminal(t *testing.T) {
	lines := scanLines(entity.NewBoard())

	assert.Equal(t, 1, minimax([]entity.Cell{x, x, x, o, o, e, e, e, e}, lines, 0, false, x))
	assert.Equal(t, -1, minimax([]entity.Cell{x, x, x, o, o, e, e, e, e}, lines, 0, true, o))
	assert.Equal(t, 0, minimax([]entity.Cell{x, o, x, x, o, o, o, x, x}, lines, 0, true, x))
}

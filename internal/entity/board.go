package entity

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultWidth  = 3
	DefaultHeight = 3
)

var ErrInvalidBoard = errors.New("invalid board")

// Board is a row-major grid of cells. A Board belongs to one game session
// and is not safe for concurrent use.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoard returns an empty 3x3 board.
func NewBoard() *Board {
	return &Board{
		width:  DefaultWidth,
		height: DefaultHeight,
		cells:  make([]Cell, DefaultWidth*DefaultHeight),
	}
}

// NewBoardFromCells builds a 3x3 board from row-major cells.
func NewBoardFromCells(cells []Cell) (*Board, error) {
	board := NewBoard()
	if len(cells) != len(board.cells) {
		return nil, fmt.Errorf("%w: want %d cells, got %d", ErrInvalidBoard, len(board.cells), len(cells))
	}

	for i, cell := range cells {
		if !cell.IsValid() {
			return nil, fmt.Errorf("%w: cell %d has value %d", ErrInvalidBoard, i, cell)
		}
	}

	copy(board.cells, cells)

	return board, nil
}

// Reset empties every cell, dimensions are kept.
func (that *Board) Reset() {
	for i := range that.cells {
		that.cells[i] = Empty
	}
}

func (that *Board) Width() int {
	return that.width
}

func (that *Board) Height() int {
	return that.height
}

// Size is the number of cells on the board.
func (that *Board) Size() int {
	return len(that.cells)
}

// Cells returns a copy of the cells in row-major order.
func (that *Board) Cells() []Cell {
	out := make([]Cell, len(that.cells))
	copy(out, that.cells)

	return out
}

// At returns the cell at flat index idx, Empty when idx is out of range.
func (that *Board) At(idx int) Cell {
	if idx < 0 || idx >= len(that.cells) {
		return Empty
	}

	return that.cells[idx]
}

// Index converts row and col to a flat row-major index.
func (that *Board) Index(row, col int) int {
	return row*that.width + col
}

// RowCol converts a flat index back to row and col.
func (that *Board) RowCol(idx int) (int, int) {
	return idx / that.width, idx % that.width
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.height && col >= 0 && col < that.width
}

// Place puts player's mark on an empty in-bounds cell. It reports false and
// leaves the board untouched when the cell is occupied, out of range, or
// player is not X or O.
func (that *Board) Place(row, col int, player Cell) bool {
	if !that.InBounds(row, col) || !player.IsPlayer() {
		return false
	}

	idx := that.Index(row, col)
	if that.cells[idx] != Empty {
		return false
	}

	that.cells[idx] = player

	return true
}

// PlaceAt is Place addressed by flat index.
func (that *Board) PlaceAt(idx int, player Cell) bool {
	if idx < 0 || idx >= len(that.cells) {
		return false
	}

	row, col := that.RowCol(idx)

	return that.Place(row, col, player)
}

// Rows chunks the cells into height rows of width cells each.
func (that *Board) Rows() [][]Cell {
	rows := make([][]Cell, 0, that.height)
	for row := range that.height {
		rows = append(rows, that.Row(row))
	}

	return rows
}

func (that *Board) Row(row int) []Cell {
	return that.pick(that.RowIndices(row))
}

// Col returns the cells of column col, top to bottom.
func (that *Board) Col(col int) []Cell {
	return that.pick(that.ColIndices(col))
}

// Diagonal returns the main diagonal (i, i) when negative is true and the
// anti-diagonal (i, width-1-i) otherwise, ordered by increasing i.
func (that *Board) Diagonal(negative bool) []Cell {
	return that.pick(that.DiagonalIndices(negative))
}

func (that *Board) RowIndices(row int) []int {
	if row < 0 || row >= that.height {
		return nil
	}

	out := make([]int, 0, that.width)
	for col := range that.width {
		out = append(out, that.Index(row, col))
	}

	return out
}

func (that *Board) ColIndices(col int) []int {
	if col < 0 || col >= that.width {
		return nil
	}

	out := make([]int, 0, that.height)
	for row := range that.height {
		out = append(out, that.Index(row, col))
	}

	return out
}

func (that *Board) DiagonalIndices(negative bool) []int {
	out := make([]int, 0, that.width)
	for i := range that.width {
		if negative {
			out = append(out, that.Index(i, i))
		} else {
			out = append(out, that.Index(i, that.width-1-i))
		}
	}

	return out
}

// MoveCount is the number of non-empty cells.
func (that *Board) MoveCount() int {
	moves := 0
	for _, cell := range that.cells {
		if cell != Empty {
			moves++
		}
	}

	return moves
}

func (that *Board) IsFull() bool {
	return that.MoveCount() == len(that.cells)
}

// Clone returns an independent copy of the board.
func (that *Board) Clone() *Board {
	return &Board{
		width:  that.width,
		height: that.height,
		cells:  that.Cells(),
	}
}

// String renders the board one row per line, "-" marking empty cells.
func (that *Board) String() string {
	var sb strings.Builder
	for row := range that.height {
		if row > 0 {
			sb.WriteByte('\n')
		}

		for _, cell := range that.Row(row) {
			if cell == Empty {
				sb.WriteByte('-')
			} else {
				sb.WriteString(cell.String())
			}
		}
	}

	return sb.String()
}

func (that *Board) pick(indices []int) []Cell {
	out := make([]Cell, 0, len(indices))
	for _, idx := range indices {
		out = append(out, that.cells[idx])
	}

	return out
}

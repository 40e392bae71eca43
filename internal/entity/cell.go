package entity

import (
	"errors"
	"fmt"
)

// Cell is the state of one board position.
type Cell uint8

const (
	Empty Cell = iota
	PlayerX
	PlayerO
)

const (
	MarkX     = "X"
	MarkO     = "O"
	MarkEmpty = ""
)

var ErrUnknownMark = errors.New("unknown mark")

// IsValid reports whether the cell is one of Empty, PlayerX or PlayerO.
func (that Cell) IsValid() bool {
	return that == Empty || that == PlayerX || that == PlayerO
}

// IsPlayer reports whether the cell holds a player's mark.
func (that Cell) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other player. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (that Cell) String() string {
	switch that {
	case PlayerX:
		return MarkX
	case PlayerO:
		return MarkO
	default:
		return MarkEmpty
	}
}

// ParseCell converts a mark ("X", "O" or "") into a Cell.
func ParseCell(mark string) (Cell, error) {
	switch mark {
	case MarkX:
		return PlayerX, nil
	case MarkO:
		return PlayerO, nil
	case MarkEmpty:
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownMark, mark)
	}
}

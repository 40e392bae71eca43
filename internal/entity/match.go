package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	MarkTie = "-"
)

const (
	TwoPlayersType = "two-players"
	WithBotType    = "bot"
)

// Match is a read-only snapshot of a game session handed to callers.
type Match struct {
	ID         string   `json:"id"`
	Board      []string `json:"board"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Turn       string   `json:"player_turn"`
	Winner     string   `json:"winner"`
	Line       []int    `json:"line"`
	Status     string   `json:"status"`
	Type       string   `json:"type"`
	LastAIMove int      `json:"last_ai_move"`
}

// NewMatchSnapshot copies the board into a snapshot. Winner and Status are
// filled in by the caller.
func NewMatchSnapshot(id, matchType string, board *Board, turn Cell) *Match {
	marks := make([]string, 0, board.Size())
	for _, cell := range board.Cells() {
		marks = append(marks, cell.String())
	}

	return &Match{
		ID:         id,
		Board:      marks,
		Width:      board.Width(),
		Height:     board.Height(),
		Turn:       turn.String(),
		Line:       []int{},
		Status:     StatusOngoing,
		Type:       matchType,
		LastAIMove: -1,
	}
}

func (that *Match) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Match) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Match) IsTie() bool {
	return that.IsFinished() && that.Winner == MarkTie
}

func (that *Match) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Match) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownStatus, that.Status)
	}
}

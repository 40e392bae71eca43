package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidCell   = errors.New("invalid cell")
	ErrInvalidMark   = errors.New("invalid player mark")
	ErrMoveNotCached = errors.New("move not cached")
	ErrUnknownStatus = errors.New("unknown game status")
)

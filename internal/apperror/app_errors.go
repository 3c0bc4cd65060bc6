package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrInvalidPosition  = errors.New("position is outside the board")
	ErrCellOccupied     = errors.New("cell is already occupied")
)

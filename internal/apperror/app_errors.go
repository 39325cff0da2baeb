package apperror

import "errors"

var (
	ErrGameFinished   = errors.New("game is already finished")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrUnknownPlayer  = errors.New("unknown player")
	ErrInvalidInput   = errors.New("invalid input")
	ErrPositionPlayed = errors.New("position has already been played")
)

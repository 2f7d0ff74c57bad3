package game

import "errors"

var (
	ErrInvalidSize  = errors.New("invalid grid size")
	ErrOutOfBounds  = errors.New("position out of bounds")
	ErrNoLegalMoves = errors.New("no legal moves")
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameOver     = errors.New("game is over - no moves allowed")
)

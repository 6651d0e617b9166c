package model

import "errors"

var (
	ErrOutOfBounds        = errors.New("invalid move, out of bounds")
	ErrEmptySquare        = errors.New("no piece at from square")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrMalformedPromotion = errors.New("malformed promotion")
	ErrIllegalMove        = errors.New("invalid move, not legal")
	ErrKingInCheck        = errors.New("move leaves king in check")
	ErrNothingToUndo      = errors.New("nothing to undo")
	ErrInvalidPosition    = errors.New("invalid position")
)

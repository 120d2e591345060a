package chess

import "errors"

// ErrInvalidEncoding is returned by every checked constructor when a raw
// value does not describe a square, color, or move.
var ErrInvalidEncoding = errors.New("chess: invalid encoding")

var (
	ErrInvalidSquare   = errors.New("square out of range")
	ErrInvalidColor    = errors.New("color out of range")
	ErrInvalidMoveType = errors.New("reserved move type")
)

package chess

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Square represents a board position (0-63), a1 = 0, h8 = 63.
type Square uint8

// NoSquare is one past the last valid square.
const NoSquare Square = 64

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a square from a file and rank in 0..7. Inputs are not checked.
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

// ToSquare converts an arbitrary integer into a Square, rejecting anything
// outside 0..63.
func ToSquare[T constraints.Integer](v T) (Square, error) {
	if v < 0 || uint64(v) > 63 {
		return NoSquare, fmt.Errorf("%w: %w (got %d)", ErrInvalidEncoding, ErrInvalidSquare, v)
	}
	return Square(v), nil
}

// ParseSquare reads a square in coordinate form, e.g. "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("%w: %w (got %q)", ErrInvalidEncoding, ErrInvalidSquare, s)
	}
	return NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool { return sq < NoSquare }

// File returns the file index, 0 for the a-file.
func (sq Square) File() int { return int(sq & 7) }

// Rank returns the rank index, 0 for the first rank.
func (sq Square) Rank() int { return int(sq >> 3) }

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

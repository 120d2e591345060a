package chess

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Color identifies a side. It doubles as an index into any two-element
// per-side table: White selects element 0, Black element 1.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// NewColor maps 0 to White and 1 to Black. It is meant for callers that
// already hold a valid side index and panics on anything else; use ToColor
// for untrusted input.
func NewColor(v int) Color {
	switch v {
	case 0:
		return White
	case 1:
		return Black
	}
	panic(fmt.Sprintf("chess: NewColor(%d): not a side index", v))
}

// ToColor is the checked form of NewColor.
func ToColor[T constraints.Integer](v T) (Color, error) {
	switch {
	case v == 0:
		return White, nil
	case v == 1:
		return Black, nil
	}
	return White, fmt.Errorf("%w: %w (got %d)", ErrInvalidEncoding, ErrInvalidColor, v)
}

// Flip returns the opposing side.
func (c Color) Flip() Color {
	if c == White {
		return Black
	}
	return White
}

// Index returns the table slot selected by c.
func (c Color) Index() int { return int(c) }

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// PerColor holds one value per side, indexed by Color.
type PerColor[T any] [2]T

// Of returns the value held for c.
func (p *PerColor[T]) Of(c Color) T { return (*p)[c] }

// Ptr returns a pointer to the slot for c, for in-place updates.
func (p *PerColor[T]) Ptr(c Color) *T { return &(*p)[c] }

// Set stores v in the slot for c.
func (p *PerColor[T]) Set(c Color, v T) { (*p)[c] = v }

// Side returns s[c]. s must have at least two elements.
func Side[T any](s []T, c Color) T { return s[c.Index()] }

// Package chess defines the small value types that sit below a move
// generator, most importantly the 16-bit Move encoding.
package chess

import (
	"encoding/binary"
	"fmt"
)

// Move encodes a chess move in 16 bits.
//
//	bits  0-5   start square
//	bits  6-11  target square
//	bits 12-15  MoveType
//
// The zero Move (a1a1, Quiet) stands for "no move".
type Move uint16

// NoMove is the null move sentinel.
const NoMove Move = 0

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift = 0
	moveToShift   = 6
	moveKindShift = 12

	squareMask = 0x3F
)

// NewMove packs a move. Squares are not range checked; the caller must
// pass values in 0..63.
func NewMove(from, to Square, kind MoveType) Move {
	return Move(uint16(from&squareMask)<<moveFromShift |
		uint16(to&squareMask)<<moveToShift |
		uint16(kind&0xF)<<moveKindShift)
}

// TryNewMove is NewMove for untrusted input: it rejects off-board squares
// and reserved move types.
func TryNewMove(from, to Square, kind MoveType) (Move, error) {
	if !from.Valid() {
		return NoMove, fmt.Errorf("%w: %w (start %d)", ErrInvalidEncoding, ErrInvalidSquare, from)
	}
	if !to.Valid() {
		return NoMove, fmt.Errorf("%w: %w (target %d)", ErrInvalidEncoding, ErrInvalidSquare, to)
	}
	if !kind.Valid() {
		return NoMove, fmt.Errorf("%w: %w (%04b)", ErrInvalidEncoding, ErrInvalidMoveType, uint8(kind))
	}
	return NewMove(from, to, kind), nil
}

// MoveFromBits reinterprets a raw 16-bit value, e.g. one read back from a
// transposition table. Every square field is in range by construction, so
// only the kind nibble can be invalid.
func MoveFromBits(v uint16) (Move, error) {
	m := Move(v)
	if !m.Kind().Valid() {
		return NoMove, fmt.Errorf("%w: %w (%#04x)", ErrInvalidEncoding, ErrInvalidMoveType, v)
	}
	return m, nil
}

// Bits returns the packed representation.
func (m Move) Bits() uint16 { return uint16(m) }

// From returns the start square.
func (m Move) From() Square { return Square(uint16(m) >> moveFromShift & squareMask) }

// To returns the target square.
func (m Move) To() Square { return Square(uint16(m) >> moveToShift & squareMask) }

// Kind returns the move type held in the top four bits.
func (m Move) Kind() MoveType { return moveTypeFromBits(uint16(m) >> moveKindShift) }

// IsEnPassant reports whether m is an en passant capture.
func (m Move) IsEnPassant() bool { return m.Kind().IsEnPassant() }

// IsCastle reports whether m castles to either side.
func (m Move) IsCastle() bool { return m.Kind().IsCastle() }

// IsCapture reports whether m removes an enemy piece.
func (m Move) IsCapture() bool { return m.Kind().IsCapture() }

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool { return m.Kind().IsPromotion() }

// MarshalBinary writes the 16-bit layout little-endian.
func (m Move) MarshalBinary() ([]byte, error) {
	return binary.LittleEndian.AppendUint16(make([]byte, 0, 2), uint16(m)), nil
}

// UnmarshalBinary is the inverse of MarshalBinary. Reserved move types are rejected.
func (m *Move) UnmarshalBinary(data []byte) error {
	if len(data) != 2 {
		return fmt.Errorf("%w: move needs 2 bytes, got %d", ErrInvalidEncoding, len(data))
	}
	v, err := MoveFromBits(binary.LittleEndian.Uint16(data))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// String produces coordinate notation, e.g. "e2e4" or "e7e8q"; "0000" for NoMove.
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if pt := m.Kind().PromotionType(); pt != PieceTypeNone {
		s += string(pt.Letter())
	}
	return s
}

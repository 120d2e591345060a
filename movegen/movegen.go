// Package movegen adapts third-party move generators to the chess move
// encoding. Board logic stays in the generators; this package only decides
// which chess.MoveType each generated move carries.
package movegen

import (
	"errors"

	"chess-core/chess"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrIllegalMove is returned when a generator refuses to play a move.
var ErrIllegalMove = errors.New("movegen: illegal move")

// Position is a playable position backed by an external generator.
type Position interface {
	SideToMove() chess.Color
	// GenerateMoves appends the legal moves to dst[:0] and returns it.
	GenerateMoves(dst []chess.FullMove) []chess.FullMove
	// MakeMove plays m, which must come from GenerateMoves on the same
	// position, and returns a function restoring the previous state.
	MakeMove(m chess.FullMove) (undo func(), err error)
	// Clone returns an independent copy.
	Clone() Position
}

// classify derives the move type of a generated move. capture reports
// whether the target square holds an enemy piece.
func classify(mover chess.PieceType, from, to chess.Square, promo chess.PieceType, capture bool) chess.MoveType {
	if promo != chess.PieceTypeNone {
		return chess.PromotionMoveType(promo, capture)
	}
	if capture {
		return chess.Capture
	}
	switch mover {
	case chess.King:
		if to == from+2 {
			return chess.KingsideCastle
		}
		if from == to+2 {
			return chess.QueensideCastle
		}
	case chess.Pawn:
		// A pawn only changes file when capturing; onto an empty square that is en passant.
		if from.File() != to.File() {
			return chess.EnPassant
		}
		if to == from+16 || from == to+16 {
			return chess.DoublePawnPush
		}
	}
	return chess.Quiet
}

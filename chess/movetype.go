package chess

import "fmt"

// MoveType classifies a move in 4 bits: promotion flag, capture flag and a
// two-bit sub-kind. The values are the literal patterns packed into Move
// and must not change.
type MoveType uint8

const (
	Quiet MoveType = 0b0000
	// DoublePawnPush enables an en passant reply on the next ply.
	DoublePawnPush  MoveType = 0b0001
	KingsideCastle  MoveType = 0b0010
	QueensideCastle MoveType = 0b0011

	Capture   MoveType = 0b0100
	EnPassant MoveType = 0b0101

	PromotionToKnight MoveType = 0b1000
	PromotionToBishop MoveType = 0b1001
	PromotionToRook   MoveType = 0b1010
	PromotionToQueen  MoveType = 0b1011

	PromotionCaptureToKnight MoveType = 0b1100
	PromotionCaptureToBishop MoveType = 0b1101
	PromotionCaptureToRook   MoveType = 0b1110
	PromotionCaptureToQueen  MoveType = 0b1111
)

// Patterns in the capture group with no assigned meaning. They exist so
// that every 4-bit value decodes to something; they are never Valid.
const (
	reservedCapture6 MoveType = 0b0110
	reservedCapture7 MoveType = 0b0111
)

const (
	promotionFlag MoveType = 0b1000
	captureFlag   MoveType = 0b0100
)

// moveTypes maps every 4-bit pattern to its variant.
var moveTypes = [16]MoveType{
	Quiet, DoublePawnPush, KingsideCastle, QueensideCastle,
	Capture, EnPassant, reservedCapture6, reservedCapture7,
	PromotionToKnight, PromotionToBishop, PromotionToRook, PromotionToQueen,
	PromotionCaptureToKnight, PromotionCaptureToBishop, PromotionCaptureToRook, PromotionCaptureToQueen,
}

var moveTypeNames = [16]string{
	"Quiet", "DoublePawnPush", "KingsideCastle", "QueensideCastle",
	"Capture", "EnPassant", "", "",
	"PromotionToKnight", "PromotionToBishop", "PromotionToRook", "PromotionToQueen",
	"PromotionCaptureToKnight", "PromotionCaptureToBishop", "PromotionCaptureToRook", "PromotionCaptureToQueen",
}

func moveTypeFromBits(b uint16) MoveType { return moveTypes[b&0xF] }

// Valid reports whether t is one of the fourteen assigned move types.
func (t MoveType) Valid() bool {
	return t <= PromotionCaptureToQueen && t != reservedCapture6 && t != reservedCapture7
}

// IsQuiet reports whether t is a plain non-capturing move.
func (t MoveType) IsQuiet() bool { return t == Quiet }

// IsDoublePawnPush reports whether t is a two-square pawn advance.
func (t MoveType) IsDoublePawnPush() bool { return t == DoublePawnPush }

// IsEnPassant reports whether t is an en passant capture.
func (t MoveType) IsEnPassant() bool { return t == EnPassant }

// IsCastle reports whether t is a kingside or queenside castle.
func (t MoveType) IsCastle() bool { return t == KingsideCastle || t == QueensideCastle }

// IsCapture reports whether the move removes an enemy piece, en passant and
// capturing promotions included.
func (t MoveType) IsCapture() bool {
	switch t {
	case Capture, EnPassant,
		PromotionCaptureToKnight, PromotionCaptureToBishop,
		PromotionCaptureToRook, PromotionCaptureToQueen:
		return true
	}
	return false
}

// IsPromotion reports whether the move promotes a pawn, with or without capture.
func (t MoveType) IsPromotion() bool {
	return t.Valid() && t&promotionFlag != 0
}

// PromotionType returns the piece a pawn promotes to, or PieceTypeNone.
func (t MoveType) PromotionType() PieceType {
	if !t.IsPromotion() {
		return PieceTypeNone
	}
	return Knight + PieceType(t&0b11)
}

// PromotionMoveType returns the promotion variant for pt, or Quiet when pt
// is not a promotion target.
func PromotionMoveType(pt PieceType, capture bool) MoveType {
	if pt < Knight || pt > Queen {
		return Quiet
	}
	t := promotionFlag | MoveType(pt-Knight)
	if capture {
		t |= captureFlag
	}
	return t
}

func (t MoveType) String() string {
	if t.Valid() {
		return moveTypeNames[t]
	}
	return fmt.Sprintf("MoveType(%04b)", uint8(t))
}

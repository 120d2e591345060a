package chess

// PieceType is a colorless piece kind.
type PieceType uint8

const (
	PieceTypeNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece is a colored piece. Black pieces are encoded as (type | 8) so that
// piece & 7 gives the type and piece & 8 the side.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)

	BlackPawn   Piece = Piece(Pawn) | 8
	BlackKnight Piece = Piece(Knight) | 8
	BlackBishop Piece = Piece(Bishop) | 8
	BlackRook   Piece = Piece(Rook) | 8
	BlackQueen  Piece = Piece(Queen) | 8
	BlackKing   Piece = Piece(King) | 8
)

// MakePiece combines a side and a colorless type. PieceTypeNone yields NoPiece.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PieceTypeNone || pt > King {
		return NoPiece
	}
	if c == Black {
		return Piece(pt) | 8
	}
	return Piece(pt)
}

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece reports White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

const pieceLetters = " pnbrqk"

// Letter returns the lower-case letter of the type, or 0 for PieceTypeNone.
func (pt PieceType) Letter() byte {
	if pt == PieceTypeNone || pt > King {
		return 0
	}
	return pieceLetters[pt]
}

// String returns the FEN letter of the piece, "-" for NoPiece.
func (p Piece) String() string {
	l := p.Type().Letter()
	if l == 0 {
		return "-"
	}
	if p.Color() == White {
		l -= 'a' - 'A'
	}
	return string(l)
}

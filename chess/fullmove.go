package chess

// FullMove pairs a move with the piece that makes it. Move alone cannot
// tell which piece stood on the start square, which make/unmake needs.
type FullMove struct {
	Piece Piece
	Move  Move
}

// NoFullMove is the zero FullMove: no piece, no move.
var NoFullMove FullMove

// NewFullMove pairs piece p with move m.
func NewFullMove(p Piece, m Move) FullMove { return FullMove{Piece: p, Move: m} }

// IsNone reports whether fm is the null move sentinel.
func (fm FullMove) IsNone() bool { return fm == FullMove{} }

func (fm FullMove) String() string {
	if fm.IsNone() {
		return "0000"
	}
	return fm.Piece.String() + fm.Move.String()
}

package movegen

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"

	"chess-core/chess"
)

type dragontoothPosition struct {
	board dragontoothmg.Board
}

// NewDragontooth parses fen into a position generated by dragontoothmg.
func NewDragontooth(fen string) (p Position, err error) {
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, fmt.Errorf("movegen: parse fen %q: %v", fen, r)
		}
	}()
	return &dragontoothPosition{board: dragontoothmg.ParseFen(fen)}, nil
}

func (p *dragontoothPosition) SideToMove() chess.Color {
	if p.board.Wtomove {
		return chess.White
	}
	return chess.Black
}

func (p *dragontoothPosition) sides() (us, them *dragontoothmg.Bitboards) {
	if p.board.Wtomove {
		return &p.board.White, &p.board.Black
	}
	return &p.board.Black, &p.board.White
}

func (p *dragontoothPosition) GenerateMoves(dst []chess.FullMove) []chess.FullMove {
	dst = dst[:0]
	us, them := p.sides()
	side := p.SideToMove()
	for _, dm := range p.board.GenerateLegalMoves() {
		from, to := chess.Square(dm.From()), chess.Square(dm.To())
		mover := pieceTypeAt(uint8(from), us)
		capture := them.All&(uint64(1)<<to) != 0
		kind := classify(mover, from, to, chess.PieceType(dm.Promote()), capture)
		dst = append(dst, chess.NewFullMove(chess.MakePiece(side, mover), chess.NewMove(from, to, kind)))
	}
	return dst
}

// MakeMove applies m only if dragontoothmg lists it as legal; Apply itself
// does no checking.
func (p *dragontoothPosition) MakeMove(m chess.FullMove) (func(), error) {
	from, to := uint8(m.Move.From()), uint8(m.Move.To())
	promo := dragontoothmg.Piece(m.Move.Kind().PromotionType())
	for _, dm := range p.board.GenerateLegalMoves() {
		if dm.From() == from && dm.To() == to && dm.Promote() == promo {
			return p.board.Apply(dm), nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrIllegalMove, m)
}

func (p *dragontoothPosition) Clone() Position {
	c := *p
	return &c
}

// pieceTypeAt finds the piece on sq in one side's bitboards.
func pieceTypeAt(sq uint8, bb *dragontoothmg.Bitboards) chess.PieceType {
	mask := uint64(1) << sq
	switch {
	case bb.Pawns&mask != 0:
		return chess.Pawn
	case bb.Knights&mask != 0:
		return chess.Knight
	case bb.Bishops&mask != 0:
		return chess.Bishop
	case bb.Rooks&mask != 0:
		return chess.Rook
	case bb.Queens&mask != 0:
		return chess.Queen
	case bb.Kings&mask != 0:
		return chess.King
	}
	return chess.PieceTypeNone
}

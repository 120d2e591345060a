package movegen

import (
	"fmt"

	"github.com/Oliverans/GooseEngineMG/goosemg"

	"chess-core/chess"
)

type goosePosition struct {
	board goosemg.Board
	buf   []goosemg.Move
}

// NewGoose parses fen into a position generated by goosemg.
func NewGoose(fen string) (Position, error) {
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("movegen: parse fen %q: %w", fen, err)
	}
	return &goosePosition{board: *b}, nil
}

func (p *goosePosition) SideToMove() chess.Color {
	if p.board.SideToMove() == goosemg.White {
		return chess.White
	}
	return chess.Black
}

func (p *goosePosition) GenerateMoves(dst []chess.FullMove) []chess.FullMove {
	dst = dst[:0]
	p.buf = p.board.GenerateMovesInto(p.buf[:0])
	for _, gm := range p.buf {
		from, to := chess.Square(gm.From()), chess.Square(gm.To())
		var kind chess.MoveType
		switch gm.Flags() {
		case goosemg.FlagEnPassant:
			kind = chess.EnPassant
		case goosemg.FlagCastle:
			kind = chess.QueensideCastle
			if to > from {
				kind = chess.KingsideCastle
			}
		default:
			kind = classify(chess.PieceType(gm.MovedPiece().Type()), from, to,
				chess.PieceType(gm.PromotionPieceType()), gm.CapturedPiece() != goosemg.NoPiece)
		}
		// goosemg uses the same piece numbering as chess.Piece.
		dst = append(dst, chess.NewFullMove(chess.Piece(gm.MovedPiece()), chess.NewMove(from, to, kind)))
	}
	return dst
}

func (p *goosePosition) MakeMove(m chess.FullMove) (func(), error) {
	from, to := goosemg.Square(m.Move.From()), goosemg.Square(m.Move.To())
	us := p.board.SideToMove()

	captured := p.board.PieceAt(to)
	var promo goosemg.Piece
	flag := uint8(goosemg.FlagNone)
	switch kind := m.Move.Kind(); {
	case kind.IsEnPassant():
		captured = goosemg.PieceFromType(1-us, goosemg.PieceTypePawn)
		flag = goosemg.FlagEnPassant
	case kind.IsCastle():
		flag = goosemg.FlagCastle
	case kind.IsPromotion():
		promo = goosemg.PieceFromType(us, goosemg.PieceType(kind.PromotionType()))
	}

	gm := goosemg.NewMove(from, to, goosemg.Piece(m.Piece), captured, promo, flag)
	ok, st := p.board.MakeMove(gm)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}
	return func() { p.board.UnmakeMove(gm, st) }, nil
}

func (p *goosePosition) Clone() Position {
	return &goosePosition{board: p.board}
}

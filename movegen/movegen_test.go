package movegen

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"testing"

	"chess-core/chess"
)

const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
)

type source struct {
	name string
	new  func(fen string) (Position, error)
}

var sources = []source{
	{"dragontooth", NewDragontooth},
	{"goose", NewGoose},
}

func mustPosition(t *testing.T, src source, fen string) Position {
	t.Helper()
	p, err := src.new(fen)
	if err != nil {
		t.Fatalf("%s: %v", src.name, err)
	}
	return p
}

func TestPerftStats(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		depth int
		want  Stats
	}{
		{"start d1", StartFEN, 1, Stats{Nodes: 20, DoublePushes: 8}},
		{"start d3", StartFEN, 3, Stats{Nodes: 8902, Captures: 34}},
		{"kiwipete d1", kiwipeteFEN, 1, Stats{Nodes: 48, Captures: 8, Castles: 2, DoublePushes: 2}},
		{"kiwipete d2", kiwipeteFEN, 2, Stats{Nodes: 2039, Captures: 351, EnPassant: 1, Castles: 91}},
		{"position3 d3", position3FEN, 3, Stats{Nodes: 2812, Captures: 209, EnPassant: 2}},
		{"position4 d1", position4FEN, 1, Stats{Nodes: 6, DoublePushes: 1}},
		{"position4 d2", position4FEN, 2, Stats{Nodes: 264, Captures: 87, Castles: 6, Promotions: 48}},
	}
	for _, src := range sources {
		for _, c := range cases {
			p := mustPosition(t, src, c.fen)
			got, err := Perft(p, c.depth)
			if err != nil {
				t.Fatalf("%s %s: %v", src.name, c.name, err)
			}
			// Double pushes are only pinned down for the shallow cases.
			if c.depth > 1 {
				got.DoublePushes = 0
			}
			if got != c.want {
				t.Fatalf("%s %s: got %+v want %+v", src.name, c.name, got, c.want)
			}
		}
	}
}

func TestPerftParallel(t *testing.T) {
	if testing.Short() {
		t.Skip("deep perft")
	}
	want := Stats{Nodes: 97862, Captures: 17102, EnPassant: 45, Castles: 3162}
	for _, src := range sources {
		got, err := PerftParallel(context.Background(), mustPosition(t, src, kiwipeteFEN), 3)
		if err != nil {
			t.Fatalf("%s: %v", src.name, err)
		}
		got.DoublePushes = 0
		if got != want {
			t.Fatalf("%s: got %+v want %+v", src.name, got, want)
		}
	}
}

func TestPerftParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := mustPosition(t, sources[0], StartFEN)
	if _, err := PerftParallel(ctx, p, 3); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v want context.Canceled", err)
	}
}

func sortedMoves(p Position) []chess.FullMove {
	moves := p.GenerateMoves(nil)
	slices.SortFunc(moves, func(a, b chess.FullMove) int {
		return cmp.Compare(a.Move.Bits(), b.Move.Bits())
	})
	return moves
}

func TestSourcesAgree(t *testing.T) {
	fens := []string{
		StartFEN,
		kiwipeteFEN,
		position3FEN,
		position4FEN,
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
	}
	for _, fen := range fens {
		a := sortedMoves(mustPosition(t, sources[0], fen))
		b := sortedMoves(mustPosition(t, sources[1], fen))
		if !slices.Equal(a, b) {
			t.Fatalf("%s:\n dragontooth %v\n goose       %v", fen, a, b)
		}
	}
}

func TestClassification(t *testing.T) {
	cases := []struct {
		fen  string
		move chess.FullMove
	}{
		{StartFEN, chess.NewFullMove(chess.WhitePawn, chess.NewMove(chess.E2, chess.E4, chess.DoublePawnPush))},
		{StartFEN, chess.NewFullMove(chess.WhiteKnight, chess.NewMove(chess.G1, chess.F3, chess.Quiet))},
		{"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			chess.NewFullMove(chess.WhitePawn, chess.NewMove(chess.E5, chess.F6, chess.EnPassant))},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			chess.NewFullMove(chess.BlackKing, chess.NewMove(chess.E8, chess.C8, chess.QueensideCastle))},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			chess.NewFullMove(chess.WhiteKing, chess.NewMove(chess.E1, chess.G1, chess.KingsideCastle))},
		{"4k3/8/8/8/8/8/1p6/R3K3 b - - 0 1",
			chess.NewFullMove(chess.BlackPawn, chess.NewMove(chess.B2, chess.A1, chess.PromotionCaptureToKnight))},
		{"4k3/8/8/8/8/8/1p6/R3K3 b - - 0 1",
			chess.NewFullMove(chess.BlackPawn, chess.NewMove(chess.B2, chess.B1, chess.PromotionToQueen))},
		{kiwipeteFEN, chess.NewFullMove(chess.WhiteKnight, chess.NewMove(chess.E5, chess.F7, chess.Capture))},
	}
	for _, src := range sources {
		for _, c := range cases {
			p := mustPosition(t, src, c.fen)
			if p.SideToMove() != c.move.Piece.Color() {
				t.Fatalf("%s: side to move %v, moving piece %v", c.fen, p.SideToMove(), c.move.Piece)
			}
			if !slices.Contains(p.GenerateMoves(nil), c.move) {
				t.Fatalf("%s %s: %v (%v) not generated", src.name, c.fen, c.move, c.move.Move.Kind())
			}
		}
	}
}

func TestMakeMoveUndo(t *testing.T) {
	for _, src := range sources {
		p := mustPosition(t, src, kiwipeteFEN)
		before := sortedMoves(p)
		for _, m := range before {
			undo, err := p.MakeMove(m)
			if err != nil {
				t.Fatalf("%s %v: %v", src.name, m, err)
			}
			if p.SideToMove() != chess.Black {
				t.Fatalf("%s %v: side to move not flipped", src.name, m)
			}
			undo()
		}
		if after := sortedMoves(p); !slices.Equal(before, after) {
			t.Fatalf("%s: moves changed after make/undo", src.name)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	for _, src := range sources {
		p := mustPosition(t, src, StartFEN)
		c := p.Clone()
		if _, err := c.MakeMove(chess.NewFullMove(chess.WhitePawn, chess.NewMove(chess.E2, chess.E4, chess.DoublePawnPush))); err != nil {
			t.Fatal(err)
		}
		if p.SideToMove() != chess.White || c.SideToMove() != chess.Black {
			t.Fatalf("%s: clone shares state with original", src.name)
		}
	}
}

func TestRejectsIllegalMove(t *testing.T) {
	// The e2 bishop is pinned against the king.
	const fen = "4r1k1/8/8/8/8/8/4B3/4K3 w - - 0 1"
	for _, src := range sources {
		p := mustPosition(t, src, fen)
		before := sortedMoves(p)
		_, err := p.MakeMove(chess.NewFullMove(chess.WhiteBishop, chess.NewMove(chess.E2, chess.D3, chess.Quiet)))
		if !errors.Is(err, ErrIllegalMove) {
			t.Fatalf("%s: got %v want ErrIllegalMove", src.name, err)
		}
		if p.SideToMove() != chess.White || !slices.Equal(before, sortedMoves(p)) {
			t.Fatalf("%s: rejected move changed the position", src.name)
		}
	}
	p := mustPosition(t, sources[0], StartFEN)
	if _, err := p.MakeMove(chess.NewFullMove(chess.WhitePawn, chess.NewMove(chess.E2, chess.E5, chess.Quiet))); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("dragontooth: e2e5 got %v want ErrIllegalMove", err)
	}
}

func TestBadFEN(t *testing.T) {
	if _, err := NewDragontooth(""); err == nil {
		t.Fatalf("dragontooth accepted an empty FEN")
	}
	if _, err := NewGoose("not a fen"); err == nil {
		t.Fatalf("goose accepted a malformed FEN")
	}
}

func TestDivide(t *testing.T) {
	for _, src := range sources {
		div, err := Divide(mustPosition(t, src, StartFEN), 2)
		if err != nil {
			t.Fatal(err)
		}
		if len(div) != 20 {
			t.Fatalf("%s: %d root moves want 20", src.name, len(div))
		}
		var total uint64
		for m, n := range div {
			if n != 20 {
				t.Fatalf("%s %v: %d nodes want 20", src.name, m, n)
			}
			total += n
		}
		if total != 400 {
			t.Fatalf("%s: total %d want 400", src.name, total)
		}
		if _, ok := div[chess.NewMove(chess.E2, chess.E4, chess.DoublePawnPush)]; !ok {
			t.Fatalf("%s: e2e4 missing or misclassified", src.name)
		}
	}
}

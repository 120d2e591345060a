package movegen

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"chess-core/chess"
)

// Stats are perft counters. Move kinds are counted for the moves played at
// the last ply only, as in the usual published perft tables.
type Stats struct {
	Nodes        uint64
	Captures     uint64
	EnPassant    uint64
	Castles      uint64
	Promotions   uint64
	DoublePushes uint64
}

func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.Captures += o.Captures
	s.EnPassant += o.EnPassant
	s.Castles += o.Castles
	s.Promotions += o.Promotions
	s.DoublePushes += o.DoublePushes
}

func (s *Stats) count(m chess.Move) {
	s.Nodes++
	if m.IsCapture() {
		s.Captures++
	}
	if m.IsEnPassant() {
		s.EnPassant++
	}
	if m.IsCastle() {
		s.Castles++
	}
	if m.IsPromotion() {
		s.Promotions++
	}
	if m.Kind().IsDoublePawnPush() {
		s.DoublePushes++
	}
}

type perftCtx struct {
	bufs [][]chess.FullMove
}

func (pc *perftCtx) bufFor(depth int) []chess.FullMove {
	for depth >= len(pc.bufs) {
		pc.bufs = append(pc.bufs, nil)
	}
	if pc.bufs[depth] == nil {
		pc.bufs[depth] = make([]chess.FullMove, 0, 256)
	}
	return pc.bufs[depth][:0]
}

// Perft walks the legal move tree of p to the given depth. p is left as it was.
func Perft(p Position, depth int) (Stats, error) {
	if depth <= 0 {
		return Stats{Nodes: 1}, nil
	}
	pc := perftCtx{bufs: make([][]chess.FullMove, depth+1)}
	var s Stats
	err := perftRec(p, depth, &pc, &s)
	return s, err
}

func perftRec(p Position, depth int, pc *perftCtx, s *Stats) error {
	moves := p.GenerateMoves(pc.bufFor(depth))
	pc.bufs[depth] = moves
	if depth == 1 {
		for _, m := range moves {
			s.count(m.Move)
		}
		return nil
	}
	for _, m := range moves {
		undo, err := p.MakeMove(m)
		if err != nil {
			return err
		}
		err = perftRec(p, depth-1, pc, s)
		undo()
		if err != nil {
			return err
		}
	}
	return nil
}

// Divide returns the node count below each root move.
func Divide(p Position, depth int) (map[chess.Move]uint64, error) {
	result := make(map[chess.Move]uint64)
	if depth <= 0 {
		return result, nil
	}
	for _, m := range p.GenerateMoves(nil) {
		undo, err := p.MakeMove(m)
		if err != nil {
			return nil, err
		}
		s, err := Perft(p, depth-1)
		undo()
		if err != nil {
			return nil, err
		}
		result[m.Move] = s.Nodes
	}
	return result, nil
}

// PerftParallel is Perft with the root moves spread over GOMAXPROCS
// goroutines. Each goroutine works on its own clone of p.
func PerftParallel(ctx context.Context, p Position, depth int) (Stats, error) {
	if depth <= 1 {
		return Perft(p, depth)
	}
	moves := p.GenerateMoves(nil)
	results := make([]Stats, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c := p.Clone()
			if _, err := c.MakeMove(m); err != nil {
				return err
			}
			s, err := Perft(c, depth-1)
			results[i] = s
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	var total Stats
	for _, s := range results {
		total.add(s)
	}
	return total, nil
}

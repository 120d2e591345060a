package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"
	"sort"
	"strconv"
	"time"

	"github.com/fatih/color"

	"chess-core/chess"
	"chess-core/movegen"
)

var sources = map[string]func(string) (movegen.Position, error){
	"dragon": movegen.NewDragontooth,
	"goose":  movegen.NewGoose,
}

func main() {
	fen := flag.String("fen", movegen.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth")
	source := flag.String("source", "dragon", "Move generator: dragon or goose")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	parallel := flag.Bool("parallel", false, "Spread root moves over all CPUs")
	decode := flag.String("decode", "", "Decode a raw 16-bit move value instead of running perft")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("perft: ")

	if *decode != "" {
		if err := decodeMove(*decode); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *depth <= 0 {
		log.Fatal("-depth must be > 0")
	}
	newPosition, ok := sources[*source]
	if !ok {
		log.Fatalf("unknown -source %q", *source)
	}
	pos, err := newPosition(*fen)
	if err != nil {
		log.Fatal(err)
	}

	if *divide {
		if err := printDivide(pos, *depth); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Fatalf("creating cpuprofile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("start cpu profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	var stats movegen.Stats
	if *parallel {
		stats, err = movegen.PerftParallel(ctx, pos, *depth)
	} else {
		stats, err = movegen.Perft(pos, *depth)
	}
	if err != nil {
		log.Print(err)
		return
	}
	elapsed := time.Since(start)

	header := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Println(header(fmt.Sprintf("%s depth %d (%s)", *source, *depth, pos.SideToMove())))
	fmt.Printf("nodes       %d\n", stats.Nodes)
	fmt.Printf("captures    %d\n", stats.Captures)
	fmt.Printf("en passant  %d\n", stats.EnPassant)
	fmt.Printf("castles     %d\n", stats.Castles)
	fmt.Printf("promotions  %d\n", stats.Promotions)
	fmt.Printf("dbl pushes  %d\n", stats.DoublePushes)
	fmt.Printf("time        %s  (%.0f nps)\n", elapsed, float64(stats.Nodes)/elapsed.Seconds())
}

func printDivide(pos movegen.Position, depth int) error {
	div, err := movegen.Divide(pos, depth)
	if err != nil {
		return err
	}
	type kv struct {
		m chess.Move
		n uint64
	}
	arr := make([]kv, 0, len(div))
	var sum uint64
	for m, n := range div {
		arr = append(arr, kv{m, n})
		sum += n
	}
	sort.Slice(arr, func(i, j int) bool { return arr[i].m.String() < arr[j].m.String() })
	kind := color.New(color.Faint).SprintFunc()
	for _, x := range arr {
		fmt.Printf("%s: %d %s\n", x.m, x.n, kind(x.m.Kind()))
	}
	color.New(color.Bold).Printf("Total: %d\n", sum)
	return nil
}

func decodeMove(raw string) error {
	v, err := strconv.ParseUint(raw, 0, 16)
	if err != nil {
		return fmt.Errorf("-decode: %w", err)
	}
	m, err := chess.MoveFromBits(uint16(v))
	if err != nil {
		return err
	}
	yes := color.GreenString("yes")
	no := color.RedString("no")
	yn := func(b bool) string {
		if b {
			return yes
		}
		return no
	}
	fmt.Printf("move       %s (%#04x)\n", color.CyanString(m.String()), m.Bits())
	fmt.Printf("start      %s\n", m.From())
	fmt.Printf("target     %s\n", m.To())
	fmt.Printf("kind       %s\n", m.Kind())
	fmt.Printf("capture    %s\n", yn(m.IsCapture()))
	fmt.Printf("promotion  %s\n", yn(m.IsPromotion()))
	fmt.Printf("castle     %s\n", yn(m.IsCastle()))
	fmt.Printf("en passant %s\n", yn(m.IsEnPassant()))
	return nil
}

// perft counts the leaf nodes of the legal move tree, for checking the
// move generator.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/notation"
)

func main() {
	fen := flag.String("fen", engine.InitialFEN, "FEN string (defaults to the initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at the root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}
	if err := run(os.Stdout, *fen, *depth, *divide); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func run(w io.Writer, fen string, depth int, divide bool) error {
	pos, toMove, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}

	if divide {
		var total uint64
		for _, e := range engine.PerftDivide(&pos, toMove, depth) {
			fmt.Fprintf(w, "%s: %d\n", notation.FormatMoveLower(e.Move), e.Nodes)
			total += e.Nodes
		}
		fmt.Fprintf(w, "Total: %d\n", total)
		return nil
	}

	start := time.Now()
	nodes := engine.Perft(&pos, toMove, depth)
	elapsed := time.Since(start)
	fmt.Fprintf(w, "depth %d: %d nodes in %s (%.0f nps)\n", depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())
	return nil
}

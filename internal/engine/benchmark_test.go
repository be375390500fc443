package engine

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":   InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
	"Position3": "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
}

func BenchmarkNewPositionFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewPositionFromFEN(fen)
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			pos, toMove, _ := NewPositionFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				LegalMoves(&pos, toMove)
			}
		})
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	pos, toMove, _ := NewPositionFromFEN(benchFENs["Complex"])
	for i := 0; i < b.N; i++ {
		IsInCheck(&pos, toMove)
	}
}

func BenchmarkSearch(b *testing.B) {
	for _, workers := range []int{1, 4} {
		pos, toMove, _ := NewPositionFromFEN(benchFENs["Midgame"])
		s := NewSearcher(WithDepth(3), WithWorkers(workers))
		b.Run(map[int]string{1: "Sequential", 4: "Parallel4"}[workers], func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				s.Search(&pos, toMove)
			}
		})
	}
}

func BenchmarkPositionCopy(b *testing.B) {
	pos, _, _ := NewPositionFromFEN(InitialFEN)
	m := chess.NewMove(6, 4, 4, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pos.Apply(m)
	}
}

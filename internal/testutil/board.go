package testutil

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// BoardFromDiagram builds a position from eight rows of eight characters,
// row 0 (rank 8) first. Uppercase letters are White, lowercase Black and
// '.' is an empty square, matching the console board rendering.
func BoardFromDiagram(t *testing.T, rows ...string) chess.Position {
	t.Helper()
	var pos chess.Position
	if len(rows) != chess.BoardSize {
		t.Fatalf("diagram has %d rows; want %d", len(rows), chess.BoardSize)
	}
	for row, line := range rows {
		if len(line) != chess.BoardSize {
			t.Fatalf("diagram row %d = %q; want %d squares", row, line, chess.BoardSize)
		}
		for col := 0; col < chess.BoardSize; col++ {
			c := line[col]
			if c == '.' {
				continue
			}
			kind := chess.KindFromLetter(c)
			if kind == chess.NoKind {
				t.Fatalf("diagram row %d col %d: unknown piece %q", row, col, c)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			pos.Set(chess.Sq(row, col), chess.Piece{Colour: colour, Kind: kind})
		}
	}
	return pos
}

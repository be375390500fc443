package engine

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// mustFEN parses a FEN fixture or aborts the test.
func mustFEN(t *testing.T, fen string) (chess.Position, chess.Colour) {
	t.Helper()
	pos, toMove, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error: %v", fen, err)
	}
	return pos, toMove
}

// playedPosition is a position reached in a random game.
type playedPosition struct {
	pos    chess.Position
	toMove chess.Colour
}

// randomPlayout plays up to plies random legal moves from the starting
// position and returns every position visited, the start included.
func randomPlayout(seed int64, plies int) []playedPosition {
	rng := rand.New(rand.NewSource(seed))
	pos := chess.StandardSetup()
	toMove := chess.White
	visited := []playedPosition{{pos, toMove}}
	for i := 0; i < plies; i++ {
		moves := LegalMoves(&pos, toMove)
		if len(moves) == 0 {
			break
		}
		pos = pos.Apply(moves[rng.Intn(len(moves))])
		toMove = toMove.Opposite()
		visited = append(visited, playedPosition{pos, toMove})
	}
	return visited
}

// lowerMoves renders moves as lowercase coordinate pairs ("e2e4").
func lowerMoves(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = string([]byte{
			byte('a' + m.From.Col), byte('0' + chess.BoardSize - m.From.Row),
			byte('a' + m.To.Col), byte('0' + chess.BoardSize - m.To.Row),
		})
	}
	return out
}

// movesFrom keeps the moves that start on sq.
func movesFrom(moves []chess.Move, sq chess.Square) []chess.Move {
	var out []chess.Move
	for _, m := range moves {
		if m.From == sq {
			out = append(out, m)
		}
	}
	return out
}

// exhaustiveMinimax is plain minimax without pruning, used as the
// reference for the alpha-beta search.
func exhaustiveMinimax(pos *chess.Position, depth int, colour chess.Colour) int {
	if depth == 0 {
		return MaterialScore(pos)
	}
	moves := LegalMoves(pos, colour)
	if len(moves) == 0 {
		return MaterialScore(pos)
	}
	var best int
	for i, m := range moves {
		child := pos.Apply(m)
		eval := exhaustiveMinimax(&child, depth-1, colour.Opposite())
		if i == 0 || (colour == chess.White && eval > best) || (colour == chess.Black && eval < best) {
			best = eval
		}
	}
	return best
}

// mv builds a move from coordinate text such as "E2E4".
func mv(t *testing.T, text string) chess.Move {
	t.Helper()
	if len(text) != 4 {
		t.Fatalf("bad move fixture %q", text)
	}
	sq := func(file, rank byte) chess.Square {
		return chess.Sq(chess.BoardSize-int(rank-'0'), int(file-'A'))
	}
	return chess.Move{From: sq(text[0], text[1]), To: sq(text[2], text[3])}
}

package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(pos *chess.Position, colour chess.Colour, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(pos, colour)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := pos.Apply(m)
		nodes += Perft(&child, colour.Opposite(), depth-1)
	}
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// PerftDivide returns the perft count below each legal root move, in
// generation order.
func PerftDivide(pos *chess.Position, colour chess.Colour, depth int) []DivideEntry {
	moves := LegalMoves(pos, colour)
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		child := pos.Apply(m)
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(&child, colour.Opposite(), depth-1)})
	}
	return entries
}

package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// LegalMoves returns the pseudo-legal moves of colour that do not leave
// its own king attacked, in generation order. An empty result means the
// side cannot move and the game is over.
func LegalMoves(pos *chess.Position, colour chess.Colour) []chess.Move {
	candidates := PseudoLegalMoves(pos, colour)
	legal := candidates[:0]
	for _, m := range candidates {
		if tryMove(pos, m, colour) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(pos *chess.Position, colour chess.Colour) bool {
	for _, m := range PseudoLegalMoves(pos, colour) {
		if tryMove(pos, m, colour) {
			return true
		}
	}
	return false
}

// IsLegal reports whether m is one of colour's legal moves in pos.
func IsLegal(pos *chess.Position, colour chess.Colour, m chess.Move) bool {
	if !m.InBounds() {
		return false
	}
	for _, legal := range LegalMoves(pos, colour) {
		if legal == m {
			return true
		}
	}
	return false
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(pos *chess.Position, m chess.Move, colour chess.Colour) bool {
	testPos := pos.Apply(m)
	return !IsInCheck(&testPos, colour)
}

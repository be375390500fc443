package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked. A side
// without a king is always treated as being in check.
//
// The attack test generates the opponent's pseudo-legal moves and looks
// for one that lands on the king's square.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	kingSq, ok := FindKing(pos, colour)
	if !ok {
		return true
	}
	return isSquareAttacked(pos, kingSq, colour.Opposite())
}

// isSquareAttacked returns true if byColour has a pseudo-legal move onto sq.
func isSquareAttacked(pos *chess.Position, sq chess.Square, byColour chess.Colour) bool {
	for _, m := range PseudoLegalMoves(pos, byColour) {
		if m.To == sq {
			return true
		}
	}
	return false
}

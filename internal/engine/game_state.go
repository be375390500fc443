package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// Outcome is the state of a game from the point of view of the side to move.
type Outcome int

const (
	Ongoing Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the message printed when the game ends.
func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "White wins!"
	case BlackWins:
		return "Black wins!"
	case Draw:
		return "Draw!"
	default:
		return "Ongoing"
	}
}

// IsOver returns true for every outcome except Ongoing.
func (o Outcome) IsOver() bool {
	return o != Ongoing
}

// GameOutcome reports whether the game continues with colour to move. A
// side without legal moves ends the game and the result is read from the
// sign of the material score; there is no checkmate/stalemate distinction.
func GameOutcome(pos *chess.Position, colour chess.Colour) Outcome {
	if HasLegalMoves(pos, colour) {
		return Ongoing
	}
	return MaterialVerdict(MaterialScore(pos))
}

// MaterialVerdict maps a material score to a final result.
func MaterialVerdict(score int) Outcome {
	switch {
	case score > 0:
		return WhiteWins
	case score < 0:
		return BlackWins
	default:
		return Draw
	}
}

// IsCheckmate returns true if colour has no legal move while in check.
func IsCheckmate(pos *chess.Position, colour chess.Colour) bool {
	return IsInCheck(pos, colour) && !HasLegalMoves(pos, colour)
}

// IsStalemate returns true if colour has no legal move and is not in check.
func IsStalemate(pos *chess.Position, colour chess.Colour) bool {
	return !IsInCheck(pos, colour) && !HasLegalMoves(pos, colour)
}

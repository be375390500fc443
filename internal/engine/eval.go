package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// pieceValues holds the material value of each kind. The king's value
// dwarfs everything else so that no line losing it is ever preferred.
var pieceValues = [chess.NumKinds]int{
	chess.Pawn:   10,
	chess.Knight: 30,
	chess.Bishop: 30,
	chess.Rook:   50,
	chess.Queen:  90,
	chess.King:   1000,
}

// PieceValue returns the material value of a piece kind (0 for NoKind).
func PieceValue(kind chess.Kind) int {
	if kind < 0 || kind >= chess.NumKinds {
		return 0
	}
	return pieceValues[kind]
}

// MaterialScore returns the material balance of the position: White's
// pieces count positive, Black's negative.
func MaterialScore(pos *chess.Position) int {
	score := 0
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := pos.At(row, col)
			if piece.IsEmpty() {
				continue
			}
			if piece.Colour == chess.White {
				score += pieceValues[piece.Kind]
			} else {
				score -= pieceValues[piece.Kind]
			}
		}
	}
	return score
}

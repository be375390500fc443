// Package engine provides move generation, legality checking, evaluation
// and search over chess.Position values.
package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// direction is a (row, col) step.
type direction [2]int

// Direction tables. The order is part of the move ordering contract:
// search ties are broken by generation order.
var (
	rookDirs   = [4]direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = [4]direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs  = [8]direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	knightOffsets = [8]direction{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets   = [8]direction{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// PseudoLegalMoves returns every move for colour that obeys piece movement
// and occupancy rules, without checking whether it exposes the mover's
// own king. Moves are produced in row-major board order.
func PseudoLegalMoves(pos *chess.Position, colour chess.Colour) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := pos.At(row, col)
			if !piece.IsOwnedBy(colour) {
				continue
			}
			moves = appendPieceMoves(moves, pos, chess.Sq(row, col), piece)
		}
	}
	return moves
}

// appendPieceMoves appends the pseudo-legal moves of the piece on from.
func appendPieceMoves(moves []chess.Move, pos *chess.Position, from chess.Square, piece chess.Piece) []chess.Move {
	switch piece.Kind {
	case chess.Pawn:
		return appendPawnMoves(moves, pos, from, piece.Colour)
	case chess.Knight:
		return appendStepMoves(moves, pos, from, piece.Colour, knightOffsets[:])
	case chess.Bishop:
		return appendSlidingMoves(moves, pos, from, piece.Colour, bishopDirs[:])
	case chess.Rook:
		return appendSlidingMoves(moves, pos, from, piece.Colour, rookDirs[:])
	case chess.Queen:
		return appendSlidingMoves(moves, pos, from, piece.Colour, queenDirs[:])
	case chess.King:
		return appendStepMoves(moves, pos, from, piece.Colour, kingOffsets[:])
	}
	return moves
}

// appendPawnMoves adds pushes, the double push from the home row and
// diagonal captures. There is no en passant and no promotion: a pawn on
// the far row simply has no moves.
func appendPawnMoves(moves []chess.Move, pos *chess.Position, from chess.Square, colour chess.Colour) []chess.Move {
	dir := chess.ColourOffset(colour)
	homeRow := chess.WhitePawnRow
	if colour == chess.Black {
		homeRow = chess.BlackPawnRow
	}

	one := from.Offset(dir, 0)
	if !one.InBounds() {
		return moves
	}
	if pos.Get(one).IsEmpty() {
		moves = append(moves, chess.Move{From: from, To: one})
		if from.Row == homeRow {
			two := from.Offset(2*dir, 0)
			if pos.Get(two).IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: two})
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to := from.Offset(dir, dc)
		if to.InBounds() && pos.Get(to).IsOwnedBy(colour.Opposite()) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// appendStepMoves handles knights and kings: every in-bounds offset not
// occupied by a friendly piece.
func appendStepMoves(moves []chess.Move, pos *chess.Position, from chess.Square, colour chess.Colour, offsets []direction) []chess.Move {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if to.InBounds() && !pos.Get(to).IsOwnedBy(colour) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// appendSlidingMoves casts a ray per direction. Empty squares extend the
// ray, an opposing piece is included and ends it, a friendly piece ends
// it without being included.
func appendSlidingMoves(moves []chess.Move, pos *chess.Position, from chess.Square, colour chess.Colour, dirs []direction) []chess.Move {
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.InBounds() {
			target := pos.Get(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					moves = append(moves, chess.Move{From: from, To: to})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to})
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// FindKing locates the king of the given colour. The boolean is false
// when that side has no king on the board.
func FindKing(pos *chess.Position, colour chess.Colour) (chess.Square, bool) {
	king := chess.Piece{Colour: colour, Kind: chess.King}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if pos.At(row, col) == king {
				return chess.Sq(row, col), true
			}
		}
	}
	return chess.Square{}, false
}

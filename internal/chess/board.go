package chess

// Position is a full 8x8 board. It is a value type: assigning or passing
// a Position copies every square, so speculative boards never share
// state with the board they were derived from.
//
// Squares is indexed [row][col]; see Square for the orientation.
type Position struct {
	Squares [BoardSize][BoardSize]Piece
}

// backRank is the piece order from file A to file H.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StandardSetup returns the standard chess starting position.
func StandardSetup() Position {
	var p Position
	for col := 0; col < BoardSize; col++ {
		p.Squares[0][col] = B(backRank[col])
		p.Squares[BlackPawnRow][col] = B(Pawn)
		p.Squares[WhitePawnRow][col] = W(Pawn)
		p.Squares[BoardSize-1][col] = W(backRank[col])
	}
	return p
}

// Get returns the piece on the given square.
func (p *Position) Get(sq Square) Piece {
	return p.Squares[sq.Row][sq.Col]
}

// Set places a piece on the given square.
func (p *Position) Set(sq Square, piece Piece) {
	p.Squares[sq.Row][sq.Col] = piece
}

// At returns the piece at the given row and column.
func (p *Position) At(row, col int) Piece {
	return p.Squares[row][col]
}

// Apply returns the position after m: the destination is overwritten
// with the source content and the source is cleared. The receiver is
// not modified. Apply does not check legality.
func (p Position) Apply(m Move) Position {
	p.Squares[m.To.Row][m.To.Col] = p.Squares[m.From.Row][m.From.Col]
	p.Squares[m.From.Row][m.From.Col] = Empty
	return p
}

// Count returns the number of pieces of the given colour and kind.
func (p *Position) Count(colour Colour, kind Kind) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p.Squares[row][col] == (Piece{Colour: colour, Kind: kind}) {
				n++
			}
		}
	}
	return n
}

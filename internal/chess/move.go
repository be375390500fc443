package chess

import "fmt"

// Square identifies a board cell. Row 0 is rank 8 (Black's back rank),
// row 7 is rank 1; Col 0..7 maps to files A..H.
type Square struct {
	Row int
	Col int
}

// Sq creates a square from row and column indices.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds returns true if both coordinates lie on the board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square dr rows and dc columns away.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// File returns the file letter ('A'-'H') of the square.
func (s Square) File() byte {
	return byte('A' + s.Col)
}

// Rank returns the rank digit ('1'-'8') of the square.
func (s Square) Rank() byte {
	return byte('0' + BoardSize - s.Row)
}

// String returns the square in coordinate form, e.g. "E2".
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{s.File(), s.Rank()})
}

// Move is a plain from/to coordinate pair. It carries no capture or
// special-move data and no legality guarantee.
type Move struct {
	From Square
	To   Square
}

// NewMove creates a move from row/column pairs.
func NewMove(fromRow, fromCol, toRow, toCol int) Move {
	return Move{From: Sq(fromRow, fromCol), To: Sq(toRow, toCol)}
}

// InBounds returns true if both endpoints lie on the board.
func (m Move) InBounds() bool {
	return m.From.InBounds() && m.To.InBounds()
}

// String returns the move in coordinate form, e.g. "E2E4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

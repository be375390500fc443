// Package notation converts between moves and coordinate text such as
// "E2E4".
package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// ParseMove parses coordinate text: file letter, rank digit, file letter,
// rank digit, in either case. Surrounding whitespace is ignored.
//
// Only the shape is checked. A well-formed string naming a square off the
// board (say "Z9A1") parses to a move that is out of bounds, which no
// legality check accepts.
func ParseMove(text string) (chess.Move, error) {
	s := strings.TrimSpace(text)
	if len(s) != 4 {
		return chess.Move{}, &errors.ParseError{
			Err:      errors.ErrInvalidNotation,
			Input:    text,
			Expected: "4 characters",
			Got:      lengthDesc(len(s)),
		}
	}
	for i := 0; i < 4; i++ {
		c := s[i]
		if i%2 == 0 && !isLetter(c) {
			return chess.Move{}, charError(text, i, "file letter", c)
		}
		if i%2 == 1 && !isDigit(c) {
			return chess.Move{}, charError(text, i, "rank digit", c)
		}
	}
	return chess.Move{
		From: squareOf(s[0], s[1]),
		To:   squareOf(s[2], s[3]),
	}, nil
}

// FormatMove renders a move as "E2E4".
func FormatMove(m chess.Move) string {
	return m.String()
}

// FormatMoveLower renders a move as "e2e4".
func FormatMoveLower(m chess.Move) string {
	return strings.ToLower(m.String())
}

// FormatArrow renders a move as "E2 -> E4".
func FormatArrow(m chess.Move) string {
	return m.From.String() + " -> " + m.To.String()
}

// FormatMoves renders a list of moves in upper case.
func FormatMoves(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = FormatMove(m)
	}
	return out
}

func squareOf(file, rank byte) chess.Square {
	col := int(toUpper(file) - 'A')
	row := chess.BoardSize - int(rank-'0')
	return chess.Sq(row, col)
}

func charError(text string, idx int, expected string, got byte) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidNotation,
		Input:    text,
		Column:   idx + 1,
		Expected: expected,
		Got:      "'" + string(got) + "'",
	}
}

func lengthDesc(n int) string {
	if n == 1 {
		return "1 character"
	}
	return fmt.Sprintf("%d characters", n)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

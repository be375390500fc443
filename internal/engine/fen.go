package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
// Castling and en passant fields are written as "-" because the engine
// supports neither.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// NewPositionFromFEN creates a position and side to move from a FEN
// string. Castling, en passant and clock fields are accepted and ignored.
// A missing side-to-move field means White.
func NewPositionFromFEN(fen string) (chess.Position, chess.Colour, error) {
	var pos chess.Position
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return pos, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	if err := parsePiecePositions(&pos, parts[0]); err != nil {
		return pos, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return pos, chess.White, err
	}
	return pos, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// FEN lists rank 8 first, which is row 0.
func parsePiecePositions(pos *chess.Position, placement string) error {
	row, col := 0, 0
	prevDigit := false

	for i, c := range placement {
		digit := c >= '1' && c <= '8'
		if digit && prevDigit {
			return fenError(placement, i, "piece letter or '/'", "consecutive digits")
		}
		prevDigit = digit

		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fenError(placement, i, "8 squares in row", fmt.Sprintf("%d", col))
			}
			row++
			col = 0
		case digit:
			col += int(c - '0')
		default:
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.NoKind {
				return fenError(placement, i, "piece letter", fmt.Sprintf("%q", c))
			}
			if col >= chess.BoardSize || row >= chess.BoardSize {
				return fenError(placement, i, "square on the board", "overflow")
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			pos.Set(chess.Sq(row, col), chess.Piece{Colour: colour, Kind: kind})
			col++
		}
		if col > chess.BoardSize || row >= chess.BoardSize {
			return fenError(placement, i, "square on the board", "overflow")
		}
	}
	if row != chess.BoardSize-1 {
		return fenError(placement, 0, "8 rows", fmt.Sprintf("%d", row+1))
	}
	if col != chess.BoardSize {
		return fenError(placement, len(placement)-1, "8 squares in row", fmt.Sprintf("%d", col))
	}
	return nil
}

func fenError(input string, idx int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Input:    input,
		Column:   idx + 1,
		Expected: expected,
		Got:      got,
	}
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// PositionToFEN converts a position and side to move to a FEN string.
func PositionToFEN(pos *chess.Position, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	if toMove == chess.White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := pos.At(row, col)
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// Package output renders positions and game state as console text and JSON.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/notation"
)

const fileHeader = "  A B C D E F G H\n"

// WriteBoard prints the board with rank 8 at the top, framed by file
// letters and rank numbers. White pieces are upper case, black lower
// case and empty squares '.'.
func WriteBoard(w io.Writer, pos *chess.Position) {
	writeRows(w, BoardRows(pos))
}

func writeRows(w io.Writer, rows []string) {
	fmt.Fprint(w, fileHeader)
	for i, row := range rows {
		rank := len(rows) - i
		fmt.Fprintf(w, "%d ", rank)
		for j := 0; j < len(row); j++ {
			fmt.Fprintf(w, "%c ", row[j])
		}
		fmt.Fprintf(w, "%d\n", rank)
	}
	fmt.Fprint(w, fileHeader+"\n")
}

// BoardRows returns the board as eight strings of piece letters, rank 8 first.
func BoardRows(pos *chess.Position) []string {
	rows := make([]string, chess.BoardSize)
	for row := 0; row < chess.BoardSize; row++ {
		line := make([]byte, chess.BoardSize)
		for col := 0; col < chess.BoardSize; col++ {
			line[col] = pos.At(row, col).Letter()
		}
		rows[row] = string(line)
	}
	return rows
}

// SideScores splits the material balance into the leading side's margin.
// The trailing side shows 0.
func SideScores(pos *chess.Position) (white, black int) {
	total := engine.MaterialScore(pos)
	if total >= 0 {
		return total, 0
	}
	return 0, -total
}

// WriteScores prints the material balance line.
func WriteScores(w io.Writer, pos *chess.Position) {
	white, black := SideScores(pos)
	fmt.Fprintf(w, "Current Score -> White: %d | Black: %d\n", white, black)
}

// WriteTimes prints the thinking time used by each side, in seconds.
func WriteTimes(w io.Writer, white, black time.Duration) {
	fmt.Fprintf(w, "Time -> White: %.1fs | Black: %.1fs\n", white.Seconds(), black.Seconds())
}

// WriteEngineMove announces the automated side's move.
func WriteEngineMove(w io.Writer, m chess.Move) {
	fmt.Fprintf(w, "AI plays: %s\n", notation.FormatArrow(m))
}

// WriteGameOver prints the end of game lines for the side that cannot move.
func WriteGameOver(w io.Writer, toMove chess.Colour, outcome engine.Outcome) {
	fmt.Fprintf(w, "%s has no moves. Game over.\n", toMove)
	fmt.Fprintln(w, outcome)
}

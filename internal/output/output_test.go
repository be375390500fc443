package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

const startBoard = `  A B C D E F G H
8 r n b q k b n r 8
7 p p p p p p p p 7
6 . . . . . . . . 6
5 . . . . . . . . 5
4 . . . . . . . . 4
3 . . . . . . . . 3
2 P P P P P P P P 2
1 R N B Q K B N R 1
  A B C D E F G H

`

func TestWriteBoard(t *testing.T) {
	pos := chess.StandardSetup()
	var buf bytes.Buffer

	WriteBoard(&buf, &pos)

	testutil.AssertEqual(t, buf.String(), startBoard)
}

func TestWriteBoard_AfterMove(t *testing.T) {
	pos := chess.StandardSetup().Apply(chess.NewMove(6, 4, 4, 4))
	var buf bytes.Buffer

	WriteBoard(&buf, &pos)

	testutil.AssertContains(t, buf.String(), "4 . . . . P . . . 4\n")
	testutil.AssertContains(t, buf.String(), "2 P P P P . P P P 2\n")
}

func TestWriteScores(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{"level", engine.InitialFEN, "Current Score -> White: 0 | Black: 0\n"},
		{"white ahead", "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1", "Current Score -> White: 90 | Black: 0\n"},
		{"black ahead", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN1 w - - 0 1", "Current Score -> White: 0 | Black: 50\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, _, err := engine.NewPositionFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			var buf bytes.Buffer
			WriteScores(&buf, &pos)
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}

func TestWriteTimes(t *testing.T) {
	var buf bytes.Buffer
	WriteTimes(&buf, 0, 0)
	WriteTimes(&buf, 1500*time.Millisecond, 12340*time.Millisecond)

	testutil.AssertEqual(t, buf.String(),
		"Time -> White: 0.0s | Black: 0.0s\nTime -> White: 1.5s | Black: 12.3s\n")
}

func TestWriteEngineMoveAndGameOver(t *testing.T) {
	var buf bytes.Buffer
	WriteEngineMove(&buf, chess.NewMove(1, 4, 3, 4))
	WriteGameOver(&buf, chess.White, engine.Draw)

	testutil.AssertEqual(t, buf.String(), "AI plays: E7 -> E5\nWhite has no moves. Game over.\nDraw!\n")
}

func TestNewState(t *testing.T) {
	pos := chess.StandardSetup()
	history := []chess.Move{chess.NewMove(6, 4, 4, 4)}
	pos = pos.Apply(history[0])

	s := NewState(&pos, chess.Black, history)

	testutil.AssertEqual(t, s.FEN, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1")
	testutil.AssertEqual(t, s.ToMove, "black")
	testutil.AssertEqual(t, s.Status, StatusOngoing)
	testutil.AssertEqual(t, s.Result, "")
	testutil.AssertEqual(t, s.History, []string{"E2E4"})
	testutil.AssertEqual(t, s.LastMove, "E2E4")
	testutil.AssertEqual(t, len(s.LegalMoves), 20)
	testutil.AssertEqual(t, s.Board[4], "....P...")
}

func TestNewState_GameOver(t *testing.T) {
	pos, toMove, err := engine.NewPositionFromFEN("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	testutil.AssertNoError(t, err)

	s := NewState(&pos, toMove, nil)

	testutil.AssertEqual(t, s.Status, StatusWhiteWins)
	testutil.AssertEqual(t, s.Result, "White wins!")
	testutil.AssertEqual(t, s.Score, 90)
	testutil.AssertEqual(t, s.LegalMoves, []string{})
	testutil.AssertEqual(t, s.LastMove, "")
}

func TestStatusName(t *testing.T) {
	tests := []struct {
		outcome engine.Outcome
		want    string
	}{
		{engine.Ongoing, StatusOngoing},
		{engine.WhiteWins, StatusWhiteWins},
		{engine.BlackWins, StatusBlackWins},
		{engine.Draw, StatusDraw},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, StatusName(tt.outcome), tt.want)
	}
}

// TestStateWriter_Interface verifies both writers implement StateWriter
func TestStateWriter_Interface(t *testing.T) {
	var buf bytes.Buffer
	var _ StateWriter = NewTextWriter(&buf)
	var _ StateWriter = NewJSONWriter(&buf)
	var _ StateWriter = NewJSONWriterSingle(&buf)
}

func TestTextWriter_WriteState(t *testing.T) {
	pos := chess.StandardSetup()
	var buf bytes.Buffer
	w := NewTextWriter(&buf)

	if err := w.WriteState(NewState(&pos, chess.White, nil)); err != nil {
		t.Fatalf("WriteState failed: %v", err)
	}
	testutil.AssertEqual(t, buf.String(), startBoard+"Current Score -> White: 0 | Black: 0\n")
	testutil.AssertNoError(t, w.Close())
}

func TestJSONWriter_Batch(t *testing.T) {
	pos := chess.StandardSetup()
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	testutil.AssertNoError(t, w.WriteState(NewState(&pos, chess.White, nil)))
	if buf.Len() != 0 {
		t.Fatal("batch writer wrote before Close")
	}
	testutil.AssertNoError(t, w.Close())

	var rec Record
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(rec.States) != 1 || rec.States[0].FEN != engine.InitialFEN {
		t.Errorf("decoded record = %+v", rec)
	}
}

func TestJSONWriter_Single(t *testing.T) {
	pos := chess.StandardSetup()
	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf)

	testutil.AssertNoError(t, w.WriteState(NewState(&pos, chess.White, nil)))
	testutil.AssertNoError(t, w.WriteState(NewState(&pos, chess.Black, nil)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d JSON lines, want 2", len(lines))
	}
	testutil.AssertContains(t, lines[1], `"toMove":"black"`)
}

package output

import (
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/notation"
)

// Status values reported in State.Status.
const (
	StatusOngoing   = "ongoing"
	StatusWhiteWins = "white_wins"
	StatusBlackWins = "black_wins"
	StatusDraw      = "draw"
)

// State is the JSON view of a match.
type State struct {
	ID          string   `json:"id,omitempty"`
	FEN         string   `json:"fen"`
	Board       []string `json:"board"`
	ToMove      string   `json:"toMove"`
	HumanColour string   `json:"humanColour,omitempty"`
	Score       int      `json:"score"`
	WhiteScore  int      `json:"whiteScore"`
	BlackScore  int      `json:"blackScore"`
	Status      string   `json:"status"`
	Result      string   `json:"result,omitempty"`
	LegalMoves  []string `json:"legalMoves"`
	History     []string `json:"history"`
	LastMove    string   `json:"lastMove,omitempty"`
}

// NewState describes the position with toMove to play after history.
// The caller fills in ID and HumanColour when they apply.
func NewState(pos *chess.Position, toMove chess.Colour, history []chess.Move) *State {
	legal := engine.LegalMoves(pos, toMove)
	outcome := engine.Ongoing
	if len(legal) == 0 {
		outcome = engine.MaterialVerdict(engine.MaterialScore(pos))
	}
	white, black := SideScores(pos)

	s := &State{
		FEN:        engine.PositionToFEN(pos, toMove),
		Board:      BoardRows(pos),
		ToMove:     ColourName(toMove),
		Score:      engine.MaterialScore(pos),
		WhiteScore: white,
		BlackScore: black,
		Status:     StatusName(outcome),
		LegalMoves: notation.FormatMoves(legal),
		History:    notation.FormatMoves(history),
	}
	if outcome.IsOver() {
		s.Result = outcome.String()
	}
	if len(history) > 0 {
		s.LastMove = notation.FormatMove(history[len(history)-1])
	}
	return s
}

// ColourName returns "white" or "black".
func ColourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// StatusName maps an outcome to its State.Status value.
func StatusName(o engine.Outcome) string {
	switch o {
	case engine.WhiteWins:
		return StatusWhiteWins
	case engine.BlackWins:
		return StatusBlackWins
	case engine.Draw:
		return StatusDraw
	default:
		return StatusOngoing
	}
}

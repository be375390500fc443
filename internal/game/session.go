package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/output"
)

// Prompts and messages of the console loop.
const (
	PromptMove       = "Enter move (e.g., E2E4): "
	MsgInvalidFormat = "Invalid move format!"
	MsgIllegalMove   = "Invalid move, try again."
)

// Session runs a match on the console: the player's moves are read from
// an input stream and everything else is written to Out.
type Session struct {
	Match     *Match
	Out       io.Writer
	Log       *log.Logger
	Verbosity int
	ShowTimes bool

	// Record, if set, receives the state after every move.
	Record output.StateWriter
}

// NewSession creates a session from the configuration.
func NewSession(m *Match, cfg *config.Config, logger *log.Logger) *Session {
	return &Session{
		Match:     m,
		Out:       cfg.OutputFile,
		Log:       logger,
		Verbosity: cfg.Verbosity,
		ShowTimes: cfg.Game.ShowTimes,
	}
}

// Run plays until the side to move has no legal move, the input ends or
// ctx is done. Input is read as whitespace-separated words. It returns
// the outcome, which is Ongoing when the game was abandoned.
func (s *Session) Run(ctx context.Context, in io.Reader) (engine.Outcome, error) {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	m := s.Match

	for {
		if err := ctx.Err(); err != nil {
			return engine.Ongoing, err
		}

		pos := m.Position()
		output.WriteBoard(s.Out, &pos)
		output.WriteScores(s.Out, &pos)
		if s.ShowTimes {
			output.WriteTimes(s.Out, m.Elapsed(chess.White), m.Elapsed(chess.Black))
		}

		if outcome := m.Outcome(); outcome.IsOver() {
			output.WriteGameOver(s.Out, m.ToMove(), outcome)
			s.logf(config.Normal, "game over after %d plies (%s): %v", len(m.History()), ending(&pos, m.ToMove()), outcome)
			return outcome, nil
		}

		m.StartTurn()
		if m.IsHumanTurn() {
			fmt.Fprint(s.Out, PromptMove)
			if !scanner.Scan() {
				s.logf(config.Normal, "input closed after %d plies", len(m.History()))
				return engine.Ongoing, scanner.Err()
			}
			if _, err := m.PlayText(scanner.Text()); err != nil {
				switch {
				case errors.Is(err, errors.ErrInvalidNotation):
					fmt.Fprintln(s.Out, MsgInvalidFormat)
				case errors.Is(err, errors.ErrIllegalMove):
					fmt.Fprintln(s.Out, MsgIllegalMove)
				default:
					return engine.Ongoing, err
				}
				continue
			}
		} else {
			mv, err := m.EngineMoveContext(ctx)
			if err != nil {
				return engine.Ongoing, err
			}
			output.WriteEngineMove(s.Out, mv)
			stats := m.LastStats()
			s.logf(config.Verbose, "engine %v: %d nodes, %d cutoffs", mv, stats.Nodes, stats.Cutoffs)
		}

		if s.Record != nil {
			if err := s.Record.WriteState(m.State()); err != nil {
				return engine.Ongoing, errors.Wrap(err, "recording state")
			}
		}
	}
}

func (s *Session) logf(level int, format string, args ...interface{}) {
	if s.Log != nil && s.Verbosity >= level {
		s.Log.Printf(format, args...)
	}
}

// ending names how the side to move ran out of moves.
func ending(pos *chess.Position, toMove chess.Colour) string {
	if engine.IsCheckmate(pos, toMove) {
		return "checkmate"
	}
	if engine.IsStalemate(pos, toMove) {
		return "stalemate"
	}
	return "no legal moves"
}

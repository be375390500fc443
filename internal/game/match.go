// Package game holds the state of a human-versus-engine match and the
// console turn loop that drives it.
package game

import (
	"context"
	"time"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/notation"
	"github.com/lgbarn/minimax-chess-go/internal/output"
)

// Match is a game between a human and the engine. It is not safe for
// concurrent use; callers that share a Match must serialise access.
type Match struct {
	id       string
	pos      chess.Position
	toMove   chess.Colour
	human    chess.Colour
	history  []chess.Move
	searcher *engine.Searcher

	now       func() time.Time
	turnStart time.Time
	elapsed   [2]time.Duration // Indexed by chess.Colour

	lastStats engine.SearchStats
}

// MatchOption configures a Match.
type MatchOption func(*Match)

// WithID sets the match identifier used in errors and state.
func WithID(id string) MatchOption {
	return func(m *Match) {
		m.id = id
	}
}

// WithPosition sets the starting position and side to move.
func WithPosition(pos chess.Position, toMove chess.Colour) MatchOption {
	return func(m *Match) {
		m.pos = pos
		m.toMove = toMove
	}
}

// WithHumanColour sets the side moved by the player.
func WithHumanColour(c chess.Colour) MatchOption {
	return func(m *Match) {
		m.human = c
	}
}

// WithSearcher sets the engine used for the other side.
func WithSearcher(s *engine.Searcher) MatchOption {
	return func(m *Match) {
		m.searcher = s
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) MatchOption {
	return func(m *Match) {
		m.now = now
	}
}

// NewMatch creates a match from the standard setup with White to move,
// the human playing White and a default searcher.
func NewMatch(opts ...MatchOption) *Match {
	m := &Match{
		pos:    chess.StandardSetup(),
		toMove: chess.White,
		human:  chess.White,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.searcher == nil {
		m.searcher = engine.NewSearcher()
	}
	m.turnStart = m.now()
	return m
}

// NewMatchFromConfig creates a match from the game and engine settings.
func NewMatchFromConfig(cfg *config.Config, opts ...MatchOption) (*Match, error) {
	base := []MatchOption{
		WithHumanColour(cfg.Game.HumanColour),
		WithSearcher(cfg.Engine.NewSearcher()),
	}
	if cfg.Game.StartFEN != "" {
		pos, toMove, err := engine.NewPositionFromFEN(cfg.Game.StartFEN)
		if err != nil {
			return nil, err
		}
		base = append(base, WithPosition(pos, toMove))
	}
	return NewMatch(append(base, opts...)...), nil
}

// ID returns the match identifier.
func (m *Match) ID() string {
	return m.id
}

// Position returns a copy of the current position.
func (m *Match) Position() chess.Position {
	return m.pos
}

// ToMove returns the side to move.
func (m *Match) ToMove() chess.Colour {
	return m.toMove
}

// HumanColour returns the side moved by the player.
func (m *Match) HumanColour() chess.Colour {
	return m.human
}

// IsHumanTurn reports whether the player is to move.
func (m *Match) IsHumanTurn() bool {
	return m.toMove == m.human
}

// History returns the moves played so far.
func (m *Match) History() []chess.Move {
	return append([]chess.Move(nil), m.history...)
}

// LegalMoves returns the legal moves of the side to move.
func (m *Match) LegalMoves() []chess.Move {
	return engine.LegalMoves(&m.pos, m.toMove)
}

// Outcome reports whether the game continues and, if not, who won.
func (m *Match) Outcome() engine.Outcome {
	return engine.GameOutcome(&m.pos, m.toMove)
}

// Score returns the material balance, positive when White is ahead.
func (m *Match) Score() int {
	return engine.MaterialScore(&m.pos)
}

// Elapsed returns the thinking time used so far by colour.
func (m *Match) Elapsed(colour chess.Colour) time.Duration {
	return m.elapsed[colour]
}

// LastStats returns the statistics of the most recent engine search.
func (m *Match) LastStats() engine.SearchStats {
	return m.lastStats
}

// StartTurn restarts the clock of the side to move. Time spent on
// rejected input before the next StartTurn is not charged.
func (m *Match) StartTurn() {
	m.turnStart = m.now()
}

// Play applies a move for the side to move and charges the time since
// StartTurn to that side.
func (m *Match) Play(mv chess.Move) error {
	moves := m.LegalMoves()
	if len(moves) == 0 {
		return m.errorf(errors.ErrGameOver, mv)
	}
	for _, legal := range moves {
		if legal == mv {
			m.apply(mv)
			return nil
		}
	}
	return m.errorf(errors.ErrIllegalMove, mv)
}

// PlayText parses coordinate text and plays it.
func (m *Match) PlayText(text string) (chess.Move, error) {
	mv, err := notation.ParseMove(text)
	if err != nil {
		return chess.Move{}, &errors.GameError{Err: err, GameID: m.id, PlyNum: len(m.history) + 1, MoveText: text}
	}
	return mv, m.Play(mv)
}

// EngineMove searches for and plays the best move of the side to move.
func (m *Match) EngineMove() (chess.Move, error) {
	return m.EngineMoveContext(context.Background())
}

// EngineMoveContext is EngineMove with a deadline. On cancellation the
// position is left unchanged.
func (m *Match) EngineMoveContext(ctx context.Context) (chess.Move, error) {
	result, err := m.searcher.SearchContext(ctx, &m.pos, m.toMove)
	if err != nil {
		return chess.Move{}, &errors.GameError{Err: err, GameID: m.id, PlyNum: len(m.history) + 1}
	}
	if !result.Found {
		return chess.Move{}, &errors.GameError{Err: errors.ErrGameOver, GameID: m.id, PlyNum: len(m.history) + 1}
	}
	m.lastStats = result.Stats
	m.apply(result.Move)
	return result.Move, nil
}

// State returns the JSON view of the match.
func (m *Match) State() *output.State {
	s := output.NewState(&m.pos, m.toMove, m.history)
	s.ID = m.id
	s.HumanColour = output.ColourName(m.human)
	return s
}

func (m *Match) apply(mv chess.Move) {
	now := m.now()
	m.elapsed[m.toMove] += now.Sub(m.turnStart)
	m.turnStart = now

	m.pos = m.pos.Apply(mv)
	m.history = append(m.history, mv)
	m.toMove = m.toMove.Opposite()
}

func (m *Match) errorf(err error, mv chess.Move) error {
	return &errors.GameError{
		Err:      err,
		GameID:   m.id,
		PlyNum:   len(m.history) + 1,
		MoveText: notation.FormatMove(mv),
	}
}

// Package service keeps the matches played through the HTTP server.
package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/game"
	"github.com/lgbarn/minimax-chess-go/internal/output"
)

// subscriberBuffer is the number of states queued for a slow subscriber
// before further updates to it are dropped.
const subscriberBuffer = 8

// CreateRequest describes a new match. Zero values take the server
// configuration defaults.
type CreateRequest struct {
	HumanColour string `json:"humanColour"`
	Depth       int    `json:"depth"`
	FEN         string `json:"fen"`
}

type entry struct {
	mu    sync.Mutex
	match *game.Match
	subs  map[chan *output.State]struct{}
}

// GameService creates matches, applies human moves and answers them
// with engine moves.
type GameService struct {
	cfg    *config.Config
	logger *log.Logger

	mu    sync.RWMutex
	games map[string]*entry
}

// NewGameService creates an empty service. logger may be nil.
func NewGameService(cfg *config.Config, logger *log.Logger) *GameService {
	return &GameService{
		cfg:    cfg,
		logger: logger,
		games:  make(map[string]*entry),
	}
}

// Create starts a match. If the engine moves first its reply is played
// before returning.
func (gs *GameService) Create(ctx context.Context, req CreateRequest) (*output.State, error) {
	cfg := *gs.cfg
	if req.HumanColour != "" {
		colour, err := config.ParseColour(req.HumanColour)
		if err != nil {
			return nil, err
		}
		cfg.Game.HumanColour = colour
	}
	if req.Depth != 0 {
		if req.Depth > gs.cfg.Server.MaxDepth {
			return nil, fmt.Errorf("depth %d beyond server limit %d: %w", req.Depth, gs.cfg.Server.MaxDepth, errors.ErrInvalidConfig)
		}
		cfg.Engine.Depth = req.Depth
	}
	if req.FEN != "" {
		cfg.Game.StartFEN = req.FEN
	}
	if err := cfg.Engine.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	match, err := game.NewMatchFromConfig(&cfg, game.WithID(id))
	if err != nil {
		return nil, err
	}

	e := &entry{match: match, subs: make(map[chan *output.State]struct{})}
	e.mu.Lock()
	defer e.mu.Unlock()

	gs.mu.Lock()
	gs.games[id] = e
	gs.mu.Unlock()
	gs.logf(config.Normal, "game %s created, human plays %v at depth %d", id, cfg.Game.HumanColour, cfg.Engine.Depth)

	if err := gs.reply(ctx, e); err != nil {
		return e.match.State(), err
	}
	return e.match.State(), nil
}

// Get returns the current state of a match.
func (gs *GameService) Get(id string) (*output.State, error) {
	e, err := gs.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.match.State(), nil
}

// Move plays the human move given in coordinate text, then the engine
// reply. When the reply fails the human move stays played and the
// returned state shows the engine to move.
func (gs *GameService) Move(ctx context.Context, id, text string) (*output.State, error) {
	e, err := gs.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	m := e.match
	if !m.IsHumanTurn() && !m.Outcome().IsOver() {
		return nil, &errors.GameError{Err: errors.ErrNotYourTurn, GameID: id, PlyNum: len(m.History()) + 1, MoveText: text}
	}
	m.StartTurn()
	if _, err := m.PlayText(text); err != nil {
		return nil, err
	}
	gs.broadcast(e)

	if err := gs.reply(ctx, e); err != nil {
		return m.State(), err
	}
	return m.State(), nil
}

// EngineMove plays the engine's move when it is the engine's turn, for
// example after an earlier reply timed out.
func (gs *GameService) EngineMove(ctx context.Context, id string) (*output.State, error) {
	e, err := gs.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	m := e.match
	if m.IsHumanTurn() {
		return nil, &errors.GameError{Err: errors.ErrNotYourTurn, GameID: id, PlyNum: len(m.History()) + 1}
	}
	if err := gs.reply(ctx, e); err != nil {
		return m.State(), err
	}
	return m.State(), nil
}

// Delete removes a match and closes its subscriptions.
func (gs *GameService) Delete(id string) error {
	gs.mu.Lock()
	e, ok := gs.games[id]
	delete(gs.games, id)
	gs.mu.Unlock()
	if !ok {
		return &errors.GameError{Err: errors.ErrGameNotFound, GameID: id}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for ch := range e.subs {
		close(ch)
		delete(e.subs, ch)
	}
	gs.logf(config.Normal, "game %s deleted", id)
	return nil
}

// Len returns the number of stored matches.
func (gs *GameService) Len() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return len(gs.games)
}

// Subscribe returns a channel receiving the state after every move of
// the match. The channel is closed by cancel or when the match is
// deleted. Updates are dropped while the channel is full.
func (gs *GameService) Subscribe(id string) (<-chan *output.State, func(), error) {
	e, err := gs.lookup(id)
	if err != nil {
		return nil, nil, err
	}
	ch := make(chan *output.State, subscriberBuffer)

	e.mu.Lock()
	e.subs[ch] = struct{}{}
	e.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			if _, ok := e.subs[ch]; ok {
				delete(e.subs, ch)
				close(ch)
			}
		})
	}
	return ch, cancel, nil
}

// reply plays the engine move if the engine is to move and the game is
// not over. The caller holds e.mu.
func (gs *GameService) reply(ctx context.Context, e *entry) error {
	m := e.match
	if m.IsHumanTurn() || m.Outcome().IsOver() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, gs.cfg.Server.SearchTimeout)
	defer cancel()

	m.StartTurn()
	mv, err := m.EngineMoveContext(ctx)
	if err != nil {
		gs.logf(config.Normal, "game %s: engine reply failed: %v", m.ID(), err)
		return err
	}
	stats := m.LastStats()
	gs.logf(config.Verbose, "game %s: engine %v, %d nodes, %d cutoffs", m.ID(), mv, stats.Nodes, stats.Cutoffs)
	gs.broadcast(e)
	return nil
}

// broadcast sends the current state to every subscriber. The caller
// holds e.mu.
func (gs *GameService) broadcast(e *entry) {
	if len(e.subs) == 0 {
		return
	}
	state := e.match.State()
	for ch := range e.subs {
		select {
		case ch <- state:
		default:
		}
	}
}

func (gs *GameService) lookup(id string) (*entry, error) {
	gs.mu.RLock()
	e, ok := gs.games[id]
	gs.mu.RUnlock()
	if !ok {
		return nil, &errors.GameError{Err: errors.ErrGameNotFound, GameID: id}
	}
	return e, nil
}

func (gs *GameService) logf(level int, format string, args ...interface{}) {
	if gs.logger != nil && gs.cfg.Verbosity >= level {
		gs.logger.Printf(format, args...)
	}
}

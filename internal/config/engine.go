package config

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// MaxDepth bounds the configurable search depth. Each ply multiplies the
// work by roughly thirty.
const MaxDepth = 8

// EngineConfig holds settings for the automated side.
type EngineConfig struct {
	// Depth is the search depth in plies
	Depth int

	// Workers is the number of goroutines scoring root moves
	Workers int
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{
		Depth:   engine.DefaultDepth,
		Workers: 1,
	}
}

// Validate checks that the engine configuration is valid.
func (e *EngineConfig) Validate() error {
	if e.Depth < 1 || e.Depth > MaxDepth {
		return fmt.Errorf("search depth %d outside 1..%d: %w", e.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if e.Workers < 1 {
		return fmt.Errorf("worker count %d < 1: %w", e.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

// NewSearcher builds a searcher from the configuration.
func (e *EngineConfig) NewSearcher() *engine.Searcher {
	return engine.NewSearcher(engine.WithDepth(e.Depth), engine.WithWorkers(e.Workers))
}

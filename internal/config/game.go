package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// GameConfig holds settings for a human-versus-engine match.
type GameConfig struct {
	// HumanColour is the side entered by the player; the engine plays the other
	HumanColour chess.Colour

	// ShowTimes prints the per-side elapsed time after each board
	ShowTimes bool

	// StartFEN is the initial position; empty means the standard setup
	StartFEN string
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		HumanColour: chess.White,
		ShowTimes:   true,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.HumanColour != chess.White && g.HumanColour != chess.Black {
		return fmt.Errorf("unknown human colour %d: %w", g.HumanColour, errors.ErrInvalidConfig)
	}
	return nil
}

// ParseColour converts "white"/"black" (any case, or "w"/"b") to a colour.
func ParseColour(s string) (chess.Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("colour %q: %w", s, errors.ErrInvalidConfig)
}

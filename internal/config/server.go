package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// ServerConfig holds settings for the HTTP and websocket play server.
type ServerConfig struct {
	// Addr is the listen address
	Addr string

	// AllowOrigins is the CORS origin list, comma separated
	AllowOrigins string

	// SearchTimeout bounds each engine reply
	SearchTimeout time.Duration

	// MaxDepth caps the search depth a client may request
	MaxDepth int
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:          ":3000",
		AllowOrigins:  "*",
		SearchTimeout: 30 * time.Second,
		MaxDepth:      5,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.SearchTimeout <= 0 {
		return fmt.Errorf("search timeout %v must be positive: %w", s.SearchTimeout, errors.ErrInvalidConfig)
	}
	if s.MaxDepth < 1 || s.MaxDepth > MaxDepth {
		return fmt.Errorf("server depth limit %d outside 1..%d: %w", s.MaxDepth, MaxDepth, errors.ErrInvalidConfig)
	}
	return nil
}

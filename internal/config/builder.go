package config

import (
	"io"
	"time"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the search depth in plies.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Engine.Depth = depth
	return b
}

// WithWorkers sets the number of root search workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Engine.Workers = n
	return b
}

// WithHumanColour sets the side played from the input stream.
func (b *ConfigBuilder) WithHumanColour(colour chess.Colour) *ConfigBuilder {
	b.cfg.Game.HumanColour = colour
	return b
}

// WithShowTimes controls the elapsed time line.
func (b *ConfigBuilder) WithShowTimes(show bool) *ConfigBuilder {
	b.cfg.Game.ShowTimes = show
	return b
}

// WithStartFEN sets the initial position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithAddr sets the server listen address.
func (b *ConfigBuilder) WithAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithAllowOrigins sets the CORS origin list.
func (b *ConfigBuilder) WithAllowOrigins(origins string) *ConfigBuilder {
	b.cfg.Server.AllowOrigins = origins
	return b
}

// WithSearchTimeout bounds each engine reply on the server.
func (b *ConfigBuilder) WithSearchTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Server.SearchTimeout = d
	return b
}

// WithServerMaxDepth caps the search depth clients may request.
func (b *ConfigBuilder) WithServerMaxDepth(depth int) *ConfigBuilder {
	b.cfg.Server.MaxDepth = depth
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

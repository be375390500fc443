// Package config provides configuration for the console game, the play
// server and the search engine.
package config

import (
	"io"
	"os"
)

// Verbosity levels for log output.
const (
	Quiet   = 0 // Nothing but errors
	Normal  = 1 // Game over lines and server lifecycle
	Verbose = 2 // Search statistics for every engine move
)

// Config holds all program configuration.
type Config struct {
	Engine EngineConfig
	Game   GameConfig
	Server ServerConfig

	Verbosity int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Engine:     *NewEngineConfig(),
		Game:       *NewGameConfig(),
		Server:     *NewServerConfig(),
		Verbosity:  Normal,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

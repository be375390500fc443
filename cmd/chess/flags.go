// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

var (
	// Engine options
	depth   = flag.Int("depth", engine.DefaultDepth, "Search depth in plies")
	workers = flag.Int("workers", 1, "Goroutines scoring root moves")

	// Game options
	colour    = flag.String("colour", "white", "Side played at the keyboard: white or black")
	startFEN  = flag.String("fen", "", "Start from this FEN position instead of the standard setup")
	showTimes = flag.Bool("times", true, "Print each side's elapsed time after every board")

	// Output options
	recordFile = flag.String("record", "", "Write the state after every move to this file")
	jsonRecord = flag.Bool("json", false, "Write the record as a JSON array instead of board text")
	logFile    = flag.String("log", "", "Write log output to this file (default: stderr)")
	verbose    = flag.Bool("v", false, "Log search statistics for every engine move")
	quiet      = flag.Bool("q", false, "Log nothing")

	// Help
	help = flag.Bool("h", false, "Show help")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) error {
	cfg.Engine.Depth = *depth
	cfg.Engine.Workers = *workers

	human, err := config.ParseColour(*colour)
	if err != nil {
		return fmt.Errorf("-colour: %w", err)
	}
	cfg.Game.HumanColour = human
	cfg.Game.ShowTimes = *showTimes
	cfg.Game.StartFEN = *startFEN

	switch {
	case *quiet:
		cfg.Verbosity = config.Quiet
	case *verbose:
		cfg.Verbosity = config.Verbose
	}
	return cfg.Validate()
}

// chess plays a game against the minimax engine on the console.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/game"
	"github.com/lgbarn/minimax-chess-go/internal/output"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)
	logger := log.New(cfg.LogFile, "chess: ", log.LstdFlags)

	match, err := game.NewMatchFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	session := game.NewSession(match, cfg, logger)
	closeRecord := setupRecord(session)
	defer closeRecord()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outcome, err := session.Run(ctx, os.Stdin)
	if err != nil {
		logger.Printf("game stopped: %v", err)
	}
	if outcome == engine.Ongoing && cfg.Verbosity > config.Quiet {
		fmt.Fprintln(cfg.OutputFile, "Game abandoned.")
	}
}

// setupLogFile redirects logging to the -log file.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupRecord attaches the -record writer to the session and returns
// the function that flushes and closes it.
func setupRecord(s *game.Session) func() {
	if *recordFile == "" {
		return func() {}
	}
	file, err := os.Create(*recordFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating record file %s: %v\n", *recordFile, err)
		os.Exit(1)
	}
	s.Record = newRecordWriter(file, *jsonRecord)
	return func() {
		if err := s.Record.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing record: %v\n", err)
		}
		_ = file.Close()
	}
}

func newRecordWriter(w io.Writer, asJSON bool) output.StateWriter {
	if asJSON {
		return output.NewJSONWriter(w)
	}
	return output.NewTextWriter(w)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play against a minimax engine. Enter moves as four characters,\n")
	fmt.Fprintf(os.Stderr, "source square then destination square, e.g. E2E4.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

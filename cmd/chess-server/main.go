// chess-server serves games against the minimax engine over HTTP and
// websockets.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/controller"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/service"
)

var (
	addr          = flag.String("addr", ":3000", "Listen address")
	allowOrigins  = flag.String("origins", "*", "CORS allowed origins, comma separated")
	searchTimeout = flag.Duration("timeout", 30*time.Second, "Time limit for each engine reply")
	depth         = flag.Int("depth", engine.DefaultDepth, "Default search depth in plies")
	maxDepth      = flag.Int("maxdepth", 5, "Deepest search a client may request")
	workers       = flag.Int("workers", 1, "Goroutines scoring root moves per search")
	verbose       = flag.Bool("v", false, "Log search statistics for every engine move")
)

func main() {
	flag.Parse()

	cfg := config.NewConfigBuilder().
		WithAddr(*addr).
		WithAllowOrigins(*allowOrigins).
		WithSearchTimeout(*searchTimeout).
		WithDepth(*depth).
		WithServerMaxDepth(*maxDepth).
		WithWorkers(*workers).
		Build()
	if *verbose {
		cfg.Verbosity = config.Verbose
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger := log.New(cfg.LogFile, "chess-server: ", log.LstdFlags)
	svc := service.NewGameService(cfg, logger)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	controller.Register(app, svc, cfg.Server, logger)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Printf("shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Printf("shutdown: %v", err)
		}
	}()

	logger.Printf("listening on %s", cfg.Server.Addr)
	if err := app.Listen(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}

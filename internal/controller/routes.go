package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/service"
)

// Register installs the CORS middleware, the REST routes under /api and
// the websocket route on app.
func Register(app *fiber.App, svc *service.GameService, cfg config.ServerConfig, logger *log.Logger) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	gameController := NewGameController(svc)
	wsController := NewWebSocketController(svc, logger)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	app.Get("/ws/games/:id", websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	games := app.Group("/api/games")
	games.Post("/", gameController.CreateGame)
	games.Get("/:id", gameController.GetGame)
	games.Delete("/:id", gameController.DeleteGame)
	games.Post("/:id/moves", gameController.MakeMove)
	games.Post("/:id/engine-move", gameController.EngineMove)
}

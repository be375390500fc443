// Package controller exposes the game service over HTTP and websockets.
package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/output"
	"github.com/lgbarn/minimax-chess-go/internal/service"
	"github.com/lgbarn/minimax-chess-go/internal/ws"
)

// GameController serves the REST endpoints.
type GameController struct {
	gameService *service.GameService
}

// NewGameController creates a controller backed by gameService.
func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// CreateGame handles POST /api/games.
func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req service.CreateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	state, err := gc.gameService.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err, state)
	}
	return c.Status(fiber.StatusCreated).JSON(state)
}

// GetGame handles GET /api/games/:id.
func (gc *GameController) GetGame(c *fiber.Ctx) error {
	state, err := gc.gameService.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(state)
}

// MakeMove handles POST /api/games/:id/moves. The response holds the
// state after the engine reply.
func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req ws.MovePayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	state, err := gc.gameService.Move(c.UserContext(), c.Params("id"), req.Move)
	if err != nil {
		return respondError(c, err, state)
	}
	return c.JSON(state)
}

// EngineMove handles POST /api/games/:id/engine-move.
func (gc *GameController) EngineMove(c *fiber.Ctx) error {
	state, err := gc.gameService.EngineMove(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, state)
	}
	return c.JSON(state)
}

// DeleteGame handles DELETE /api/games/:id.
func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.Delete(c.Params("id")); err != nil {
		return respondError(c, err, nil)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, errors.ErrInvalidNotation),
		errors.Is(err, errors.ErrInvalidConfig),
		errors.Is(err, errors.ErrInvalidFEN):
		return fiber.StatusBadRequest
	case errors.Is(err, errors.ErrIllegalMove),
		errors.Is(err, errors.ErrGameOver),
		errors.Is(err, errors.ErrNotYourTurn):
		return fiber.StatusConflict
	case errors.Is(err, errors.ErrSearchCancelled):
		return fiber.StatusGatewayTimeout
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes the error and, when the request changed the game
// before failing, the resulting state.
func respondError(c *fiber.Ctx, err error, state *output.State) error {
	body := fiber.Map{"error": err.Error()}
	if state != nil {
		body["state"] = state
	}
	return c.Status(statusFor(err)).JSON(body)
}

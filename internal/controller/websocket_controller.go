package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/minimax-chess-go/internal/service"
	"github.com/lgbarn/minimax-chess-go/internal/ws"
)

// WebSocketController streams game states to a client and accepts its
// moves.
type WebSocketController struct {
	gameService *service.GameService
	logger      *log.Logger
}

// NewWebSocketController creates a controller backed by gameService.
// logger may be nil.
func NewWebSocketController(gameService *service.GameService, logger *log.Logger) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
		logger:      logger,
	}
}

// HandleConnection serves one websocket for the game named by the :id
// route parameter. The current state is sent first, then every later
// state of the game whoever moved.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("id")
	defer c.Close()

	updates, cancel, err := wsc.gameService.Subscribe(gameID)
	if err != nil {
		_ = c.WriteJSON(ws.ErrorMessage(err.Error()))
		return
	}
	defer cancel()

	var writeMu sync.Mutex
	send := func(msg ws.Message) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := c.WriteJSON(msg); err != nil {
			wsc.logf("game %s: write error: %v", gameID, err)
		}
	}

	send(wsc.handleMessage(context.Background(), gameID, ws.Message{Type: ws.MessageTypeGetState}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for state := range updates {
			msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
			if err != nil {
				wsc.logf("game %s: encode error: %v", gameID, err)
				continue
			}
			send(msg)
		}
	}()

	for {
		messageType, data, err := c.ReadMessage()
		if err != nil {
			wsc.logf("game %s: read error: %v", gameID, err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			send(ws.ErrorMessage("malformed message"))
			continue
		}
		if reply := wsc.handleMessage(context.Background(), gameID, msg); reply.Type != "" {
			send(reply)
		}
	}

	cancel()
	<-done
}

// handleMessage performs one client request. Moves return an empty
// message on success; the new states reach the client through the
// subscription.
func (wsc *WebSocketController) handleMessage(ctx context.Context, gameID string, msg ws.Message) ws.Message {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return ws.ErrorMessage("malformed move payload")
		}
		if _, err := wsc.gameService.Move(ctx, gameID, move.Move); err != nil {
			return ws.ErrorMessage(err.Error())
		}
		return ws.Message{}

	case ws.MessageTypeEngineMove:
		if _, err := wsc.gameService.EngineMove(ctx, gameID); err != nil {
			return ws.ErrorMessage(err.Error())
		}
		return ws.Message{}

	case ws.MessageTypeGetState:
		state, err := wsc.gameService.Get(gameID)
		if err != nil {
			return ws.ErrorMessage(err.Error())
		}
		reply, err := ws.NewMessage(ws.MessageTypeGameState, state)
		if err != nil {
			return ws.ErrorMessage(err.Error())
		}
		return reply

	default:
		return ws.ErrorMessage(fmt.Sprintf("unknown message type: %s", msg.Type))
	}
}

func (wsc *WebSocketController) logf(format string, args ...interface{}) {
	if wsc.logger != nil {
		wsc.logger.Printf(format, args...)
	}
}

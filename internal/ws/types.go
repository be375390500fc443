// Package ws defines the messages exchanged over the game websocket.
package ws

import (
	"encoding/json"
)

// MessageType identifies the kind of a websocket message.
type MessageType string

const (
	MessageTypeMove       MessageType = "move"
	MessageTypeEngineMove MessageType = "engineMove"
	MessageTypeGetState   MessageType = "getState"
	MessageTypeGameState  MessageType = "gameState"
	MessageTypeError      MessageType = "error"
)

// Message is the envelope of every websocket message.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MovePayload carries a human move in coordinate notation.
type MovePayload struct {
	Move string `json:"move"`
}

// ErrorPayload carries an error description.
type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage builds a message with payload encoded as JSON.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}

// ErrorMessage builds an error message.
func ErrorMessage(text string) Message {
	raw, _ := json.Marshal(ErrorPayload{Error: text})
	return Message{Type: MessageTypeError, Payload: raw}
}

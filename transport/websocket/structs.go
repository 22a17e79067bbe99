package websocket

import (
	"encoding/json"

	"github.com/Harsh9299/tictactoe-engine/internal/entity"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is the body of a Message, in both directions. Requests fill Player,
// Game and Cell as the action needs them, responses fill Player, Game and
// Error.
type Payload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *entity.Game   `json:"game,omitempty"`
	Cell   *int           `json:"cell,omitempty"`
	Error  string         `json:"error,omitempty"`
}

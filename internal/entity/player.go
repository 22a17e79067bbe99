package entity

import (
	"strings"

	"github.com/Harsh9299/tictactoe-engine/internal/engine"
)

const botIDPrefix = "bot:"

type Player struct {
	ID     string      `json:"id"`
	Mark   engine.Mark `json:"mark,omitempty"`
	GameID string      `json:"game_id,omitempty"`
}

// NewBotPlayer - creates the bot seat for a game.
func NewBotPlayer(gameID string, mark engine.Mark) *Player {
	return &Player{
		ID:     botIDPrefix + gameID,
		Mark:   mark,
		GameID: gameID,
	}
}

func (that *Player) IsBot() bool {
	return strings.HasPrefix(that.ID, botIDPrefix)
}

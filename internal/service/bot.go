package service

import (
	"errors"
	"fmt"

	"github.com/Harsh9299/tictactoe-engine/internal/engine"
	"github.com/Harsh9299/tictactoe-engine/internal/entity"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	rng engine.Rand
}

func NewBotService(rng engine.Rand) BotService {
	return &botService{
		rng: rng,
	}
}

// MakeTurn - picks a cell for the bot under the game's difficulty and plays
// it on the board.
func (that *botService) MakeTurn(game *entity.Game) error {
	if len(game.Board.EmptyCells()) == 0 {
		return ErrNoAvailableMoves
	}

	var botPlayer *entity.Player
	for _, player := range game.Players {
		if player.IsBot() {
			botPlayer = player
			break
		}
	}

	if botPlayer == nil {
		return ErrBotNotFound
	}

	search := engine.NewSearch(game.Board, botPlayer.Mark, that.rng)
	chosenCell := search.BestMove(game.Difficulty)

	if err := game.MakeTurn(botPlayer.Mark, chosenCell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

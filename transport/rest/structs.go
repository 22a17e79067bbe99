package rest

import (
	"github.com/Harsh9299/tictactoe-engine/internal/engine"
	"github.com/Harsh9299/tictactoe-engine/internal/entity"
)

// winnerTieLabel is how a drawn game is reported on the wire.
const winnerTieLabel = "TIE"

type newGameRequest struct {
	Difficulty string `json:"difficulty"`
	Player     string `json:"player"`
}

type moveRequest struct {
	Position *int `json:"position"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type newGameResponse struct {
	GameID        string    `json:"game_id"`
	Difficulty    string    `json:"difficulty"`
	Human         string    `json:"human"`
	AI            string    `json:"ai"`
	CurrentPlayer string    `json:"current_player"`
	Board         [9]string `json:"board"`
	AIMove        *int      `json:"ai_move,omitempty"`
}

type moveResponse struct {
	Success       bool      `json:"success"`
	Board         [9]string `json:"board"`
	CurrentPlayer string    `json:"current_player"`
	GameOver      bool      `json:"game_over"`
	Winner        *string   `json:"winner"`
	AIMove        *int      `json:"ai_move,omitempty"`
}

type undoResponse struct {
	Success       bool      `json:"success"`
	Board         [9]string `json:"board"`
	CurrentPlayer string    `json:"current_player"`
}

type stateResponse struct {
	Board         [9]string `json:"board"`
	CurrentPlayer string    `json:"current_player"`
	GameOver      bool      `json:"game_over"`
	Winner        *string   `json:"winner"`
	Difficulty    string    `json:"difficulty"`
	MoveCount     int       `json:"move_count"`
}

type healthResponse struct {
	Status      string `json:"status"`
	ActiveGames int    `json:"active_games"`
}

// boardCells - renders the board for clients, with a space for empty cells.
func boardCells(board *engine.Board) [9]string {
	var cells [9]string
	for index, mark := range board.Cells {
		if mark == engine.MarkEmpty {
			cells[index] = " "
			continue
		}
		cells[index] = string(mark)
	}

	return cells
}

// winnerLabel - nil while the game runs, the mark or TIE once it is over.
func winnerLabel(winner engine.Mark) *string {
	if winner == engine.MarkEmpty {
		return nil
	}

	label := string(winner)
	if winner == entity.WinnerTie {
		label = winnerTieLabel
	}

	return &label
}

// lastBotMove - the bot's latest cell, if the bot moved last.
func lastBotMove(game *entity.Game) (int, bool) {
	history := game.Board.History
	if len(history) == 0 {
		return 0, false
	}

	last := history[len(history)-1]
	for _, player := range game.Players {
		if player.IsBot() && player.Mark == last.Mark {
			return last.Cell, true
		}
	}

	return 0, false
}

package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/Harsh9299/tictactoe-engine/internal/apperror"
	"github.com/Harsh9299/tictactoe-engine/internal/engine"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

const (
	PublicType  = "public"
	PrivateType = "private"
	WithBotType = "bot"
)

// WinnerTie marks a finished game nobody won.
const WinnerTie = engine.Mark("-")

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID         string            `json:"id"`
	Board      *engine.Board     `json:"board"`
	Winner     engine.Mark       `json:"winner"`
	Status     string            `json:"status"`
	Turn       engine.Mark       `json:"player_turn"`
	Players    []*Player         `json:"players,omitempty"`
	Type       string            `json:"type,omitempty"`
	Difficulty engine.Difficulty `json:"difficulty,omitempty"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:     id,
		Board:  engine.NewBoard(),
		Turn:   engine.MarkX,
		Status: StatusWaiting,
		Type:   gameType,
	}
}

// UpdateGameState - derives winner, status and turn from the board.
func (that *Game) UpdateGameState() {
	switch outcome := that.Board.Outcome(); outcome.Status {
	// one player wins
	case engine.StatusWon:
		that.Winner = outcome.Winner
		that.Status = StatusFinished
		that.Turn = engine.MarkEmpty
	// tie
	case engine.StatusDraw:
		that.Winner = WinnerTie
		that.Status = StatusFinished
		that.Turn = engine.MarkEmpty
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

// MakeTurn - commits a move for playerMark and advances the game state.
func (that *Game) MakeTurn(playerMark engine.Mark, cell int) error {
	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Commit(cell, playerMark); err != nil {
		return err
	}

	that.Turn = playerMark.Other()
	that.UpdateGameState()

	return nil
}

// UndoLastRound - takes back the last two committed moves. The same side is
// to move afterwards, so the turn does not change.
func (that *Game) UndoLastRound() error {
	return that.Board.UndoLastRound()
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsPublic() bool {
	return that.Type == PublicType
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

// GetRandomMarks - deals the two marks in random order.
func GetRandomMarks() (engine.Mark, engine.Mark) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return engine.MarkX, engine.MarkO
	}
	return engine.MarkO, engine.MarkX
}

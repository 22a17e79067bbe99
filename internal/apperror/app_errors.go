package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrGameIsFull       = errors.New("game is full")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrNoActiveGames    = errors.New("no active games")
	ErrUndoUnavailable  = errors.New("undo is only available in bot games")
)

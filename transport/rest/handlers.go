package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Harsh9299/tictactoe-engine/internal/apperror"
	"github.com/Harsh9299/tictactoe-engine/internal/engine"
	"github.com/Harsh9299/tictactoe-engine/internal/entity"
	"github.com/Harsh9299/tictactoe-engine/internal/repository"
)

const sessionCookieName = "session_token"

type GameHandler interface {
	NewGame(ctx echo.Context) error
	MakeMove(ctx echo.Context) error
	UndoMove(ctx echo.Context) error
	GameState(ctx echo.Context) error
	Statistics(ctx echo.Context) error
	Health(ctx echo.Context) error
	Ping(ctx echo.Context) error
}

type gameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)
	NewBotGame(ctx context.Context, playerID string, humanMark engine.Mark, difficulty engine.Difficulty) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
	UndoLastRound(ctx context.Context, playerID string) (*entity.Game, error)
	GetGameByID(ctx context.Context, gameID string) (*entity.Game, error)
	GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)
	Statistics(ctx context.Context) (*entity.Statistics, error)
	ActiveGames(ctx context.Context) (int, error)
}

type authService interface {
	GeneratePlayerToken(playerID string) (string, error)
	ParsePlayerID(tokenString string) (string, error)
}

type gameHandler struct {
	logger *slog.Logger

	game gameUseCase
	auth authService

	defaultDifficulty engine.Difficulty
}

func NewGameHandler(logger *slog.Logger, game gameUseCase, auth authService, defaultDifficulty engine.Difficulty) GameHandler {
	return &gameHandler{
		logger:            logger,
		game:              game,
		auth:              auth,
		defaultDifficulty: defaultDifficulty,
	}
}

// NewGame - starts a fresh bot game for the caller's session and hands out a
// session cookie. Any game the session was still playing is ended first.
func (that *gameHandler) NewGame(ctx echo.Context) error {
	log := that.logger.With("method", "NewGame")
	reqCtx := ctx.Request().Context()

	var req newGameRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request"})
	}

	difficulty := that.defaultDifficulty
	if req.Difficulty != "" {
		parsed, err := engine.ParseDifficulty(req.Difficulty)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid difficulty"})
		}
		difficulty = parsed
	}

	humanMark := engine.MarkX
	switch req.Player {
	case "", string(engine.MarkX):
	case string(engine.MarkO):
		humanMark = engine.MarkO
	default:
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid player"})
	}

	player, err := that.game.GetOrCreatePlayer(reqCtx, that.playerIDFromCookie(ctx))
	if err != nil {
		// stale or foreign cookie, start a fresh session
		player, err = that.game.GetOrCreatePlayer(reqCtx, "")
	}
	if err != nil {
		log.Error("failed to resolve player", "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}

	game, err := that.game.NewBotGame(reqCtx, player.ID, humanMark, difficulty)
	if err != nil {
		log.Error("failed to create game", "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}

	that.setSessionCookie(ctx, player.ID)

	resp := newGameResponse{
		GameID:        game.ID,
		Difficulty:    string(game.Difficulty),
		Human:         string(humanMark),
		AI:            string(humanMark.Other()),
		CurrentPlayer: string(game.Turn),
		Board:         boardCells(game.Board),
	}

	if cell, ok := lastBotMove(game); ok {
		resp.AIMove = &cell
	}

	log.Info("created bot game", "gameID", game.ID, "difficulty", difficulty)

	return ctx.JSON(http.StatusOK, resp)
}

// MakeMove - plays the caller's move and the bot's reply in the game the URL
// names. A move that ends the game still answers with the final position.
func (that *gameHandler) MakeMove(ctx echo.Context) error {
	log := that.logger.With("method", "MakeMove")
	reqCtx := ctx.Request().Context()

	playerID := that.playerIDFromCookie(ctx)
	if playerID == "" {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid session"})
	}

	var req moveRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid position"})
	}

	if req.Position == nil || *req.Position < 0 || *req.Position > 8 {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid position"})
	}

	game, err := that.game.GetGameByPlayerID(reqCtx, playerID)
	switch {
	case errors.Is(err, apperror.ErrNoActiveGames), errors.Is(err, repository.ErrPlayerNotFound), errors.Is(err, repository.ErrGameNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Game not found"})
	case err != nil:
		log.Error("failed to resolve game", "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	case game.ID != ctx.Param("id"):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Game not found"})
	}

	game, err = that.game.MakeTurn(reqCtx, playerID, *req.Position)
	gameOver := errors.Is(err, apperror.ErrGameFinished)

	switch {
	case gameOver:
	case errors.Is(err, engine.ErrInvalidMove), errors.Is(err, apperror.ErrNotYourTurn), errors.Is(err, apperror.ErrGameIsNotStarted):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid move"})
	case err != nil:
		log.Error("failed to make turn", "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}

	resp := moveResponse{
		Success:       true,
		Board:         boardCells(game.Board),
		CurrentPlayer: string(game.Turn),
		GameOver:      gameOver,
		Winner:        winnerLabel(game.Winner),
	}

	if cell, ok := lastBotMove(game); ok {
		resp.AIMove = &cell
	}

	log.Info("player made a turn", "gameID", game.ID, "cell", *req.Position)

	return ctx.JSON(http.StatusOK, resp)
}

// UndoMove - takes back the caller's last move together with the bot's reply.
func (that *gameHandler) UndoMove(ctx echo.Context) error {
	log := that.logger.With("method", "UndoMove")
	reqCtx := ctx.Request().Context()

	playerID := that.playerIDFromCookie(ctx)
	if playerID == "" {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid session"})
	}

	game, err := that.game.GetGameByPlayerID(reqCtx, playerID)
	switch {
	case errors.Is(err, apperror.ErrNoActiveGames), errors.Is(err, repository.ErrPlayerNotFound), errors.Is(err, repository.ErrGameNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Game not found"})
	case err != nil:
		log.Error("failed to resolve game", "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	case game.ID != ctx.Param("id"):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Game not found"})
	}

	game, err = that.game.UndoLastRound(reqCtx, playerID)
	switch {
	case errors.Is(err, engine.ErrInsufficientHistory):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "No moves to undo"})
	case errors.Is(err, apperror.ErrUndoUnavailable), errors.Is(err, apperror.ErrGameIsNotStarted):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Cannot undo"})
	case err != nil:
		log.Error("failed to undo", "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}

	log.Info("round undone", "gameID", game.ID)

	return ctx.JSON(http.StatusOK, undoResponse{
		Success:       true,
		Board:         boardCells(game.Board),
		CurrentPlayer: string(game.Turn),
	})
}

// GameState - reports the current position of the game the URL names.
func (that *gameHandler) GameState(ctx echo.Context) error {
	log := that.logger.With("method", "GameState")

	game, err := that.game.GetGameByID(ctx.Request().Context(), ctx.Param("id"))
	if errors.Is(err, repository.ErrGameNotFound) {
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "Game not found"})
	}
	if err != nil {
		log.Error("failed to get game", "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}

	return ctx.JSON(http.StatusOK, stateResponse{
		Board:         boardCells(game.Board),
		CurrentPlayer: string(game.Turn),
		GameOver:      game.IsFinished(),
		Winner:        winnerLabel(game.Winner),
		Difficulty:    string(game.Difficulty),
		MoveCount:     game.Board.MoveCount(),
	})
}

// Statistics - the aggregate report over all recorded bot games.
func (that *gameHandler) Statistics(ctx echo.Context) error {
	log := that.logger.With("method", "Statistics")

	stats, err := that.game.Statistics(ctx.Request().Context())
	if err != nil {
		log.Error("failed to build statistics", "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}

	return ctx.JSON(http.StatusOK, stats)
}

func (that *gameHandler) Health(ctx echo.Context) error {
	log := that.logger.With("method", "Health")

	count, err := that.game.ActiveGames(ctx.Request().Context())
	if err != nil {
		log.Error("failed to count active games", "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}

	return ctx.JSON(http.StatusOK, healthResponse{
		Status:      "healthy",
		ActiveGames: count,
	})
}

func (that *gameHandler) Ping(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "pong")
}

// playerIDFromCookie - the player behind the session cookie, or empty when
// the cookie is absent or does not verify.
func (that *gameHandler) playerIDFromCookie(ctx echo.Context) string {
	cookie, err := ctx.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}

	playerID, err := that.auth.ParsePlayerID(cookie.Value)
	if err != nil {
		return ""
	}

	return playerID
}

func (that *gameHandler) setSessionCookie(ctx echo.Context, playerID string) {
	token, err := that.auth.GeneratePlayerToken(playerID)
	if err != nil {
		that.logger.Error("failed to generate session token", "error", err)
		return
	}

	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		Path:     "/",
		HttpOnly: true,
	})
}

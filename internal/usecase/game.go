package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Harsh9299/tictactoe-engine/internal/apperror"
	"github.com/Harsh9299/tictactoe-engine/internal/engine"
	"github.com/Harsh9299/tictactoe-engine/internal/entity"
	"github.com/Harsh9299/tictactoe-engine/internal/pkg"
	"github.com/Harsh9299/tictactoe-engine/internal/repository"
)

type GameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	NewBotGame(ctx context.Context, playerID string, humanMark engine.Mark, difficulty engine.Difficulty) (*entity.Game, error)
	NewPrivateGame(ctx context.Context, playerID string) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
	UndoLastRound(ctx context.Context, playerID string) (*entity.Game, error)

	GetGameByID(ctx context.Context, gameID string) (*entity.Game, error)
	GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)
	EndGame(ctx context.Context, game *entity.Game) error

	Statistics(ctx context.Context) (*entity.Statistics, error)
	ActiveGames(ctx context.Context) (int, error)
}

type playerRepoDep interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int, error)
}

type botServiceDep interface {
	MakeTurn(game *entity.Game) error
}

type statsServiceDep interface {
	RecordGame(ctx context.Context, game *entity.Game)
	Report(ctx context.Context) (*entity.Statistics, error)
}

type gameUseCase struct {
	logger *slog.Logger

	playerRepo   playerRepoDep
	gameRepo     gameRepoDep
	botService   botServiceDep
	statsService statsServiceDep
}

func NewGameUseCase(logger *slog.Logger, playerRepo playerRepoDep, gameRepo gameRepoDep, botService botServiceDep, statsService statsServiceDep) GameUseCase {
	return &gameUseCase{
		logger: logger,

		playerRepo:   playerRepo,
		gameRepo:     gameRepo,
		botService:   botService,
		statsService: statsService,
	}
}

func (that *gameUseCase) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		player := &entity.Player{ID: pkg.GenerateNewSessionID()}

		if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

// NewBotGame - creates a game against the bot. The human keeps the requested
// mark, the bot takes the other one and opens immediately when it holds X.
// An empty humanMark asks for random marks. Any game the player is still
// attached to is ended first.
func (that *gameUseCase) NewBotGame(ctx context.Context, playerID string, humanMark engine.Mark, difficulty engine.Difficulty) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if err = that.detachFromCurrentGame(ctx, player); err != nil {
		return nil, err
	}

	botMark := humanMark.Other()
	if humanMark == "" {
		humanMark, botMark = entity.GetRandomMarks()
	}

	game := entity.NewGame(pkg.GenerateGameID(), entity.WithBotType)
	game.Difficulty = difficulty
	game.Status = entity.StatusOngoing

	player.GameID = game.ID
	player.Mark = humanMark

	botPlayer := entity.NewBotPlayer(game.ID, botMark)
	game.Players = []*entity.Player{player, botPlayer}

	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if err = that.playerRepo.CreateOrUpdate(ctx, botPlayer); err != nil {
		return nil, fmt.Errorf("failed to update bot player: %w", err)
	}

	if botPlayer.Mark == engine.MarkX {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}

// NewPrivateGame - creates a two-human game. The creator plays X and the game
// waits until an opponent joins.
func (that *gameUseCase) NewPrivateGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if err = that.detachFromCurrentGame(ctx, player); err != nil {
		return nil, err
	}

	game := entity.NewGame(pkg.GenerateGameID(), entity.PrivateType)

	player.GameID = game.ID
	player.Mark = engine.MarkX
	game.Players = []*entity.Player{player}

	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == game.ID {
		return game, nil
	}

	if len(game.Players) >= 2 {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameIsFull, gameID)
	}

	player.GameID = game.ID
	player.Mark = engine.MarkO
	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	game.Status = entity.StatusOngoing
	game.Players = append(game.Players, player)
	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// MakeTurn - plays the player's move and, in bot games, the bot's reply. A
// finished game is recorded, cleaned up and returned together with
// apperror.ErrGameFinished so transports can announce the final position.
func (that *gameUseCase) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGames
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, err
	}

	if err = game.MakeTurn(player.Mark, cell); err != nil {
		return game, err
	}

	if game.IsWithBot() && game.IsOngoing() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		that.finishGame(ctx, game)

		return game, apperror.ErrGameFinished
	}

	return game, nil
}

// UndoLastRound - takes back the last human move and the bot's reply. Only
// bot games support undo, and only while the game is running.
func (that *gameUseCase) UndoLastRound(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGames
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if !game.IsWithBot() {
		return game, apperror.ErrUndoUnavailable
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, err
	}

	if err = game.UndoLastRound(); err != nil {
		return game, err
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) GetGameByID(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGames
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// EndGame - deletes the game and detaches its players. The in-memory marks
// survive so callers can still render the final position.
func (that *gameUseCase) EndGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.detachPlayers(ctx, game)

	return nil
}

func (that *gameUseCase) Statistics(ctx context.Context) (*entity.Statistics, error) {
	stats, err := that.statsService.Report(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build statistics report: %w", err)
	}

	return stats, nil
}

func (that *gameUseCase) ActiveGames(ctx context.Context) (int, error) {
	count, err := that.gameRepo.CountActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active games: %w", err)
	}

	return count, nil
}

// finishGame - records a terminal bot game and releases its storage.
func (that *gameUseCase) finishGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "finishGame", "gameID", game.ID)

	if game.IsWithBot() {
		that.statsService.RecordGame(ctx, game)
	}

	if err := that.EndGame(ctx, game); err != nil {
		log.Error("failed to end finished game", "error", err)
	}
}

// detachFromCurrentGame - ends the game the player is attached to, if any. A
// stale GameID pointing at a deleted game is simply cleared.
func (that *gameUseCase) detachFromCurrentGame(ctx context.Context, player *entity.Player) error {
	if player.GameID == "" {
		return nil
	}

	current, err := that.gameRepo.GetByID(ctx, player.GameID)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			player.GameID = ""
			player.Mark = ""

			return nil
		}

		return fmt.Errorf("failed to get current game: %w", err)
	}

	if err = that.EndGame(ctx, current); err != nil {
		return fmt.Errorf("failed to end current game: %w", err)
	}

	player.GameID = ""
	player.Mark = ""

	return nil
}

func (that *gameUseCase) detachPlayers(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "detachPlayers", "gameID", game.ID)

	for _, player := range game.Players {
		oldMark := player.Mark
		player.GameID = ""
		player.Mark = ""
		if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			log.Error("failed to update player", "playerID", player.ID, "error", err)
		}
		player.Mark = oldMark
	}
}

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Harsh9299/tictactoe-engine/internal/engine"
	"github.com/Harsh9299/tictactoe-engine/internal/entity"
)

type StatsService interface {
	RecordGame(ctx context.Context, game *entity.Game)
	Report(ctx context.Context) (*entity.Statistics, error)
}

type statsRepo interface {
	Save(ctx context.Context, result *entity.GameResult) error
	Aggregate(ctx context.Context) (*entity.Statistics, error)
}

type statsService struct {
	logger    *slog.Logger
	statsRepo statsRepo
}

func NewStatsService(logger *slog.Logger, statsRepo statsRepo) StatsService {
	return &statsService{
		logger:    logger,
		statsRepo: statsRepo,
	}
}

// RecordGame - classifies a finished bot game and stores its result. Failures
// are logged and swallowed so the report never blocks gameplay.
func (that *statsService) RecordGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "RecordGame", "gameID", game.ID)

	var humanMark engine.Mark
	for _, player := range game.Players {
		if !player.IsBot() {
			humanMark = player.Mark
			break
		}
	}

	result := &entity.GameResult{
		Moves:      game.Board.MoveCount(),
		Difficulty: game.Difficulty,
	}

	switch game.Winner {
	case entity.WinnerTie:
		result.Winner = entity.ResultDraw
	case humanMark:
		result.Winner = entity.ResultHumanWin
	default:
		result.Winner = entity.ResultBotWin
	}

	if err := that.statsRepo.Save(ctx, result); err != nil {
		log.Error("failed to save game result", "error", err)
	}
}

func (that *statsService) Report(ctx context.Context) (*entity.Statistics, error) {
	stats, err := that.statsRepo.Aggregate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate statistics: %w", err)
	}

	return stats, nil
}

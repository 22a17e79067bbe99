package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Harsh9299/tictactoe-engine/internal/engine"
	"github.com/Harsh9299/tictactoe-engine/internal/entity"
)

type StatsRepository interface {
	Save(ctx context.Context, result *entity.GameResult) error
	Aggregate(ctx context.Context) (*entity.Statistics, error)
}

type statsRepository struct {
	conn *sql.DB
}

func NewStatsRepository(conn *sql.DB) StatsRepository {
	return &statsRepository{
		conn: conn,
	}
}

func (that *statsRepository) Save(ctx context.Context, result *entity.GameResult) error {
	query := `INSERT INTO game_results (winner, moves, difficulty) VALUES (?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query, result.Winner, result.Moves, string(result.Difficulty))
	if err != nil {
		return fmt.Errorf("can't save game result: %w", err)
	}

	return nil
}

// Aggregate - builds the statistics report over every saved result. The
// report always carries the three known difficulties, even with no games.
func (that *statsRepository) Aggregate(ctx context.Context) (*entity.Statistics, error) {
	stats := &entity.Statistics{
		DifficultyStats: map[engine.Difficulty]entity.DifficultyStats{
			engine.EasyDifficulty:   {},
			engine.MediumDifficulty: {},
			engine.HardDifficulty:   {},
		},
	}

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(moves), 0)
		FROM game_results`

	var totalMoves int

	err := that.conn.QueryRowContext(ctx, query, entity.ResultHumanWin, entity.ResultBotWin, entity.ResultDraw).
		Scan(&stats.TotalGames, &stats.HumanWins, &stats.BotWins, &stats.Draws, &totalMoves)
	if err != nil {
		return nil, fmt.Errorf("can't aggregate game results: %w", err)
	}

	if stats.TotalGames > 0 {
		stats.WinRate = float64(stats.HumanWins) / float64(stats.TotalGames) * 100
		stats.AverageMoves = float64(totalMoves) / float64(stats.TotalGames)
	}

	query = `
		SELECT difficulty, COUNT(*), COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0)
		FROM game_results
		GROUP BY difficulty`

	rows, err := that.conn.QueryContext(ctx, query, entity.ResultHumanWin)
	if err != nil {
		return nil, fmt.Errorf("can't aggregate difficulties: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var difficulty string
		var breakdown entity.DifficultyStats

		if err = rows.Scan(&difficulty, &breakdown.Games, &breakdown.Wins); err != nil {
			return nil, fmt.Errorf("can't scan difficulty row: %w", err)
		}

		stats.DifficultyStats[engine.Difficulty(difficulty)] = breakdown
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read difficulty rows: %w", err)
	}

	return stats, nil
}

package entity

import "github.com/Harsh9299/tictactoe-engine/internal/engine"

// Results a finished bot game is recorded under.
const (
	ResultHumanWin = "human"
	ResultBotWin   = "bot"
	ResultDraw     = "draw"
)

// GameResult is one finished bot game, as recorded for statistics.
type GameResult struct {
	Winner     string            `json:"winner"`
	Moves      int               `json:"moves"`
	Difficulty engine.Difficulty `json:"difficulty"`
}

// DifficultyStats counts games played and human wins on one difficulty.
type DifficultyStats struct {
	Games int `json:"games"`
	Wins  int `json:"wins"`
}

// Statistics is the aggregate report over all recorded games. WinRate is the
// human win percentage.
type Statistics struct {
	TotalGames      int                                   `json:"total_games"`
	HumanWins       int                                   `json:"human_wins"`
	BotWins         int                                   `json:"ai_wins"`
	Draws           int                                   `json:"draws"`
	WinRate         float64                               `json:"win_rate"`
	AverageMoves    float64                               `json:"avg_moves"`
	DifficultyStats map[engine.Difficulty]DifficultyStats `json:"difficulty_stats"`
}

package engine

import (
	"errors"
	"fmt"
	"math"
)

const winScore = 10

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty controls how often the bot plays the optimal move instead of a
// random one.
type Difficulty string

const (
	EasyDifficulty   Difficulty = "easy"
	MediumDifficulty Difficulty = "medium"
	HardDifficulty   Difficulty = "hard"
)

// ParseDifficulty - validates a difficulty received from a client.
func ParseDifficulty(raw string) (Difficulty, error) {
	switch difficulty := Difficulty(raw); difficulty {
	case EasyDifficulty, MediumDifficulty, HardDifficulty:
		return difficulty, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, raw)
	}
}

// OptimalRate - the probability that a move request is answered with the
// optimal move rather than a random empty cell.
func (that Difficulty) OptimalRate() float64 {
	switch that {
	case EasyDifficulty:
		return 0.3
	case MediumDifficulty:
		return 0.7
	default:
		return 1.0
	}
}

// Rand is the randomness the search consumes on the easy and medium
// difficulties. *rand.Rand from math/rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Search picks moves for one side of a board using minimax with alpha-beta
// pruning. It simulates moves directly on the board and reverts every one of
// them, so the position is unchanged after each call.
type Search struct {
	board    *Board
	ai       Mark
	opponent Mark
	rng      Rand
}

func NewSearch(board *Board, ai Mark, rng Rand) *Search {
	return &Search{
		board:    board,
		ai:       ai,
		opponent: ai.Other(),
		rng:      rng,
	}
}

// BestMove - picks a cell honoring the difficulty. Hard always plays the
// optimal move and consumes no randomness. Easy and medium draw once per call
// and otherwise fall back to a uniformly random empty cell.
func (that *Search) BestMove(difficulty Difficulty) int {
	if difficulty != EasyDifficulty && difficulty != MediumDifficulty {
		return that.BestMoveOptimal()
	}

	empty := that.board.EmptyCells()
	if len(empty) == 0 {
		panic("engine: best move requested on a full board")
	}

	if that.rng.Float64() < difficulty.OptimalRate() {
		return that.BestMoveOptimal()
	}

	return empty[that.rng.Intn(len(empty))]
}

// BestMoveOptimal - runs the full search and returns the strongest cell.
// Candidates are tried in ascending order and only a strictly better score
// replaces the current best, so ties resolve to the lowest index.
func (that *Search) BestMoveOptimal() int {
	empty := that.board.EmptyCells()
	if len(empty) == 0 {
		panic("engine: best move requested on a full board")
	}

	bestScore := math.MinInt
	bestMove := -1
	alpha, beta := math.MinInt, math.MaxInt

	for _, cell := range empty {
		that.place(cell, that.ai)
		score := that.minimax(0, false, alpha, beta)
		that.board.Clear(cell)

		if score > bestScore {
			bestScore = score
			bestMove = cell
		}

		alpha = max(alpha, bestScore)
	}

	return bestMove
}

// minimax - scores the position for the AI side. Terminal positions score
// winScore shaded by depth, so faster wins and slower losses rank higher.
func (that *Search) minimax(depth int, maximizing bool, alpha, beta int) int {
	switch outcome := that.board.Outcome(); {
	case outcome.Winner == that.ai:
		return winScore - depth
	case outcome.Winner == that.opponent:
		return depth - winScore
	case outcome.Status == StatusDraw:
		return 0
	}

	if maximizing {
		maxEval := math.MinInt

		for _, cell := range that.board.EmptyCells() {
			that.place(cell, that.ai)
			score := that.minimax(depth+1, false, alpha, beta)
			that.board.Clear(cell)

			maxEval = max(maxEval, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}

		return maxEval
	}

	minEval := math.MaxInt

	for _, cell := range that.board.EmptyCells() {
		that.place(cell, that.opponent)
		score := that.minimax(depth+1, true, alpha, beta)
		that.board.Clear(cell)

		minEval = min(minEval, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}

	return minEval
}

// place - applies a simulated move. The cell comes from EmptyCells, so a
// failure here is a corrupted simulation, not an input error.
func (that *Search) place(cell int, mark Mark) {
	if err := that.board.Place(cell, mark); err != nil {
		panic(fmt.Sprintf("engine: simulated move failed: %v", err))
	}
}

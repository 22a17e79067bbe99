package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand feeds a fixed sequence of values and panics when the search
// asks for more randomness than the test scripted.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (that *scriptedRand) Float64() float64 {
	if len(that.floats) == 0 {
		panic("unexpected Float64 call")
	}

	value := that.floats[0]
	that.floats = that.floats[1:]

	return value
}

func (that *scriptedRand) Intn(n int) int {
	if len(that.ints) == 0 {
		panic("unexpected Intn call")
	}

	value := that.ints[0]
	that.ints = that.ints[1:]

	return value % n
}

func TestSearch_BestMoveOptimal(t *testing.T) {
	t.Run("Blocks the opponent's winning line", func(t *testing.T) {
		// Given: X threatens to complete the top row on cell 2
		board := &Board{Cells: [9]Mark{
			MarkX, MarkX, MarkEmpty,
			MarkO, MarkEmpty, MarkEmpty,
			MarkEmpty, MarkEmpty, MarkEmpty,
		}}
		search := NewSearch(board, MarkO, nil)

		// When: O searches for its move
		cell := search.BestMoveOptimal()

		// Then: O blocks on cell 2
		assert.Equal(t, 2, cell)
	})

	t.Run("Takes an immediate win over a block", func(t *testing.T) {
		// Given: O can win on cell 2 while X threatens cell 5
		board := &Board{Cells: [9]Mark{
			MarkO, MarkO, MarkEmpty,
			MarkX, MarkX, MarkEmpty,
			MarkEmpty, MarkEmpty, MarkEmpty,
		}}
		search := NewSearch(board, MarkO, nil)

		// When: O searches for its move
		cell := search.BestMoveOptimal()

		// Then: O takes the win instead of blocking
		assert.Equal(t, 2, cell)
	})

	t.Run("Prefers the faster of two winning lines", func(t *testing.T) {
		// Given: X wins immediately on cell 8 or two moves later through cell 0
		board := &Board{Cells: [9]Mark{
			MarkEmpty, MarkO, MarkO,
			MarkEmpty, MarkX, MarkO,
			MarkX, MarkX, MarkEmpty,
		}}
		search := NewSearch(board, MarkX, nil)

		// When: X searches for its move
		cell := search.BestMoveOptimal()

		// Then: the immediate win beats the slower one despite its higher index
		assert.Equal(t, 8, cell)
	})

	t.Run("Answers a corner opening in the center", func(t *testing.T) {
		// Given: X opened in the corner; only the center holds the draw
		board := &Board{Cells: [9]Mark{
			MarkX, MarkEmpty, MarkEmpty,
			MarkEmpty, MarkEmpty, MarkEmpty,
			MarkEmpty, MarkEmpty, MarkEmpty,
		}}
		search := NewSearch(board, MarkO, nil)

		// When: O searches for its reply
		cell := search.BestMoveOptimal()

		// Then: O takes the center
		assert.Equal(t, 4, cell)
	})

	t.Run("Opens on the first cell of an empty board", func(t *testing.T) {
		// Given: an empty board. Every opening evaluates to a draw under
		// perfect play, so the ascending scan keeps the first candidate.
		board := NewBoard()
		search := NewSearch(board, MarkX, nil)

		// When: X searches for the opening move
		cell := search.BestMoveOptimal()

		// Then: the tie resolves to cell 0
		assert.Equal(t, 0, cell)
	})

	t.Run("Leaves the position untouched", func(t *testing.T) {
		// Given: a mid-game position with history
		board := NewBoard()
		require.NoError(t, board.Commit(0, MarkX))
		require.NoError(t, board.Commit(4, MarkO))
		require.NoError(t, board.Commit(8, MarkX))
		before := board.Cells

		// When: running a full search
		search := NewSearch(board, MarkO, nil)
		search.BestMoveOptimal()

		// Then: every simulated move has been reverted
		assert.Equal(t, before, board.Cells)
		assert.Equal(t, 3, board.MoveCount())
	})

	t.Run("Panics on a full board", func(t *testing.T) {
		// Given: a finished drawn board
		board := &Board{Cells: [9]Mark{
			MarkX, MarkO, MarkX,
			MarkO, MarkX, MarkO,
			MarkO, MarkX, MarkO,
		}}
		search := NewSearch(board, MarkX, rand.New(rand.NewSource(1)))

		// When/Then: every move request panics
		require.Panics(t, func() { search.BestMoveOptimal() })
		require.Panics(t, func() { search.BestMove(EasyDifficulty) })
		require.Panics(t, func() { search.BestMove(HardDifficulty) })
	})
}

// playOutAllGames walks every opponent reply while the search side answers
// optimally, and fails if any line ends in a win for the opponent.
func playOutAllGames(t *testing.T, board *Board, search *Search, ai Mark, aiToMove bool) {
	t.Helper()

	outcome := board.Outcome()
	if outcome.Status != StatusInProgress {
		assert.NotEqual(t, ai.Other(), outcome.Winner, "lost position %v", board.Cells)
		return
	}

	if aiToMove {
		cell := search.BestMoveOptimal()
		require.NoError(t, board.Place(cell, ai))
		playOutAllGames(t, board, search, ai, false)
		board.Clear(cell)

		return
	}

	for _, cell := range board.EmptyCells() {
		require.NoError(t, board.Place(cell, ai.Other()))
		playOutAllGames(t, board, search, ai, true)
		board.Clear(cell)
	}
}

func TestSearch_NeverLoses(t *testing.T) {
	t.Run("As X against every opponent line", func(t *testing.T) {
		board := NewBoard()
		search := NewSearch(board, MarkX, nil)

		playOutAllGames(t, board, search, MarkX, true)
	})

	t.Run("As O against every opponent line", func(t *testing.T) {
		board := NewBoard()
		search := NewSearch(board, MarkO, nil)

		playOutAllGames(t, board, search, MarkO, false)
	})
}

func TestSearch_BestMove(t *testing.T) {
	// O wins immediately on cell 5; the empty cells are 2, 5, 6, 7 and 8.
	winningPosition := [9]Mark{
		MarkX, MarkX, MarkEmpty,
		MarkO, MarkO, MarkEmpty,
		MarkEmpty, MarkEmpty, MarkEmpty,
	}

	t.Run("Easy plays optimally when the draw lands under the rate", func(t *testing.T) {
		// Given: a draw just below 0.3
		board := &Board{Cells: winningPosition}
		search := NewSearch(board, MarkO, &scriptedRand{floats: []float64{0.29}})

		// When: easy picks a move
		cell := search.BestMove(EasyDifficulty)

		// Then: it is the optimal winning cell
		assert.Equal(t, 5, cell)
	})

	t.Run("Easy falls back to a random cell when the draw misses", func(t *testing.T) {
		// Given: a draw above 0.3 and a scripted cell pick
		board := &Board{Cells: winningPosition}
		search := NewSearch(board, MarkO, &scriptedRand{floats: []float64{0.31}, ints: []int{0}})

		// When: easy picks a move
		cell := search.BestMove(EasyDifficulty)

		// Then: it is the first empty cell, not the winning one
		assert.Equal(t, 2, cell)
	})

	t.Run("Medium plays optimally up to its higher rate", func(t *testing.T) {
		// Given: a draw between the easy and medium rates
		board := &Board{Cells: winningPosition}
		search := NewSearch(board, MarkO, &scriptedRand{floats: []float64{0.69}})

		// When: medium picks a move
		cell := search.BestMove(MediumDifficulty)

		// Then: it is the optimal winning cell
		assert.Equal(t, 5, cell)
	})

	t.Run("Medium falls back to a random cell above its rate", func(t *testing.T) {
		// Given: a draw above 0.7 and a scripted cell pick
		board := &Board{Cells: winningPosition}
		search := NewSearch(board, MarkO, &scriptedRand{floats: []float64{0.71}, ints: []int{3}})

		// When: medium picks a move
		cell := search.BestMove(MediumDifficulty)

		// Then: it is the scripted empty cell
		assert.Equal(t, 7, cell)
	})

	t.Run("Hard consumes no randomness", func(t *testing.T) {
		// Given: a randomness source that panics on any use
		board := &Board{Cells: winningPosition}
		search := NewSearch(board, MarkO, &scriptedRand{})

		// When: hard picks a move
		cell := search.BestMove(HardDifficulty)

		// Then: it is the optimal cell and the source was never touched
		assert.Equal(t, 5, cell)
	})

	t.Run("Unknown difficulties play optimally", func(t *testing.T) {
		// Given: a difficulty that never passed ParseDifficulty
		board := &Board{Cells: winningPosition}
		search := NewSearch(board, MarkO, &scriptedRand{})

		// When/Then: the move is optimal and no randomness is consumed
		assert.Equal(t, 5, search.BestMove(Difficulty("impossible")))
	})
}

func TestSearch_BestMoveDistribution(t *testing.T) {
	// O wins on cell 5; with five empty cells the optimal cell should show up
	// with frequency rate + (1-rate)/5.
	winningPosition := [9]Mark{
		MarkX, MarkX, MarkEmpty,
		MarkO, MarkO, MarkEmpty,
		MarkEmpty, MarkEmpty, MarkEmpty,
	}

	const rounds = 2000

	tests := []struct {
		name       string
		difficulty Difficulty
	}{
		{name: "Easy converges on its optimal rate", difficulty: EasyDifficulty},
		{name: "Medium converges on its optimal rate", difficulty: MediumDifficulty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1)) //nolint: gosec // deterministic seed for a statistical assertion

			optimal := 0
			for i := 0; i < rounds; i++ {
				board := &Board{Cells: winningPosition}
				search := NewSearch(board, MarkO, rng)

				if search.BestMove(tt.difficulty) == 5 {
					optimal++
				}
			}

			rate := tt.difficulty.OptimalRate()
			expected := rate + (1-rate)/5
			assert.InDelta(t, expected, float64(optimal)/rounds, 0.05)
		})
	}

	t.Run("Hard always picks the optimal cell", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1)) //nolint: gosec // deterministic seed

		for i := 0; i < 50; i++ {
			board := &Board{Cells: winningPosition}
			search := NewSearch(board, MarkO, rng)

			require.Equal(t, 5, search.BestMove(HardDifficulty))
		}
	})
}

func TestParseDifficulty(t *testing.T) {
	t.Run("Accepts the three known levels", func(t *testing.T) {
		for _, raw := range []string{"easy", "medium", "hard"} {
			difficulty, err := ParseDifficulty(raw)

			require.NoError(t, err)
			assert.Equal(t, Difficulty(raw), difficulty)
		}
	})

	t.Run("Rejects anything else", func(t *testing.T) {
		for _, raw := range []string{"", "HARD", "impossible", "medium "} {
			_, err := ParseDifficulty(raw)

			require.ErrorIs(t, err, ErrUnknownDifficulty, "input %q", raw)
		}
	})
}

func TestDifficulty_OptimalRate(t *testing.T) {
	assert.Equal(t, 0.3, EasyDifficulty.OptimalRate())
	assert.Equal(t, 0.7, MediumDifficulty.OptimalRate())
	assert.Equal(t, 1.0, HardDifficulty.OptimalRate())
}

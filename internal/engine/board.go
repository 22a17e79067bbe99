package engine

import (
	"errors"
	"fmt"
)

type Mark string

const (
	MarkEmpty Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

var (
	ErrInvalidMove         = errors.New("invalid move")
	ErrInsufficientHistory = errors.New("not enough moves to undo")

	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Other - returns the opposing mark.
func (that Mark) Other() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

// Outcome is the terminal classification of a position. Winner is set only
// when Status is StatusWon.
type Outcome struct {
	Status Status
	Winner Mark
}

// Move is a single committed move, kept in the board history for undo.
type Move struct {
	Cell int  `json:"cell"`
	Mark Mark `json:"mark"`
}

type Board struct {
	Cells   [9]Mark `json:"cells"`
	History []Move  `json:"history,omitempty"`
}

func NewBoard() *Board {
	return &Board{}
}

// IsLegal - reports whether the cell is on the board and unoccupied.
func (that *Board) IsLegal(cell int) bool {
	return cell >= 0 && cell < len(that.Cells) && that.Cells[cell] == MarkEmpty
}

// Place - puts a mark on the board without recording it in the history.
// The search uses Place together with Clear to explore positions.
func (that *Board) Place(cell int, mark Mark) error {
	if !that.IsLegal(cell) {
		return fmt.Errorf("%w: cell %d", ErrInvalidMove, cell)
	}

	that.Cells[cell] = mark

	return nil
}

// Commit - places a mark and records the move in the history.
func (that *Board) Commit(cell int, mark Mark) error {
	if err := that.Place(cell, mark); err != nil {
		return err
	}

	that.History = append(that.History, Move{Cell: cell, Mark: mark})

	return nil
}

// Clear - reverts a simulated Place. The cell must hold a mark; clearing an
// empty or out-of-range cell is a broken simulation stack, not a user error.
func (that *Board) Clear(cell int) {
	if cell < 0 || cell >= len(that.Cells) || that.Cells[cell] == MarkEmpty {
		panic(fmt.Sprintf("engine: clear of empty cell %d", cell))
	}

	that.Cells[cell] = MarkEmpty
}

// EmptyCells - returns the unoccupied cells in ascending index order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, len(that.Cells))
	for i, cell := range that.Cells {
		if cell == MarkEmpty {
			cells = append(cells, i)
		}
	}

	return cells
}

// IsWinner - reports whether the mark holds any of the eight winning lines.
func (that *Board) IsWinner(mark Mark) bool {
	for _, combo := range WinCombos {
		if that.Cells[combo[0]] == mark && that.Cells[combo[1]] == mark && that.Cells[combo[2]] == mark {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for _, cell := range that.Cells {
		if cell == MarkEmpty {
			return false
		}
	}

	return true
}

// Outcome - classifies the position. A completed line wins even when the
// board is also full, so the win checks run before the draw check.
func (that *Board) Outcome() Outcome {
	if that.IsWinner(MarkX) {
		return Outcome{Status: StatusWon, Winner: MarkX}
	}

	if that.IsWinner(MarkO) {
		return Outcome{Status: StatusWon, Winner: MarkO}
	}

	if that.IsFull() {
		return Outcome{Status: StatusDraw}
	}

	return Outcome{Status: StatusInProgress}
}

// UndoLastRound - takes back the two most recent committed moves, one per
// player. With fewer than two moves in the history the board is unchanged.
func (that *Board) UndoLastRound() error {
	if len(that.History) < 2 {
		return ErrInsufficientHistory
	}

	for i := 0; i < 2; i++ {
		last := that.History[len(that.History)-1]
		that.History = that.History[:len(that.History)-1]
		that.Cells[last.Cell] = MarkEmpty
	}

	return nil
}

func (that *Board) MoveCount() int {
	return len(that.History)
}

// Reset - empties the board and the move history for a fresh game.
func (that *Board) Reset() {
	that.Cells = [9]Mark{}
	that.History = nil
}

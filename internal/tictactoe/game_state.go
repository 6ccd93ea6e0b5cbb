package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// WinCombos lists the 8 lines of the board as row-major index triples.
var WinCombos = [...][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// GameState holds a single round: the board, whose turn it is and how the round stands.
type GameState struct {
	board   entity.Board
	turn    entity.Mark
	outcome entity.Outcome
}

func NewGameState() *GameState {
	return &GameState{
		turn:    entity.PlayerX,
		outcome: entity.Ongoing(),
	}
}

// ApplyMove places the current mark at row, col and evaluates the round.
// The turn flips only when the round is still ongoing afterwards.
func (that *GameState) ApplyMove(row, col int) (entity.Outcome, error) {
	if that.outcome.IsTerminal() {
		return that.outcome, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrRoundFinished)
	}

	cell, err := that.validateMove(row, col)
	if err != nil {
		return that.outcome, err
	}

	mark := that.turn
	that.board[cell] = mark.Cell()
	that.updateOutcome(mark)

	return that.outcome, nil
}

// validateMove - checks if the move is valid and returns the board index.
func (that *GameState) validateMove(row, col int) (int, error) {
	cell, ok := entity.Index(row, col)
	if !ok {
		return 0, fmt.Errorf("%w: cell (%d, %d) is out of range", apperror.ErrInvalidMove, row, col)
	}

	if that.board[cell] != entity.EmptyCell {
		return 0, fmt.Errorf("%w: cell (%d, %d) is occupied", apperror.ErrInvalidMove, row, col)
	}

	return cell, nil
}

// updateOutcome - checks the round status after mark has moved.
func (that *GameState) updateOutcome(mark entity.Mark) {
	switch {
	// a win on the last empty cell is still a win
	case that.IsWinningLine(mark):
		that.outcome = entity.Win(mark)
	case that.IsFull():
		that.outcome = entity.Draw()
	default:
		that.turn = mark.Opponent()
	}
}

// IsWinningLine reports whether any line is entirely held by mark.
func (that *GameState) IsWinningLine(mark entity.Mark) bool {
	cell := mark.Cell()
	for _, combo := range WinCombos {
		if that.board[combo[0]] == cell && that.board[combo[1]] == cell && that.board[combo[2]] == cell {
			return true
		}
	}

	return false
}

func (that *GameState) IsFull() bool {
	for _, cell := range that.board {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}

// Reset clears the board and hands the first move back to X.
func (that *GameState) Reset() {
	that.board = entity.Board{}
	that.turn = entity.PlayerX
	that.outcome = entity.Ongoing()
}

func (that *GameState) Board() entity.Board {
	return that.board
}

func (that *GameState) Turn() entity.Mark {
	return that.turn
}

func (that *GameState) Outcome() entity.Outcome {
	return that.outcome
}

package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	// MinPosition and MaxPosition bound the 1-based cell numbers players type in.
	MinPosition = 1
	MaxPosition = 9
)

// WinCombos is the fixed scan order for terminal checks: three rows, three
// columns, the main diagonal, the anti-diagonal. When a hand-built board
// completes several lines at once, the last one in this order decides the
// winner; alternating play can never complete lines for both marks.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// ApplyMove - applies the current player's move at a 1-based board position.
func ApplyMove(game *entity.Game, position int) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if position < MinPosition || position > MaxPosition {
		return fmt.Errorf("%w: position %d", apperror.ErrInvalidPosition, position)
	}

	cell := position - 1
	if game.Board[cell] != entity.EmptyCell {
		return fmt.Errorf("%w: position %d", apperror.ErrCellOccupied, position)
	}

	mark := game.Turn
	game.Board[cell] = mark
	game.Moves = append(game.Moves, entity.Move{Cell: cell, Mark: mark})

	updateGameStatus(game)

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game) {
	switch winner := Outcome(game.Board); winner {
	case entity.PlayerX, entity.PlayerO:
		game.Winner = winner
		game.Status = entity.StatusFinished
		game.Turn = ""
	case entity.PlayerTie:
		game.Winner = entity.PlayerTie
		game.Status = entity.StatusFinished
		game.Turn = ""
	default:
		game.Turn = toggleMark(game.Turn)
	}
}

func toggleMark(currentMark string) string {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}

// Outcome - returns the winning mark, entity.PlayerTie for a full board with
// no winner, or an empty string while the game is still undecided.
func Outcome(board [9]string) string {
	var winner string

	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			winner = a
		}
	}

	if winner != entity.EmptyCell {
		return winner
	}

	for _, cell := range board {
		if cell == entity.EmptyCell {
			return ""
		}
	}

	return entity.PlayerTie
}

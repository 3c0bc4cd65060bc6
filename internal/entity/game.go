package entity

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""

	// EmptyToken fills unclaimed squares on a rendered grid.
	EmptyToken = " "
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Move - a single claimed square, with Cell as a 0-based board index.
type Move struct {
	Cell int    `json:"cell"`
	Mark string `json:"mark"`
}

// Grid - a board arranged in display order, row by row.
type Grid [3][3]string

type Game struct {
	Board   [9]string  `json:"board"`
	Moves   []Move     `json:"moves,omitempty"`
	Winner  string     `json:"winner"`
	Status  string     `json:"status"`
	Turn    string     `json:"player_turn"`
	Players [2]*Player `json:"players"`
}

// NewGame - creates a game between two named players; the first named player
// always holds X. The game stays in the waiting state until Reset starts a
// round.
func NewGame(player1Name, player2Name string) *Game {
	return &Game{
		Board:  [9]string{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		Status: StatusWaiting,
		Players: [2]*Player{
			{Name: player1Name, Mark: PlayerX},
			{Name: player2Name, Mark: PlayerO},
		},
	}
}

// Reset - clears the board and move log and starts a fresh round with a
// uniformly random opening mark.
func (that *Game) Reset(rng *rand.Rand) {
	that.Board = [9]string{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell}
	that.Moves = nil
	that.Winner = ""
	that.Turn = that.randomMark(rng)
	that.Status = StatusOngoing
}

func (that *Game) randomMark(rng *rand.Rand) string {
	if rng.Intn(2) == 0 {
		return PlayerX
	}
	return PlayerO
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) IsDraw() bool {
	return that.Winner == PlayerTie
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// PlayerToMove - returns the player holding the current turn, or nil once the
// round is over.
func (that *Game) PlayerToMove() *Player {
	return that.playerByMark(that.Turn)
}

// WinnerPlayer - returns the round winner, or nil for a draw or an unfinished
// round.
func (that *Game) WinnerPlayer() *Player {
	return that.playerByMark(that.Winner)
}

func (that *Game) playerByMark(mark string) *Player {
	for _, player := range that.Players {
		if player != nil && player.Mark == mark {
			return player
		}
	}
	return nil
}

// CompileBoard - arranges the given moves on a blank grid. A nil slice means
// the full move log, so passing a prefix of the log rebuilds any earlier
// position.
func (that *Game) CompileBoard(moves []Move) Grid {
	if moves == nil {
		moves = that.Moves
	}

	var grid Grid
	for row := range grid {
		for col := range grid[row] {
			grid[row][col] = EmptyToken
		}
	}

	for _, move := range moves {
		grid[move.Cell/3][move.Cell%3] = move.Mark
	}

	return grid
}

// Replay - materializes the board after every move of the round, in move
// order.
func (that *Game) Replay() []Grid {
	snapshots := make([]Grid, 0, len(that.Moves))
	for i := range that.Moves {
		snapshots = append(snapshots, that.CompileBoard(that.Moves[:i+1]))
	}
	return snapshots
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// When: checking if the game is finished
		isFinished := game.IsFinished()

		// Then: it should return true
		assert.True(t, isFinished)
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// When: checking if the game is ongoing
		isOngoing := game.IsOngoing()

		// Then: it should return true
		assert.True(t, isOngoing)
	})

	t.Run("IsWaiting returns true when game status is waiting", func(t *testing.T) {
		// Given: a game with StatusWaiting
		game := &Game{Status: StatusWaiting}

		// When: checking if the game is waiting
		isWaiting := game.IsWaiting()

		// Then: it should return true
		assert.True(t, isWaiting)
	})

	t.Run("IsDraw returns true when the round tied", func(t *testing.T) {
		// Given: a finished game with no winner
		game := &Game{Status: StatusFinished, Winner: PlayerTie}

		// When: checking if the round was a draw
		isDraw := game.IsDraw()

		// Then: it should return true
		assert.True(t, isDraw)
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return nil error
		assert.NoError(t, err)
	})

	t.Run("Returns ErrGameIsNotStarted when game is waiting", func(t *testing.T) {
		// Given: a game with StatusWaiting
		game := &Game{Status: StatusWaiting}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return ErrGameIsNotStarted
		assert.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return ErrGameFinished
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return an error
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown game status")
	})
}

func TestNewGame(t *testing.T) {
	t.Run("Assigns X to player 1 and O to player 2", func(t *testing.T) {
		// Given: two named players
		game := NewGame("alice", "bob")

		// Then: player 1 holds X, player 2 holds O, and nothing has been played
		assert.Equal(t, "alice", game.Players[0].Name)
		assert.Equal(t, PlayerX, game.Players[0].Mark)
		assert.Equal(t, "bob", game.Players[1].Name)
		assert.Equal(t, PlayerO, game.Players[1].Mark)
		assert.Equal(t, StatusWaiting, game.Status)
		assert.Empty(t, game.Moves)
	})
}

func TestGame_Reset(t *testing.T) {
	t.Run("Starts a round with a random opening mark", func(t *testing.T) {
		// Given: a fresh game
		game := NewGame("alice", "bob")

		// When: a round starts
		game.Reset(rand.New(rand.NewSource(1)))

		// Then: the game is ongoing and one of the two marks opens
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Contains(t, []string{PlayerX, PlayerO}, game.Turn)
	})

	t.Run("Clears the board, moves and winner", func(t *testing.T) {
		// Given: a finished round with moves on the board
		game := NewGame("alice", "bob")
		game.Board[0] = PlayerX
		game.Moves = []Move{{Cell: 0, Mark: PlayerX}}
		game.Winner = PlayerX
		game.Status = StatusFinished

		// When: the next round starts
		game.Reset(rand.New(rand.NewSource(2)))

		// Then: the board, moves and winner are gone
		expectedBoard := [9]string{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell}
		assert.Equal(t, expectedBoard, game.Board)
		assert.Empty(t, game.Moves)
		assert.Equal(t, "", game.Winner)
		assert.Equal(t, StatusOngoing, game.Status)
	})

	t.Run("Same seed opens with the same mark", func(t *testing.T) {
		// Given: two games reset from identically seeded sources
		game1 := NewGame("alice", "bob")
		game2 := NewGame("carol", "dave")

		// When: both start a round
		game1.Reset(rand.New(rand.NewSource(42)))
		game2.Reset(rand.New(rand.NewSource(42)))

		// Then: the opening mark matches
		assert.Equal(t, game1.Turn, game2.Turn)
	})
}

func TestGame_PlayerLookups(t *testing.T) {
	t.Run("PlayerToMove follows the turn", func(t *testing.T) {
		// Given: an ongoing game where O holds the turn
		game := NewGame("alice", "bob")
		game.Status = StatusOngoing
		game.Turn = PlayerO

		// When: looking up the player to move
		player := game.PlayerToMove()

		// Then: it is player 2
		require.NotNil(t, player)
		assert.Equal(t, "bob", player.Name)
	})

	t.Run("PlayerToMove is nil once the round is over", func(t *testing.T) {
		// Given: a finished game with no turn holder
		game := NewGame("alice", "bob")
		game.Status = StatusFinished
		game.Turn = ""

		// Then: nobody is to move
		assert.Nil(t, game.PlayerToMove())
	})

	t.Run("WinnerPlayer resolves the winning mark", func(t *testing.T) {
		// Given: a game won by X
		game := NewGame("alice", "bob")
		game.Winner = PlayerX

		// When: looking up the winner
		winner := game.WinnerPlayer()

		// Then: it is player 1
		require.NotNil(t, winner)
		assert.Equal(t, "alice", winner.Name)
	})

	t.Run("WinnerPlayer is nil for a draw", func(t *testing.T) {
		// Given: a game that ended in a tie
		game := NewGame("alice", "bob")
		game.Winner = PlayerTie

		// Then: there is no winner to resolve
		assert.Nil(t, game.WinnerPlayer())
	})
}

func TestGame_CompileBoard(t *testing.T) {
	t.Run("Blank round yields an all-empty grid", func(t *testing.T) {
		// Given: a game with no moves
		game := NewGame("alice", "bob")

		// When: compiling the full board
		grid := game.CompileBoard(nil)

		// Then: every cell shows the empty token
		expected := Grid{
			{EmptyToken, EmptyToken, EmptyToken},
			{EmptyToken, EmptyToken, EmptyToken},
			{EmptyToken, EmptyToken, EmptyToken},
		}
		assert.Equal(t, expected, grid)
	})

	t.Run("Moves land on their row and column", func(t *testing.T) {
		// Given: moves in three different rows
		game := NewGame("alice", "bob")
		game.Moves = []Move{
			{Cell: 0, Mark: PlayerX},
			{Cell: 4, Mark: PlayerO},
			{Cell: 8, Mark: PlayerX},
		}

		// When: compiling the full board
		grid := game.CompileBoard(nil)

		// Then: each mark sits on its own row and column
		assert.Equal(t, PlayerX, grid[0][0])
		assert.Equal(t, PlayerO, grid[1][1])
		assert.Equal(t, PlayerX, grid[2][2])
	})

	t.Run("A prefix of the log rebuilds the earlier position", func(t *testing.T) {
		// Given: a game with two moves
		game := NewGame("alice", "bob")
		game.Moves = []Move{
			{Cell: 0, Mark: PlayerX},
			{Cell: 4, Mark: PlayerO},
		}

		// When: compiling only the first move
		grid := game.CompileBoard(game.Moves[:1])

		// Then: the second move is not on the grid yet
		assert.Equal(t, PlayerX, grid[0][0])
		assert.Equal(t, EmptyToken, grid[1][1])
	})
}

func TestGame_Replay(t *testing.T) {
	t.Run("One snapshot per move, each extending the last", func(t *testing.T) {
		// Given: a game with three recorded moves
		game := NewGame("alice", "bob")
		game.Moves = []Move{
			{Cell: 0, Mark: PlayerX},
			{Cell: 4, Mark: PlayerO},
			{Cell: 1, Mark: PlayerX},
		}

		// When: materializing the replay
		snapshots := game.Replay()

		// Then: there is one snapshot per move
		require.Len(t, snapshots, len(game.Moves))

		// And: each snapshot fills exactly one more cell than the previous
		filled := func(grid Grid) int {
			count := 0
			for _, row := range grid {
				for _, token := range row {
					if token != EmptyToken {
						count++
					}
				}
			}
			return count
		}
		for i, snapshot := range snapshots {
			assert.Equal(t, i+1, filled(snapshot))
		}

		// And: the final snapshot equals the full board
		assert.Equal(t, game.CompileBoard(nil), snapshots[len(snapshots)-1])
	})

	t.Run("No moves means an empty replay", func(t *testing.T) {
		// Given: a game with no moves
		game := NewGame("alice", "bob")

		// Then: the replay has nothing to show
		assert.Empty(t, game.Replay())
	})
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreboard_AddWin(t *testing.T) {
	t.Run("Credits wins and returns the running total", func(t *testing.T) {
		// Given: an empty scoreboard
		scores := NewScoreboard()

		// When: the same player wins twice
		first := scores.AddWin("alice")
		second := scores.AddWin("alice")

		// Then: the totals grow one win at a time
		assert.Equal(t, 1, first)
		assert.Equal(t, 2, second)
		assert.Equal(t, 2, scores.Wins("alice"))
	})

	t.Run("Tracks players independently", func(t *testing.T) {
		// Given: a scoreboard with wins for two players
		scores := NewScoreboard()
		scores.AddWin("alice")
		scores.AddWin("alice")
		scores.AddWin("bob")

		// Then: each player keeps their own total
		assert.Equal(t, 2, scores.Wins("alice"))
		assert.Equal(t, 1, scores.Wins("bob"))
	})
}

func TestScoreboard_Wins(t *testing.T) {
	t.Run("Unknown player has zero wins", func(t *testing.T) {
		// Given: an empty scoreboard
		scores := NewScoreboard()

		// Then: a player nobody has heard of has no wins
		assert.Equal(t, 0, scores.Wins("nobody"))
	})
}

func TestScoreboard_Totals(t *testing.T) {
	t.Run("Returns a copy that cannot mutate the scoreboard", func(t *testing.T) {
		// Given: a scoreboard with one win recorded
		scores := NewScoreboard()
		scores.AddWin("alice")

		// When: a caller mangles the returned totals
		totals := scores.Totals()
		require.Equal(t, map[string]int{"alice": 1}, totals)
		totals["alice"] = 99

		// Then: the scoreboard itself is untouched
		assert.Equal(t, 1, scores.Wins("alice"))
	})
}

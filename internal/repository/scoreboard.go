package repository

// Scoreboard - keeps per-player win totals for the lifetime of the process.
// The session loop is single-threaded, so access needs no locking.
type Scoreboard interface {
	AddWin(playerName string) int
	Wins(playerName string) int
	Totals() map[string]int
}

type scoreboard struct {
	wins map[string]int
}

// NewScoreboard - returns an empty in-memory scoreboard.
func NewScoreboard() Scoreboard {
	return &scoreboard{
		wins: make(map[string]int),
	}
}

// AddWin - credits one win to the named player and returns the new total.
func (that *scoreboard) AddWin(playerName string) int {
	that.wins[playerName]++
	return that.wins[playerName]
}

// Wins - returns the named player's win total, zero for unknown players.
func (that *scoreboard) Wins(playerName string) int {
	return that.wins[playerName]
}

// Totals - returns a copy of all recorded win totals.
func (that *scoreboard) Totals() map[string]int {
	totals := make(map[string]int, len(that.wins))
	for name, count := range that.wins {
		totals[name] = count
	}
	return totals
}

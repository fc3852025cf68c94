package models

import (
	"strings"
	"time"
)

// RawBlock holds the text pulled out of one game block on the scoreboard page.
// Slices keep page order; absent regions are empty rather than nil-checked.
type RawBlock struct {
	TeamNames     []string // away first, then home
	ScoreCells    []string // flattened score table
	LeaderCells   []string // "Name N" entries, started games only
	TimezoneCells []string // one start time per zone, not-started games only
	AltStatusText string   // period/clock status, started games only
}

// BlockFailure records a game block that could not be interpreted
type BlockFailure struct {
	Index   int    `json:"index"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

// NewBlockFailure wraps an interpretation error for block i
func NewBlockFailure(i int, err error) BlockFailure {
	return BlockFailure{Index: i, Message: err.Error(), Err: err}
}

// Scoreboard is one poll of the scoreboard page
type Scoreboard struct {
	SportKey  string         `json:"sport_key"`
	Day       time.Time      `json:"day"`
	FetchedAt time.Time      `json:"fetched_at"`
	Games     []Game         `json:"games"`
	Failures  []BlockFailure `json:"failures,omitempty"`
}

// HasLiveGames reports whether any game on the board has started
func (s *Scoreboard) HasLiveGames() bool {
	for _, g := range s.Games {
		if g.HasStarted {
			return true
		}
	}
	return false
}

// FindTeam returns the game the named team plays in, matching case-insensitively
func (s *Scoreboard) FindTeam(name string) (Game, bool) {
	for _, g := range s.Games {
		if strings.EqualFold(g.AwayTeam.Name, name) || strings.EqualFold(g.HomeTeam.Name, name) {
			return g, true
		}
	}
	return Game{}, false
}

// Color is a 24-bit RGB team colour
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

package models

// LeaderCategory identifies one of the stat categories the scoreboard lists leaders for
type LeaderCategory int

const (
	CategoryPoints LeaderCategory = iota
	CategoryRebounds
	CategoryAssists
)

// String returns the short stat label ("PTS", "REB", "AST")
func (c LeaderCategory) String() string {
	switch c {
	case CategoryPoints:
		return "PTS"
	case CategoryRebounds:
		return "REB"
	case CategoryAssists:
		return "AST"
	default:
		return "UNKNOWN"
	}
}

// Leader is the top player of one team in one stat category
type Leader struct {
	Name  string `json:"name"`
	Value uint32 `json:"value"`
}

// Team is one side of a game
type Team struct {
	Name     string `json:"name"` // Display name, also the colour table key
	Score    uint32 `json:"score"`
	Points   Leader `json:"points"`
	Rebounds Leader `json:"rebounds"`
	Assists  Leader `json:"assists"`
}

// Leader returns the leader for a category
func (t Team) Leader(c LeaderCategory) Leader {
	switch c {
	case CategoryPoints:
		return t.Points
	case CategoryRebounds:
		return t.Rebounds
	case CategoryAssists:
		return t.Assists
	default:
		return Leader{}
	}
}

// SetLeader stores the leader for a category
func (t *Team) SetLeader(c LeaderCategory, l Leader) {
	switch c {
	case CategoryPoints:
		t.Points = l
	case CategoryRebounds:
		t.Rebounds = l
	case CategoryAssists:
		t.Assists = l
	}
}

// PeriodScore represents scoring by period (quarter or overtime)
type PeriodScore struct {
	Period    int    `json:"period"`
	Label     string `json:"label"` // "1", "OT", "Q1", "OT2"
	AwayScore uint32 `json:"away_score"`
	HomeScore uint32 `json:"home_score"`
}

// Game is one contest on the scoreboard.
// StatusText is the scheduled start time when HasStarted is false and the
// period/clock status otherwise.
type Game struct {
	HasStarted   bool          `json:"has_started"`
	AwayTeam     Team          `json:"away_team"`
	HomeTeam     Team          `json:"home_team"`
	StatusText   string        `json:"status_text"`
	PeriodScores []PeriodScore `json:"period_scores,omitempty"`
}

// Matchup returns the "{away}@{home}" key used for caching and dedup
func (g Game) Matchup() string {
	return g.AwayTeam.Name + "@" + g.HomeTeam.Name
}

// Involves reports whether the team name is on either side of the game
func (g Game) Involves(name string) bool {
	return g.AwayTeam.Name == name || g.HomeTeam.Name == name
}

package basketball_nba

import (
	"fmt"
	"time"

	"github.com/CobSammich/nba-scores-cli/pkg/contracts"
	"github.com/CobSammich/nba-scores-cli/pkg/models"
)

// DefaultRefreshInterval is how often the scoreboard is re-fetched
const DefaultRefreshInterval = 10 * time.Second

// NBAModule implements SportModule for NBA basketball
type NBAModule struct {
	enabled         bool
	refreshInterval time.Duration
}

// New creates a new NBA sport module. A zero interval selects
// DefaultRefreshInterval.
func New(refreshInterval time.Duration) *NBAModule {
	if refreshInterval <= 0 {
		refreshInterval = DefaultRefreshInterval
	}
	return &NBAModule{enabled: true, refreshInterval: refreshInterval}
}

func (m *NBAModule) GetSportKey() string {
	return "basketball_nba"
}

func (m *NBAModule) GetDisplayName() string {
	return "NBA"
}

func (m *NBAModule) GetScoreboardPath() string {
	return "nba/scoreboard.asp"
}

func (m *NBAModule) GetPollingConfig() contracts.PollingConfig {
	return contracts.PollingConfig{
		RefreshInterval: m.refreshInterval,
		Enabled:         m.enabled,
	}
}

// Interpret parses one scoreboard game block
func (m *NBAModule) Interpret(block models.RawBlock, tz models.Timezone) (*models.Game, error) {
	return Interpret(block, tz)
}

// ValidateGame checks the team invariants of an interpreted game
func (m *NBAModule) ValidateGame(game *models.Game) error {
	if !game.HasStarted {
		if game.AwayTeam.Score != 0 || game.HomeTeam.Score != 0 {
			return fmt.Errorf("scheduled game %s has a score", game.Matchup())
		}
		return nil
	}

	for _, team := range []models.Team{game.AwayTeam, game.HomeTeam} {
		for _, category := range LeaderCategoryOrder {
			if team.Leader(category).Name == "" {
				return fmt.Errorf("%s: missing %s leader", team.Name, category)
			}
		}
	}

	return nil
}

// TeamColor returns the colour for a team's display name
func (m *NBAModule) TeamColor(name string) (models.Color, bool) {
	return GetTeamColor(name)
}

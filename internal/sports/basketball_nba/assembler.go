package basketball_nba

import "github.com/CobSammich/nba-scores-cli/pkg/models"

// newTeam builds a team from its name, score and leaders in
// LeaderCategoryOrder
func newTeam(name string, score uint32, leaders [3]models.Leader) models.Team {
	team := models.Team{
		Name:  name,
		Score: score,
	}
	for slot, category := range LeaderCategoryOrder {
		team.SetLeader(category, leaders[slot])
	}
	return team
}

// newScheduledGame builds a game that has not tipped off. Scores and leaders
// stay zero.
func newScheduledGame(away, home, startTime string) *models.Game {
	return &models.Game{
		HasStarted: false,
		AwayTeam:   models.Team{Name: away},
		HomeTeam:   models.Team{Name: home},
		StatusText: startTime,
	}
}

// newStartedGame builds an in-progress or finished game
func newStartedGame(away, home models.Team, status string, periods []models.PeriodScore) *models.Game {
	return &models.Game{
		HasStarted:   true,
		AwayTeam:     away,
		HomeTeam:     home,
		StatusText:   status,
		PeriodScores: periods,
	}
}

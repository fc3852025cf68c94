package testutil

import (
	"time"

	"github.com/CobSammich/nba-scores-cli/pkg/models"
)

// Day is the fixed day used by scoreboard fixtures
var Day = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

// ScheduledGame returns a game that has not started
func ScheduledGame(away, home, start string) models.Game {
	return models.Game{
		AwayTeam:   models.Team{Name: away},
		HomeTeam:   models.Team{Name: home},
		StatusText: start,
	}
}

// LiveGame returns a started game with full leader lines
func LiveGame(away, home string, awayScore, homeScore uint32, status string) models.Game {
	return models.Game{
		HasStarted: true,
		AwayTeam: models.Team{
			Name:     away,
			Score:    awayScore,
			Points:   models.Leader{Name: "LeBron James", Value: 31},
			Rebounds: models.Leader{Name: "Anthony Davis", Value: 14},
			Assists:  models.Leader{Name: "D'Angelo Russell", Value: 8},
		},
		HomeTeam: models.Team{
			Name:     home,
			Score:    homeScore,
			Points:   models.Leader{Name: "Jayson Tatum", Value: 28},
			Rebounds: models.Leader{Name: "Al Horford", Value: 9},
			Assists:  models.Leader{Name: "Jrue Holiday", Value: 7},
		},
		StatusText: status,
	}
}

// Scoreboard wraps games into a basketball_nba snapshot for Day
func Scoreboard(games ...models.Game) *models.Scoreboard {
	return &models.Scoreboard{
		SportKey:  "basketball_nba",
		Day:       Day,
		FetchedAt: Day.Add(20 * time.Hour),
		Games:     games,
	}
}

package basketball_nba_test

import (
	"testing"
	"time"

	"github.com/CobSammich/nba-scores-cli/internal/sports/basketball_nba"
	"github.com/CobSammich/nba-scores-cli/pkg/contracts"
	"github.com/CobSammich/nba-scores-cli/pkg/models"
)

var _ contracts.SportModule = (*basketball_nba.NBAModule)(nil)

func TestNBAModule_Identification(t *testing.T) {
	module := basketball_nba.New(0)

	if got := module.GetSportKey(); got != "basketball_nba" {
		t.Errorf("GetSportKey() = %s, want basketball_nba", got)
	}
	if got := module.GetDisplayName(); got != "NBA" {
		t.Errorf("GetDisplayName() = %s, want NBA", got)
	}
	if got := module.GetScoreboardPath(); got != "nba/scoreboard.asp" {
		t.Errorf("GetScoreboardPath() = %s, want nba/scoreboard.asp", got)
	}
}

func TestNBAModule_GetPollingConfig(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		want     time.Duration
	}{
		{"default", 0, basketball_nba.DefaultRefreshInterval},
		{"negative", -time.Second, basketball_nba.DefaultRefreshInterval},
		{"custom", 30 * time.Second, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := basketball_nba.New(tt.interval).GetPollingConfig()
			if cfg.RefreshInterval != tt.want {
				t.Errorf("RefreshInterval = %v, want %v", cfg.RefreshInterval, tt.want)
			}
			if !cfg.Enabled {
				t.Error("Enabled = false, want true")
			}
		})
	}
}

func TestNBAModule_ValidateGame(t *testing.T) {
	module := basketball_nba.New(0)

	started, err := module.Interpret(startedBlock(4), models.TimezoneEastern)
	if err != nil {
		t.Fatalf("Interpret() error = %v", err)
	}
	if err := module.ValidateGame(started); err != nil {
		t.Errorf("ValidateGame(started) = %v, want nil", err)
	}

	scheduled := &models.Game{
		AwayTeam:   models.Team{Name: "Utah"},
		HomeTeam:   models.Team{Name: "Denver"},
		StatusText: "9:00p",
	}
	if err := module.ValidateGame(scheduled); err != nil {
		t.Errorf("ValidateGame(scheduled) = %v, want nil", err)
	}

	missingLeader := *started
	missingLeader.HomeTeam.Rebounds = models.Leader{}
	if err := module.ValidateGame(&missingLeader); err == nil {
		t.Error("ValidateGame() with missing leader = nil, want error")
	}

	scored := *scheduled
	scored.HomeTeam.Score = 4
	if err := module.ValidateGame(&scored); err == nil {
		t.Error("ValidateGame() for a scheduled game with a score = nil, want error")
	}

	blankStatus := *started
	blankStatus.StatusText = ""
	if err := module.ValidateGame(&blankStatus); err != nil {
		t.Errorf("ValidateGame() with blank status = %v, want nil", err)
	}
}

func TestGetTeamColor(t *testing.T) {
	tests := []struct {
		name   string
		want   models.Color
		wantOK bool
	}{
		{"LA Lakers", models.Color{R: 85, G: 37, B: 130}, true},
		{"Golden State", models.Color{R: 29, G: 66, B: 138}, true},
		{"Boston", models.Color{R: 0, G: 122, B: 51}, true},
		{"Seattle", models.Color{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := basketball_nba.GetTeamColor(tt.name)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("GetTeamColor(%q) = %+v, %v; want %+v, %v", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	league := []string{
		"Atlanta", "Boston", "Brooklyn", "Charlotte", "Chicago", "Cleveland",
		"Dallas", "Denver", "Detroit", "Golden State", "Houston", "Indiana",
		"LA Clippers", "LA Lakers", "Memphis", "Miami", "Milwaukee", "Minnesota",
		"New Orleans", "New York", "Oklahoma City", "Orlando", "Philadelphia", "Phoenix",
		"Portland", "Sacramento", "San Antonio", "Toronto", "Utah", "Washington",
	}
	for _, name := range league {
		if _, ok := basketball_nba.GetTeamColor(name); !ok {
			t.Errorf("GetTeamColor(%q) has no colour", name)
		}
	}
}

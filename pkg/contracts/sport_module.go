package contracts

import (
	"context"
	"time"

	"github.com/CobSammich/nba-scores-cli/pkg/models"
)

// SportModule turns one league's scoreboard page into games
type SportModule interface {
	// Identification
	GetSportKey() string       // "basketball_nba"
	GetDisplayName() string    // "NBA"
	GetScoreboardPath() string // "nba/scoreboard.asp"

	// Configuration
	GetPollingConfig() PollingConfig

	// Interpret converts one game block into a Game. It must be safe to call
	// concurrently for different blocks.
	Interpret(block models.RawBlock, tz models.Timezone) (*models.Game, error)

	// Validation
	ValidateGame(game *models.Game) error

	// Rendering support
	TeamColor(name string) (models.Color, bool)
}

// PollingConfig defines sport-specific polling behavior
type PollingConfig struct {
	RefreshInterval time.Duration // How often the page is re-fetched
	Enabled         bool
}

// ScoreboardSink receives every scoreboard the poller produces
type ScoreboardSink interface {
	Deliver(ctx context.Context, sb *models.Scoreboard) error
}

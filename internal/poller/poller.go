package poller

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/apex/log"

	"github.com/CobSammich/nba-scores-cli/internal/dates"
	"github.com/CobSammich/nba-scores-cli/internal/scrape"
	"github.com/CobSammich/nba-scores-cli/pkg/contracts"
	"github.com/CobSammich/nba-scores-cli/pkg/models"
)

// PageFetcher downloads the scoreboard page for a day
type PageFetcher interface {
	FetchScoreboard(ctx context.Context, path string, day time.Time) ([]byte, error)
}

// ScoreboardPoller polls the scoreboard page for one sport
type ScoreboardPoller struct {
	module   contracts.SportModule
	fetcher  PageFetcher
	timezone models.Timezone
	dateArg  string
	sinks    []contracts.ScoreboardSink
	now      func() time.Time

	mu     sync.RWMutex
	latest *models.Scoreboard
}

// NewScoreboardPoller creates a poller. dateArg is any form dates.Resolve
// accepts and is resolved again on every poll, so "t" follows midnight.
func NewScoreboardPoller(
	module contracts.SportModule,
	fetcher PageFetcher,
	tz models.Timezone,
	dateArg string,
	sinks ...contracts.ScoreboardSink,
) *ScoreboardPoller {
	return &ScoreboardPoller{
		module:   module,
		fetcher:  fetcher,
		timezone: tz,
		dateArg:  dateArg,
		sinks:    sinks,
		now:      time.Now,
	}
}

// AddSink registers another receiver for future polls
func (p *ScoreboardPoller) AddSink(sink contracts.ScoreboardSink) {
	p.sinks = append(p.sinks, sink)
}

// Run polls immediately and then on every refresh tick until ctx is done
func (p *ScoreboardPoller) Run(ctx context.Context) {
	sportKey := p.module.GetSportKey()
	interval := p.module.GetPollingConfig().RefreshInterval

	log.WithField("sport", sportKey).WithField("interval", interval).Info("starting poller")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	p.pollAndLog(ctx)

	for {
		select {
		case <-ctx.Done():
			log.WithField("sport", sportKey).Info("stopping poller")
			return
		case <-ticker.C:
			p.pollAndLog(ctx)
		}
	}
}

func (p *ScoreboardPoller) pollAndLog(ctx context.Context) {
	if _, err := p.PollOnce(ctx); err != nil && ctx.Err() == nil {
		log.WithField("sport", p.module.GetSportKey()).WithError(err).Error("poll failed")
	}
}

// PollOnce performs one polling cycle and delivers the result to every sink.
// Blocks that fail to interpret are reported in Scoreboard.Failures; only a
// failed fetch or an unparseable page is returned as an error.
func (p *ScoreboardPoller) PollOnce(ctx context.Context) (*models.Scoreboard, error) {
	sportKey := p.module.GetSportKey()
	logger := log.WithField("sport", sportKey)

	now := p.now()
	day, err := dates.Resolve(p.dateArg, now)
	if err != nil {
		return nil, err
	}

	logger.WithField("day", dates.ISODay(day)).Debug("fetching scoreboard")
	page, err := p.fetcher.FetchScoreboard(ctx, p.module.GetScoreboardPath(), day)
	if err != nil {
		return nil, fmt.Errorf("fetching scoreboard: %w", err)
	}

	blocks, err := scrape.ParseBlocks(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parsing scoreboard: %w", err)
	}

	games, failures := InterpretBlocks(p.module, blocks, p.timezone)
	for _, f := range failures {
		logger.WithField("block", f.Index).WithError(f.Err).Warn("skipping block")
	}

	sb := &models.Scoreboard{
		SportKey:  sportKey,
		Day:       day,
		FetchedAt: now,
		Games:     games,
		Failures:  failures,
	}

	p.mu.Lock()
	p.latest = sb
	p.mu.Unlock()

	logger.WithField("games", len(games)).WithField("failures", len(failures)).Debug("poll complete")

	for _, sink := range p.sinks {
		if err := sink.Deliver(ctx, sb); err != nil {
			logger.WithField("sink", fmt.Sprintf("%T", sink)).WithError(err).Error("sink delivery failed")
		}
	}

	return sb, nil
}

// Latest returns the most recent scoreboard, or nil before the first poll
func (p *ScoreboardPoller) Latest() *models.Scoreboard {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.latest
}

package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/CobSammich/nba-scores-cli/pkg/models"
)

// ChangeFilter decides whether a game is worth publishing and remembers
// what has already been published
type ChangeFilter interface {
	Changed(ctx context.Context, sportKey string, day time.Time, game models.Game) (bool, error)
	Mark(ctx context.Context, sportKey string, day time.Time, game models.Game) error
}

// StreamPublisher publishes game updates to Redis streams
type StreamPublisher struct {
	client *redis.Client
	filter ChangeFilter
}

// NewStreamPublisher creates a new stream publisher. A nil filter publishes
// every game on every poll.
func NewStreamPublisher(client *redis.Client, filter ChangeFilter) *StreamPublisher {
	return &StreamPublisher{
		client: client,
		filter: filter,
	}
}

// StreamKey returns the update stream for a sport
func StreamKey(sportKey string) string {
	return fmt.Sprintf("games.updates.%s", sportKey)
}

// Deliver implements contracts.ScoreboardSink by publishing every changed
// game. A game is marked only after it reaches the stream, so a failed
// publish is retried on the next poll. One failing game does not stop the
// rest of the board.
func (p *StreamPublisher) Deliver(ctx context.Context, sb *models.Scoreboard) error {
	var errs []error
	for _, game := range sb.Games {
		if err := p.deliverGame(ctx, sb, game); err != nil {
			errs = append(errs, fmt.Errorf("publishing %s: %w", game.Matchup(), err))
		}
	}
	return errors.Join(errs...)
}

func (p *StreamPublisher) deliverGame(ctx context.Context, sb *models.Scoreboard, game models.Game) error {
	if p.filter != nil {
		changed, err := p.filter.Changed(ctx, sb.SportKey, sb.Day, game)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
	}

	if err := p.PublishGameUpdate(ctx, sb.SportKey, game); err != nil {
		return err
	}

	if p.filter != nil {
		return p.filter.Mark(ctx, sb.SportKey, sb.Day, game)
	}
	return nil
}

// PublishGameUpdate publishes a game update to the sport-specific stream
func (p *StreamPublisher) PublishGameUpdate(ctx context.Context, sportKey string, game models.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("marshaling game update: %w", err)
	}

	// Publish to Redis stream
	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey(sportKey),
		Values: map[string]interface{}{
			"data":    string(data),
			"matchup": game.Matchup(),
			"status":  game.StatusText,
		},
	}).Err()
}

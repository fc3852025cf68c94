package dedup

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/CobSammich/nba-scores-cli/internal/dates"
	"github.com/CobSammich/nba-scores-cli/pkg/models"
)

// Deduplicator suppresses game updates whose rendered state has not changed
type Deduplicator struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDeduplicator creates a new deduplicator
func NewDeduplicator(client *redis.Client, ttl time.Duration) *Deduplicator {
	return &Deduplicator{
		client: client,
		ttl:    ttl,
	}
}

// Changed returns true if the game differs from the last version marked
// for its matchup on that day
func (d *Deduplicator) Changed(ctx context.Context, sportKey string, day time.Time, game models.Game) (bool, error) {
	fingerprint, err := Fingerprint(game)
	if err != nil {
		return false, err
	}

	previous, err := d.client.Get(ctx, dedupKey(sportKey, day, game.Matchup())).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, fmt.Errorf("failed to read dedup key: %w", err)
	}

	return previous != fingerprint, nil
}

// Mark records the game as published. Later calls to Changed report false
// until the game changes or the entry expires.
func (d *Deduplicator) Mark(ctx context.Context, sportKey string, day time.Time, game models.Game) error {
	fingerprint, err := Fingerprint(game)
	if err != nil {
		return err
	}

	if err := d.client.Set(ctx, dedupKey(sportKey, day, game.Matchup()), fingerprint, d.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set dedup key: %w", err)
	}
	return nil
}

// Fingerprint hashes everything a viewer can see about a game
func Fingerprint(game models.Game) (string, error) {
	data, err := json.Marshal(game)
	if err != nil {
		return "", fmt.Errorf("marshaling game: %w", err)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:16]), nil
}

// Key format: scoreboard:dedup:{sport}:{day}:{away@home}
func dedupKey(sportKey string, day time.Time, matchup string) string {
	return fmt.Sprintf("scoreboard:dedup:%s:%s:%s", sportKey, dates.ISODay(day), matchup)
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/CobSammich/nba-scores-cli/internal/dates"
	"github.com/CobSammich/nba-scores-cli/pkg/models"
)

// TTL constants
const (
	LiveScoreboardTTL  = 2 * time.Hour
	FinalScoreboardTTL = 6 * time.Hour
)

// ErrNotFound is returned when a key has expired or was never written
var ErrNotFound = errors.New("not found in cache")

// RedisWriter handles writing scoreboard snapshots to Redis
type RedisWriter struct {
	client *redis.Client
}

// NewRedisWriter creates a new Redis writer
func NewRedisWriter(client *redis.Client) *RedisWriter {
	return &RedisWriter{
		client: client,
	}
}

func scoreboardKey(sportKey string, day time.Time) string {
	return fmt.Sprintf("scoreboard:%s:%s", sportKey, dates.ISODay(day))
}

func gamesListKey(sportKey string, day time.Time) string {
	return scoreboardKey(sportKey, day) + ":games"
}

func gameKey(sportKey string, day time.Time, matchup string) string {
	return fmt.Sprintf("game:%s:%s:%s", sportKey, dates.ISODay(day), matchup)
}

// Deliver implements contracts.ScoreboardSink
func (w *RedisWriter) Deliver(ctx context.Context, sb *models.Scoreboard) error {
	return w.WriteScoreboard(ctx, sb)
}

// WriteScoreboard stores the snapshot, its matchup list and each game in one
// pipeline
func (w *RedisWriter) WriteScoreboard(ctx context.Context, sb *models.Scoreboard) error {
	data, err := json.Marshal(sb)
	if err != nil {
		return fmt.Errorf("marshaling scoreboard: %w", err)
	}

	ttl := scoreboardTTL(sb)
	listKey := gamesListKey(sb.SportKey, sb.Day)

	pipe := w.client.Pipeline()
	pipe.Set(ctx, scoreboardKey(sb.SportKey, sb.Day), data, ttl)

	pipe.Del(ctx, listKey) // Clear old list
	if len(sb.Games) > 0 {
		matchups := make([]interface{}, len(sb.Games))
		for i, game := range sb.Games {
			matchups[i] = game.Matchup()

			gameData, err := json.Marshal(game)
			if err != nil {
				return fmt.Errorf("marshaling game %s: %w", game.Matchup(), err)
			}
			pipe.Set(ctx, gameKey(sb.SportKey, sb.Day, game.Matchup()), gameData, ttl)
		}
		pipe.RPush(ctx, listKey, matchups...)
		pipe.Expire(ctx, listKey, ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("writing scoreboard: %w", err)
	}
	return nil
}

// scoreboardTTL keeps boards with games in progress for a shorter time
func scoreboardTTL(sb *models.Scoreboard) time.Duration {
	if sb.HasLiveGames() {
		return LiveScoreboardTTL
	}
	return FinalScoreboardTTL
}

// ReadScoreboard retrieves a snapshot from Redis
func (w *RedisWriter) ReadScoreboard(ctx context.Context, sportKey string, day time.Time) (*models.Scoreboard, error) {
	data, err := w.client.Get(ctx, scoreboardKey(sportKey, day)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var sb models.Scoreboard
	if err := json.Unmarshal(data, &sb); err != nil {
		return nil, fmt.Errorf("unmarshaling scoreboard: %w", err)
	}

	return &sb, nil
}

// ReadGame retrieves a single game by matchup ("Away@Home")
func (w *RedisWriter) ReadGame(ctx context.Context, sportKey string, day time.Time, matchup string) (*models.Game, error) {
	data, err := w.client.Get(ctx, gameKey(sportKey, day, matchup)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var game models.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, fmt.Errorf("unmarshaling game: %w", err)
	}

	return &game, nil
}

// ReadMatchups retrieves the matchup list of a day in page order
func (w *RedisWriter) ReadMatchups(ctx context.Context, sportKey string, day time.Time) ([]string, error) {
	return w.client.LRange(ctx, gamesListKey(sportKey, day), 0, -1).Result()
}

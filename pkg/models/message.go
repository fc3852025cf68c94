package models

import (
	"strings"
	"time"
)

// Message types for WebSocket communication
const (
	MessageTypeScoreboard  = "scoreboard"
	MessageTypeSubscribe   = "subscribe"
	MessageTypeUnsubscribe = "unsubscribe"
	MessageTypeHeartbeat   = "heartbeat"
	MessageTypeError       = "error"
)

// ClientMessage represents a message from client to server
type ClientMessage struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// ServerMessage represents a message from server to client
type ServerMessage struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ScoreboardUpdate is the payload of a scoreboard message, already narrowed
// to the games the receiving client subscribed to
type ScoreboardUpdate struct {
	SportKey  string    `json:"sport_key"`
	Day       string    `json:"day"`
	FetchedAt time.Time `json:"fetched_at"`
	Games     []Game    `json:"games"`
	Failures  int       `json:"failures"`
}

// SubscriptionFilter represents client subscription preferences
type SubscriptionFilter struct {
	Teams []string `json:"teams,omitempty"` // Filter by team display name
}

// IsEmpty reports whether the filter accepts every game
func (f SubscriptionFilter) IsEmpty() bool {
	return len(f.Teams) == 0
}

// Matches reports whether a game involves one of the filter's teams.
// Team names compare case-insensitively.
func (f SubscriptionFilter) Matches(game Game) bool {
	if f.IsEmpty() {
		return true
	}
	for _, team := range f.Teams {
		if strings.EqualFold(team, game.AwayTeam.Name) || strings.EqualFold(team, game.HomeTeam.Name) {
			return true
		}
	}
	return false
}

// Apply returns the games the filter accepts, in order
func (f SubscriptionFilter) Apply(games []Game) []Game {
	if f.IsEmpty() {
		return games
	}
	out := make([]Game, 0, len(games))
	for _, g := range games {
		if f.Matches(g) {
			out = append(out, g)
		}
	}
	return out
}

// ConnectionStats represents connection statistics
type ConnectionStats struct {
	ClientID          string    `json:"client_id"`
	ConnectedAt       time.Time `json:"connected_at"`
	MessagesSent      int64     `json:"messages_sent"`
	MessagesReceived  int64     `json:"messages_received"`
	LastMessageAt     time.Time `json:"last_message_at"`
	BufferSize        int       `json:"buffer_size"`
	BufferUtilization float64   `json:"buffer_utilization"` // Percentage
}

// ErrorMessage represents an error message
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

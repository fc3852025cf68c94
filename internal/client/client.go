package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/gorilla/websocket"

	"github.com/CobSammich/nba-scores-cli/internal/dates"
	"github.com/CobSammich/nba-scores-cli/pkg/models"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 512

	// SendBufferSize is the number of outbound messages queued per client
	SendBufferSize = 64
)

// Client represents a WebSocket client connection
type Client struct {
	ID               string
	conn             *websocket.Conn
	send             chan models.ServerMessage
	hub              Hub
	filter           models.SubscriptionFilter
	filterMu         sync.RWMutex
	connectedAt      time.Time
	messagesSent     int64
	messagesReceived int64
	lastMessageAt    time.Time
	closed           bool
	mu               sync.Mutex
}

// Hub defines the interface for the broadcast hub
type Hub interface {
	Unregister(client *Client)
}

// NewClient creates a new client instance
func NewClient(id string, conn *websocket.Conn, hub Hub) *Client {
	return &Client{
		ID:          id,
		conn:        conn,
		send:        make(chan models.ServerMessage, SendBufferSize),
		hub:         hub,
		connectedAt: time.Now(),
	}
}

// ReadPump pumps messages from the WebSocket connection to the client
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-ctx.Done():
			return
		default:
			var msg models.ClientMessage
			if err := c.conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.WithField("client", c.ID).WithError(err).Warn("unexpected close")
				}
				return
			}

			c.updateReceived()
			c.HandleMessage(msg)
		}
	}
}

// WritePump pumps messages from the hub to the WebSocket connection
func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				log.WithField("client", c.ID).WithError(err).Warn("write failed")
				return
			}

			c.updateSent()

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// TrySend queues a message without blocking. It returns false if the buffer
// is full or the client has been closed.
func (c *Client) TrySend(msg models.ServerMessage) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	select {
	case c.send <- msg:
		return true
	default:
		// Buffer full - client is too slow
		return false
	}
}

// Messages exposes the outbound queue; it is closed by Close
func (c *Client) Messages() <-chan models.ServerMessage {
	return c.send
}

// Close closes the outbound queue. It is safe to call more than once.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// SetFilter updates the client's subscription filter
func (c *Client) SetFilter(filter models.SubscriptionFilter) {
	c.filterMu.Lock()
	defer c.filterMu.Unlock()
	c.filter = filter
}

// GetFilter returns the client's current filter
func (c *Client) GetFilter() models.SubscriptionFilter {
	c.filterMu.RLock()
	defer c.filterMu.RUnlock()
	return c.filter
}

// ScoreboardFor narrows a scoreboard to the client's subscription. The
// second result is false when the filter leaves no games on a non-empty board.
func (c *Client) ScoreboardFor(sb *models.Scoreboard) (models.ScoreboardUpdate, bool) {
	filter := c.GetFilter()
	games := filter.Apply(sb.Games)

	update := models.ScoreboardUpdate{
		SportKey:  sb.SportKey,
		Day:       dates.ISODay(sb.Day),
		FetchedAt: sb.FetchedAt,
		Games:     games,
		Failures:  len(sb.Failures),
	}
	return update, len(games) > 0 || filter.IsEmpty()
}

// GetStats returns connection statistics
func (c *Client) GetStats() models.ConnectionStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	bufferUtilization := float64(len(c.send)) / float64(SendBufferSize) * 100.0

	return models.ConnectionStats{
		ClientID:          c.ID,
		ConnectedAt:       c.connectedAt,
		MessagesSent:      c.messagesSent,
		MessagesReceived:  c.messagesReceived,
		LastMessageAt:     c.lastMessageAt,
		BufferSize:        SendBufferSize,
		BufferUtilization: bufferUtilization,
	}
}

// HandleMessage processes a message from the client
func (c *Client) HandleMessage(msg models.ClientMessage) {
	switch msg.Type {
	case models.MessageTypeSubscribe:
		c.handleSubscribe(msg.Payload)
	case models.MessageTypeUnsubscribe:
		c.handleUnsubscribe()
	case models.MessageTypeHeartbeat:
		c.sendHeartbeat()
	default:
		c.sendError("unknown_message_type", fmt.Sprintf("unknown message type: %s", msg.Type))
	}
}

// handleSubscribe updates the client's filter based on subscription request
func (c *Client) handleSubscribe(payload map[string]interface{}) {
	filterJSON, err := json.Marshal(payload)
	if err != nil {
		c.sendError("invalid_filter", "failed to parse filter")
		return
	}

	var filter models.SubscriptionFilter
	if err := json.Unmarshal(filterJSON, &filter); err != nil {
		c.sendError("invalid_filter", "failed to parse filter")
		return
	}

	c.SetFilter(filter)
	log.WithField("client", c.ID).WithField("teams", filter.Teams).Info("subscribed")
}

// handleUnsubscribe clears the client's filter
func (c *Client) handleUnsubscribe() {
	c.SetFilter(models.SubscriptionFilter{})
	log.WithField("client", c.ID).Info("unsubscribed")
}

// sendHeartbeat sends a heartbeat response
func (c *Client) sendHeartbeat() {
	stats := c.GetStats()
	c.TrySend(models.ServerMessage{
		Type:      models.MessageTypeHeartbeat,
		Payload:   stats,
		Timestamp: time.Now(),
	})
}

// sendError sends an error message to the client
func (c *Client) sendError(code, message string) {
	c.TrySend(models.ServerMessage{
		Type: models.MessageTypeError,
		Payload: models.ErrorMessage{
			Code:    code,
			Message: message,
		},
		Timestamp: time.Now(),
	})
}

// updateSent increments the sent message counter
func (c *Client) updateSent() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messagesSent++
	c.lastMessageAt = time.Now()
}

// updateReceived increments the received message counter
func (c *Client) updateReceived() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messagesReceived++
	c.lastMessageAt = time.Now()
}

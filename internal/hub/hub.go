package hub

import (
	"context"
	"sync"
	"time"

	"github.com/apex/log"

	"github.com/CobSammich/nba-scores-cli/internal/client"
	"github.com/CobSammich/nba-scores-cli/pkg/models"
)

// Hub maintains the set of active clients and broadcasts scoreboards to them
type Hub struct {
	// Registered clients
	clients   map[*client.Client]bool
	clientsMu sync.RWMutex

	// Inbound scoreboards from the poller
	broadcast chan *models.Scoreboard

	// Register requests from clients
	register chan *client.Client

	// Unregister requests from clients
	unregister chan *client.Client

	// Closed when Run returns
	done chan struct{}

	// Latest scoreboard, sent to clients as they connect
	latest *models.Scoreboard

	// Metrics
	totalConnections int64
	totalMessages    int64
	droppedClients   int64
	metricsMu        sync.Mutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client.Client]bool),
		broadcast:  make(chan *models.Scoreboard, 16),
		register:   make(chan *client.Client),
		unregister: make(chan *client.Client),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run(ctx context.Context) {
	log.Info("hub started")

	// Start metrics reporter
	go h.reportMetrics(ctx)

	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case c := <-h.register:
			h.registerClient(c)

		case c := <-h.unregister:
			h.unregisterClient(c)

		case sb := <-h.broadcast:
			h.latest = sb
			h.broadcastScoreboard(sb)
		}
	}
}

// Register adds a client to the hub
func (h *Hub) Register(c *client.Client) {
	select {
	case h.register <- c:
	case <-h.done:
		c.Close()
	}
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(c *client.Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Deliver implements contracts.ScoreboardSink. It never blocks the poller;
// when the hub is backed up the scoreboard is dropped.
func (h *Hub) Deliver(ctx context.Context, sb *models.Scoreboard) error {
	select {
	case h.broadcast <- sb:
	default:
		// Broadcast buffer full - drop scoreboard
		log.WithField("sport", sb.SportKey).Warn("broadcast buffer full, dropping scoreboard")
	}
	return nil
}

// registerClient adds a client and sends it the latest scoreboard
func (h *Hub) registerClient(c *client.Client) {
	h.clientsMu.Lock()
	h.clients[c] = true
	total := len(h.clients)
	h.clientsMu.Unlock()

	h.incrementTotalConnections()
	log.WithField("client", c.ID).WithField("total", total).Info("client connected")

	if h.latest != nil {
		h.sendScoreboard(c, h.latest)
	}
}

// unregisterClient removes a client from the active clients map
func (h *Hub) unregisterClient(c *client.Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.Close()
		log.WithField("client", c.ID).WithField("total", len(h.clients)).Info("client disconnected")
	}
}

// broadcastScoreboard sends each client the part of the board it follows
func (h *Hub) broadcastScoreboard(sb *models.Scoreboard) {
	h.clientsMu.RLock()
	clients := make([]*client.Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	sent := 0
	dropped := 0

	for _, c := range clients {
		ok, delivered := h.sendScoreboard(c, sb)
		if !delivered {
			continue
		}
		if ok {
			sent++
		} else {
			dropped++
			// Client buffer full - they're too slow, disconnect them
			log.WithField("client", c.ID).Warn("client buffer full, disconnecting")
			h.dropClient(c)
		}
	}

	if sent > 0 {
		h.incrementTotalMessages()
	}

	if dropped > 0 {
		log.WithField("dropped", dropped).Warn("dropped slow clients")
	}
}

// sendScoreboard queues the filtered board for one client. delivered is
// false when the client's filter excludes every game.
func (h *Hub) sendScoreboard(c *client.Client, sb *models.Scoreboard) (ok, delivered bool) {
	update, wanted := c.ScoreboardFor(sb)
	if !wanted {
		return false, false
	}

	return c.TrySend(models.ServerMessage{
		Type:      models.MessageTypeScoreboard,
		Payload:   update,
		Timestamp: time.Now(),
	}), true
}

// dropClient unregisters a slow client from inside the run loop
func (h *Hub) dropClient(c *client.Client) {
	h.unregisterClient(c)

	h.metricsMu.Lock()
	h.droppedClients++
	h.metricsMu.Unlock()
}

// GetMetrics returns hub metrics
func (h *Hub) GetMetrics() map[string]interface{} {
	h.clientsMu.RLock()
	activeClients := len(h.clients)
	h.clientsMu.RUnlock()

	h.metricsMu.Lock()
	totalConnections := h.totalConnections
	totalMessages := h.totalMessages
	droppedClients := h.droppedClients
	h.metricsMu.Unlock()

	return map[string]interface{}{
		"active_clients":     activeClients,
		"total_connections":  totalConnections,
		"total_messages":     totalMessages,
		"dropped_clients":    droppedClients,
		"broadcast_capacity": cap(h.broadcast),
		"broadcast_usage":    len(h.broadcast),
	}
}

// GetClientCount returns the number of active clients
func (h *Hub) GetClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// shutdown closes all client connections
func (h *Hub) shutdown() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	log.WithField("clients", len(h.clients)).Info("shutting down hub")
	close(h.done)

	for c := range h.clients {
		c.Close()
		delete(h.clients, c)
	}
}

// reportMetrics periodically reports hub metrics
func (h *Hub) reportMetrics(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics := h.GetMetrics()
			log.WithFields(log.Fields{
				"clients":           metrics["active_clients"],
				"total_connections": metrics["total_connections"],
				"messages":          metrics["total_messages"],
			}).Debug("hub metrics")
		}
	}
}

// incrementTotalConnections safely increments the total connections counter
func (h *Hub) incrementTotalConnections() {
	h.metricsMu.Lock()
	defer h.metricsMu.Unlock()
	h.totalConnections++
}

// incrementTotalMessages safely increments the total messages counter
func (h *Hub) incrementTotalMessages() {
	h.metricsMu.Lock()
	defer h.metricsMu.Unlock()
	h.totalMessages++
}

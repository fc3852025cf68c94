package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/CobSammich/nba-scores-cli/internal/cache"
	"github.com/CobSammich/nba-scores-cli/internal/client"
	"github.com/CobSammich/nba-scores-cli/internal/dates"
)

// HandleHealth returns service health
// GET /health
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	health := map[string]interface{}{
		"status":         "healthy",
		"service":        "nba-scores",
		"active_clients": s.opts.Hub.GetClientCount(),
		"polled":         s.opts.Source.Latest() != nil,
	}

	writeJSON(w, http.StatusOK, health)
}

// HandleMetrics returns hub metrics
// GET /metrics
func (s *Server) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.opts.Hub.GetMetrics())
}

// HandleGetScoreboard returns the most recent poll
// GET /api/v1/scoreboard
func (s *Server) HandleGetScoreboard(w http.ResponseWriter, r *http.Request) {
	sb := s.opts.Source.Latest()
	if sb == nil {
		http.Error(w, "Scoreboard not polled yet", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusOK, sb)
}

// HandleGetScoreboardForDay returns a cached scoreboard for another day.
// The day accepts the same forms as the -date flag.
// GET /api/v1/scoreboard/{day}
func (s *Server) HandleGetScoreboardForDay(w http.ResponseWriter, r *http.Request) {
	day, err := dates.Resolve(chi.URLParam(r, "day"), time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if latest := s.opts.Source.Latest(); latest != nil && dates.ISODay(latest.Day) == dates.ISODay(day) {
		writeJSON(w, http.StatusOK, latest)
		return
	}

	if s.opts.Cache == nil {
		http.Error(w, "Scoreboard cache not configured", http.StatusServiceUnavailable)
		return
	}

	sb, err := s.opts.Cache.ReadScoreboard(r.Context(), s.opts.SportKey, day)
	if errors.Is(err, cache.ErrNotFound) {
		http.Error(w, "Scoreboard not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.WithError(err).Error("reading cached scoreboard")
		http.Error(w, "Error fetching scoreboard", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, sb)
}

// HandleGetGame returns the game a team plays in. Without a day query the
// latest board is searched; other days are read from the cache.
// GET /api/v1/games/{team}?day=
func (s *Server) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "team")
	if team == "" {
		http.Error(w, "team is required", http.StatusBadRequest)
		return
	}

	latest := s.opts.Source.Latest()

	if dayArg := r.URL.Query().Get("day"); dayArg != "" {
		day, err := dates.Resolve(dayArg, time.Now())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if latest == nil || dates.ISODay(latest.Day) != dates.ISODay(day) {
			s.getCachedGame(w, r, team, day)
			return
		}
	}

	if latest == nil {
		http.Error(w, "Scoreboard not polled yet", http.StatusServiceUnavailable)
		return
	}

	game, ok := latest.FindTeam(team)
	if !ok {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

// getCachedGame finds the team's matchup in the cached day and reads its game
func (s *Server) getCachedGame(w http.ResponseWriter, r *http.Request, team string, day time.Time) {
	if s.opts.Cache == nil {
		http.Error(w, "Scoreboard cache not configured", http.StatusServiceUnavailable)
		return
	}

	matchups, err := s.opts.Cache.ReadMatchups(r.Context(), s.opts.SportKey, day)
	if err != nil {
		log.WithError(err).Error("reading cached matchups")
		http.Error(w, "Error fetching game", http.StatusInternalServerError)
		return
	}

	for _, matchup := range matchups {
		if !matchupIncludes(matchup, team) {
			continue
		}

		game, err := s.opts.Cache.ReadGame(r.Context(), s.opts.SportKey, day, matchup)
		if errors.Is(err, cache.ErrNotFound) {
			break
		}
		if err != nil {
			log.WithError(err).WithField("matchup", matchup).Error("reading cached game")
			http.Error(w, "Error fetching game", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, game)
		return
	}

	http.Error(w, "Game not found", http.StatusNotFound)
}

// matchupIncludes reports whether team is either side of an "Away@Home" key
func matchupIncludes(matchup, team string) bool {
	away, home, ok := strings.Cut(matchup, "@")
	return ok && (strings.EqualFold(away, team) || strings.EqualFold(home, team))
}

// HandleWebSocket upgrades HTTP connections to WebSocket
// GET /ws
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	clientID := uuid.New().String()
	c := client.NewClient(clientID, conn, s.opts.Hub)

	s.opts.Hub.Register(c)

	// Start client pumps (use server context, not request context)
	go c.WritePump(s.ctx)
	go c.ReadPump(s.ctx)

	log.WithField("client", clientID).Debug("websocket connection established")
}

// checkOrigin accepts requests without an Origin header and those from the
// configured CORS origins
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range s.opts.CORSOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("encoding response")
	}
}

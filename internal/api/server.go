package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/CobSammich/nba-scores-cli/internal/hub"
	"github.com/CobSammich/nba-scores-cli/pkg/models"
)

// ScoreboardSource provides the scoreboard of the most recent poll
type ScoreboardSource interface {
	Latest() *models.Scoreboard
}

// SnapshotReader reads scoreboards cached for earlier polls
type SnapshotReader interface {
	ReadScoreboard(ctx context.Context, sportKey string, day time.Time) (*models.Scoreboard, error)
	ReadMatchups(ctx context.Context, sportKey string, day time.Time) ([]string, error)
	ReadGame(ctx context.Context, sportKey string, day time.Time, matchup string) (*models.Game, error)
}

// Options configures the API server
type Options struct {
	SportKey    string
	Source      ScoreboardSource
	Hub         *hub.Hub
	Cache       SnapshotReader // optional
	CORSOrigins []string
}

// Server serves the scoreboard over HTTP and WebSocket
type Server struct {
	router chi.Router
	opts   Options
	ctx    context.Context
}

// NewServer builds the router. ctx bounds the lifetime of WebSocket
// client pumps, which outlive the upgrade request.
func NewServer(ctx context.Context, opts Options) *Server {
	s := &Server{
		router: chi.NewRouter(),
		opts:   opts,
		ctx:    ctx,
	}
	s.routes()
	return s
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger)
	r.Use(chimiddleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// The upgraded connection must not inherit the request timeout
	r.Get("/ws", s.HandleWebSocket)

	r.Group(func(r chi.Router) {
		r.Use(chimiddleware.Timeout(30 * time.Second))

		r.Get("/health", s.HandleHealth)
		r.Get("/metrics", s.HandleMetrics)

		// API v1
		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/scoreboard", s.HandleGetScoreboard)
			r.Get("/scoreboard/{day}", s.HandleGetScoreboardForDay)
			r.Get("/games/{team}", s.HandleGetGame)
		})
	})
}

// Run serves on addr until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err

	case <-ctx.Done():
		// Give outstanding requests a deadline for completion
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			srv.Close()
			return err
		}
		return nil
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"
	"github.com/mattn/go-colorable"
	"github.com/redis/go-redis/v9"

	"github.com/CobSammich/nba-scores-cli/internal/api"
	"github.com/CobSammich/nba-scores-cli/internal/cache"
	"github.com/CobSammich/nba-scores-cli/internal/config"
	"github.com/CobSammich/nba-scores-cli/internal/dates"
	"github.com/CobSammich/nba-scores-cli/internal/dedup"
	"github.com/CobSammich/nba-scores-cli/internal/display"
	"github.com/CobSammich/nba-scores-cli/internal/hub"
	"github.com/CobSammich/nba-scores-cli/internal/keys"
	"github.com/CobSammich/nba-scores-cli/internal/logging"
	"github.com/CobSammich/nba-scores-cli/internal/poller"
	"github.com/CobSammich/nba-scores-cli/internal/providers/nbcsports"
	"github.com/CobSammich/nba-scores-cli/internal/publisher"
	"github.com/CobSammich/nba-scores-cli/internal/sports/basketball_nba"
	"github.com/CobSammich/nba-scores-cli/pkg/models"
)

func main() {
	dateArg := flag.String("date", "t", "day to show: t (today), T (tomorrow), y (yesterday), YYYYMMDD or YYYY-MM-DD")
	configPath := flag.String("config", "", "path to a YAML config file")
	serve := flag.Bool("serve", false, "serve the scoreboard over HTTP and WebSocket instead of drawing it")
	once := flag.Bool("once", false, "print the scoreboard once and exit")
	tzFlag := flag.String("tz", "", "time zone for start times (pacific, mountain, central, eastern)")
	flag.Parse()

	// Load configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}
	if *tzFlag != "" {
		tz, err := models.ParseTimezone(*tzFlag)
		if err != nil {
			log.WithError(err).Fatal("invalid -tz")
		}
		cfg.Timezone = tz
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	if _, err := dates.Resolve(*dateArg, time.Now()); err != nil {
		log.WithError(err).Fatal("invalid -date")
	}

	// The board owns the terminal, so logs go to the log file or nowhere
	logFormat := cfg.Log.Format
	if !*serve && cfg.Log.File == "" {
		logFormat = "discard"
	}
	logCloser, err := logging.Setup(cfg.Log.Level, logFormat, cfg.Log.File)
	if err != nil {
		log.WithError(err).Fatal("configuring logging")
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize components
	module := basketball_nba.New(cfg.RefreshInterval)
	pageClient := nbcsports.New(nbcsports.Options{
		BaseURL:   cfg.Scoreboard.BaseURL,
		UserAgent: cfg.Scoreboard.UserAgent,
		Timeout:   cfg.Scoreboard.Timeout,
	})
	scoreboardPoller := poller.NewScoreboardPoller(module, pageClient, cfg.Timezone, *dateArg)

	var snapshots *cache.RedisWriter
	if cfg.RedisEnabled() {
		redisClient, err := connectRedis(ctx, cfg.Redis.URL)
		if err != nil {
			log.WithError(err).Fatal("connecting to Redis")
		}
		defer redisClient.Close()

		snapshots = cache.NewRedisWriter(redisClient)
		scoreboardPoller.AddSink(snapshots)
		scoreboardPoller.AddSink(publisher.NewStreamPublisher(redisClient, dedup.NewDeduplicator(redisClient, cfg.Redis.DedupTTL)))
		log.WithField("url", cfg.Redis.URL).Info("connected to Redis")
	}

	switch {
	case *serve:
		err = runServer(ctx, cfg, module, scoreboardPoller, snapshots)
	case *once:
		err = runOnce(ctx, module, scoreboardPoller)
	default:
		runTerminal(ctx, module, scoreboardPoller)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "nba-scores: %v\n", err)
		logCloser.Close()
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadConfig(), nil
	}
	return config.LoadFile(path)
}

func connectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}

// runTerminal redraws the board on every poll until q is pressed or the
// process is signalled
func runTerminal(ctx context.Context, module *basketball_nba.NBAModule, p *poller.ScoreboardPoller) {
	renderer := display.NewTerminal(os.Stdout, colorable.NewColorableStdout(), module)
	p.AddSink(renderer)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	quit, restore := keys.WatchQuit(ctx, os.Stdin)
	defer restore()
	defer renderer.Restore()

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	select {
	case <-quit:
	case <-ctx.Done():
	}

	cancel()
	<-done
}

// runOnce polls a single time and prints the board without screen control
func runOnce(ctx context.Context, module *basketball_nba.NBAModule, p *poller.ScoreboardPoller) error {
	renderer := display.New(colorable.NewColorableStdout(), module, display.Options{})

	sb, err := p.PollOnce(ctx)
	if err != nil {
		return err
	}
	return renderer.Render(sb)
}

// runServer polls in the background and serves the latest board
func runServer(
	ctx context.Context,
	cfg *config.Config,
	module *basketball_nba.NBAModule,
	p *poller.ScoreboardPoller,
	snapshots *cache.RedisWriter,
) error {
	h := hub.NewHub()
	go h.Run(ctx)
	p.AddSink(h)

	opts := api.Options{
		SportKey:    module.GetSportKey(),
		Source:      p,
		Hub:         h,
		CORSOrigins: cfg.Server.CORSOrigins,
	}
	if snapshots != nil {
		opts.Cache = snapshots
	}
	server := api.NewServer(ctx, opts)

	go p.Run(ctx)

	log.WithField("addr", cfg.Server.Addr).Info("serving scoreboard")
	if err := server.Run(ctx, cfg.Server.Addr); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("shutdown complete")
	return nil
}

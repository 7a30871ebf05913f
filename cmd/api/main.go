// cmd/api/main.go

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"trendscope/internal/adapter/eventbus"
	"trendscope/internal/adapter/storage"
	"trendscope/internal/config"
	"trendscope/internal/server"
	"trendscope/internal/service/acquire"
	"trendscope/internal/service/generate"
	identityService "trendscope/internal/service/identity"
	"trendscope/internal/service/transform"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := newLogger(cfg)

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Optional event bus
	publisher, natsConn := initEventBus(cfg, logger)
	if natsConn != nil {
		defer natsConn.Close()
	}

	// In-memory repositories, seeded with demo data
	userStore := storage.NewUserStore()
	seedUsers(userStore, logger)
	postStore := storage.NewPostStore()

	// Identity service
	authService := identityService.NewService(identityService.Config{
		Users:       userStore,
		Tokens:      identityService.NewJWTTokenManager(cfg.Auth.TokenSecret),
		TokenExpiry: cfg.Auth.TokenExpiry,
	}, logger)

	// Trend acquisition pipeline
	apifyClient := acquire.NewApifyClient(cfg.Apify.BaseURL, cfg.Apify.Token)
	fetcher := acquire.NewFetcher(
		apifyClient,
		transform.NewTransformer(),
		acquire.DefaultPlatforms(),
		acquire.PollPolicy{
			MaxAttempts: cfg.Trend.PollMaxAttempts,
			Interval:    cfg.Trend.PollInterval,
		},
		publisher,
		logger,
	)

	// Content draft generator
	generator := generate.NewGenerator(generate.Config{
		APIKey: cfg.AI.APIKey,
		APIURL: cfg.AI.APIURL,
		Model:  cfg.AI.Model,
	}, logger)

	// Initialize HTTP server
	httpServer := server.NewServer(
		cfg.Server,
		authService,
		fetcher,
		generator,
		postStore,
		cfg.Trend.DefaultLimit,
		logger,
	)

	// Start HTTP server
	go func() {
		logger.Info().Str("host", cfg.Server.Host).Int("port", cfg.Server.Port).Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for shutdown signal
	<-shutdown
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown error")
	}

	logger.Info().Msg("shutdown complete")
}

// newLogger builds the process logger from config.
func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	if cfg.Environment == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return logger
}

// initEventBus connects to NATS when configured; otherwise events are
// discarded.
func initEventBus(cfg config.Config, logger zerolog.Logger) (eventbus.Publisher, *nats.Conn) {
	if cfg.NATS.URL == "" {
		return eventbus.NoopPublisher{}, nil
	}

	options := []nats.Option{
		nats.MaxReconnects(cfg.NATS.MaxReconnects),
		nats.ReconnectWait(cfg.NATS.ReconnectWait),
		nats.Timeout(cfg.NATS.ConnectTimeout),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	}

	nc, err := nats.Connect(cfg.NATS.URL, options...)
	if err != nil {
		logger.Warn().Err(err).Msg("unable to connect to NATS, fetch events disabled")
		return eventbus.NoopPublisher{}, nil
	}

	return eventbus.NewNATSPublisher(nc, cfg.Trend.EventsTopic), nc
}

// seedUsers registers the demo accounts served by the in-memory store.
func seedUsers(store *storage.UserStore, logger zerolog.Logger) {
	seeds := []struct {
		email    string
		name     string
		password string
	}{
		{"demo@trendscope.dev", "Demo User", "password123"},
		{"creator@trendscope.dev", "Content Creator", "letmepost"},
	}

	for _, s := range seeds {
		if err := store.Add(s.email, s.name, s.password); err != nil {
			logger.Error().Err(err).Str("email", s.email).Msg("failed to seed user")
		}
	}
}

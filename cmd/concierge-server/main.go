// Command concierge-server runs the SoundVision customer-support API.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/svavnc/concierge/pkg/assistant"
	"github.com/svavnc/concierge/pkg/catalog"
	"github.com/svavnc/concierge/pkg/chat"
	"github.com/svavnc/concierge/pkg/config"
	"github.com/svavnc/concierge/pkg/feedback"
	"github.com/svavnc/concierge/pkg/server"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer db.Close()

	chatStore, err := chat.NewSQLiteStore(db)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize chat store")
	}
	feedbackStore, err := feedback.NewSQLiteStore(db)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize feedback store")
	}

	if cfg.BackendURL == "" {
		log.Warn().Msg("CONCIERGE_BACKEND_URL is not set; chat will answer with the support-line fallback")
	}

	client := assistant.NewClient(cfg.BackendURL, cfg.BackendKey,
		assistant.WithTimeout(cfg.Timeout),
		assistant.WithLogger(log),
	)
	backend := assistant.NewCircuitBreaker(
		assistant.NewRetryClient(client, nil),
		5, 30*time.Second,
	)

	sessions := server.NewSessionManager(chatStore, backend, log)
	router := server.New(catalog.Default(), sessions, feedbackStore, log)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/opsdesk/support-agent-pipeline/internal/config"
	"github.com/opsdesk/support-agent-pipeline/internal/coordinator"
	"github.com/opsdesk/support-agent-pipeline/internal/httpapi"
	"github.com/opsdesk/support-agent-pipeline/internal/kafka"
	"github.com/opsdesk/support-agent-pipeline/internal/logging"
	"github.com/opsdesk/support-agent-pipeline/internal/session"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API and the optional Kafka ingestion consumer",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}

	coord := coordinator.New(cfg.Rules)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var sessions session.Store
	if cfg.Redis.URL != "" {
		redisStore, err := session.NewRedisStore(ctx, cfg.Redis.URL, 0)
		if err != nil {
			return err
		}
		defer redisStore.Close()
		sessions = redisStore
		log.Info().Msg("using redis session store")
	} else {
		sessions = session.NewMemoryStore()
		log.Info().Msg("using in-memory session store")
	}

	router := httpapi.NewRouter(coord, sessions)
	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	if cfg.KafkaEnabled() {
		consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID, coord, sessions)
		go func() {
			if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("consumer error")
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	cancel()
	log.Info().Msg("shutdown complete")
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"digiplay-sdk/config"
	"digiplay-sdk/internal/adapter/chainapi"
	"digiplay-sdk/internal/adapter/keyring"
	"digiplay-sdk/internal/adapter/storage/memory"
	redisStorage "digiplay-sdk/internal/adapter/storage/redis"
	"digiplay-sdk/internal/core/domain"
	"digiplay-sdk/internal/core/ports"
	"digiplay-sdk/internal/service"
	"digiplay-sdk/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("network", cfg.API.Network).
		Str("api", cfg.API.BaseURL).
		Msg("Starting Digiplay SDK demo")

	ctx := context.Background()

	// Chain API client: one adapter serves broadcast, events and health.
	chain := chainapi.NewClient(cfg.API, nil, logger.Component(log, "chain-api"))
	checkers := []ports.HealthChecker{chain}

	// Cursor store: Redis when reachable, in-memory otherwise.
	var cursors ports.CursorStore
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, poll cursors will not survive a restart")
		cursors = memory.NewCursorStore()
	} else {
		defer rdb.Close()
		cursors = redisStorage.NewCursorStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	}

	// Startup health checks are advisory: the SDK retries on its own.
	for _, hc := range checkers {
		if err := hc.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("dependency", hc.Name()).Msg("health check failed")
		} else {
			log.Info().Str("dependency", hc.Name()).Msg("health check passed")
		}
	}

	// Development key provider. Production integrations supply their own.
	keys := keyring.NewLocalKeyProvider(cfg.API.Network, logger.Component(log, "keyring"))

	sdk, err := service.NewSDK(ctx, cfg, keys, chain, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize SDK")
	}

	// Event poller with a handler that just logs what arrives.
	poller := service.NewEventPoller(chain, cursors, func(_ context.Context, ev domain.BlockchainEvent) error {
		log.Info().Str("event_id", ev.ID).Str("event_type", ev.Type).Msg("chain event received")
		return nil
	}, cfg.Events, logger.Component(log, "poller"))

	if err := poller.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start event poller")
	}

	result, err := sdk.SendPayment(ctx, "D8RecipientAddress0987654321", 0.1)
	if err != nil {
		log.Error().Err(err).Msg("payment failed")
	} else {
		log.Info().Str("txid", result.TxID).Str("status", result.Status).Msg("payment broadcast")
	}

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down")
	poller.Stop()
	<-poller.Done()
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Maou3434/TOTS/internal/battle"
	"github.com/Maou3434/TOTS/internal/config"
	"github.com/Maou3434/TOTS/internal/database"
	"github.com/Maou3434/TOTS/internal/database/postgres"
	"github.com/Maou3434/TOTS/internal/dungeon"
	"github.com/Maou3434/TOTS/internal/event"
	"github.com/Maou3434/TOTS/internal/forge"
	"github.com/Maou3434/TOTS/internal/gamedata"
	"github.com/Maou3434/TOTS/internal/loot"
	"github.com/Maou3434/TOTS/internal/metrics"
	"github.com/Maou3434/TOTS/internal/notify"
	"github.com/Maou3434/TOTS/internal/server"
	"github.com/Maou3434/TOTS/internal/sets"
	"github.com/Maou3434/TOTS/internal/team"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	tables, err := gamedata.Load(cfg.GamedataPath)
	if err != nil {
		slog.Error("Failed to load game data", "error", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Event bus with background retries and a dead-letter file
	deadLetter, err := event.NewDeadLetterWriter(cfg.DeadLetterPath)
	if err != nil {
		slog.Error("Failed to open dead letter file", "error", err)
		os.Exit(1)
	}
	defer deadLetter.Close()

	bus := event.NewResilientPublisher(event.NewMemoryBus(), event.ResilientConfig{DeadLetter: deadLetter})
	metrics.NewEventMetricsCollector().Register(bus)

	if cfg.DiscordEnabled() {
		notifier, err := notify.New(cfg.DiscordToken, cfg.DiscordChannelID)
		if err != nil {
			slog.Error("Failed to create Discord notifier", "error", err)
			os.Exit(1)
		}
		notifier.Register(bus)
		slog.Info("Discord review notifications enabled", "channel_id", cfg.DiscordChannelID)
	}

	// Repositories
	teamRepo := postgres.NewTeamRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	dungeonRepo := postgres.NewDungeonRepository(pool)
	mergeRepo := postgres.NewMergeRepository(pool)

	// Services
	teamService := team.NewService(teamRepo, inventoryRepo, tables, bus)
	dungeonService := dungeon.NewService(dungeonRepo, teamRepo, tables, loot.NewGenerator(tables, nil), bus)
	forgeService := forge.NewService(mergeRepo, inventoryRepo, tables, bus)
	battleService := battle.NewService(teamRepo, inventoryRepo, sets.NewIndex(tables.Sets))

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool, teamService, dungeonService, forgeService, battleService, tables)

	// Serve until interrupted, then drain in-flight requests
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := srv.Stop(ctx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/GambaBot_Go/internal/config"
	"github.com/osse101/GambaBot_Go/internal/database"
	"github.com/osse101/GambaBot_Go/internal/database/postgres"
	"github.com/osse101/GambaBot_Go/internal/leaderboard"
	"github.com/osse101/GambaBot_Go/internal/player"
	"github.com/osse101/GambaBot_Go/internal/polymarket"
	"github.com/osse101/GambaBot_Go/internal/scheduler"
	"github.com/osse101/GambaBot_Go/internal/server"
	"github.com/osse101/GambaBot_Go/internal/settlement"
	"github.com/osse101/GambaBot_Go/internal/wager"
	"github.com/osse101/GambaBot_Go/internal/worker"
)

const (
	dbMaxConnections = 10
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = 30 * time.Minute

	shutdownTimeout = 10 * time.Second

	settlementSweepInterval = 15 * time.Minute
	workerCount             = 2
	workerQueueSize         = 16
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	if err := config.ValidateEnv(); err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConnections, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Repositories
	betRepo := postgres.NewBetRepository(pool)

	// Services
	gammaClient := polymarket.NewClient(cfg.GammaBaseURL)
	playerService := player.NewService(betRepo)
	settlementService := settlement.NewService(betRepo, gammaClient)
	wagerService := wager.NewService(betRepo, gammaClient, settlementService)
	leaderboardService := leaderboard.NewService(betRepo, settlementService)

	// Background settlement sweep keeps standings fresh between requests
	workerPool := worker.NewPool(workerCount, workerQueueSize)
	workerPool.Start()
	defer workerPool.Stop()

	sched := scheduler.New(workerPool)
	sched.Schedule(settlementSweepInterval, worker.NewSettlementWorker(settlementService))
	defer sched.Stop()

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, pool, playerService, wagerService, leaderboardService)

	// Run the server until a signal arrives, then drain
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-sc:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

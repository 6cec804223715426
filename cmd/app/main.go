package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elizabethaxley/astrobotany/internal/bootstrap"
	"github.com/elizabethaxley/astrobotany/internal/config"
	"github.com/elizabethaxley/astrobotany/internal/database"
	"github.com/elizabethaxley/astrobotany/internal/garden"
	"github.com/elizabethaxley/astrobotany/internal/handler"
	"github.com/elizabethaxley/astrobotany/internal/item"
	"github.com/elizabethaxley/astrobotany/internal/leaderboard"
	"github.com/elizabethaxley/astrobotany/internal/plant"
	"github.com/elizabethaxley/astrobotany/internal/scheduler"
	"github.com/elizabethaxley/astrobotany/internal/server"
	"github.com/elizabethaxley/astrobotany/internal/session"
	"github.com/elizabethaxley/astrobotany/internal/store"
	"github.com/elizabethaxley/astrobotany/internal/user"
	"github.com/elizabethaxley/astrobotany/internal/worker"
)

const (
	dbMaxConns       = 10
	dbMaxIdle        = 5 * time.Minute
	dbMaxLife        = 30 * time.Minute
	shutdownDeadline = 10 * time.Second

	sweepWorkers   = 1
	sweepQueueSize = 4
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	handler.InitValidator()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdle, dbMaxLife)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	eventBus := bootstrap.InitializeEventSystem()
	repos := bootstrap.InitializeRepositories(dbPool)

	catalog := item.NewCatalog()
	if err := bootstrap.EnsureCatalog(context.Background(), repos.Item, catalog); err != nil {
		slog.Error("Failed to reconcile item catalog", "error", err)
		os.Exit(1)
	}

	sessions := session.NewStore(cfg.SessionCapacity, cfg.SessionTTL)

	services := server.Services{
		User:        user.NewService(repos.User, catalog),
		Plant:       plant.NewService(repos.Plant, catalog, eventBus),
		Garden:      garden.NewService(repos.Plant, repos.User, repos.Mail, catalog, eventBus),
		Store:       store.NewService(repos.User, catalog, sessions, eventBus),
		Leaderboard: leaderboard.NewService(repos.Plant, cfg.LeaderboardLimit),
		Sessions:    sessions,
	}

	srv := server.NewServer(cfg.Port, cfg.TrustedProxies, dbPool, services)

	pool := worker.NewPool(sweepWorkers, sweepQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(cfg.SweepInterval, plant.NewSweepJob(services.Plant, cfg.SweepInterval, cfg.SweepBatchSize))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig)
	}

	sched.Stop()
	pool.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownDeadline)
	defer cancel()
	bootstrap.GracefulShutdown(ctx, srv, dbPool)
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	syncapp "jira-pr-sync/internal/application/sync"
	"jira-pr-sync/internal/infrastructure/config"
	githubsource "jira-pr-sync/internal/infrastructure/github"
	"jira-pr-sync/internal/infrastructure/jira"
	"jira-pr-sync/internal/infrastructure/logger"
	"jira-pr-sync/internal/infrastructure/migrator"
	pg_uow "jira-pr-sync/internal/infrastructure/persistence/postgres/uow"
)

func main() {
	cfg := config.MustLoad()

	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName,
	)

	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := migrator.NewMigrator(cfg.Database.MigrationsPath, dsn, log)
	if err != nil {
		log.Error("Failed to create migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := m.Up(); err != nil {
		log.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	_ = m.Close()

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres pool config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	source, err := githubsource.NewActivitySource(cfg.GitHub.Token, cfg.GitHub.BaseURL, log)
	if err != nil {
		log.Error("Failed to create activity source", slog.String("error", err.Error()))
		os.Exit(1)
	}

	exec, err := jira.NewExecutor(jira.Options{
		BaseURL:    cfg.Jira.BaseURL,
		Username:   cfg.Jira.Username,
		APIToken:   cfg.Jira.APIToken,
		Timeout:    time.Duration(cfg.Jira.TimeoutSeconds) * time.Second,
		Throttle:   time.Duration(cfg.Jira.ThrottleMillis) * time.Millisecond,
		MaxElapsed: time.Duration(cfg.Jira.MaxElapsedSeconds) * time.Second,
	}, log)
	if err != nil {
		log.Error("Failed to create jira executor", slog.String("error", err.Error()))
		os.Exit(1)
	}

	uow := pg_uow.NewPostgresUOW(pool, log)
	service := syncapp.NewService(uow, source, exec, cfg.Rules, log)

	lookback := time.Duration(cfg.Sync.LookbackHours) * time.Hour
	interval := time.Duration(cfg.Sync.IntervalMinutes) * time.Minute

	log.Info("Starting sync loop", "repo", cfg.Sync.Repo, "interval", interval.String(), "lookback", lookback.String())

	runOnce := func() {
		result, err := service.RunCycle(ctx, cfg.Sync.Repo, lookback)
		if err != nil {
			log.Error("Sync cycle failed", slog.String("error", err.Error()))
			return
		}
		log.Info("Sync cycle done",
			"cycle_id", result.CycleID.String(),
			"examined", result.Examined,
			"applied", result.Applied,
			"skipped", result.Skipped,
			"failed", result.Failed,
		)
	}

	runOnce()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Shutting down sync loop...")
			return
		case <-ticker.C:
			runOnce()
		}
	}
}

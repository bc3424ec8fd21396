package database

import (
	"context"
	"fmt"
	"time"

	"startupbridge/internal/config"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// InitDB opens the pool, waits for postgres to accept connections, applies
// migrations and optionally seeds sample data.
func InitDB(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Manager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	fields := []zap.Field{
		zap.String("environment", cfg.Server.Environment),
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	}
	if params, err := cfg.Database.ParseDatabaseURL(); err == nil {
		fields = append(fields,
			zap.String("db_host", params["host"]),
			zap.String("db_name", params["database"]),
		)
	}
	logger.Info("Starting database initialization", fields...)

	manager, err := NewManager(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := waitForConnection(ctx, manager, cfg.Database.ConnectTimeout, logger); err != nil {
		manager.Close()
		return nil, fmt.Errorf("database failed to become reachable: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := manager.Migrate(); err != nil {
			manager.Close()
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
	}

	if cfg.Database.SeedSampleData {
		if err := SeedSampleData(ctx, manager); err != nil {
			manager.Close()
			return nil, fmt.Errorf("failed to seed sample data: %w", err)
		}
	}

	stats := manager.Stats()
	logger.Info("Database initialized successfully",
		zap.Bool("migrated", cfg.Database.AutoMigrate),
		zap.Bool("seeded", cfg.Database.SeedSampleData),
		zap.Int("open_connections", stats.OpenConnections),
	)

	return manager, nil
}

// waitForConnection pings with exponential backoff until timeout elapses
func waitForConnection(ctx context.Context, manager *Manager, timeout time.Duration, logger *zap.Logger) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxInterval = 10 * time.Second
	policy.MaxElapsedTime = timeout

	attempt := 0
	operation := func() error {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return manager.Ping(pingCtx)
	}

	notify := func(err error, next time.Duration) {
		logger.Debug("Database not reachable yet, retrying",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", next),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notify); err != nil {
		return err
	}

	logger.Info("Database is reachable", zap.Int("attempts", attempt))
	return nil
}

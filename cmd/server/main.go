// @title           StartupBridge API
// @version         1.0.0
// @description     Users, posts, messaging and activity logging for the StartupBridge platform.

// @contact.name   StartupBridge API Support

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @BasePath  /api

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"startupbridge/internal/config"
	"startupbridge/internal/database"
	"startupbridge/internal/repositories"
	"startupbridge/internal/response"
	"startupbridge/internal/router"
	"startupbridge/internal/services"
	"startupbridge/internal/utils/appinfo"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting StartupBridge API",
		zap.String("version", appinfo.GetVersion()),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
	)

	if err := run(cfg, logger); err != nil {
		logger.Error("Application stopped with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("Application shutdown completed")
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbManager, err := database.InitDB(ctx, cfg, logger.Named("database"))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			logger.Error("Failed to close database connections", zap.Error(err))
		} else {
			logger.Info("Database connections closed successfully")
		}
	}()

	repos, err := repositories.NewCollection(dbManager, logger.Named("repositories"))
	if err != nil {
		return fmt.Errorf("failed to initialize repositories: %w", err)
	}

	serviceCollection, err := services.NewServiceCollection(repos, cfg, logger.Named("services"))
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	responseConfig := response.DefaultConfig()
	responseConfig.MaskInternalErrors = cfg.IsProduction()
	responseConfig.PrettyJSON = cfg.IsDevelopment()

	handler := router.SetupRouter(&router.Dependencies{
		Services:        serviceCollection,
		Config:          cfg,
		ResponseBuilder: response.NewBuilder(responseConfig, logger),
		Logger:          logger,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server",
			zap.String("address", server.Addr),
			zap.String("health_check", "/health"),
			zap.String("metrics", "/metrics"),
			zap.String("docs", "/swagger/index.html"),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down application...", zap.Duration("graceful_timeout", cfg.Server.GracefulTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	} else {
		logger.Info("Server shutdown completed")
	}

	metrics := dbManager.Metrics()
	logger.Info("Final database metrics",
		zap.Int64("total_queries", metrics.QueryCount),
		zap.Int64("total_errors", metrics.ErrorCount),
		zap.Int64("slow_queries", metrics.SlowQueryCount),
		zap.Duration("avg_query_duration", metrics.AvgQueryDuration),
	)

	return nil
}

// initLogger builds the zap logger for the environment; LOG_LEVEL and LOG_FORMAT override the defaults
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapConfig zap.Config

	switch cfg.Server.Environment {
	case "production":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "staging":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	default:
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	if cfg.Logging.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Logging.Level, err)
		}
		zapConfig.Level = zap.NewAtomicLevelAt(level)
	}
	if cfg.Logging.Format != "" {
		zapConfig.Encoding = cfg.Logging.Format
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

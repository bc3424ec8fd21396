// file: internal/services/service_collection.go
package services

import (
	"context"
	"fmt"

	"startupbridge/internal/config"
	"startupbridge/internal/database"
	"startupbridge/internal/repositories"

	"go.uber.org/zap"
)

// ServiceCollection holds all services with their shared dependencies
type ServiceCollection struct {
	UserService      UserService
	PostService      PostService
	MessagingService MessagingService
	ActivityService  ActivityService

	Repositories *repositories.Collection
	Logger       *zap.Logger
	Config       *config.Config
}

// NewServiceCollection wires repositories into services
func NewServiceCollection(
	repos *repositories.Collection,
	cfg *config.Config,
	logger *zap.Logger,
) (*ServiceCollection, error) {
	if repos == nil {
		return nil, fmt.Errorf("repository collection is required")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	activity := NewActivityService(repos.Activity, logger.Named("activity"))

	sc := &ServiceCollection{
		UserService:      NewUserService(repos.User, activity, logger.Named("users")),
		PostService:      NewPostService(repos.Post, activity, logger.Named("posts"), cfg.Posts),
		MessagingService: NewMessagingService(repos.Conversation, repos.User, logger.Named("messaging")),
		ActivityService:  activity,
		Repositories:     repos,
		Logger:           logger,
		Config:           cfg,
	}

	logger.Info("Service collection initialized successfully")
	return sc, nil
}

// Health reports the state of the backing store
func (sc *ServiceCollection) Health(ctx context.Context) *database.HealthStatus {
	return sc.Repositories.HealthCheck(ctx)
}

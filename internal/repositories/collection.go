// file: internal/repositories/collection.go
package repositories

import (
	"context"
	"fmt"

	"startupbridge/internal/database"

	"go.uber.org/zap"
)

// Collection holds all repository instances for dependency injection
type Collection struct {
	User         UserRepository
	Post         PostRepository
	Conversation ConversationRepository
	Activity     ActivityRepository

	db     *database.Manager
	logger *zap.Logger
}

// NewCollection creates a new repository collection with all dependencies
func NewCollection(db *database.Manager, logger *zap.Logger) (*Collection, error) {
	if db == nil {
		return nil, fmt.Errorf("database manager is required")
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	collection := &Collection{
		User:         NewUserRepository(db, logger),
		Post:         NewPostRepository(db, logger),
		Conversation: NewConversationRepository(db, logger),
		Activity:     NewActivityRepository(db, logger),
		db:           db,
		logger:       logger,
	}

	logger.Info("Repository collection initialized successfully")

	return collection, nil
}

// HealthCheck reports database connectivity and query metrics
func (c *Collection) HealthCheck(ctx context.Context) *database.HealthStatus {
	return c.db.Health(ctx)
}

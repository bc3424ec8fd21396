// file: internal/repositories/activity_repository.go
package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"startupbridge/internal/database"
	"startupbridge/internal/models"

	"go.uber.org/zap"
)

// activityRepository implements ActivityRepository
type activityRepository struct {
	*BaseRepository
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *database.Manager, logger *zap.Logger) ActivityRepository {
	return &activityRepository{
		BaseRepository: NewBaseRepository(db, logger),
	}
}

// Create appends one activity row. The user reference is resolved by a
// subquery so an unknown uid yields NULL instead of an error.
func (r *activityRepository) Create(ctx context.Context, firebaseUID string, entry *models.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (user_id, action, data, level, user_agent, url, session_id)
		VALUES ((SELECT id FROM users WHERE firebase_uid = $1), $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, created_at`

	var data interface{}
	if len(entry.Data) > 0 {
		data = string(entry.Data)
	}

	var userID sql.NullInt64
	err := r.QueryRowContext(ctx, query,
		nullString(firebaseUID), entry.Action, data, entry.Level,
		nullString(entry.UserAgent), nullString(entry.URL), nullString(entry.SessionID),
	).Scan(&entry.ID, &userID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert activity log: %w", err)
	}

	if userID.Valid {
		entry.UserID = &userID.Int64
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

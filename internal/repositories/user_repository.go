// file: internal/repositories/user_repository.go
package repositories

import (
	"context"
	"fmt"

	"startupbridge/internal/database"
	"startupbridge/internal/models"

	"go.uber.org/zap"
)

const userColumns = `
	id, firebase_uid, email, name, role,
	COALESCE(company, ''), COALESCE(bio, ''), COALESCE(location, ''),
	COALESCE(profile_views, 0), COALESCE(connections, 0), COALESCE(rating, 0),
	created_at, updated_at`

// userRepository implements UserRepository
type userRepository struct {
	*BaseRepository
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.Manager, logger *zap.Logger) UserRepository {
	return &userRepository{
		BaseRepository: NewBaseRepository(db, logger),
	}
}

// Upsert inserts a user or overwrites the existing row with the same firebase uid
func (r *userRepository) Upsert(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (firebase_uid, email, name, role, company, bio, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (firebase_uid)
		DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			role = EXCLUDED.role,
			company = EXCLUDED.company,
			bio = EXCLUDED.bio,
			location = EXCLUDED.location,
			updated_at = CURRENT_TIMESTAMP
		RETURNING` + userColumns

	err := r.QueryRowContext(ctx, query,
		user.FirebaseUID, user.Email, user.Name, user.Role,
		user.Company, user.Bio, user.Location,
	).Scan(scanUserDest(user)...)
	if err != nil {
		r.GetLogger().Error("Failed to upsert user",
			zap.Error(err),
			zap.String("firebase_uid", user.FirebaseUID),
		)
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	r.GetLogger().Info("User upserted",
		zap.Int64("user_id", user.ID),
		zap.String("firebase_uid", user.FirebaseUID),
	)
	return nil
}

// GetByFirebaseUID returns nil, nil when no user has the uid
func (r *userRepository) GetByFirebaseUID(ctx context.Context, uid string) (*models.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE firebase_uid = $1`

	var user models.User
	if err := r.QueryRowContext(ctx, query, uid).Scan(scanUserDest(&user)...); err != nil {
		if r.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by firebase uid: %w", err)
	}

	return &user, nil
}

// GetIDByFirebaseUID resolves a firebase uid to the internal user id
func (r *userRepository) GetIDByFirebaseUID(ctx context.Context, uid string) (int64, error) {
	var id int64
	err := r.QueryRowContext(ctx, `SELECT id FROM users WHERE firebase_uid = $1`, uid).Scan(&id)
	if err != nil {
		if r.IsNotFound(err) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to resolve user id: %w", err)
	}
	return id, nil
}

// GetStats counts active posts, total views over all posts and accepted connections.
// Rating is left to the caller.
func (r *userRepository) GetStats(ctx context.Context, userID int64) (*models.UserStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM posts WHERE user_id = $1 AND status = 'active'),
			(SELECT COALESCE(SUM(views), 0) FROM posts WHERE user_id = $1),
			(SELECT COUNT(*) FROM user_connections
				WHERE (user1_id = $1 OR user2_id = $1) AND status = 'accepted')`

	var stats models.UserStats
	if err := r.QueryRowContext(ctx, query, userID).Scan(&stats.Posts, &stats.Views, &stats.Connections); err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}

	return &stats, nil
}

func scanUserDest(u *models.User) []interface{} {
	return []interface{}{
		&u.ID, &u.FirebaseUID, &u.Email, &u.Name, &u.Role,
		&u.Company, &u.Bio, &u.Location,
		&u.ProfileViews, &u.Connections, &u.Rating,
		&u.CreatedAt, &u.UpdatedAt,
	}
}

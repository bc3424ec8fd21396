// file: internal/repositories/post_repository.go
package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"startupbridge/internal/database"
	"startupbridge/internal/models"

	"go.uber.org/zap"
)

const postWithOwnerColumns = `
	p.id, p.type, p.title, p.description, p.category,
	p.funding_amount, p.loan_amount, p.interest_rate,
	COALESCE(p.status, 'active'), COALESCE(p.views, 0), COALESCE(p.responses, 0), p.created_at,
	u.name AS user_name, u.email AS user_email, COALESCE(u.company, '') AS user_company`

// postRepository implements PostRepository
type postRepository struct {
	*BaseRepository
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *database.Manager, logger *zap.Logger) PostRepository {
	return &postRepository{
		BaseRepository: NewBaseRepository(db, logger),
	}
}

// Create resolves the owner and inserts the post in a single statement
func (r *postRepository) Create(ctx context.Context, ownerUID string, post *models.Post) error {
	query := `
		INSERT INTO posts (user_id, type, title, description, category, funding_amount, loan_amount, interest_rate)
		SELECT u.id, $2, $3, $4, $5, $6::bigint, $7::bigint, $8::numeric
		FROM users u
		WHERE u.firebase_uid = $1
		RETURNING id, user_id, type, title, description, category,
			funding_amount, loan_amount, interest_rate,
			COALESCE(status, 'active'), COALESCE(views, 0), created_at`

	err := r.QueryRowContext(ctx, query,
		ownerUID, post.Type, post.Title, post.Description, post.Category,
		post.FundingAmount, post.LoanAmount, post.InterestRate,
	).Scan(
		&post.ID, &post.UserID, &post.Type, &post.Title, &post.Description, &post.Category,
		&post.FundingAmount, &post.LoanAmount, &post.InterestRate,
		&post.Status, &post.Views, &post.CreatedAt,
	)
	if err != nil {
		if r.IsNotFound(err) {
			return ErrUserNotFound
		}
		r.GetLogger().Error("Failed to create post",
			zap.Error(err),
			zap.String("firebase_uid", ownerUID),
			zap.String("type", post.Type),
		)
		return fmt.Errorf("failed to create post: %w", err)
	}

	r.GetLogger().Info("Post created",
		zap.Int64("post_id", post.ID),
		zap.Int64("user_id", post.UserID),
	)
	return nil
}

// List returns active posts matching every provided filter, newest first
func (r *postRepository) List(ctx context.Context, filter models.PostFilter) ([]*models.PostWithOwner, error) {
	where := &whereBuilder{}
	where.addRaw("p.status = 'active'")

	if filter.Type != "" {
		where.add("p.type = ?", filter.Type)
	}
	if filter.Category != "" {
		where.add("p.category = ?", filter.Category)
	}
	if filter.UserFirebaseUID != "" {
		where.add("u.firebase_uid = ?", filter.UserFirebaseUID)
	}
	if filter.Search != "" {
		where.add("(p.title ILIKE ? OR p.description ILIKE ? OR p.category ILIKE ?)", "%"+filter.Search+"%")
	}

	query := `SELECT` + postWithOwnerColumns + `
		FROM posts p
		JOIN users u ON p.user_id = u.id` + where.String()
	query += " ORDER BY p.created_at DESC LIMIT " + where.nextPlaceholder(filter.Limit)

	rows, err := r.QueryContext(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*models.PostWithOwner, 0)
	for rows.Next() {
		var p models.PostWithOwner
		if err := rows.Scan(scanPostWithOwnerDest(&p)...); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

// IncrementViewsAndGet bumps views and reads the post back in one transaction
func (r *postRepository) IncrementViewsAndGet(ctx context.Context, id int64) (*models.PostWithOwner, error) {
	if outOfSerialRange(id) {
		return nil, nil
	}

	var post *models.PostWithOwner

	err := r.WithTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`UPDATE posts SET views = COALESCE(views, 0) + 1 WHERE id = $1 AND status = 'active'`, id,
		); err != nil {
			return fmt.Errorf("failed to increment post views: %w", err)
		}

		query := `SELECT` + postWithOwnerColumns + `, u.firebase_uid
			FROM posts p
			JOIN users u ON p.user_id = u.id
			WHERE p.id = $1 AND p.status = 'active'`

		var p models.PostWithOwner
		dest := append(scanPostWithOwnerDest(&p), &p.UserFirebaseUID)
		if err := tx.QueryRowContext(ctx, query, id).Scan(dest...); err != nil {
			if r.IsNotFound(err) {
				return nil
			}
			return fmt.Errorf("failed to get post: %w", err)
		}

		post = &p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

func scanPostWithOwnerDest(p *models.PostWithOwner) []interface{} {
	return []interface{}{
		&p.ID, &p.Type, &p.Title, &p.Description, &p.Category,
		&p.FundingAmount, &p.LoanAmount, &p.InterestRate,
		&p.Status, &p.Views, &p.Responses, &p.CreatedAt,
		&p.UserName, &p.UserEmail, &p.UserCompany,
	}
}

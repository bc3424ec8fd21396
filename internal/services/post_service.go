// file: internal/services/post_service.go
package services

import (
	"context"
	"strings"

	"startupbridge/internal/config"
	"startupbridge/internal/models"
	"startupbridge/internal/repositories"

	"go.uber.org/zap"
)

// postService implements PostService
type postService struct {
	postRepo repositories.PostRepository
	activity ActivityService
	logger   *zap.Logger
	config   config.PostsConfig
}

// NewPostService creates a new post service
func NewPostService(
	postRepo repositories.PostRepository,
	activity ActivityService,
	logger *zap.Logger,
	cfg config.PostsConfig,
) PostService {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 20
	}
	if cfg.MaxLimit < cfg.DefaultLimit {
		cfg.MaxLimit = cfg.DefaultLimit
	}

	return &postService{
		postRepo: postRepo,
		activity: activity,
		logger:   logger,
		config:   cfg,
	}
}

// CreatePost inserts a post for the owner identified by req.FirebaseUID
func (s *postService) CreatePost(ctx context.Context, req *CreatePostRequest) (*models.Post, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	post := &models.Post{
		Type:          req.Type,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		FundingAmount: req.FundingAmount,
		LoanAmount:    req.LoanAmount,
		InterestRate:  req.InterestRate,
	}

	if err := s.postRepo.Create(ctx, req.FirebaseUID, post); err != nil {
		return nil, FromStoreError(err)
	}

	s.activity.Track(ctx, req.FirebaseUID, "post_created", map[string]interface{}{
		"post_id": post.ID,
		"type":    post.Type,
	})

	return post, nil
}

// ListPosts returns active posts matching the filters, newest first
func (s *postService) ListPosts(ctx context.Context, req *ListPostsRequest) ([]*models.PostWithOwner, error) {
	if req == nil {
		req = &ListPostsRequest{}
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	filter := models.PostFilter{
		Type:            strings.TrimSpace(req.Type),
		Category:        strings.TrimSpace(req.Category),
		UserFirebaseUID: strings.TrimSpace(req.UserFirebaseUID),
		Search:          strings.TrimSpace(req.Search),
		Limit:           s.clampLimit(req.Limit),
	}

	posts, err := s.postRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list posts", zap.Error(err))
		return nil, FromStoreError(err)
	}

	return posts, nil
}

// GetPost increments the view counter and returns the active post
func (s *postService) GetPost(ctx context.Context, id int64) (*models.PostWithOwner, error) {
	if id <= 0 {
		return nil, NewValidationError("invalid post ID", nil)
	}

	post, err := s.postRepo.IncrementViewsAndGet(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get post", zap.Error(err), zap.Int64("post_id", id))
		return nil, FromStoreError(err)
	}

	if post == nil {
		return nil, NewNotFoundError("Post not found")
	}

	return post, nil
}

func (s *postService) clampLimit(limit int) int {
	if limit <= 0 {
		return s.config.DefaultLimit
	}
	if limit > s.config.MaxLimit {
		return s.config.MaxLimit
	}
	return limit
}

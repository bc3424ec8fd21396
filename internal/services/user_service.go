// file: internal/services/user_service.go
package services

import (
	"context"
	"strings"

	"startupbridge/internal/models"
	"startupbridge/internal/repositories"

	"go.uber.org/zap"
)

// TODO: replace with an aggregate once a review entity exists
const placeholderRating = 4.5

// userService implements UserService
type userService struct {
	userRepo repositories.UserRepository
	activity ActivityService
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository, activity ActivityService, logger *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		activity: activity,
		logger:   logger,
	}
}

// UpsertUser inserts the profile or overwrites the one with the same firebase uid
func (s *userService) UpsertUser(ctx context.Context, req *UpsertUserRequest) (*models.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	user := &models.User{
		FirebaseUID: req.FirebaseUID,
		Email:       req.Email,
		Name:        req.Name,
		Role:        req.Role,
		Company:     req.Company,
		Bio:         req.Bio,
		Location:    req.Location,
	}

	if err := s.userRepo.Upsert(ctx, user); err != nil {
		s.logger.Error("Failed to upsert user",
			zap.Error(err),
			zap.String("firebase_uid", req.FirebaseUID),
		)
		return nil, FromStoreError(err)
	}

	s.activity.Track(ctx, user.FirebaseUID, "user_profile_created", map[string]interface{}{
		"email": user.Email,
		"role":  user.Role,
	})

	return user, nil
}

// GetUser returns the profile for a firebase uid
func (s *userService) GetUser(ctx context.Context, firebaseUID string) (*models.User, error) {
	if strings.TrimSpace(firebaseUID) == "" {
		return nil, NewValidationError("firebase_uid is required", nil)
	}

	user, err := s.userRepo.GetByFirebaseUID(ctx, firebaseUID)
	if err != nil {
		s.logger.Error("Failed to get user", zap.Error(err), zap.String("firebase_uid", firebaseUID))
		return nil, FromStoreError(err)
	}

	if user == nil {
		return nil, NewNotFoundError("User not found")
	}

	return user, nil
}

// GetUserStats returns the dashboard counters for a user
func (s *userService) GetUserStats(ctx context.Context, firebaseUID string) (*models.UserStats, error) {
	if strings.TrimSpace(firebaseUID) == "" {
		return nil, NewValidationError("firebase_uid is required", nil)
	}

	userID, err := s.userRepo.GetIDByFirebaseUID(ctx, firebaseUID)
	if err != nil {
		return nil, FromStoreError(err)
	}

	stats, err := s.userRepo.GetStats(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get user stats", zap.Error(err), zap.Int64("user_id", userID))
		return nil, FromStoreError(err)
	}

	stats.Rating = placeholderRating
	return stats, nil
}

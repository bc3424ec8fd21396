// file: internal/services/activity_service.go
package services

import (
	"context"
	"encoding/json"

	"startupbridge/internal/models"
	"startupbridge/internal/repositories"

	"go.uber.org/zap"
)

// activityService implements ActivityService
type activityService struct {
	activityRepo repositories.ActivityRepository
	logger       *zap.Logger
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo repositories.ActivityRepository, logger *zap.Logger) ActivityService {
	return &activityService{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// Record validates and appends an entry. Store failures are swallowed.
func (s *activityService) Record(ctx context.Context, req *LogActivityRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	level := req.Level
	if level == "" {
		level = models.LevelInfo
	}

	data := req.Data
	if string(data) == "null" {
		data = nil
	}

	entry := &models.ActivityLog{
		Action:    req.Action,
		Data:      data,
		Level:     level,
		UserAgent: req.UserAgent,
		URL:       req.URL,
		SessionID: req.SessionID,
	}

	if err := s.activityRepo.Create(ctx, req.FirebaseUID, entry); err != nil {
		s.logger.Warn("Failed to record activity",
			zap.Error(err),
			zap.String("action", req.Action),
			zap.String("firebase_uid", req.FirebaseUID),
		)
		return nil
	}

	s.logger.Debug("Activity recorded",
		zap.Int64("activity_id", entry.ID),
		zap.String("action", entry.Action),
	)
	return nil
}

// Track records a server side INFO entry
func (s *activityService) Track(ctx context.Context, firebaseUID, action string, data map[string]interface{}) {
	var payload json.RawMessage
	if data != nil {
		encoded, err := json.Marshal(data)
		if err != nil {
			s.logger.Warn("Failed to encode activity data", zap.Error(err), zap.String("action", action))
		} else {
			payload = encoded
		}
	}

	req := &LogActivityRequest{
		FirebaseUID: firebaseUID,
		Action:      action,
		Data:        payload,
		Level:       models.LevelInfo,
	}

	if err := s.Record(ctx, req); err != nil {
		s.logger.Warn("Rejected activity entry", zap.Error(err), zap.String("action", action))
	}
}

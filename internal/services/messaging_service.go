// file: internal/services/messaging_service.go
package services

import (
	"context"
	"strings"

	"startupbridge/internal/models"
	"startupbridge/internal/repositories"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// messagingService implements MessagingService
type messagingService struct {
	conversationRepo repositories.ConversationRepository
	userRepo         repositories.UserRepository
	logger           *zap.Logger
}

// NewMessagingService creates a new messaging service
func NewMessagingService(
	conversationRepo repositories.ConversationRepository,
	userRepo repositories.UserRepository,
	logger *zap.Logger,
) MessagingService {
	return &messagingService{
		conversationRepo: conversationRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// CreateConversation opens a conversation between all participants.
// Every participant must resolve; the sender defaults to the first one.
func (s *messagingService) CreateConversation(ctx context.Context, req *CreateConversationRequest) (*CreateConversationResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	participants := dedupe(req.Participants)

	sender := req.SenderFirebaseUID
	if sender == "" {
		sender = participants[0]
	} else if !slices.Contains(participants, sender) {
		return nil, NewValidationError("sender_firebase_uid must be one of the participants", nil)
	}

	conversationID, messageID, err := s.conversationRepo.CreateWithMessage(ctx, participants, sender, req.InitialMessage)
	if err != nil {
		s.logger.Warn("Failed to create conversation",
			zap.Error(err),
			zap.Strings("participants", participants),
		)
		return nil, FromStoreError(err)
	}

	return &CreateConversationResult{
		ConversationID: conversationID,
		MessageID:      messageID,
	}, nil
}

// ListConversations returns the user's active conversations, most recent first
func (s *messagingService) ListConversations(ctx context.Context, firebaseUID string) ([]*models.ConversationSummary, error) {
	if strings.TrimSpace(firebaseUID) == "" {
		return nil, NewValidationError("firebase_uid is required", nil)
	}

	userID, err := s.userRepo.GetIDByFirebaseUID(ctx, firebaseUID)
	if err != nil {
		return nil, FromStoreError(err)
	}

	conversations, err := s.conversationRepo.ListForUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list conversations", zap.Error(err), zap.Int64("user_id", userID))
		return nil, FromStoreError(err)
	}

	return conversations, nil
}

// ListMessages returns all messages of a conversation, oldest first
func (s *messagingService) ListMessages(ctx context.Context, conversationID int64) ([]*models.MessageWithSender, error) {
	if conversationID <= 0 {
		return nil, NewValidationError("invalid conversation ID", nil)
	}

	messages, err := s.conversationRepo.ListMessages(ctx, conversationID)
	if err != nil {
		s.logger.Error("Failed to list messages", zap.Error(err), zap.Int64("conversation_id", conversationID))
		return nil, FromStoreError(err)
	}

	return messages, nil
}

// SendMessage appends a message and refreshes the conversation summary atomically
func (s *messagingService) SendMessage(ctx context.Context, req *SendMessageRequest) (int64, error) {
	if err := validateRequest(req); err != nil {
		return 0, err
	}

	messageID, err := s.conversationRepo.AppendMessage(ctx, req.ConversationID, req.FirebaseUID, req.Text)
	if err != nil {
		s.logger.Warn("Failed to send message",
			zap.Error(err),
			zap.Int64("conversation_id", req.ConversationID),
		)
		return 0, FromStoreError(err)
	}

	return messageID, nil
}

// dedupe drops repeated ids, keeping the first occurrence
func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

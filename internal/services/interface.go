// file: internal/services/interface.go
package services

import (
	"context"

	"startupbridge/internal/models"
)

// ===============================
// CORE SERVICE INTERFACES
// ===============================

// UserService manages the user directory
type UserService interface {
	UpsertUser(ctx context.Context, req *UpsertUserRequest) (*models.User, error)
	GetUser(ctx context.Context, firebaseUID string) (*models.User, error)
	GetUserStats(ctx context.Context, firebaseUID string) (*models.UserStats, error)
}

// PostService manages the post board
type PostService interface {
	CreatePost(ctx context.Context, req *CreatePostRequest) (*models.Post, error)
	ListPosts(ctx context.Context, req *ListPostsRequest) ([]*models.PostWithOwner, error)
	// GetPost counts a view as a side effect of every read
	GetPost(ctx context.Context, id int64) (*models.PostWithOwner, error)
}

// MessagingService manages conversations and messages
type MessagingService interface {
	CreateConversation(ctx context.Context, req *CreateConversationRequest) (*CreateConversationResult, error)
	ListConversations(ctx context.Context, firebaseUID string) ([]*models.ConversationSummary, error)
	ListMessages(ctx context.Context, conversationID int64) ([]*models.MessageWithSender, error)
	SendMessage(ctx context.Context, req *SendMessageRequest) (int64, error)
}

// ActivityService appends to the activity log. Store failures are logged
// and never reach the caller.
type ActivityService interface {
	// Record returns an error only when req fails validation
	Record(ctx context.Context, req *LogActivityRequest) error
	// Track records a server side INFO entry
	Track(ctx context.Context, firebaseUID, action string, data map[string]interface{})
}

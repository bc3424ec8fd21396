package docs

import "startupbridge/internal/models"

// Response envelopes for Swagger documentation. Every body carries "success".

// ErrorResponse represents a failed request
type ErrorResponse struct {
	Success bool                   `json:"success" example:"false"`
	Error   string                 `json:"error" example:"User not found"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// SuccessResponse is the bare envelope returned by POST /activity
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// UserResponse wraps a user profile
type UserResponse struct {
	Success bool        `json:"success" example:"true"`
	User    models.User `json:"user"`
}

// UserStatsResponse wraps the dashboard counters of a user
type UserStatsResponse struct {
	Success bool             `json:"success" example:"true"`
	Stats   models.UserStats `json:"stats"`
}

// PostResponse wraps a newly created post
type PostResponse struct {
	Success bool        `json:"success" example:"true"`
	Post    models.Post `json:"post"`
}

// PostWithOwnerResponse wraps a post joined with its owner
type PostWithOwnerResponse struct {
	Success bool                 `json:"success" example:"true"`
	Post    models.PostWithOwner `json:"post"`
}

// PostListResponse wraps a filtered page of the board
type PostListResponse struct {
	Success bool                   `json:"success" example:"true"`
	Posts   []models.PostWithOwner `json:"posts"`
}

// ConversationCreatedResponse identifies a new conversation and its first message
type ConversationCreatedResponse struct {
	Success        bool  `json:"success" example:"true"`
	ConversationID int64 `json:"conversation_id" example:"10"`
	MessageID      int64 `json:"message_id" example:"100"`
}

// ConversationListResponse wraps a user's conversations
type ConversationListResponse struct {
	Success       bool                         `json:"success" example:"true"`
	Conversations []models.ConversationSummary `json:"conversations"`
}

// MessageListResponse wraps the messages of a conversation
type MessageListResponse struct {
	Success  bool                       `json:"success" example:"true"`
	Messages []models.MessageWithSender `json:"messages"`
}

// MessageSentResponse identifies an appended message
type MessageSentResponse struct {
	Success   bool  `json:"success" example:"true"`
	MessageID int64 `json:"message_id" example:"101"`
}

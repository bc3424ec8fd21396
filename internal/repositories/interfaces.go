// file: internal/repositories/interfaces.go
package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"startupbridge/internal/models"
)

// ===============================
// ERRORS
// ===============================

var (
	// ErrUserNotFound is returned when a firebase uid does not resolve to a user
	ErrUserNotFound = errors.New("user not found")

	// ErrConversationNotFound is returned when a conversation id does not exist
	ErrConversationNotFound = errors.New("conversation not found")
)

// UnresolvedParticipantsError lists conversation participants with no user row
type UnresolvedParticipantsError struct {
	Missing []string
}

func (e *UnresolvedParticipantsError) Error() string {
	return fmt.Sprintf("participants not found: %s", strings.Join(e.Missing, ", "))
}

// ===============================
// CORE REPOSITORY INTERFACES
// ===============================

// UserRepository defines the contract for user data operations
type UserRepository interface {
	// Upsert inserts the user or overwrites the mutable fields of the row with
	// the same firebase uid. The stored row is scanned back into user.
	Upsert(ctx context.Context, user *models.User) error
	GetByFirebaseUID(ctx context.Context, uid string) (*models.User, error)
	GetIDByFirebaseUID(ctx context.Context, uid string) (int64, error)
	GetStats(ctx context.Context, userID int64) (*models.UserStats, error)
}

// PostRepository defines the contract for post data operations
type PostRepository interface {
	// Create inserts a post owned by the user with the given firebase uid.
	// Returns ErrUserNotFound when the uid does not resolve.
	Create(ctx context.Context, ownerUID string, post *models.Post) error
	List(ctx context.Context, filter models.PostFilter) ([]*models.PostWithOwner, error)
	// IncrementViewsAndGet bumps the view counter and reads the active post in
	// one transaction. Returns nil, nil when the post is missing or not active.
	IncrementViewsAndGet(ctx context.Context, id int64) (*models.PostWithOwner, error)
}

// ConversationRepository defines the contract for messaging data operations
type ConversationRepository interface {
	// CreateWithMessage resolves participants, creates the conversation and
	// its first message atomically. participantUIDs must be distinct and
	// senderUID must be one of them.
	CreateWithMessage(ctx context.Context, participantUIDs []string, senderUID, text string) (conversationID, messageID int64, err error)
	ListForUser(ctx context.Context, userID int64) ([]*models.ConversationSummary, error)
	ListMessages(ctx context.Context, conversationID int64) ([]*models.MessageWithSender, error)
	// AppendMessage inserts the message and refreshes the conversation
	// summary in one transaction.
	AppendMessage(ctx context.Context, conversationID int64, senderUID, text string) (int64, error)
}

// ActivityRepository defines the contract for activity log persistence
type ActivityRepository interface {
	// Create appends the entry. A firebase uid that does not resolve is
	// stored as a NULL user reference.
	Create(ctx context.Context, firebaseUID string, entry *models.ActivityLog) error
}

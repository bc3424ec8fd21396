package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"startupbridge/internal/config"
	"startupbridge/internal/models"
	"startupbridge/internal/repositories"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var ctx = context.Background()

func requireServiceError(t *testing.T, err error, wantType string, wantStatus int) *ServiceError {
	t.Helper()
	require.Error(t, err)
	svcErr := GetServiceError(err)
	assert.Equal(t, wantType, svcErr.Type)
	assert.Equal(t, wantStatus, svcErr.GetStatusCode())
	return svcErr
}

// ===============================
// USERS
// ===============================

func TestUserService_UpsertUser(t *testing.T) {
	t.Run("stores profile and records activity", func(t *testing.T) {
		repo := &mockUserRepository{}
		activity := &mockActivityService{}
		svc := NewUserService(repo, activity, zap.NewNop())

		repo.On("Upsert", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.FirebaseUID == "uid-1" && u.Role == "advisor" && u.Company == ""
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = 42
		}).Return(nil)
		activity.On("Track", ctx, "uid-1", "user_profile_created", map[string]interface{}{
			"email": "ann@example.com",
			"role":  "advisor",
		}).Return()

		user, err := svc.UpsertUser(ctx, &UpsertUserRequest{
			FirebaseUID: "uid-1",
			Email:       "ann@example.com",
			Name:        "Ann",
			Role:        "advisor",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(42), user.ID)
		repo.AssertExpectations(t)
		activity.AssertExpectations(t)
	})

	t.Run("rejects invalid role before touching the store", func(t *testing.T) {
		repo := &mockUserRepository{}
		svc := NewUserService(repo, &mockActivityService{}, zap.NewNop())

		_, err := svc.UpsertUser(ctx, &UpsertUserRequest{
			FirebaseUID: "uid-1", Email: "ann@example.com", Name: "Ann", Role: "pirate",
		})

		svcErr := requireServiceError(t, err, ErrorTypeValidation, http.StatusBadRequest)
		assert.Contains(t, svcErr.Message, "role must be one of")
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("missing fields are a validation failure", func(t *testing.T) {
		repo := &mockUserRepository{}
		svc := NewUserService(repo, &mockActivityService{}, zap.NewNop())

		_, err := svc.UpsertUser(ctx, &UpsertUserRequest{FirebaseUID: "uid-1"})

		svcErr := requireServiceError(t, err, ErrorTypeValidation, http.StatusBadRequest)
		assert.Contains(t, svcErr.Message, "email is required")
		assert.Contains(t, svcErr.Message, "name is required")
	})

	t.Run("blank name is a validation failure", func(t *testing.T) {
		repo := &mockUserRepository{}
		svc := NewUserService(repo, &mockActivityService{}, zap.NewNop())

		_, err := svc.UpsertUser(ctx, &UpsertUserRequest{
			FirebaseUID: "uid-1", Email: " ann@example.com ", Name: "   ", Role: "investor",
		})

		svcErr := requireServiceError(t, err, ErrorTypeValidation, http.StatusBadRequest)
		assert.Equal(t, "name is required", svcErr.Message)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("constraint violation surfaces raw message", func(t *testing.T) {
		repo := &mockUserRepository{}
		activity := &mockActivityService{}
		svc := NewUserService(repo, activity, zap.NewNop())

		repo.On("Upsert", ctx, mock.Anything).Return(&pq.Error{
			Code:    "23505",
			Message: `duplicate key value violates unique constraint "users_email_key"`,
		})

		_, err := svc.UpsertUser(ctx, &UpsertUserRequest{
			FirebaseUID: "uid-2", Email: "ann@example.com", Name: "Ann", Role: "investor",
		})

		svcErr := requireServiceError(t, err, ErrorTypeConstraintViolation, http.StatusInternalServerError)
		assert.Contains(t, svcErr.Message, "users_email_key")
		activity.AssertNotCalled(t, "Track", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserService_GetUser(t *testing.T) {
	repo := &mockUserRepository{}
	svc := NewUserService(repo, &mockActivityService{}, zap.NewNop())

	repo.On("GetByFirebaseUID", ctx, "uid-1").Return(&models.User{ID: 1, FirebaseUID: "uid-1"}, nil)
	repo.On("GetByFirebaseUID", ctx, "ghost").Return(nil, nil)

	user, err := svc.GetUser(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	_, err = svc.GetUser(ctx, "ghost")
	svcErr := requireServiceError(t, err, ErrorTypeNotFound, http.StatusNotFound)
	assert.Equal(t, "User not found", svcErr.Message)
}

func TestUserService_GetUserStats(t *testing.T) {
	repo := &mockUserRepository{}
	svc := NewUserService(repo, &mockActivityService{}, zap.NewNop())

	repo.On("GetIDByFirebaseUID", ctx, "uid-1").Return(int64(9), nil)
	repo.On("GetStats", ctx, int64(9)).Return(&models.UserStats{Posts: 2, Views: 112, Connections: 1}, nil)
	repo.On("GetIDByFirebaseUID", ctx, "ghost").Return(int64(0), repositories.ErrUserNotFound)

	stats, err := svc.GetUserStats(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Posts)
	assert.Equal(t, int64(112), stats.Views)
	assert.Equal(t, 1, stats.Connections)
	assert.Equal(t, 4.5, stats.Rating)

	_, err = svc.GetUserStats(ctx, "ghost")
	requireServiceError(t, err, ErrorTypeNotFound, http.StatusNotFound)
}

// ===============================
// POSTS
// ===============================

func newTestPostService(repo *mockPostRepository, activity ActivityService) PostService {
	return NewPostService(repo, activity, zap.NewNop(), config.PostsConfig{DefaultLimit: 20, MaxLimit: 100})
}

func TestPostService_CreatePost(t *testing.T) {
	t.Run("creates and records activity", func(t *testing.T) {
		repo := &mockPostRepository{}
		activity := &mockActivityService{}
		svc := newTestPostService(repo, activity)
		funding := int64(5000000)

		repo.On("Create", ctx, "uid-2", mock.AnythingOfType("*models.Post")).Run(func(args mock.Arguments) {
			p := args.Get(2).(*models.Post)
			p.ID = 7
			p.Status = "active"
		}).Return(nil)
		activity.On("Track", ctx, "uid-2", "post_created", map[string]interface{}{
			"post_id": int64(7),
			"type":    "business-idea",
		}).Return()

		post, err := svc.CreatePost(ctx, &CreatePostRequest{
			FirebaseUID:   "uid-2",
			Type:          "business-idea",
			Title:         " AI-Powered Healthcare Platform ",
			Description:   "Early disease detection",
			Category:      "healthcare",
			FundingAmount: &funding,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), post.ID)
		assert.Equal(t, "AI-Powered Healthcare Platform", post.Title)
		assert.Equal(t, &funding, post.FundingAmount)
		activity.AssertExpectations(t)
	})

	t.Run("unknown owner", func(t *testing.T) {
		repo := &mockPostRepository{}
		svc := newTestPostService(repo, &mockActivityService{})
		repo.On("Create", ctx, "ghost", mock.Anything).Return(repositories.ErrUserNotFound)

		_, err := svc.CreatePost(ctx, &CreatePostRequest{
			FirebaseUID: "ghost", Type: "loan-offer", Title: "t", Description: "d", Category: "c",
		})

		svcErr := requireServiceError(t, err, ErrorTypeNotFound, http.StatusNotFound)
		assert.Equal(t, "User not found", svcErr.Message)
	})

	t.Run("invalid type", func(t *testing.T) {
		repo := &mockPostRepository{}
		svc := newTestPostService(repo, &mockActivityService{})

		_, err := svc.CreatePost(ctx, &CreatePostRequest{
			FirebaseUID: "uid", Type: "lottery", Title: "t", Description: "d", Category: "c",
		})

		requireServiceError(t, err, ErrorTypeValidation, http.StatusBadRequest)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("blank title", func(t *testing.T) {
		repo := &mockPostRepository{}
		svc := newTestPostService(repo, &mockActivityService{})

		_, err := svc.CreatePost(ctx, &CreatePostRequest{
			FirebaseUID: "uid", Type: "loan-offer", Title: " \t ", Description: "d", Category: "c",
		})

		svcErr := requireServiceError(t, err, ErrorTypeValidation, http.StatusBadRequest)
		assert.Equal(t, "title is required", svcErr.Message)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPostService_ListPosts_Limit(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{name: "default", requested: 0, want: 20},
		{name: "within range", requested: 5, want: 5},
		{name: "clamped", requested: 500, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockPostRepository{}
			svc := newTestPostService(repo, &mockActivityService{})

			repo.On("List", ctx, models.PostFilter{Search: "health", Limit: tt.want}).
				Return([]*models.PostWithOwner{}, nil)

			posts, err := svc.ListPosts(ctx, &ListPostsRequest{Search: " health ", Limit: tt.requested})
			require.NoError(t, err)
			assert.Empty(t, posts)
			repo.AssertExpectations(t)
		})
	}
}

func TestPostService_GetPost(t *testing.T) {
	repo := &mockPostRepository{}
	svc := newTestPostService(repo, &mockActivityService{})

	found := &models.PostWithOwner{Post: models.Post{ID: 3, Views: 6}}
	repo.On("IncrementViewsAndGet", ctx, int64(3)).Return(found, nil)
	repo.On("IncrementViewsAndGet", ctx, int64(4)).Return(nil, nil)

	post, err := svc.GetPost(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, post.Views)

	_, err = svc.GetPost(ctx, 4)
	svcErr := requireServiceError(t, err, ErrorTypeNotFound, http.StatusNotFound)
	assert.Equal(t, "Post not found", svcErr.Message)

	_, err = svc.GetPost(ctx, 0)
	requireServiceError(t, err, ErrorTypeValidation, http.StatusBadRequest)
}

// ===============================
// MESSAGING
// ===============================

func TestMessagingService_CreateConversation(t *testing.T) {
	t.Run("dedupes participants and defaults sender to first", func(t *testing.T) {
		convRepo := &mockConversationRepository{}
		svc := NewMessagingService(convRepo, &mockUserRepository{}, zap.NewNop())

		convRepo.On("CreateWithMessage", ctx, []string{"uidA", "uidB"}, "uidA", "hello").
			Return(int64(10), int64(100), nil)

		result, err := svc.CreateConversation(ctx, &CreateConversationRequest{
			Participants:   []string{"uidA", "uidB", "uidA"},
			InitialMessage: "hello",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(10), result.ConversationID)
		assert.Equal(t, int64(100), result.MessageID)
		convRepo.AssertExpectations(t)
	})

	t.Run("explicit sender", func(t *testing.T) {
		convRepo := &mockConversationRepository{}
		svc := NewMessagingService(convRepo, &mockUserRepository{}, zap.NewNop())

		convRepo.On("CreateWithMessage", ctx, []string{"uidA", "uidB"}, "uidB", "hello").
			Return(int64(11), int64(101), nil)

		_, err := svc.CreateConversation(ctx, &CreateConversationRequest{
			Participants:      []string{"uidA", "uidB"},
			InitialMessage:    "hello",
			SenderFirebaseUID: "uidB",
		})
		require.NoError(t, err)
		convRepo.AssertExpectations(t)
	})

	t.Run("sender outside participants", func(t *testing.T) {
		convRepo := &mockConversationRepository{}
		svc := NewMessagingService(convRepo, &mockUserRepository{}, zap.NewNop())

		_, err := svc.CreateConversation(ctx, &CreateConversationRequest{
			Participants:      []string{"uidA", "uidB"},
			InitialMessage:    "hello",
			SenderFirebaseUID: "uidC",
		})

		requireServiceError(t, err, ErrorTypeValidation, http.StatusBadRequest)
		convRepo.AssertNotCalled(t, "CreateWithMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty participants", func(t *testing.T) {
		svc := NewMessagingService(&mockConversationRepository{}, &mockUserRepository{}, zap.NewNop())

		_, err := svc.CreateConversation(ctx, &CreateConversationRequest{InitialMessage: "hello"})
		requireServiceError(t, err, ErrorTypeValidation, http.StatusBadRequest)
	})

	t.Run("blank participant", func(t *testing.T) {
		convRepo := &mockConversationRepository{}
		svc := NewMessagingService(convRepo, &mockUserRepository{}, zap.NewNop())

		_, err := svc.CreateConversation(ctx, &CreateConversationRequest{
			Participants:   []string{"   "},
			InitialMessage: "hello",
		})

		svcErr := requireServiceError(t, err, ErrorTypeValidation, http.StatusBadRequest)
		assert.Equal(t, "participants[0] is required", svcErr.Message)
		convRepo.AssertNotCalled(t, "CreateWithMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("blank initial message", func(t *testing.T) {
		convRepo := &mockConversationRepository{}
		svc := NewMessagingService(convRepo, &mockUserRepository{}, zap.NewNop())

		_, err := svc.CreateConversation(ctx, &CreateConversationRequest{
			Participants:   []string{"uidA"},
			InitialMessage: "  ",
		})

		svcErr := requireServiceError(t, err, ErrorTypeValidation, http.StatusBadRequest)
		assert.Equal(t, "initial_message is required", svcErr.Message)
		convRepo.AssertNotCalled(t, "CreateWithMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("participant ids are trimmed", func(t *testing.T) {
		convRepo := &mockConversationRepository{}
		svc := NewMessagingService(convRepo, &mockUserRepository{}, zap.NewNop())

		convRepo.On("CreateWithMessage", ctx, []string{"uidA", "uidB"}, "uidB", " hi ").
			Return(int64(12), int64(102), nil)

		_, err := svc.CreateConversation(ctx, &CreateConversationRequest{
			Participants:      []string{" uidA", "uidB ", "uidA"},
			InitialMessage:    " hi ",
			SenderFirebaseUID: " uidB",
		})
		require.NoError(t, err)
		convRepo.AssertExpectations(t)
	})

	t.Run("unresolved participant fails the whole operation", func(t *testing.T) {
		convRepo := &mockConversationRepository{}
		svc := NewMessagingService(convRepo, &mockUserRepository{}, zap.NewNop())

		convRepo.On("CreateWithMessage", ctx, []string{"uidA", "ghost"}, "uidA", "hello").
			Return(int64(0), int64(0), &repositories.UnresolvedParticipantsError{Missing: []string{"ghost"}})

		_, err := svc.CreateConversation(ctx, &CreateConversationRequest{
			Participants:   []string{"uidA", "ghost"},
			InitialMessage: "hello",
		})

		svcErr := requireServiceError(t, err, ErrorTypeNotFound, http.StatusNotFound)
		assert.Equal(t, []string{"ghost"}, svcErr.Details["missing"])
	})
}

func TestMessagingService_ListConversations(t *testing.T) {
	userRepo := &mockUserRepository{}
	convRepo := &mockConversationRepository{}
	svc := NewMessagingService(convRepo, userRepo, zap.NewNop())

	userRepo.On("GetIDByFirebaseUID", ctx, "uidA").Return(int64(1), nil)
	userRepo.On("GetIDByFirebaseUID", ctx, "ghost").Return(int64(0), repositories.ErrUserNotFound)
	convRepo.On("ListForUser", ctx, int64(1)).Return([]*models.ConversationSummary{{ID: 10}}, nil)

	conversations, err := svc.ListConversations(ctx, "uidA")
	require.NoError(t, err)
	require.Len(t, conversations, 1)

	_, err = svc.ListConversations(ctx, "ghost")
	requireServiceError(t, err, ErrorTypeNotFound, http.StatusNotFound)
	convRepo.AssertNumberOfCalls(t, "ListForUser", 1)
}

func TestMessagingService_SendMessage(t *testing.T) {
	convRepo := &mockConversationRepository{}
	svc := NewMessagingService(convRepo, &mockUserRepository{}, zap.NewNop())

	convRepo.On("AppendMessage", ctx, int64(10), "uidA", "ping").Return(int64(55), nil)
	convRepo.On("AppendMessage", ctx, int64(404), "uidA", "ping").Return(int64(0), repositories.ErrConversationNotFound)
	convRepo.On("AppendMessage", ctx, int64(10), "ghost", "ping").Return(int64(0), repositories.ErrUserNotFound)

	id, err := svc.SendMessage(ctx, &SendMessageRequest{ConversationID: 10, FirebaseUID: "uidA", Text: "ping"})
	require.NoError(t, err)
	assert.Equal(t, int64(55), id)

	_, err = svc.SendMessage(ctx, &SendMessageRequest{ConversationID: 404, FirebaseUID: "uidA", Text: "ping"})
	svcErr := requireServiceError(t, err, ErrorTypeNotFound, http.StatusNotFound)
	assert.Equal(t, "Conversation not found", svcErr.Message)

	_, err = svc.SendMessage(ctx, &SendMessageRequest{ConversationID: 10, FirebaseUID: "ghost", Text: "ping"})
	svcErr = requireServiceError(t, err, ErrorTypeNotFound, http.StatusNotFound)
	assert.Equal(t, "User not found", svcErr.Message)

	_, err = svc.SendMessage(ctx, &SendMessageRequest{ConversationID: 10, FirebaseUID: "uidA"})
	requireServiceError(t, err, ErrorTypeValidation, http.StatusBadRequest)

	_, err = svc.SendMessage(ctx, &SendMessageRequest{ConversationID: 10, FirebaseUID: "uidA", Text: " \n "})
	svcErr = requireServiceError(t, err, ErrorTypeValidation, http.StatusBadRequest)
	assert.Equal(t, "text is required", svcErr.Message)
	convRepo.AssertNumberOfCalls(t, "AppendMessage", 3)
}

// ===============================
// ACTIVITY
// ===============================

func TestActivityService_Record(t *testing.T) {
	t.Run("defaults level to INFO", func(t *testing.T) {
		repo := &mockActivityRepository{}
		svc := NewActivityService(repo, zap.NewNop())

		repo.On("Create", ctx, "uid-1", mock.MatchedBy(func(e *models.ActivityLog) bool {
			return e.Level == models.LevelInfo && e.UserAgent == "curl/8.0" && e.URL == "https://app.example.com/dashboard"
		})).Return(nil)

		err := svc.Record(ctx, &LogActivityRequest{
			FirebaseUID: "uid-1",
			Action:      "page_view",
			UserAgent:   "curl/8.0",
			URL:         "https://app.example.com/dashboard",
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("store failure is swallowed", func(t *testing.T) {
		repo := &mockActivityRepository{}
		svc := NewActivityService(repo, zap.NewNop())
		repo.On("Create", ctx, "", mock.Anything).Return(errors.New("connection refused"))

		assert.NoError(t, svc.Record(ctx, &LogActivityRequest{Action: "page_view", Level: "WARN"}))
	})

	t.Run("invalid level", func(t *testing.T) {
		repo := &mockActivityRepository{}
		svc := NewActivityService(repo, zap.NewNop())

		err := svc.Record(ctx, &LogActivityRequest{Action: "page_view", Level: "TRACE"})
		requireServiceError(t, err, ErrorTypeValidation, http.StatusBadRequest)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestActivityService_Track(t *testing.T) {
	repo := &mockActivityRepository{}
	svc := NewActivityService(repo, zap.NewNop())

	repo.On("Create", ctx, "uid-2", mock.MatchedBy(func(e *models.ActivityLog) bool {
		var data map[string]interface{}
		if err := json.Unmarshal(e.Data, &data); err != nil {
			return false
		}
		return e.Action == "post_created" && data["type"] == "loan-offer" && data["post_id"] == float64(3)
	})).Return(nil)

	svc.Track(ctx, "uid-2", "post_created", map[string]interface{}{"post_id": int64(3), "type": "loan-offer"})
	repo.AssertExpectations(t)
}

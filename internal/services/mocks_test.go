package services

import (
	"context"

	"startupbridge/internal/models"

	"github.com/stretchr/testify/mock"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Upsert(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) GetByFirebaseUID(ctx context.Context, uid string) (*models.User, error) {
	args := m.Called(ctx, uid)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) GetIDByFirebaseUID(ctx context.Context, uid string) (int64, error) {
	args := m.Called(ctx, uid)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) GetStats(ctx context.Context, userID int64) (*models.UserStats, error) {
	args := m.Called(ctx, userID)
	stats, _ := args.Get(0).(*models.UserStats)
	return stats, args.Error(1)
}

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Create(ctx context.Context, ownerUID string, post *models.Post) error {
	return m.Called(ctx, ownerUID, post).Error(0)
}

func (m *mockPostRepository) List(ctx context.Context, filter models.PostFilter) ([]*models.PostWithOwner, error) {
	args := m.Called(ctx, filter)
	posts, _ := args.Get(0).([]*models.PostWithOwner)
	return posts, args.Error(1)
}

func (m *mockPostRepository) IncrementViewsAndGet(ctx context.Context, id int64) (*models.PostWithOwner, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*models.PostWithOwner)
	return post, args.Error(1)
}

type mockConversationRepository struct {
	mock.Mock
}

func (m *mockConversationRepository) CreateWithMessage(ctx context.Context, participantUIDs []string, senderUID, text string) (int64, int64, error) {
	args := m.Called(ctx, participantUIDs, senderUID, text)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *mockConversationRepository) ListForUser(ctx context.Context, userID int64) ([]*models.ConversationSummary, error) {
	args := m.Called(ctx, userID)
	conversations, _ := args.Get(0).([]*models.ConversationSummary)
	return conversations, args.Error(1)
}

func (m *mockConversationRepository) ListMessages(ctx context.Context, conversationID int64) ([]*models.MessageWithSender, error) {
	args := m.Called(ctx, conversationID)
	messages, _ := args.Get(0).([]*models.MessageWithSender)
	return messages, args.Error(1)
}

func (m *mockConversationRepository) AppendMessage(ctx context.Context, conversationID int64, senderUID, text string) (int64, error) {
	args := m.Called(ctx, conversationID, senderUID, text)
	return args.Get(0).(int64), args.Error(1)
}

type mockActivityRepository struct {
	mock.Mock
}

func (m *mockActivityRepository) Create(ctx context.Context, firebaseUID string, entry *models.ActivityLog) error {
	return m.Called(ctx, firebaseUID, entry).Error(0)
}

type mockActivityService struct {
	mock.Mock
}

func (m *mockActivityService) Record(ctx context.Context, req *LogActivityRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockActivityService) Track(ctx context.Context, firebaseUID, action string, data map[string]interface{}) {
	m.Called(ctx, firebaseUID, action, data)
}

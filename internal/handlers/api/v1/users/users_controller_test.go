package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"startupbridge/internal/models"
	"startupbridge/internal/response"
	"startupbridge/internal/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) UpsertUser(ctx context.Context, req *services.UpsertUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserService) GetUser(ctx context.Context, firebaseUID string) (*models.User, error) {
	args := m.Called(ctx, firebaseUID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserService) GetUserStats(ctx context.Context, firebaseUID string) (*models.UserStats, error) {
	args := m.Called(ctx, firebaseUID)
	stats, _ := args.Get(0).(*models.UserStats)
	return stats, args.Error(1)
}

func newController(t *testing.T, svc *mockUserService) *UserController {
	logger := zaptest.NewLogger(t)
	return NewUserController(
		&services.ServiceCollection{UserService: svc},
		logger,
		response.NewBuilder(nil, logger),
	)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestUpsertUser(t *testing.T) {
	svc := new(mockUserService)
	svc.On("UpsertUser", mock.Anything, mock.MatchedBy(func(req *services.UpsertUserRequest) bool {
		return req.FirebaseUID == "uid-1" && req.Role == models.RoleInvestor
	})).Return(&models.User{ID: 1, FirebaseUID: "uid-1", Name: "Ada", Role: models.RoleInvestor}, nil)

	body := `{"firebase_uid":"uid-1","email":"ada@example.com","name":"Ada","role":"investor"}`
	rec := httptest.NewRecorder()
	newController(t, svc).UpsertUser(rec, httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, true, got["success"])
	user := got["user"].(map[string]interface{})
	assert.Equal(t, "uid-1", user["firebase_uid"])
	svc.AssertExpectations(t)
}

func TestUpsertUser_InvalidBody(t *testing.T) {
	svc := new(mockUserService)
	rec := httptest.NewRecorder()

	newController(t, svc).UpsertUser(rec, httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["success"])
	svc.AssertNotCalled(t, "UpsertUser", mock.Anything, mock.Anything)
}

func TestGetUser_NotFound(t *testing.T) {
	svc := new(mockUserService)
	svc.On("GetUser", mock.Anything, "ghost").Return(nil, services.NewNotFoundError("User not found"))

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/users/ghost", nil), map[string]string{"firebase_uid": "ghost"})
	rec := httptest.NewRecorder()
	newController(t, svc).GetUser(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeBody(t, rec)["error"])
}

func TestGetUserStats(t *testing.T) {
	svc := new(mockUserService)
	svc.On("GetUserStats", mock.Anything, "uid-1").
		Return(&models.UserStats{Posts: 2, Views: 40, Connections: 1, Rating: 4.5}, nil)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/users/uid-1/stats", nil), map[string]string{"firebase_uid": "uid-1"})
	rec := httptest.NewRecorder()
	newController(t, svc).GetUserStats(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	stats := decodeBody(t, rec)["stats"].(map[string]interface{})
	assert.Equal(t, float64(2), stats["posts"])
	assert.Equal(t, float64(40), stats["views"])
	assert.Equal(t, 4.5, stats["rating"])
}

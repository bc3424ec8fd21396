package users

import (
	"net/http"

	"startupbridge/internal/response"
	"startupbridge/internal/services"
	"startupbridge/internal/utils"

	"go.uber.org/zap"
)

// UserController handles the user directory endpoints
type UserController struct {
	serviceCollection *services.ServiceCollection
	logger            *zap.Logger
	responseBuilder   *response.Builder
}

// NewUserController creates a new user controller
func NewUserController(
	serviceCollection *services.ServiceCollection,
	logger *zap.Logger,
	responseBuilder *response.Builder,
) *UserController {
	return &UserController{
		serviceCollection: serviceCollection,
		logger:            logger,
		responseBuilder:   responseBuilder,
	}
}

// UpsertUser handles POST /api/users
func (c *UserController) UpsertUser(w http.ResponseWriter, r *http.Request) {
	var req services.UpsertUserRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		c.handleServiceError(w, r, err, "upsert user")
		return
	}

	user, err := c.serviceCollection.UserService.UpsertUser(r.Context(), &req)
	if err != nil {
		c.handleServiceError(w, r, err, "upsert user")
		return
	}

	c.logger.Info("User profile saved",
		zap.Int64("user_id", user.ID),
		zap.String("firebase_uid", user.FirebaseUID),
	)

	c.responseBuilder.WriteSuccess(w, r, response.Fields{"user": user})
}

// GetUser handles GET /api/users/{firebase_uid}
func (c *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	firebaseUID, err := utils.PathString(r, "firebase_uid")
	if err != nil {
		c.handleServiceError(w, r, err, "get user")
		return
	}

	user, err := c.serviceCollection.UserService.GetUser(r.Context(), firebaseUID)
	if err != nil {
		c.handleServiceError(w, r, err, "get user")
		return
	}

	c.responseBuilder.WriteSuccess(w, r, response.Fields{"user": user})
}

// GetUserStats handles GET /api/users/{firebase_uid}/stats
func (c *UserController) GetUserStats(w http.ResponseWriter, r *http.Request) {
	firebaseUID, err := utils.PathString(r, "firebase_uid")
	if err != nil {
		c.handleServiceError(w, r, err, "get user stats")
		return
	}

	stats, err := c.serviceCollection.UserService.GetUserStats(r.Context(), firebaseUID)
	if err != nil {
		c.handleServiceError(w, r, err, "get user stats")
		return
	}

	c.responseBuilder.WriteSuccess(w, r, response.Fields{"stats": stats})
}

func (c *UserController) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	c.logger.Debug("User request failed",
		zap.Error(err),
		zap.String("operation", operation),
		zap.String("path", r.URL.Path),
	)
	c.responseBuilder.WriteError(w, r, err)
}

package router

import (
	"net/http"

	"startupbridge/internal/handlers/api/v1/activity"
	"startupbridge/internal/handlers/api/v1/conversations"
	"startupbridge/internal/handlers/api/v1/posts"
	"startupbridge/internal/handlers/api/v1/users"
	"startupbridge/internal/response"
	"startupbridge/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// addAPIRoutes registers the JSON API under /api
func addAPIRoutes(api *mux.Router, serviceCollection *services.ServiceCollection, builder *response.Builder, logger *zap.Logger) {
	userController := users.NewUserController(serviceCollection, logger.Named("users_api"), builder)
	postController := posts.NewPostController(serviceCollection, logger.Named("posts_api"), builder)
	conversationController := conversations.NewConversationController(serviceCollection, logger.Named("conversations_api"), builder)
	activityController := activity.NewActivityController(serviceCollection, logger.Named("activity_api"), builder)

	// Users
	api.HandleFunc("/users", userController.UpsertUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{firebase_uid}", userController.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{firebase_uid}/stats", userController.GetUserStats).Methods(http.MethodGet)

	// Posts
	api.HandleFunc("/posts", postController.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts", postController.ListPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id:[0-9]+}", postController.GetPost).Methods(http.MethodGet)

	// Conversations
	api.HandleFunc("/conversations", conversationController.CreateConversation).Methods(http.MethodPost)
	api.HandleFunc("/conversations/{id:[0-9]+}/messages", conversationController.ListMessages).Methods(http.MethodGet)
	api.HandleFunc("/conversations/{id:[0-9]+}/messages", conversationController.SendMessage).Methods(http.MethodPost)
	api.HandleFunc("/conversations/{firebase_uid}", conversationController.ListConversations).Methods(http.MethodGet)

	// Activity
	api.HandleFunc("/activity", activityController.LogActivity).Methods(http.MethodPost)
}

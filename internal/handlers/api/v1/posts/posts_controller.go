package posts

import (
	"net/http"
	"strings"

	"startupbridge/internal/models"
	"startupbridge/internal/response"
	"startupbridge/internal/services"
	"startupbridge/internal/utils"

	"go.uber.org/zap"
)

// PostController handles the post board endpoints
type PostController struct {
	serviceCollection *services.ServiceCollection
	logger            *zap.Logger
	responseBuilder   *response.Builder
}

// NewPostController creates a new post controller
func NewPostController(
	serviceCollection *services.ServiceCollection,
	logger *zap.Logger,
	responseBuilder *response.Builder,
) *PostController {
	return &PostController{
		serviceCollection: serviceCollection,
		logger:            logger,
		responseBuilder:   responseBuilder,
	}
}

// CreatePost handles POST /api/posts
func (c *PostController) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req services.CreatePostRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		c.handleServiceError(w, r, err, "create post")
		return
	}

	post, err := c.serviceCollection.PostService.CreatePost(r.Context(), &req)
	if err != nil {
		c.handleServiceError(w, r, err, "create post")
		return
	}

	c.logger.Info("Post created via API",
		zap.Int64("post_id", post.ID),
		zap.String("type", post.Type),
		zap.String("firebase_uid", req.FirebaseUID),
	)

	c.responseBuilder.WriteSuccess(w, r, response.Fields{"post": post})
}

// ListPosts handles GET /api/posts?type&category&user_firebase_uid&search&limit
func (c *PostController) ListPosts(w http.ResponseWriter, r *http.Request) {
	limit, err := utils.QueryInt(r, "limit")
	if err != nil {
		c.handleServiceError(w, r, err, "list posts")
		return
	}

	query := r.URL.Query()
	req := &services.ListPostsRequest{
		Type:            strings.TrimSpace(query.Get("type")),
		Category:        strings.TrimSpace(query.Get("category")),
		UserFirebaseUID: strings.TrimSpace(query.Get("user_firebase_uid")),
		Search:          strings.TrimSpace(query.Get("search")),
		Limit:           limit,
	}

	posts, err := c.serviceCollection.PostService.ListPosts(r.Context(), req)
	if err != nil {
		c.handleServiceError(w, r, err, "list posts")
		return
	}
	if posts == nil {
		posts = []*models.PostWithOwner{}
	}

	c.responseBuilder.WriteSuccess(w, r, response.Fields{"posts": posts})
}

// GetPost handles GET /api/posts/{id}. Every successful read counts as a view.
func (c *PostController) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := utils.PathInt64(r, "id")
	if err != nil {
		c.handleServiceError(w, r, err, "get post")
		return
	}

	post, err := c.serviceCollection.PostService.GetPost(r.Context(), postID)
	if err != nil {
		c.handleServiceError(w, r, err, "get post")
		return
	}

	c.responseBuilder.WriteSuccess(w, r, response.Fields{"post": post})
}

func (c *PostController) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	c.logger.Debug("Post request failed",
		zap.Error(err),
		zap.String("operation", operation),
		zap.String("path", r.URL.Path),
	)
	c.responseBuilder.WriteError(w, r, err)
}

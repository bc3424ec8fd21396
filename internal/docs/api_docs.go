package docs

// Endpoint annotations consumed by `swag init`.

// UpsertUser godoc
// @Summary Create or update a user profile
// @Description Upserts the profile keyed by firebase_uid. Missing optional fields are stored as empty strings.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body services.UpsertUserRequest true "Profile"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse "Invalid body or role"
// @Failure 500 {object} ErrorResponse "Store failure or constraint violation"
// @Router /users [post]
func _() {}

// GetUser godoc
// @Summary Get a user profile
// @Tags Users
// @Produce json
// @Param firebase_uid path string true "Firebase UID"
// @Success 200 {object} UserResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /users/{firebase_uid} [get]
func _() {}

// GetUserStats godoc
// @Summary Get dashboard counters for a user
// @Description Counts the user's posts, their total views and accepted connections.
// @Tags Users
// @Produce json
// @Param firebase_uid path string true "Firebase UID"
// @Success 200 {object} UserStatsResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /users/{firebase_uid}/stats [get]
func _() {}

// CreatePost godoc
// @Summary Publish a post
// @Tags Posts
// @Accept json
// @Produce json
// @Param post body services.CreatePostRequest true "Post"
// @Success 200 {object} PostResponse
// @Failure 400 {object} ErrorResponse "Invalid body or post type"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /posts [post]
func _() {}

// ListPosts godoc
// @Summary List active posts, newest first
// @Tags Posts
// @Produce json
// @Param type query string false "Post type"
// @Param category query string false "Category"
// @Param user_firebase_uid query string false "Owner firebase UID"
// @Param search query string false "Case-insensitive match on title, description or category"
// @Param limit query int false "Maximum rows (default 20, capped at 100)"
// @Success 200 {object} PostListResponse
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Router /posts [get]
func _() {}

// GetPost godoc
// @Summary Get a post and count a view
// @Tags Posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} PostWithOwnerResponse
// @Failure 404 {object} ErrorResponse "Post not found"
// @Router /posts/{id} [get]
func _() {}

// CreateConversation godoc
// @Summary Open a conversation with a first message
// @Tags Conversations
// @Accept json
// @Produce json
// @Param conversation body services.CreateConversationRequest true "Participants and first message"
// @Success 200 {object} ConversationCreatedResponse
// @Failure 400 {object} ErrorResponse "Empty participants or message"
// @Failure 404 {object} ErrorResponse "Participants not found"
// @Router /conversations [post]
func _() {}

// ListConversations godoc
// @Summary List a user's conversations, most recent first
// @Tags Conversations
// @Produce json
// @Param firebase_uid path string true "Firebase UID"
// @Success 200 {object} ConversationListResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /conversations/{firebase_uid} [get]
func _() {}

// ListMessages godoc
// @Summary List the messages of a conversation, oldest first
// @Tags Conversations
// @Produce json
// @Param id path int true "Conversation ID"
// @Success 200 {object} MessageListResponse
// @Router /conversations/{id}/messages [get]
func _() {}

// SendMessage godoc
// @Summary Append a message to a conversation
// @Tags Conversations
// @Accept json
// @Produce json
// @Param id path int true "Conversation ID"
// @Param message body services.SendMessageRequest true "Sender and text"
// @Success 200 {object} MessageSentResponse
// @Failure 404 {object} ErrorResponse "User or conversation not found"
// @Router /conversations/{id}/messages [post]
func _() {}

// LogActivity godoc
// @Summary Record a client activity entry
// @Description User-Agent and Referer are read from the request headers. Storage failures are not reported.
// @Tags Activity
// @Accept json
// @Produce json
// @Param entry body services.LogActivityRequest true "Activity entry"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid body"
// @Router /activity [post]
func _() {}

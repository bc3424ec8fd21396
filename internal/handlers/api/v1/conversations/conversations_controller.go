package conversations

import (
	"net/http"

	"startupbridge/internal/models"
	"startupbridge/internal/response"
	"startupbridge/internal/services"
	"startupbridge/internal/utils"

	"go.uber.org/zap"
)

// ConversationController handles the messaging endpoints
type ConversationController struct {
	serviceCollection *services.ServiceCollection
	logger            *zap.Logger
	responseBuilder   *response.Builder
}

// NewConversationController creates a new conversation controller
func NewConversationController(
	serviceCollection *services.ServiceCollection,
	logger *zap.Logger,
	responseBuilder *response.Builder,
) *ConversationController {
	return &ConversationController{
		serviceCollection: serviceCollection,
		logger:            logger,
		responseBuilder:   responseBuilder,
	}
}

// CreateConversation handles POST /api/conversations
func (c *ConversationController) CreateConversation(w http.ResponseWriter, r *http.Request) {
	var req services.CreateConversationRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		c.handleServiceError(w, r, err, "create conversation")
		return
	}

	result, err := c.serviceCollection.MessagingService.CreateConversation(r.Context(), &req)
	if err != nil {
		c.handleServiceError(w, r, err, "create conversation")
		return
	}

	c.responseBuilder.WriteSuccess(w, r, response.Fields{
		"conversation_id": result.ConversationID,
		"message_id":      result.MessageID,
	})
}

// ListConversations handles GET /api/conversations/{firebase_uid}
func (c *ConversationController) ListConversations(w http.ResponseWriter, r *http.Request) {
	firebaseUID, err := utils.PathString(r, "firebase_uid")
	if err != nil {
		c.handleServiceError(w, r, err, "list conversations")
		return
	}

	conversations, err := c.serviceCollection.MessagingService.ListConversations(r.Context(), firebaseUID)
	if err != nil {
		c.handleServiceError(w, r, err, "list conversations")
		return
	}
	if conversations == nil {
		conversations = []*models.ConversationSummary{}
	}

	c.responseBuilder.WriteSuccess(w, r, response.Fields{"conversations": conversations})
}

// ListMessages handles GET /api/conversations/{id}/messages
func (c *ConversationController) ListMessages(w http.ResponseWriter, r *http.Request) {
	conversationID, err := utils.PathInt64(r, "id")
	if err != nil {
		c.handleServiceError(w, r, err, "list messages")
		return
	}

	messages, err := c.serviceCollection.MessagingService.ListMessages(r.Context(), conversationID)
	if err != nil {
		c.handleServiceError(w, r, err, "list messages")
		return
	}
	if messages == nil {
		messages = []*models.MessageWithSender{}
	}

	c.responseBuilder.WriteSuccess(w, r, response.Fields{"messages": messages})
}

// SendMessage handles POST /api/conversations/{id}/messages
func (c *ConversationController) SendMessage(w http.ResponseWriter, r *http.Request) {
	conversationID, err := utils.PathInt64(r, "id")
	if err != nil {
		c.handleServiceError(w, r, err, "send message")
		return
	}

	var req services.SendMessageRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		c.handleServiceError(w, r, err, "send message")
		return
	}
	req.ConversationID = conversationID

	messageID, err := c.serviceCollection.MessagingService.SendMessage(r.Context(), &req)
	if err != nil {
		c.handleServiceError(w, r, err, "send message")
		return
	}

	c.responseBuilder.WriteSuccess(w, r, response.Fields{"message_id": messageID})
}

func (c *ConversationController) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	c.logger.Debug("Messaging request failed",
		zap.Error(err),
		zap.String("operation", operation),
		zap.String("path", r.URL.Path),
	)
	c.responseBuilder.WriteError(w, r, err)
}

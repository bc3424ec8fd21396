// file: internal/services/types.go
package services

import (
	"encoding/json"
	"errors"
	"strings"

	"startupbridge/internal/validation"
)

// ===============================
// USER REQUESTS
// ===============================

// normalizer is implemented by requests whose fields are trimmed before validation
type normalizer interface {
	normalize()
}

// UpsertUserRequest creates or overwrites a profile keyed by firebase uid
type UpsertUserRequest struct {
	FirebaseUID string `json:"firebase_uid" validate:"required,max=255"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Name        string `json:"name" validate:"required,max=255"`
	Role        string `json:"role" validate:"required,user_role"`
	Company     string `json:"company,omitempty" validate:"max=255"`
	Bio         string `json:"bio,omitempty"`
	Location    string `json:"location,omitempty" validate:"max=255"`
}

func (r *UpsertUserRequest) normalize() {
	r.FirebaseUID = strings.TrimSpace(r.FirebaseUID)
	r.Email = strings.TrimSpace(r.Email)
	r.Name = strings.TrimSpace(r.Name)
	r.Role = strings.TrimSpace(r.Role)
	r.Company = strings.TrimSpace(r.Company)
	r.Location = strings.TrimSpace(r.Location)
}

// ===============================
// POST REQUESTS
// ===============================

// CreatePostRequest publishes a post on behalf of a user
type CreatePostRequest struct {
	FirebaseUID   string   `json:"firebase_uid" validate:"required"`
	Type          string   `json:"type" validate:"required,post_type"`
	Title         string   `json:"title" validate:"required,max=255"`
	Description   string   `json:"description" validate:"required"`
	Category      string   `json:"category" validate:"required,max=100"`
	FundingAmount *int64   `json:"funding_amount,omitempty" validate:"omitempty,gte=0"`
	LoanAmount    *int64   `json:"loan_amount,omitempty" validate:"omitempty,gte=0"`
	InterestRate  *float64 `json:"interest_rate,omitempty" validate:"omitempty,gte=0,lt=1000"`
}

func (r *CreatePostRequest) normalize() {
	r.FirebaseUID = strings.TrimSpace(r.FirebaseUID)
	r.Type = strings.TrimSpace(r.Type)
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Category = strings.TrimSpace(r.Category)
}

// ListPostsRequest filters the board. Zero values mean "no filter".
type ListPostsRequest struct {
	Type            string `json:"type,omitempty"`
	Category        string `json:"category,omitempty"`
	UserFirebaseUID string `json:"user_firebase_uid,omitempty"`
	Search          string `json:"search,omitempty"`
	Limit           int    `json:"limit,omitempty" validate:"gte=0"`
}

// ===============================
// MESSAGING REQUESTS
// ===============================

// CreateConversationRequest opens a conversation with a first message
type CreateConversationRequest struct {
	Participants      []string `json:"participants" validate:"required,min=1,dive,required"`
	InitialMessage    string   `json:"initial_message" validate:"required,notblank"`
	SenderFirebaseUID string   `json:"sender_firebase_uid,omitempty"`
}

// normalize trims ids only; message text is stored as sent
func (r *CreateConversationRequest) normalize() {
	for i, p := range r.Participants {
		r.Participants[i] = strings.TrimSpace(p)
	}
	r.SenderFirebaseUID = strings.TrimSpace(r.SenderFirebaseUID)
}

// CreateConversationResult identifies the new conversation and its first message
type CreateConversationResult struct {
	ConversationID int64 `json:"conversation_id"`
	MessageID      int64 `json:"message_id"`
}

// SendMessageRequest appends a message to a conversation
type SendMessageRequest struct {
	ConversationID int64  `json:"-" validate:"gt=0"`
	FirebaseUID    string `json:"firebase_uid" validate:"required"`
	Text           string `json:"text" validate:"required,notblank"`
}

func (r *SendMessageRequest) normalize() {
	r.FirebaseUID = strings.TrimSpace(r.FirebaseUID)
}

// ===============================
// ACTIVITY REQUESTS
// ===============================

// LogActivityRequest is one client or server side activity entry
type LogActivityRequest struct {
	FirebaseUID string          `json:"firebase_uid,omitempty"`
	Action      string          `json:"action" validate:"required,max=100"`
	Data        json.RawMessage `json:"data,omitempty"`
	Level       string          `json:"level,omitempty" validate:"omitempty,activity_level"`
	SessionID   string          `json:"session_id,omitempty" validate:"max=255"`

	// Taken from request headers, never from the body
	UserAgent string `json:"-"`
	URL       string `json:"-"`
}

func (r *LogActivityRequest) normalize() {
	r.FirebaseUID = strings.TrimSpace(r.FirebaseUID)
	r.Action = strings.TrimSpace(r.Action)
	r.Level = strings.TrimSpace(r.Level)
}

// validateRequest runs the struct rules and converts failures to a VALIDATION_ERROR
func validateRequest(req interface{}) error {
	if n, ok := req.(normalizer); ok {
		n.normalize()
	}

	err := validation.ValidateStruct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		fields := make([]FieldError, 0, len(fieldErrs))
		for _, f := range fieldErrs {
			fields = append(fields, FieldError{Field: f.Field, Message: f.Message(), Code: f.Tag})
		}
		return NewDetailedValidationError(fieldErrs.Error(), fields)
	}

	return NewValidationError(err.Error(), err)
}

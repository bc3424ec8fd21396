// file: internal/models/models.go
package models

import (
	"encoding/json"
	"time"

	"golang.org/x/exp/slices"
)

// ===============================
// ENUMS
// ===============================

// User roles
const (
	RoleInvestor     = "investor"
	RoleEntrepreneur = "entrepreneur"
	RoleBanker       = "banker"
	RoleAdvisor      = "advisor"
)

// Post types
const (
	PostTypeBusinessIdea       = "business-idea"
	PostTypeInvestmentProposal = "investment-proposal"
	PostTypeLoanOffer          = "loan-offer"
	PostTypeAdvisoryService    = "advisory-service"
)

// Activity levels
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

var (
	UserRoles      = []string{RoleInvestor, RoleEntrepreneur, RoleBanker, RoleAdvisor}
	PostTypes      = []string{PostTypeBusinessIdea, PostTypeInvestmentProposal, PostTypeLoanOffer, PostTypeAdvisoryService}
	ActivityLevels = []string{LevelDebug, LevelInfo, LevelWarn, LevelError}
)

// IsValidRole reports whether role is one of the fixed user roles
func IsValidRole(role string) bool {
	return slices.Contains(UserRoles, role)
}

// IsValidPostType reports whether t is one of the fixed post types
func IsValidPostType(t string) bool {
	return slices.Contains(PostTypes, t)
}

// IsValidActivityLevel reports whether level is a known activity level
func IsValidActivityLevel(level string) bool {
	return slices.Contains(ActivityLevels, level)
}

// ===============================
// CORE ENTITIES
// ===============================

// User is a platform member keyed by the identity provider's uid
type User struct {
	ID           int64     `json:"id" db:"id"`
	FirebaseUID  string    `json:"firebase_uid" db:"firebase_uid"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	Role         string    `json:"role" db:"role"`
	Company      string    `json:"company" db:"company"`
	Bio          string    `json:"bio" db:"bio"`
	Location     string    `json:"location" db:"location"`
	ProfileViews int       `json:"profile_views" db:"profile_views"`
	Connections  int       `json:"connections" db:"connections"`
	Rating       float64   `json:"rating" db:"rating"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserStats is the dashboard summary for one user
type UserStats struct {
	Posts       int     `json:"posts"`
	Views       int64   `json:"views"`
	Connections int     `json:"connections"`
	Rating      float64 `json:"rating"`
}

// Post is a listing on the board
type Post struct {
	ID            int64     `json:"id" db:"id"`
	UserID        int64     `json:"-" db:"user_id"`
	Type          string    `json:"type" db:"type"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	Category      string    `json:"category" db:"category"`
	FundingAmount *int64    `json:"funding_amount" db:"funding_amount"`
	LoanAmount    *int64    `json:"loan_amount" db:"loan_amount"`
	InterestRate  *float64  `json:"interest_rate" db:"interest_rate"`
	Status        string    `json:"status" db:"status"`
	Views         int       `json:"views" db:"views"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// PostWithOwner is a post joined with the owner's public fields
type PostWithOwner struct {
	Post
	Responses       int    `json:"responses" db:"responses"`
	UserName        string `json:"user_name" db:"user_name"`
	UserEmail       string `json:"user_email" db:"user_email"`
	UserCompany     string `json:"user_company" db:"user_company"`
	UserFirebaseUID string `json:"firebase_uid,omitempty" db:"firebase_uid"`
}

// PostFilter narrows ListPosts. Empty strings are ignored.
type PostFilter struct {
	Type            string
	Category        string
	UserFirebaseUID string
	Search          string
	Limit           int
}

// ConversationSummary is a conversation annotated with its participants
type ConversationSummary struct {
	ID               int64     `json:"id"`
	LastMessage      string    `json:"last_message"`
	LastMessageTime  time.Time `json:"last_message_time"`
	CreatedAt        time.Time `json:"created_at"`
	ParticipantNames []string  `json:"participant_names"`
	ParticipantUIDs  []string  `json:"participant_uids"`
}

// MessageWithSender is a message joined with the sender's public fields
type MessageWithSender struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	SenderName string    `json:"sender_name"`
	SenderUID  string    `json:"sender_uid"`
}

// ActivityLog is one append-only audit row
type ActivityLog struct {
	ID        int64           `json:"id" db:"id"`
	UserID    *int64          `json:"user_id,omitempty" db:"user_id"`
	Action    string          `json:"action" db:"action"`
	Data      json.RawMessage `json:"data,omitempty" db:"data"`
	Level     string          `json:"level" db:"level"`
	UserAgent string          `json:"user_agent,omitempty" db:"user_agent"`
	URL       string          `json:"url,omitempty" db:"url"`
	SessionID string          `json:"session_id,omitempty" db:"session_id"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

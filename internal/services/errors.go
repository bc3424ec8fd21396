package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"startupbridge/internal/repositories"

	"github.com/lib/pq"
)

// Error types
const (
	ErrorTypeValidation          = "VALIDATION_ERROR"
	ErrorTypeNotFound            = "NOT_FOUND"
	ErrorTypeConstraintViolation = "CONSTRAINT_VIOLATION"
	ErrorTypeStoreFailure        = "STORE_FAILURE"
	ErrorTypeInternal            = "INTERNAL_ERROR"
)

// ===============================
// ERROR TYPES
// ===============================

// ServiceError represents a structured service error
type ServiceError struct {
	Type       string                 `json:"type"`
	Message    string                 `json:"message"`
	Code       string                 `json:"code,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
	Cause      error                  `json:"-"`
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// GetStatusCode returns the HTTP status code for this error
func (e *ServiceError) GetStatusCode() int {
	if e.StatusCode > 0 {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

// FieldError represents a single field validation error
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ===============================
// ERROR CONSTRUCTORS
// ===============================

// NewValidationError creates a validation error
func NewValidationError(message string, cause error) *ServiceError {
	return &ServiceError{
		Type:       ErrorTypeValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewDetailedValidationError creates a validation error with field details
func NewDetailedValidationError(message string, fields []FieldError) *ServiceError {
	return &ServiceError{
		Type:       ErrorTypeValidation,
		Message:    message,
		Details:    map[string]interface{}{"fields": fields},
		StatusCode: http.StatusBadRequest,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{
		Type:       ErrorTypeNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// NewConstraintViolationError wraps a store-level integrity failure
func NewConstraintViolationError(message, code string, cause error) *ServiceError {
	return &ServiceError{
		Type:       ErrorTypeConstraintViolation,
		Message:    message,
		Code:       code,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewStoreFailureError wraps a connection or driver failure
func NewStoreFailureError(message string, cause error) *ServiceError {
	return &ServiceError{
		Type:       ErrorTypeStoreFailure,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *ServiceError {
	return &ServiceError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
	}
}

// ===============================
// STORE ERROR CLASSIFICATION
// ===============================

// FromStoreError maps a repository error onto the service taxonomy.
// Store messages are passed through unchanged.
func FromStoreError(err error) *ServiceError {
	if err == nil {
		return nil
	}

	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr
	}

	var unresolved *repositories.UnresolvedParticipantsError
	if errors.As(err, &unresolved) {
		notFound := NewNotFoundError("Participants not found: " + strings.Join(unresolved.Missing, ", "))
		notFound.Details = map[string]interface{}{"missing": unresolved.Missing}
		return notFound
	}

	switch {
	case errors.Is(err, repositories.ErrUserNotFound):
		return NewNotFoundError("User not found")
	case errors.Is(err, repositories.ErrConversationNotFound):
		return NewNotFoundError("Conversation not found")
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code.Class() == "23" {
			return NewConstraintViolationError(pqErr.Error(), string(pqErr.Code), err)
		}
		return NewStoreFailureError(pqErr.Error(), err)
	}

	return NewStoreFailureError(err.Error(), err)
}

// ===============================
// ERROR UTILITIES
// ===============================

// GetServiceError extracts a ServiceError from an error, or creates a generic one
func GetServiceError(err error) *ServiceError {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr
	}
	return NewInternalError(err.Error())
}

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errorType string) bool {
	if err == nil {
		return false
	}
	return GetServiceError(err).Type == errorType
}

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	return IsErrorType(err, ErrorTypeNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return IsErrorType(err, ErrorTypeValidation)
}

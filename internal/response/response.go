package response

import (
	"encoding/json"
	"net/http"

	"startupbridge/internal/contextutils"
	"startupbridge/internal/services"

	"go.uber.org/zap"
)

// ===============================
// RESPONSE CONFIGURATION
// ===============================

// Config holds configuration for the response system
type Config struct {
	PrettyJSON bool `json:"pretty_json"`

	// MaskInternalErrors hides the message of INTERNAL_ERROR responses.
	// Store errors are never masked.
	MaskInternalErrors bool `json:"mask_internal_errors"`
}

// DefaultConfig returns the default response configuration
func DefaultConfig() *Config {
	return &Config{
		PrettyJSON:         false,
		MaskInternalErrors: false,
	}
}

// ===============================
// RESPONSE TYPES
// ===============================

// Fields are the named members of a success envelope, next to "success": true
type Fields map[string]interface{}

// ErrorResponse is the failure envelope
type ErrorResponse struct {
	Success bool                   `json:"success"`
	Error   string                 `json:"error"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ===============================
// RESPONSE BUILDER
// ===============================

// Builder writes the JSON envelope shared by every endpoint
type Builder struct {
	config *Config
	logger *zap.Logger
}

// NewBuilder creates a new response builder
func NewBuilder(config *Config, logger *zap.Logger) *Builder {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		config: config,
		logger: logger,
	}
}

// WriteJSON writes a JSON response with appropriate headers
func (b *Builder) WriteJSON(w http.ResponseWriter, r *http.Request, body interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	encoder := json.NewEncoder(w)
	if b.config.PrettyJSON {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(body); err != nil {
		contextutils.GetLogger(r.Context(), b.logger).Error("Failed to encode JSON response",
			zap.Error(err),
			zap.String("request_id", contextutils.GetRequestID(r.Context())),
		)
	}
}

// WriteSuccess writes {"success": true, ...fields} with status 200
func (b *Builder) WriteSuccess(w http.ResponseWriter, r *http.Request, fields Fields) {
	b.WriteSuccessWithStatus(w, r, fields, http.StatusOK)
}

// WriteSuccessWithStatus writes a success envelope with a custom status code
func (b *Builder) WriteSuccessWithStatus(w http.ResponseWriter, r *http.Request, fields Fields, statusCode int) {
	body := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body["success"] = true

	b.WriteJSON(w, r, body, statusCode)
}

// WriteError writes {"success": false, "error": message} with the status of err
func (b *Builder) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	serviceErr := services.GetServiceError(err)
	statusCode := serviceErr.GetStatusCode()

	message := serviceErr.Message
	if b.config.MaskInternalErrors && serviceErr.Type == services.ErrorTypeInternal {
		message = "Internal server error"
	}

	b.logError(r, serviceErr, statusCode)

	b.WriteJSON(w, r, &ErrorResponse{
		Success: false,
		Error:   message,
		Details: serviceErr.Details,
	}, statusCode)
}

func (b *Builder) logError(r *http.Request, serviceErr *services.ServiceError, statusCode int) {
	logger := contextutils.GetLogger(r.Context(), b.logger)

	fields := []zap.Field{
		zap.String("error_type", serviceErr.Type),
		zap.String("error_message", serviceErr.Message),
		zap.Int("status_code", statusCode),
		zap.String("path", r.URL.Path),
	}
	if serviceErr.Cause != nil {
		fields = append(fields, zap.NamedError("cause", serviceErr.Cause))
	}

	if statusCode >= http.StatusInternalServerError {
		logger.Error("Request failed", fields...)
		return
	}
	logger.Info("Request rejected", fields...)
}

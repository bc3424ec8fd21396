package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"startupbridge/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteSuccess(t *testing.T) {
	b := NewBuilder(nil, zaptest.NewLogger(t))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)

	b.WriteSuccess(rec, req, Fields{"conversation_id": 10, "message_id": 100})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(10), body["conversation_id"])
	assert.Equal(t, float64(100), body["message_id"])
}

func TestWriteSuccess_SuccessCannotBeOverridden(t *testing.T) {
	b := NewBuilder(nil, zaptest.NewLogger(t))
	rec := httptest.NewRecorder()

	b.WriteSuccess(rec, httptest.NewRequest(http.MethodGet, "/", nil), Fields{"success": false})

	assert.Equal(t, true, decode(t, rec)["success"])
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		config     *Config
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "not found",
			err:        services.NewNotFoundError("User not found"),
			wantStatus: http.StatusNotFound,
			wantError:  "User not found",
		},
		{
			name:       "validation",
			err:        services.NewValidationError("title is required", nil),
			wantStatus: http.StatusBadRequest,
			wantError:  "title is required",
		},
		{
			name:       "store failure passes message through",
			err:        services.NewStoreFailureError("pq: connection failure", nil),
			wantStatus: http.StatusInternalServerError,
			wantError:  "pq: connection failure",
		},
		{
			name:       "plain error becomes internal",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "boom",
		},
		{
			name:       "masked internal error",
			config:     &Config{MaskInternalErrors: true},
			err:        errors.New("nil pointer dereference"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(tt.config, zaptest.NewLogger(t))
			rec := httptest.NewRecorder()

			b.WriteError(rec, httptest.NewRequest(http.MethodGet, "/api/users/x", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}

func TestWriteError_IncludesDetails(t *testing.T) {
	b := NewBuilder(nil, zaptest.NewLogger(t))
	rec := httptest.NewRecorder()

	svcErr := services.NewNotFoundError("Participants not found: ghost")
	svcErr.Details = map[string]interface{}{"missing": []string{"ghost"}}
	b.WriteError(rec, httptest.NewRequest(http.MethodPost, "/api/conversations", nil), svcErr)

	body := decode(t, rec)
	details, ok := body["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"ghost"}, details["missing"])
}

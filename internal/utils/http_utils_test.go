package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"startupbridge/internal/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ada"}`))
	require.NoError(t, DecodeJSON(httptest.NewRecorder(), req, &dst))
	assert.Equal(t, "Ada", dst.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	err := DecodeJSON(httptest.NewRecorder(), req, &dst)
	assert.True(t, services.IsValidationError(err))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	err = DecodeJSON(httptest.NewRecorder(), req, &dst)
	require.Error(t, err)
	assert.Equal(t, "Request body is required", services.GetServiceError(err).Message)
}

func TestPathInt64(t *testing.T) {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
	id, err := PathInt64(req, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "0"})
	_, err = PathInt64(req, "id")
	assert.True(t, services.IsValidationError(err))
}

func TestQueryInt(t *testing.T) {
	n, err := QueryInt(httptest.NewRequest(http.MethodGet, "/?limit=5", nil), "limit")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = QueryInt(httptest.NewRequest(http.MethodGet, "/", nil), "limit")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = QueryInt(httptest.NewRequest(http.MethodGet, "/?limit=ten", nil), "limit")
	require.Error(t, err)
	assert.Equal(t, "limit must be an integer", services.GetServiceError(err).Message)
}

package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"startupbridge/internal/services"

	"github.com/gorilla/mux"
)

// MaxBodyBytes bounds every JSON request body
const MaxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into dst. Any failure is a VALIDATION_ERROR.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return services.NewValidationError("Request body is required", nil)
	}

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return services.NewValidationError("Request body is required", err)
		}
		return services.NewValidationError("Invalid request body format", err)
	}
	return nil
}

// PathInt64 reads a positive integer mux path variable
func PathInt64(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok || raw == "" {
		return 0, services.NewValidationError(fmt.Sprintf("%s is required", name), nil)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, services.NewValidationError(fmt.Sprintf("invalid %s", name), err)
	}
	return id, nil
}

// PathString reads a non-blank mux path variable
func PathString(r *http.Request, name string) (string, error) {
	raw := strings.TrimSpace(mux.Vars(r)[name])
	if raw == "" {
		return "", services.NewValidationError(fmt.Sprintf("%s is required", name), nil)
	}
	return raw, nil
}

// QueryInt reads an optional integer query parameter, returning 0 when absent
func QueryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, services.NewValidationError(fmt.Sprintf("%s must be an integer", name), err)
	}
	return n, nil
}

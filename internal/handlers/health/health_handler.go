package health

import (
	"context"
	"net/http"
	"time"

	"startupbridge/internal/database"
	"startupbridge/internal/response"
	"startupbridge/internal/utils/appinfo"
)

const checkTimeout = 5 * time.Second

// Checker reports the state of a backing dependency
type Checker interface {
	Health(ctx context.Context) *database.HealthStatus
}

// Handler serves GET /health: 200 while healthy or degraded, 503 when unhealthy
func Handler(checker Checker, builder *response.Builder, environment string) http.HandlerFunc {
	version := appinfo.GetVersion()

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
		defer cancel()

		status := checker.Health(ctx)

		fields := response.Fields{
			"status":      status.Status,
			"version":     version,
			"environment": environment,
			"database":    status,
		}

		if status.Status == database.StatusUnhealthy {
			fields["success"] = false
			builder.WriteJSON(w, r, fields, http.StatusServiceUnavailable)
			return
		}

		builder.WriteSuccess(w, r, fields)
	}
}

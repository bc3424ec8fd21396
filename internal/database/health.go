package database

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Health status values
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthStatus represents the database health status
type HealthStatus struct {
	Status       string                 `json:"status"`
	Timestamp    time.Time              `json:"timestamp"`
	ResponseTime time.Duration          `json:"response_time"`
	Errors       []string               `json:"errors,omitempty"`
	Warnings     []string               `json:"warnings,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// Health pings the database and inspects the connection pool
func (m *Manager) Health(ctx context.Context) *HealthStatus {
	start := time.Now()
	status := &HealthStatus{
		Status:    StatusHealthy,
		Timestamp: start,
		Details:   make(map[string]interface{}),
	}

	if err := m.Ping(ctx); err != nil {
		status.Status = StatusUnhealthy
		status.Errors = append(status.Errors, "connectivity: "+err.Error())
		status.ResponseTime = time.Since(start)
		m.logger.Warn("Database health check failed", zap.Error(err))
		return status
	}

	var one int
	if err := m.DB().QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		status.Status = StatusUnhealthy
		status.Errors = append(status.Errors, "query: "+err.Error())
	}

	stats := m.Stats()
	status.Details["open_connections"] = stats.OpenConnections
	status.Details["in_use"] = stats.InUse
	status.Details["idle"] = stats.Idle
	status.Details["max_open_connections"] = stats.MaxOpenConnections

	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > float64(stats.MaxOpenConnections)*0.9 {
		status.Warnings = append(status.Warnings, "connection pool nearly exhausted")
		if status.Status == StatusHealthy {
			status.Status = StatusDegraded
		}
	}

	snapshot := m.Metrics()
	status.Details["query_count"] = snapshot.QueryCount
	status.Details["error_count"] = snapshot.ErrorCount
	status.Details["slow_query_count"] = snapshot.SlowQueryCount

	status.ResponseTime = time.Since(start)
	return status
}

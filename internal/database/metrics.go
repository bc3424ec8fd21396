package database

import (
	"database/sql"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dbQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "startupbridge_db_queries_total",
		Help: "The total number of database statements by type and outcome",
	}, []string{"type", "status"})

	dbQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "startupbridge_db_query_duration_seconds",
		Help:    "Database statement duration in seconds",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"type"})

	dbSlowQueriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "startupbridge_db_slow_queries_total",
		Help: "The total number of statements slower than the configured threshold",
	})
)

// Metrics tracks query counts for the health endpoint and mirrors them to prometheus
type Metrics struct {
	db                 *sql.DB
	slowQueryThreshold time.Duration

	queryCount     int64
	queryDuration  int64 // nanoseconds
	errorCount     int64
	slowQueryCount int64
}

// MetricsSnapshot provides a point-in-time view of metrics
type MetricsSnapshot struct {
	QueryCount       int64         `json:"query_count"`
	ErrorCount       int64         `json:"error_count"`
	SlowQueryCount   int64         `json:"slow_query_count"`
	AvgQueryDuration time.Duration `json:"avg_query_duration"`
	DBStats          sql.DBStats   `json:"db_stats"`
	Timestamp        time.Time     `json:"timestamp"`
}

// NewMetrics creates a new metrics collector
func NewMetrics(db *sql.DB, slowQueryThreshold time.Duration) *Metrics {
	if slowQueryThreshold <= 0 {
		slowQueryThreshold = 100 * time.Millisecond
	}
	return &Metrics{
		db:                 db,
		slowQueryThreshold: slowQueryThreshold,
	}
}

// RecordQuery records one statement execution
func (m *Metrics) RecordQuery(queryType string, duration time.Duration, err error) {
	atomic.AddInt64(&m.queryCount, 1)
	atomic.AddInt64(&m.queryDuration, int64(duration))

	status := "ok"
	if err != nil {
		status = "error"
		atomic.AddInt64(&m.errorCount, 1)
	}

	if duration > m.slowQueryThreshold {
		atomic.AddInt64(&m.slowQueryCount, 1)
		dbSlowQueriesTotal.Inc()
	}

	dbQueriesTotal.WithLabelValues(queryType, status).Inc()
	dbQueryDuration.WithLabelValues(queryType).Observe(duration.Seconds())
}

// IsSlow reports whether a duration crosses the slow query threshold
func (m *Metrics) IsSlow(duration time.Duration) bool {
	return duration > m.slowQueryThreshold
}

// Snapshot returns current metrics snapshot
func (m *Metrics) Snapshot() *MetricsSnapshot {
	queryCount := atomic.LoadInt64(&m.queryCount)
	totalDuration := atomic.LoadInt64(&m.queryDuration)

	var avg time.Duration
	if queryCount > 0 {
		avg = time.Duration(totalDuration / queryCount)
	}

	snapshot := &MetricsSnapshot{
		QueryCount:       queryCount,
		ErrorCount:       atomic.LoadInt64(&m.errorCount),
		SlowQueryCount:   atomic.LoadInt64(&m.slowQueryCount),
		AvgQueryDuration: avg,
		Timestamp:        time.Now(),
	}
	if m.db != nil {
		snapshot.DBStats = m.db.Stats()
	}

	return snapshot
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	"startupbridge/internal/database"

	"go.uber.org/zap"
)

// BaseRepository provides common database operations shared by all repositories
type BaseRepository struct {
	db     *database.Manager
	logger *zap.Logger
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(db *database.Manager, logger *zap.Logger) *BaseRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BaseRepository{
		db:     db,
		logger: logger,
	}
}

// ===============================
// CORE DATABASE OPERATIONS
// ===============================

// ExecContext executes a statement through the instrumented manager
func (r *BaseRepository) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return r.db.ExecContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows
func (r *BaseRepository) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return r.db.QueryContext(ctx, query, args...)
}

// QueryRowContext executes a query that returns a single row
func (r *BaseRepository) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return r.db.QueryRowContext(ctx, query, args...)
}

// ===============================
// TRANSACTION HELPERS
// ===============================

// WithTransaction executes fn within a database transaction.
// The transaction is rolled back when fn returns an error or panics.
func (r *BaseRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return r.db.ExecuteTransaction(ctx, fn)
}

// ===============================
// UTILITY METHODS
// ===============================

// whereBuilder accumulates AND-ed conditions with positional placeholders
type whereBuilder struct {
	clauses []string
	args    []interface{}
}

// add appends a condition; every "?" in clause refers to the same new argument
func (w *whereBuilder) add(clause string, arg interface{}) {
	w.args = append(w.args, arg)
	placeholder := fmt.Sprintf("$%d", len(w.args))
	w.clauses = append(w.clauses, strings.ReplaceAll(clause, "?", placeholder))
}

// addRaw appends a condition that takes no argument
func (w *whereBuilder) addRaw(clause string) {
	w.clauses = append(w.clauses, clause)
}

// nextPlaceholder reserves the placeholder for an argument appended after the WHERE clause
func (w *whereBuilder) nextPlaceholder(arg interface{}) string {
	w.args = append(w.args, arg)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *whereBuilder) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// IsNotFound checks if error is a "not found" error
func (r *BaseRepository) IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// GetLogger returns the logger instance
func (r *BaseRepository) GetLogger() *zap.Logger {
	return r.logger
}

// serialMax is the largest value a SERIAL primary key can hold
const serialMax = math.MaxInt32

// outOfSerialRange reports whether id can never match a SERIAL primary key
func outOfSerialRange(id int64) bool {
	return id <= 0 || id > serialMax
}

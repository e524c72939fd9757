package sqlite

import (
	"context"
	"database/sql"

	"task-tracker/internal/errors"
)

// HandleReadError converts database read errors to structured app errors
func HandleReadError(operation string, err error) error {
	return errors.NewStorageReadError(operation, err)
}

// HandleWriteError converts database write errors to structured app errors
func HandleWriteError(operation string, err error) error {
	return errors.NewStorageWriteError(operation, err)
}

// QueryMultiple executes a query that returns multiple rows and scans them
func QueryMultiple[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Rows) ([]*T, error), entityType string, args ...interface{}) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandleReadError("query "+entityType, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, HandleReadError("scan "+entityType, err)
	}

	return results, nil
}

// WithTransaction runs fn in a transaction, committing on success and
// rolling back on any error.
func WithTransaction(ctx context.Context, db *sql.DB, operation string, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return HandleWriteError(operation+": begin", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return HandleWriteError(operation, err)
	}

	if err := tx.Commit(); err != nil {
		return HandleWriteError(operation+": commit", err)
	}
	return nil
}

package sqlite

import (
	"database/sql"
	"time"

	"task-tracker/internal/domain"
)

// FormatDateForDB formats a task's date as yyyy-MM-dd, or NULL for tasks without one
func FormatDateForDB(task domain.Task) sql.NullString {
	if !task.Kind.HasDate() {
		return sql.NullString{}
	}
	return sql.NullString{String: task.FormattedDate(), Valid: true}
}

// ParseDateFromDB parses a yyyy-MM-dd date string from the database
func ParseDateFromDB(s string) (time.Time, error) {
	return domain.ParseDate(s)
}

package sqlite

import (
	"database/sql"
	"fmt"

	"task-tracker/internal/domain"
)

// TaskRecord is a row of the tasks table. Position is the 1-based list index.
type TaskRecord struct {
	Position    int
	Kind        string
	Done        bool
	Description string
	DueDate     sql.NullString
}

// ToRecord converts a domain task at the given position into a row.
func ToRecord(position int, task domain.Task) TaskRecord {
	return TaskRecord{
		Position:    position,
		Kind:        string(task.Kind),
		Done:        task.Done,
		Description: task.Description,
		DueDate:     FormatDateForDB(task),
	}
}

// ToDomain converts a row back into a domain task.
func (r TaskRecord) ToDomain() (domain.Task, error) {
	task := domain.Task{
		Kind:        domain.Kind(r.Kind),
		Description: r.Description,
		Done:        r.Done,
	}
	if r.DueDate.Valid {
		date, err := ParseDateFromDB(r.DueDate.String)
		if err != nil {
			return domain.Task{}, fmt.Errorf("task %d: invalid due date %q: %w", r.Position, r.DueDate.String, err)
		}
		task.Date = date
	}
	if !task.IsValid() {
		return domain.Task{}, fmt.Errorf("task %d: invalid %s task %q", r.Position, r.Kind, r.Description)
	}
	return task, nil
}

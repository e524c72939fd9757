package file

import (
	"fmt"

	"task-tracker/internal/domain"
)

// Record layout: kind, done, description[, date].
const (
	fieldKind = iota
	fieldDone
	fieldDescription
	fieldDate
)

// EncodeRecord converts a task into its CSV fields.
func EncodeRecord(task domain.Task) []string {
	done := "0"
	if task.Done {
		done = "1"
	}

	switch task.Kind {
	case domain.KindDeadline, domain.KindEvent:
		return []string{string(task.Kind), done, task.Description, task.FormattedDate()}
	default:
		return []string{string(task.Kind), done, task.Description}
	}
}

// DecodeRecord converts CSV fields back into a task.
func DecodeRecord(fields []string) (domain.Task, error) {
	if len(fields) < 3 {
		return domain.Task{}, fmt.Errorf("expected at least 3 fields, got %d", len(fields))
	}

	kind := domain.Kind(fields[fieldKind])
	if !kind.IsValid() {
		return domain.Task{}, fmt.Errorf("unknown task kind %q", fields[fieldKind])
	}

	want := 3
	if kind.HasDate() {
		want = 4
	}
	if len(fields) != want {
		return domain.Task{}, fmt.Errorf("kind %s expects %d fields, got %d", kind, want, len(fields))
	}

	var done bool
	switch fields[fieldDone] {
	case "0":
	case "1":
		done = true
	default:
		return domain.Task{}, fmt.Errorf("invalid done flag %q", fields[fieldDone])
	}

	task := domain.Task{
		Kind:        kind,
		Description: fields[fieldDescription],
		Done:        done,
	}
	if kind.HasDate() {
		date, err := domain.ParseDate(fields[fieldDate])
		if err != nil {
			return domain.Task{}, fmt.Errorf("invalid date %q: %w", fields[fieldDate], err)
		}
		task.Date = date
	}

	if !task.IsValid() {
		return domain.Task{}, fmt.Errorf("invalid task %q", fields[fieldDescription])
	}
	return task, nil
}

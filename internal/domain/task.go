package domain

import (
	"strings"
	"time"
	"unicode"

	"task-tracker/internal/errors"
)

// DateLayout is the only accepted date format, both on input and on disk.
const DateLayout = "2006-01-02"

// Kind identifies the task variant.
type Kind string

const (
	KindTodo     Kind = "T"
	KindDeadline Kind = "D"
	KindEvent    Kind = "E"
)

// IsValid reports whether k is one of the known variants.
func (k Kind) IsValid() bool {
	switch k {
	case KindTodo, KindDeadline, KindEvent:
		return true
	default:
		return false
	}
}

// HasDate reports whether tasks of this kind carry a date.
func (k Kind) HasDate() bool {
	return k == KindDeadline || k == KindEvent
}

// Task represents one unit of work in the task list.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	Kind        Kind
	Description string
	Done        bool
	Date        time.Time // zero for KindTodo
}

// NewTodo creates a plain task with no date.
func NewTodo(description string) (Task, error) {
	return newTask(KindTodo, description, time.Time{})
}

// NewDeadline creates a task that must be completed by date.
func NewDeadline(description string, date time.Time) (Task, error) {
	return newTask(KindDeadline, description, date)
}

// NewEvent creates a task that happens at date.
func NewEvent(description string, date time.Time) (Task, error) {
	return newTask(KindEvent, description, date)
}

func newTask(kind Kind, description string, date time.Time) (Task, error) {
	if strings.TrimSpace(description) == "" {
		return Task{}, errors.NewValidationError("OOPS!!! The description of a task cannot be empty.", nil).
			WithContext("kind", string(kind))
	}
	if hasControlCharacters(description) {
		return Task{}, errors.NewValidationError("OOPS!!! The description of a task must fit on one line.", nil).
			WithContext("kind", string(kind))
	}
	t := Task{
		Kind:        kind,
		Description: description,
	}
	if kind.HasDate() {
		t.Date = TruncateToDate(date)
	}
	return t, nil
}

// hasControlCharacters reports line breaks, tabs and other characters that
// cannot be typed on a single command line.
func hasControlCharacters(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

// TruncateToDate drops the time-of-day and location, keeping only the calendar date.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a strict yyyy-MM-dd calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Describe returns the task description.
func (t Task) Describe() string {
	return t.Description
}

// StatusGlyph returns "X" for completed tasks and a single space otherwise.
func (t Task) StatusGlyph() string {
	if t.Done {
		return "X"
	}
	return " "
}

// MarkDone marks the task as done. It returns true only if the task was not
// already done.
func (t *Task) MarkDone() bool {
	if t.Done {
		return false
	}
	t.Done = true
	return true
}

// FormattedDate returns the date as yyyy-MM-dd, or "" for tasks without a date.
func (t Task) FormattedDate() string {
	if !t.Kind.HasDate() {
		return ""
	}
	return t.Date.Format(DateLayout)
}

// Render returns the display form, e.g. "[X] pay rent (by: 2024-03-01)".
func (t Task) Render() string {
	return "[" + t.StatusGlyph() + "] " + t.Description + t.suffix()
}

func (t Task) suffix() string {
	switch t.Kind {
	case KindDeadline:
		return " (by: " + t.FormattedDate() + ")"
	case KindEvent:
		return " (at: " + t.FormattedDate() + ")"
	default:
		return ""
	}
}

// String returns the rendered task for display purposes.
func (t Task) String() string {
	return t.Render()
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	if !t.Kind.IsValid() || strings.TrimSpace(t.Description) == "" || hasControlCharacters(t.Description) {
		return false
	}
	if t.Kind.HasDate() {
		return !t.Date.IsZero()
	}
	return t.Date.IsZero()
}

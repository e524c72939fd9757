// Package repository defines how the task list is persisted.
package repository

import (
	"context"

	"task-tracker/internal/domain"
)

// TaskStore persists the complete, ordered task list.
//
// When the stored data is missing or cannot be read or parsed, Load returns
// an empty list together with a storage read error. Save replaces the stored
// list as a whole; a crash mid-save leaves the previous list intact.
//
//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type TaskStore interface {
	Load(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, tasks []domain.Task) error
	Close() error
}

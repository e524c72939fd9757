// Package sqlite stores the task list in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"sync"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Repository implements repository.TaskStore on SQLite
type Repository struct {
	db   *sql.DB
	path string

	mu       sync.Mutex
	migrated bool
}

// New creates a new SQLite repository instance. The database file is not
// touched until the first Load or Save, which also applies pending migrations.
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageReadError("open database", err)
	}
	// A single connection keeps ":memory:" databases alive and serialises writers.
	db.SetMaxOpenConns(1)

	return &Repository{db: db, path: dbPath}, nil
}

// missing reports whether the database file has not been created yet.
func (r *Repository) missing() bool {
	if r.path == MemoryPath {
		return false
	}
	_, err := os.Stat(r.path)
	return os.IsNotExist(err)
}

// prepare applies pending migrations once. A failure is retried on the next call.
func (r *Repository) prepare() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.migrated {
		return nil
	}
	if err := migrations.RunMigrations(r.db); err != nil {
		return err
	}
	r.migrated = true
	logging.Debugf("opened task database %s", r.path)
	return nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// Load retrieves all tasks in list order. A database file that did not exist
// is created empty and reported as a storage read error.
func (r *Repository) Load(ctx context.Context) ([]domain.Task, error) {
	missing := r.missing()
	if err := r.prepare(); err != nil {
		return []domain.Task{}, HandleReadError("prepare database", err)
	}
	if missing {
		return []domain.Task{}, HandleReadError("open "+r.path, os.ErrNotExist)
	}

	query := `
	SELECT position, kind, done, description, due_date
	FROM tasks
	ORDER BY position ASC`

	records, err := QueryMultiple(ctx, r.db, query, ScanTaskRecords, "tasks")
	if err != nil {
		return []domain.Task{}, err
	}

	tasks := make([]domain.Task, 0, len(records))
	for _, record := range records {
		task, err := record.ToDomain()
		if err != nil {
			return []domain.Task{}, HandleReadError("decode tasks", err)
		}
		tasks = append(tasks, task)
	}

	logging.Debugf("loaded %d tasks from database", len(tasks))
	return tasks, nil
}

// Save replaces the stored list with tasks in a single transaction
func (r *Repository) Save(ctx context.Context, tasks []domain.Task) error {
	if err := r.prepare(); err != nil {
		return HandleWriteError("prepare database", err)
	}

	err := WithTransaction(ctx, r.db, "save tasks", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (position, kind, done, description, due_date)
		VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, task := range tasks {
			record := ToRecord(i+1, task)
			if _, err := stmt.ExecContext(ctx, record.Position, record.Kind, record.Done, record.Description, record.DueDate); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logging.Debugf("saved %d tasks to database", len(tasks))
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	require.NoError(t, repo.prepare())
	return repo
}

func sampleTasks(t *testing.T) []domain.Task {
	t.Helper()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	todo, err := domain.NewTodo("buy milk")
	require.NoError(t, err)
	todo.MarkDone()
	deadline, err := domain.NewDeadline("pay rent", date)
	require.NoError(t, err)
	event, err := domain.NewEvent("project meeting", date.AddDate(0, 1, 0))
	require.NoError(t, err)

	return []domain.Task{todo, deadline, event}
}

func TestLoad_EmptyDatabase(t *testing.T) {
	repo := setupTestDB(t)

	tasks, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestSaveAndLoad(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	want := sampleTasks(t)

	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Kind, got[i].Kind)
		assert.Equal(t, want[i].Done, got[i].Done)
		assert.Equal(t, want[i].Render(), got[i].Render())
	}
}

func TestSave_ReplacesPreviousContents(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	tasks := sampleTasks(t)

	require.NoError(t, repo.Save(ctx, tasks))
	require.NoError(t, repo.Save(ctx, tasks[1:]))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "[ ] pay rent (by: 2024-03-01)", got[0].Render())

	require.NoError(t, repo.Save(ctx, nil))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSave_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tasks.db")
	ctx := context.Background()

	repo, err := New(dbPath)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, sampleTasks(t)))
	require.NoError(t, repo.Close())

	reopened, err := New(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "[X] buy milk", got[0].Render())
}

func TestLoad_CorruptRow(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.db.Exec(`INSERT INTO tasks (position, kind, done, description, due_date)
		VALUES (1, 'D', 0, 'pay rent', 'next week')`)
	require.NoError(t, err)

	tasks, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorageRead))
	assert.Empty(t, tasks)
}

func TestSave_ClosedDatabase(t *testing.T) {
	repo, err := New(MemoryPath)
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	err = repo.Save(context.Background(), sampleTasks(t))
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorageWrite))
}

func TestSave_CancelledContextKeepsPreviousContents(t *testing.T) {
	repo := setupTestDB(t)
	require.NoError(t, repo.Save(context.Background(), sampleTasks(t)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := repo.Save(ctx, nil)
	require.Error(t, err)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestLoad_MissingDatabaseIsCreated(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tasks.db")

	repo, err := New(dbPath)
	require.NoError(t, err)
	defer repo.Close()

	_, err = os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err), "database file should not exist before first use")

	tasks, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorageRead))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, tasks)
	assert.FileExists(t, dbPath)

	tasks, err = repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestLoad_NotADatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tasks.db")
	garbage := []byte(strings.Repeat("not a database. ", 16))
	require.NoError(t, os.WriteFile(dbPath, garbage, 0644))

	repo, err := New(dbPath)
	require.NoError(t, err)
	defer repo.Close()

	tasks, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorageRead))
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	err = repo.Save(context.Background(), sampleTasks(t))
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorageWrite))
}

func TestLoad_DirtyMigration(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tasks.db")

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		dirty BOOLEAN DEFAULT FALSE
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO migrations (version, dirty) VALUES (1, TRUE)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	repo, err := New(dbPath)
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorageRead))
	assert.Contains(t, err.Error(), "dirty state")
}

package cli

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/config"
	"task-tracker/internal/repository"
	"task-tracker/internal/repository/file"
	"task-tracker/internal/tasklist"
)

// setupTestApp returns an app backed by a CSV store on an in-memory filesystem
func setupTestApp(t *testing.T) (*App, repository.TaskStore) {
	t.Helper()
	store := file.New(afero.NewMemMapFs(), "/tk/tasks.csv", file.DefaultOptions())
	require.NoError(t, store.Save(context.Background(), nil))
	return setupTestAppWithStore(t, store), store
}

func setupTestAppWithStore(t *testing.T, store repository.TaskStore) *App {
	t.Helper()
	list, err := tasklist.Load(context.Background(), store, tasklist.Options{})
	require.NoError(t, err)
	return NewApp(list, config.NewConfig(), nil)
}

// run interprets each line in order and fails the test on any error
func run(t *testing.T, app *App, lines ...string) string {
	t.Helper()
	var response string
	for _, line := range lines {
		var err error
		response, err = app.Interpret(context.Background(), line)
		require.NoError(t, err, "line %q", line)
	}
	return response
}

package config

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"task-tracker/internal/repository"
	"task-tracker/internal/repository/file"
	"task-tracker/internal/repository/sqlite"
)

// CreateStore creates the task store selected by the configuration
func CreateStore(config *Config) (repository.TaskStore, error) {
	return CreateStoreOnFs(config, afero.NewOsFs())
}

// CreateStoreOnFs creates the configured task store. The file backend uses fs;
// the SQLite backend always works on the real filesystem.
func CreateStoreOnFs(config *Config, fs afero.Fs) (repository.TaskStore, error) {
	dataPath := config.GetDataPath()

	switch config.Storage.Backend {
	case BackendFile:
		return file.New(fs, dataPath, file.Options{
			DirPermissions:  os.FileMode(config.Storage.DirPermissions),
			FilePermissions: os.FileMode(config.Storage.FilePermissions),
		}), nil
	case BackendSQLite:
		if err := os.MkdirAll(config.Storage.Dir, os.FileMode(config.Storage.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		repo, err := sqlite.New(dataPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	default:
		return nil, &ConfigError{Field: "storage.backend", Message: "unknown backend " + config.Storage.Backend}
	}
}

// CreateTestStore creates an in-memory store for the given backend
func CreateTestStore(backend string) (repository.TaskStore, error) {
	switch backend {
	case BackendSQLite:
		repo, err := sqlite.New(sqlite.MemoryPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize test database: %w", err)
		}
		return repo, nil
	default:
		return file.New(afero.NewMemMapFs(), DefaultFilename(BackendFile), file.DefaultOptions()), nil
	}
}

// Package file stores the task list as a CSV file on an afero filesystem.
package file

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
)

// Options controls file and directory permissions.
type Options struct {
	DirPermissions  os.FileMode
	FilePermissions os.FileMode
}

// DefaultOptions returns the permissions used when none are configured.
func DefaultOptions() Options {
	return Options{
		DirPermissions:  0755,
		FilePermissions: 0644,
	}
}

// Repository implements repository.TaskStore on a single CSV file.
type Repository struct {
	fs   afero.Fs
	path string
	opts Options
}

// New creates a file repository for path on fs.
func New(fs afero.Fs, path string, opts Options) *Repository {
	if opts.DirPermissions == 0 {
		opts.DirPermissions = DefaultOptions().DirPermissions
	}
	if opts.FilePermissions == 0 {
		opts.FilePermissions = DefaultOptions().FilePermissions
	}
	return &Repository{fs: fs, path: path, opts: opts}
}

// Path returns the data file location.
func (r *Repository) Path() string {
	return r.path
}

// Load reads every task from the data file. A missing file is reported as a
// storage read error like any other unreadable file.
func (r *Repository) Load(ctx context.Context) ([]domain.Task, error) {
	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debugf("no data file at %s, starting empty", r.path)
		}
		return []domain.Task{}, errors.NewStorageReadError("read "+r.path, err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	tasks := []domain.Task{}
	for line := 1; ; line++ {
		if err := ctx.Err(); err != nil {
			return []domain.Task{}, errors.NewStorageReadError("read "+r.path, err)
		}
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return []domain.Task{}, errors.NewStorageReadError(fmt.Sprintf("parse record %d", line), err)
		}
		task, err := DecodeRecord(fields)
		if err != nil {
			return []domain.Task{}, errors.NewStorageReadError(fmt.Sprintf("decode record %d", line), err)
		}
		tasks = append(tasks, task)
	}

	logging.Debugf("loaded %d tasks from %s", len(tasks), r.path)
	return tasks, nil
}

// Save replaces the data file with tasks. The new content is written to a
// temporary file in the same directory and renamed over the old one.
func (r *Repository) Save(ctx context.Context, tasks []domain.Task) error {
	if err := ctx.Err(); err != nil {
		return errors.NewStorageWriteError("save "+r.path, err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	for _, task := range tasks {
		if err := writer.Write(EncodeRecord(task)); err != nil {
			return errors.NewStorageWriteError("encode tasks", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewStorageWriteError("encode tasks", err)
	}

	dir := filepath.Dir(r.path)
	if err := r.fs.MkdirAll(dir, r.opts.DirPermissions); err != nil {
		return errors.NewStorageWriteError("create directory "+dir, err)
	}

	tmp, err := afero.TempFile(r.fs, dir, "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return errors.NewStorageWriteError("create temporary file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = r.fs.Remove(tmpName)
		return errors.NewStorageWriteError("write temporary file", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = r.fs.Remove(tmpName)
		return errors.NewStorageWriteError("sync temporary file", err)
	}
	if err := tmp.Close(); err != nil {
		_ = r.fs.Remove(tmpName)
		return errors.NewStorageWriteError("close temporary file", err)
	}
	if err := r.fs.Chmod(tmpName, r.opts.FilePermissions); err != nil {
		_ = r.fs.Remove(tmpName)
		return errors.NewStorageWriteError("chmod temporary file", err)
	}

	// Atomic rename
	if err := r.fs.Rename(tmpName, r.path); err != nil {
		_ = r.fs.Remove(tmpName)
		return errors.NewStorageWriteError("replace "+r.path, err)
	}

	logging.Debugf("saved %d tasks to %s", len(tasks), r.path)
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (r *Repository) Close() error {
	return nil
}

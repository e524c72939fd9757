// Package tasklist owns the ordered in-memory task collection and keeps the
// task store in step with every change.
package tasklist

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize/english"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository"
)

const (
	addedHeader       = "Got it. I've added this task:"
	doneHeader        = "Nice! I've marked this task as done:"
	alreadyDoneHeader = "This task is already done!"
	removedHeader     = "Noted. I've removed this task:"
	listHeader        = "Here are the tasks in your list:"
	findHeader        = "Here are the matching tasks in your list:"
	emptyListMessage  = "There is no task in the list"
	noMatchMessage    = "There are no tasks with the given keyword"
)

// Options tunes how the list talks to its store.
type Options struct {
	// WriteTimeout bounds each save. Zero means no extra deadline.
	WriteTimeout time.Duration
}

// TaskList is the ordered task collection. Indices are 1-based in insertion order.
type TaskList struct {
	mu    sync.Mutex
	tasks []domain.Task
	store repository.TaskStore
	opts  Options
}

// New creates a list holding tasks and persisting to store.
func New(store repository.TaskStore, tasks []domain.Task, opts Options) *TaskList {
	owned := make([]domain.Task, len(tasks))
	copy(owned, tasks)
	return &TaskList{tasks: owned, store: store, opts: opts}
}

// Load builds a list from the store's contents. A read failure is returned
// alongside a usable empty list so startup can continue.
func Load(ctx context.Context, store repository.TaskStore, opts Options) (*TaskList, error) {
	tasks, err := store.Load(ctx)
	if err != nil {
		return New(store, nil, opts), err
	}
	return New(store, tasks, opts), nil
}

// Size returns the number of tasks.
func (l *TaskList) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks)
}

// Tasks returns a copy of the current sequence.
func (l *TaskList) Tasks() []domain.Task {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Add appends task and saves the list.
func (l *TaskList) Add(ctx context.Context, task domain.Task) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tasks = append(l.tasks, task)
	msg := addedHeader + "\n  " + task.Render() + "\n" + l.countLine()
	return msg, l.save(ctx)
}

// MarkDone marks the task at index as done and saves the list, even when the
// task was already done.
func (l *TaskList) MarkDone(ctx context.Context, index int) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkIndex(index); err != nil {
		return "", err
	}

	task := &l.tasks[index-1]
	header := alreadyDoneHeader
	if task.MarkDone() {
		header = doneHeader
	}
	msg := header + "\n  " + task.Render()
	return msg, l.save(ctx)
}

// Delete removes the task at index and saves the list. Later indices shift down by one.
func (l *TaskList) Delete(ctx context.Context, index int) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkIndex(index); err != nil {
		return "", err
	}

	removed := l.tasks[index-1]
	l.tasks = append(l.tasks[:index-1], l.tasks[index:]...)
	msg := removedHeader + "\n  " + removed.Render() + "\n" + l.countLine()
	return msg, l.save(ctx)
}

// Find lists every task whose description contains keyword, keeping each
// task's position in the full list.
func (l *TaskList) Find(keyword string) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var b strings.Builder
	for i, task := range l.tasks {
		if !strings.Contains(task.Description, keyword) {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(findHeader)
		}
		fmt.Fprintf(&b, "\n%d.%s", i+1, task.Render())
	}
	if b.Len() == 0 {
		return noMatchMessage
	}
	return b.String()
}

// Render lists every task as "<index>.<task>".
func (l *TaskList) Render() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.tasks) == 0 {
		return emptyListMessage
	}

	var b strings.Builder
	b.WriteString(listHeader)
	for i, task := range l.tasks {
		fmt.Fprintf(&b, "\n%d.%s", i+1, task.Render())
	}
	return b.String()
}

func (l *TaskList) countLine() string {
	return "Now you have " + english.Plural(len(l.tasks), "task", "") + " in the list."
}

func (l *TaskList) checkIndex(index int) error {
	if index < 1 || index > len(l.tasks) {
		return errors.NewIndexOutOfRangeError(index, len(l.tasks))
	}
	return nil
}

// save must be called with l.mu held.
func (l *TaskList) save(ctx context.Context) error {
	if l.opts.WriteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.opts.WriteTimeout)
		defer cancel()
	}

	snapshot := make([]domain.Task, len(l.tasks))
	copy(snapshot, l.tasks)
	if err := l.store.Save(ctx, snapshot); err != nil {
		if !errors.IsErrorType(err, errors.ErrorTypeStorageWrite) {
			err = errors.NewStorageWriteError("save tasks", err)
		}
		return err
	}
	logging.Debugf("persisted %d tasks", len(snapshot))
	return nil
}

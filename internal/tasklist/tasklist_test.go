package tasklist

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/repository/file"
	"task-tracker/internal/repository/mocks"
)

func newFileList(t *testing.T) (*TaskList, *file.Repository) {
	t.Helper()
	store := file.New(afero.NewMemMapFs(), "/tk/tasks.csv", file.DefaultOptions())
	require.NoError(t, store.Save(context.Background(), nil))
	list, err := Load(context.Background(), store, Options{WriteTimeout: time.Second})
	require.NoError(t, err)
	return list, store
}

func mustTodo(t *testing.T, description string) domain.Task {
	t.Helper()
	task, err := domain.NewTodo(description)
	require.NoError(t, err)
	return task
}

func mustDeadline(t *testing.T, description, date string) domain.Task {
	t.Helper()
	parsed, err := domain.ParseDate(date)
	require.NoError(t, err)
	task, err := domain.NewDeadline(description, parsed)
	require.NoError(t, err)
	return task
}

func TestAdd(t *testing.T) {
	list, store := newFileList(t)
	ctx := context.Background()

	msg, err := list.Add(ctx, mustTodo(t, "buy milk"))
	require.NoError(t, err)
	assert.Equal(t, "Got it. I've added this task:\n  [ ] buy milk\nNow you have 1 task in the list.", msg)

	msg, err = list.Add(ctx, mustDeadline(t, "pay rent", "2024-03-01"))
	require.NoError(t, err)
	assert.Equal(t, "Got it. I've added this task:\n  [ ] pay rent (by: 2024-03-01)\nNow you have 2 tasks in the list.", msg)
	assert.Equal(t, 2, list.Size())

	saved, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, saved, 2)
}

func TestMarkDone_Idempotent(t *testing.T) {
	list, store := newFileList(t)
	ctx := context.Background()
	_, err := list.Add(ctx, mustTodo(t, "buy milk"))
	require.NoError(t, err)

	msg, err := list.MarkDone(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Nice! I've marked this task as done:\n  [X] buy milk", msg)

	msg, err = list.MarkDone(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "This task is already done!\n  [X] buy milk", msg)
	assert.True(t, list.Tasks()[0].Done)

	saved, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, saved[0].Done)
}

func TestDelete_ShiftsIndices(t *testing.T) {
	list, _ := newFileList(t)
	ctx := context.Background()
	for _, d := range []string{"first", "second", "third"} {
		_, err := list.Add(ctx, mustTodo(t, d))
		require.NoError(t, err)
	}

	msg, err := list.Delete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Noted. I've removed this task:\n  [ ] second\nNow you have 2 tasks in the list.", msg)
	assert.Equal(t, 2, list.Size())
	assert.Equal(t, "Here are the tasks in your list:\n1.[ ] first\n2.[ ] third", list.Render())
	assert.Equal(t, "There are no tasks with the given keyword", list.Find("second"))

	msg, err = list.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Contains(t, msg, "Now you have 1 task in the list.")
}

func TestIndexOutOfRange(t *testing.T) {
	list, _ := newFileList(t)
	ctx := context.Background()
	_, err := list.Add(ctx, mustTodo(t, "buy milk"))
	require.NoError(t, err)

	for _, index := range []int{0, 2, -1} {
		_, err := list.MarkDone(ctx, index)
		assert.True(t, errors.IsCode(err, errors.CodeIndexOutOfRange), "MarkDone(%d)", index)

		_, err = list.Delete(ctx, index)
		assert.True(t, errors.IsCode(err, errors.CodeIndexOutOfRange), "Delete(%d)", index)
	}
	assert.Equal(t, 1, list.Size())
}

func TestFind(t *testing.T) {
	list, _ := newFileList(t)
	ctx := context.Background()
	_, _ = list.Add(ctx, mustTodo(t, "buy milk"))
	_, _ = list.Add(ctx, mustTodo(t, "read book"))
	_, _ = list.Add(ctx, mustTodo(t, "buy Milk chocolate"))

	assert.Equal(t, "Here are the matching tasks in your list:\n1.[ ] buy milk", list.Find("milk"))
	assert.Equal(t, "Here are the matching tasks in your list:\n1.[ ] buy milk\n3.[ ] buy Milk chocolate", list.Find("buy"))
	assert.Equal(t, "There are no tasks with the given keyword", list.Find("cheese"))
}

func TestRender_Empty(t *testing.T) {
	list, _ := newFileList(t)
	assert.Equal(t, "There is no task in the list", list.Render())
}

func TestLoad_ReadFailureStartsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaskStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return([]domain.Task{}, errors.NewStorageReadError("read", stderrors.New("corrupt")))

	list, err := Load(context.Background(), store, Options{})
	require.Error(t, err)
	require.NotNil(t, list)
	assert.Equal(t, 0, list.Size())
}

func TestSaveFailureKeepsMutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaskStore(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Len(1)).Return(stderrors.New("disk full"))

	list := New(store, nil, Options{})
	msg, err := list.Add(context.Background(), mustTodo(t, "buy milk"))

	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorageWrite))
	assert.Contains(t, msg, "Now you have 1 task in the list.")
	assert.Equal(t, 1, list.Size())
}

func TestEveryMutationSavesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaskStore(ctrl)
	gomock.InOrder(
		store.EXPECT().Save(gomock.Any(), gomock.Len(1)).Return(nil),
		store.EXPECT().Save(gomock.Any(), gomock.Len(1)).Return(nil),
		store.EXPECT().Save(gomock.Any(), gomock.Len(0)).Return(nil),
	)

	list := New(store, nil, Options{})
	ctx := context.Background()
	_, err := list.Add(ctx, mustTodo(t, "buy milk"))
	require.NoError(t, err)
	_, err = list.MarkDone(ctx, 1)
	require.NoError(t, err)
	list.Find("milk")
	list.Render()
	_, err = list.Delete(ctx, 1)
	require.NoError(t, err)
}

func TestSaveHonoursWriteTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaskStore(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ []domain.Task) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return nil
	})

	list := New(store, nil, Options{WriteTimeout: time.Second})
	_, err := list.Add(context.Background(), mustTodo(t, "buy milk"))
	require.NoError(t, err)
}

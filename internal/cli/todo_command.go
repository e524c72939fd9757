package cli

import (
	"context"
	"strings"

	"task-tracker/internal/domain"
)

// TodoCommand handles the todo command
type TodoCommand struct {
	app *App
}

// NewTodoCommand creates a new todo command handler
func NewTodoCommand(app *App) *TodoCommand {
	return &TodoCommand{app: app}
}

// Execute adds a plain task
func (c *TodoCommand) Execute(ctx context.Context, args Args) (string, error) {
	description := strings.TrimSpace(args.Rest)
	if !args.Present || description == "" {
		return "", missingArgument("The description of a todo task cannot be empty.")
	}
	if err := c.app.validator.ValidateDescription(description); err != nil {
		return "", err
	}

	task, err := domain.NewTodo(description)
	if err != nil {
		return "", err
	}
	return c.app.list.Add(ctx, task)
}

package cli

import (
	"context"

	"task-tracker/internal/errors"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute renders the whole list. Any argument is rejected.
func (c *ListCommand) Execute(ctx context.Context, args Args) (string, error) {
	if args.Present {
		return "", errors.NewCommandError(errors.CodeInvalidListUsage, "OOPS!!! Do you mean 'list' ?")
	}
	return c.app.list.Render(), nil
}

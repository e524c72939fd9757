package cli

import (
	"context"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute removes the numbered task
func (c *DeleteCommand) Execute(ctx context.Context, args Args) (string, error) {
	if !args.Present {
		return "", missingArgument("Which task do you want to delete?")
	}
	index, err := parseTaskIndex(c.app.list, args.Rest)
	if err != nil {
		return "", err
	}
	return c.app.list.Delete(ctx, index)
}

package cli

import (
	"context"
)

// DoneCommand handles the done command
type DoneCommand struct {
	app *App
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{app: app}
}

// Execute marks the numbered task as done
func (c *DoneCommand) Execute(ctx context.Context, args Args) (string, error) {
	if !args.Present {
		return "", missingArgument("Which task do you want to mark as done?")
	}
	index, err := parseTaskIndex(c.app.list, args.Rest)
	if err != nil {
		return "", err
	}
	return c.app.list.MarkDone(ctx, index)
}

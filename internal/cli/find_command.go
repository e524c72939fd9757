package cli

import (
	"context"
)

// FindCommand handles the find command
type FindCommand struct {
	app *App
}

// NewFindCommand creates a new find command handler
func NewFindCommand(app *App) *FindCommand {
	return &FindCommand{app: app}
}

// Execute lists tasks whose description contains the keyword. Matching is
// case-sensitive.
func (c *FindCommand) Execute(ctx context.Context, args Args) (string, error) {
	if !args.Present || args.Rest == "" {
		return "", missingArgument("Type in the keyword you want to search")
	}
	return c.app.list.Find(args.Rest), nil
}

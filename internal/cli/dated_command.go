package cli

import (
	"context"
	"time"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// DatedCommand adds a task that carries a date, such as a deadline or an event.
type DatedCommand struct {
	app            *App
	separator      string
	missingMessage string
	formatMessage  string
	build          func(description string, date time.Time) (domain.Task, error)
}

// NewDeadlineCommand handles "deadline <description> /by <yyyy-mm-dd>"
func NewDeadlineCommand(app *App) *DatedCommand {
	return &DatedCommand{
		app:            app,
		separator:      " /by ",
		missingMessage: "The description of a deadline cannot be empty.",
		formatMessage:  "OOPS!!! Wrong format.\nCorrect format should be: deadline <deadline_description> /by <deadline_time>",
		build:          domain.NewDeadline,
	}
}

// NewEventCommand handles "event <description> /at <yyyy-mm-dd>"
func NewEventCommand(app *App) *DatedCommand {
	return &DatedCommand{
		app:            app,
		separator:      " /at ",
		missingMessage: "The description of an event cannot be empty.",
		formatMessage:  "OOPS!!! Wrong format.\nCorrect format should be: event <event_description> /at <event_time>",
		build:          domain.NewEvent,
	}
}

// Execute parses the description and date and adds the task
func (c *DatedCommand) Execute(ctx context.Context, args Args) (string, error) {
	if !args.Present {
		return "", missingArgument(c.missingMessage)
	}

	description, rawDate, ok := splitTaskArguments(args.Rest, c.separator)
	if !ok {
		return "", errors.NewCommandError(errors.CodeBadTaskFormat, c.formatMessage).
			WithContext("input", args.Rest)
	}

	date, err := parseDate(c.app.validator, rawDate)
	if err != nil {
		return "", err
	}
	if err := c.app.validator.ValidateDescription(description); err != nil {
		return "", err
	}

	task, err := c.build(description, date)
	if err != nil {
		return "", err
	}
	return c.app.list.Add(ctx, task)
}

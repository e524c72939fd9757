package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"task-tracker/internal/config"
	"task-tracker/internal/errors"
	"task-tracker/internal/tasklist"
	"task-tracker/internal/validation"
)

// App interprets command lines against a task list
type App struct {
	list         *tasklist.TaskList
	validator    *validation.TaskValidator
	registry     *CommandRegistry
	errorHandler *ErrorHandler
	logger       *log.Logger
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(list *tasklist.TaskList, cfg *config.Config, logger *log.Logger) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		list:         list,
		validator:    validation.NewTaskValidatorWithConfig(cfg),
		errorHandler: NewErrorHandler(logger),
		logger:       logger,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// List returns the task list the app operates on
func (a *App) List() *tasklist.TaskList {
	return a.list
}

// Interpret runs one command line and returns its response text. The line is
// trimmed and split on the first space into a verb and the rest.
//
// A storage write error is returned together with a valid response: the
// command took effect in memory but could not be persisted.
func (a *App) Interpret(ctx context.Context, line string) (string, error) {
	verb, rest, present := strings.Cut(strings.TrimSpace(line), " ")
	return a.registry.Execute(ctx, verb, Args{Rest: rest, Present: present})
}

// Respond interprets line and turns any error into text for the user.
// The boolean reports whether the response describes a failure.
func (a *App) Respond(ctx context.Context, line string) (string, bool) {
	response, err := a.Interpret(ctx, line)
	if err == nil {
		return response, false
	}

	a.errorHandler.Log(line, err)
	if errors.IsCode(err, errors.CodeUnknownCommand) && a.logger != nil {
		a.logger.Debug("known verbs", "verbs", a.registry.Names())
	}

	message := a.errorHandler.UserMessage(err)
	// Only a failed save comes back with the mutation's response.
	if a.errorHandler.IsStorageError(err) && response != "" {
		return response + "\n" + message, true
	}
	return message, true
}

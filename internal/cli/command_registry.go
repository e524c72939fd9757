package cli

import (
	"context"
	"sort"

	"task-tracker/internal/errors"
)

const unknownCommandMessage = "OOPS!!! I'm sorry, but I don't know what that means :-("

// Args is everything after the verb. Present is false when the line had no space.
type Args struct {
	Rest    string
	Present bool
}

// Command represents an interpreter command
type Command interface {
	Execute(ctx context.Context, args Args) (string, error)
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	// Register all commands
	registry.Register("list", NewListCommand(app))
	registry.Register("done", NewDoneCommand(app))
	registry.Register("delete", NewDeleteCommand(app))
	registry.Register("todo", NewTodoCommand(app))
	registry.Register("deadline", NewDeadlineCommand(app))
	registry.Register("event", NewEventCommand(app))
	registry.Register("find", NewFindCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args Args) (string, error) {
	command, exists := r.commands[commandName]
	if !exists {
		return "", errors.NewCommandError(errors.CodeUnknownCommand, unknownCommandMessage).
			WithContext("verb", commandName)
	}
	return command.Execute(ctx, args)
}

// Names returns the registered verbs in alphabetical order
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

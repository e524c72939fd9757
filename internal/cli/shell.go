package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"task-tracker/internal/ui"
)

const (
	greeting = "Hello! I'm tk\nWhat can I do for you?"
	farewell = "Bye. Hope to see you again soon!"
	exitWord = "bye"
)

// Shell reads commands line by line until "bye" or end of input
type Shell struct {
	app    *App
	in     io.Reader
	out    io.Writer
	framer *ui.Framer
}

// NewShell creates an interactive shell around app
func NewShell(app *App, in io.Reader, out io.Writer, framer *ui.Framer) *Shell {
	return &Shell{app: app, in: in, out: out, framer: framer}
}

// Warn prints a framed warning, such as a failed startup load.
func (s *Shell) Warn(message string) {
	fmt.Fprint(s.out, s.framer.Frame(message, ui.ToneWarning))
}

// Run prints the greeting and processes commands. "bye" is never passed to the interpreter.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprint(s.out, s.framer.Frame(greeting, ui.ToneNormal))

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == exitWord {
			fmt.Fprint(s.out, s.framer.Frame(farewell, ui.ToneNormal))
			return nil
		}

		response, failed := s.app.Respond(ctx, line)
		tone := ui.ToneNormal
		if failed {
			tone = ui.ToneError
		}
		fmt.Fprint(s.out, s.framer.Frame(response, tone))
	}
	return scanner.Err()
}

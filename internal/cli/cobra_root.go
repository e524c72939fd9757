package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"task-tracker/internal/config"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository"
	"task-tracker/internal/tasklist"
	"task-tracker/internal/ui"
)

// ErrCommandFailed is returned by one-shot mode after the failure has been
// reported to the user.
var ErrCommandFailed = stderrors.New("command failed")

// StoreOpener opens the task store described by cfg
type StoreOpener func(cfg *config.Config) (repository.TaskStore, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd        *cobra.Command
	openStore  StoreOpener
	configPath string
	overrides  config.ConfigOverrides
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(openStore StoreOpener) *RootCommand {
	root := &RootCommand{openStore: openStore}

	root.cmd = &cobra.Command{
		Use:   "tk [command line]",
		Short: "A line-oriented task tracker",
		Long: `tk keeps a list of todos, deadlines and events.

Run without arguments for an interactive shell, or pass a single command line
to run it once and exit.

COMMANDS:
  todo <description>                       Add a task
  deadline <description> /by <yyyy-mm-dd>  Add a task with a deadline
  event <description> /at <yyyy-mm-dd>     Add an event
  list                                     Show every task
  done <number>                            Mark a task as done
  delete <number>                          Remove a task
  find <keyword>                           Show tasks containing keyword
  bye                                      Leave the interactive shell

EXAMPLES:
  tk                                       # Start the interactive shell
  tk todo buy milk                         # Add a task and exit
  tk deadline pay rent /by 2024-03-01
  tk list

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

  Config file: ~/.tk/config.yaml (override with TK_CONFIG or --config)

  Storage Configuration:
    TK_STORAGE_BACKEND                     file or sqlite (default: file)
    TK_DATA_DIR                            Data directory (default: ~/.tk)
    TK_DATA_FILENAME                       Data filename (default: tasks.csv / tasks.db)
    TK_STORAGE_WRITE_TIMEOUT               Save timeout (default: 5s)

  Display Configuration:
    TK_DISPLAY_FRAME_WIDTH                 Width of the output frame (default: 60)
    TK_DISPLAY_PLAIN                       Plain ASCII frames without color (default: false)

  Application Configuration:
    TK_DEBUG                               Enable debug logging
    TK_LOG_LEVEL                           debug, info, warn or error (default: info)`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.run(cmd, args)
		},
	}
	// Everything after the first word belongs to the task command line.
	root.cmd.Flags().SetInterspersed(false)

	// Add global flags for configuration overrides
	root.addGlobalFlags()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Command exposes the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.StringVar(&r.configPath, "config", "", "Config file (overrides TK_CONFIG)")

	// Storage configuration
	flags.String("backend", "", "Storage backend: file or sqlite (overrides TK_STORAGE_BACKEND)")
	flags.String("data-dir", "", "Data directory (overrides TK_DATA_DIR)")
	flags.String("data-file", "", "Data filename (overrides TK_DATA_FILENAME)")
	flags.Duration("write-timeout", 0, "Save timeout (overrides TK_STORAGE_WRITE_TIMEOUT)")

	// Validation configuration
	flags.Int("description-max-length", 0, "Maximum description length (overrides TK_VALIDATION_DESCRIPTION_MAX)")

	// Display configuration
	flags.Int("frame-width", 0, "Output frame width (overrides TK_DISPLAY_FRAME_WIDTH)")
	flags.Bool("plain", false, "Plain frames without color (overrides TK_DISPLAY_PLAIN)")

	// Application configuration
	flags.Bool("debug", false, "Enable debug logging (overrides TK_DEBUG)")
	flags.String("log-level", "", "Log level (overrides TK_LOG_LEVEL)")
}

// getConfigOverrides collects the flags that were set on the command line
func (r *RootCommand) getConfigOverrides() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	o := &r.overrides

	if flags.Changed("backend") {
		v, _ := flags.GetString("backend")
		o.Backend = &v
	}
	if flags.Changed("data-dir") {
		v, _ := flags.GetString("data-dir")
		o.DataDir = &v
	}
	if flags.Changed("data-file") {
		v, _ := flags.GetString("data-file")
		o.DataFilename = &v
	}
	if flags.Changed("write-timeout") {
		v, _ := flags.GetDuration("write-timeout")
		o.WriteTimeout = &v
	}
	if flags.Changed("description-max-length") {
		v, _ := flags.GetInt("description-max-length")
		o.DescriptionMaxLength = &v
	}
	if flags.Changed("frame-width") {
		v, _ := flags.GetInt("frame-width")
		o.FrameWidth = &v
	}
	if flags.Changed("plain") {
		v, _ := flags.GetBool("plain")
		o.Plain = &v
	}
	if flags.Changed("debug") {
		v, _ := flags.GetBool("debug")
		o.Debug = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		o.LogLevel = &v
	}
	return o
}

func (r *RootCommand) loadConfig() (*config.Config, error) {
	loader := config.NewLoader()
	if r.configPath != "" {
		loader = config.NewLoaderWithPath(r.configPath)
	}
	return loader.LoadWithOverrides(r.getConfigOverrides())
}

// run wires configuration, logging and storage, then starts the shell or
// interprets args once.
func (r *RootCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := r.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.New(cmd.ErrOrStderr(), logging.Options{
		Level: cfg.Application.LogLevel,
		Debug: cfg.Application.Debug,
	})
	logging.SetDefault(logger)

	store, err := r.openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open task store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing task store", "err", err)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	list, loadErr := tasklist.Load(ctx, store, tasklist.Options{WriteTimeout: cfg.GetWriteTimeout()})
	if loadErr != nil {
		logger.Warn("starting with an empty task list", "err", loadErr)
	}

	app := NewApp(list, cfg, logger)
	framer := ui.NewFramer(cfg.Display.FrameWidth, cfg.Display.Plain)

	if len(args) == 0 {
		shell := NewShell(app, cmd.InOrStdin(), cmd.OutOrStdout(), framer)
		if loadErr != nil {
			shell.Warn(errors.GetUserMessage(loadErr))
		}
		return shell.Run(ctx)
	}

	if loadErr != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errors.GetUserMessage(loadErr))
	}

	line := strings.TrimSpace(strings.Join(args, " "))
	if line == exitWord {
		fmt.Fprintln(cmd.OutOrStdout(), farewell)
		return nil
	}

	response, failed := app.Respond(ctx, line)
	if failed {
		fmt.Fprintln(cmd.ErrOrStderr(), response)
		return ErrCommandFailed
	}
	fmt.Fprintln(cmd.OutOrStdout(), response)
	return nil
}

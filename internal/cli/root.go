package cli

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todo-cli/internal/logging"
	"github.com/idilsaglam/todo-cli/internal/store/linestore"
	"github.com/idilsaglam/todo-cli/internal/ui"
)

// App carries root flags and the capabilities shared by every subcommand.
type App struct {
	File     string
	LogLevel string
	LogFile  string
	Theme    string
	NoColor  bool

	now    func() time.Time
	level  log.Level
	logger *log.Logger
}

// usageError marks errors caused by how the command was invoked.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

// ExitCode maps an error from Execute to a process exit code
// (0 ok, 1 error, 2 usage).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var u usageError
	if errors.As(err, &u) {
		return 2
	}
	return 1
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{now: time.Now})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "A tiny todo list with a modal terminal editor",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  todo add Buy milk
  todo ls
  todo remove 2
  todo i`),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return usageError{errors.New("missing subcommand")}
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		ui.SetTheme(app.Theme)
		if app.NoColor {
			ui.SetColorForcing(false, true)
		}
		lvl, err := logging.ParseLevel(app.LogLevel)
		if err != nil {
			return usageError{err}
		}
		app.level = lvl
		app.logger = logging.New(cmd.ErrOrStderr(), lvl)
		return nil
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	cmd.PersistentFlags().StringVar(&app.File, "file", envOr("TODO_FILE", ""), "Path to the todo file (default ~/.todo)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("TODO_LOG_LEVEL", "warn"), "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", envOr("TODO_LOG_FILE", ""), "Append interactive session logs to this file")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", envOr("TODO_THEME", "classic"), "Output colours (classic|neon|mono)")
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", false, "Disable coloured output")

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newRemoveCmd(app))
	cmd.AddCommand(newInteractiveCmd(app))

	return cmd
}

func (app *App) store() (linestore.Store, error) {
	if app.File != "" {
		return linestore.Store{Path: app.File}, nil
	}
	p, err := linestore.DefaultPath()
	if err != nil {
		return linestore.Store{}, err
	}
	return linestore.Store{Path: p}, nil
}

// args wraps a cobra validator so bad arguments count as usage errors.
func args(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		if err := v(cmd, a); err != nil {
			return usageError{err}
		}
		return nil
	}
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

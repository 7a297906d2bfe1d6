package cli

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todo-cli/internal/logging"
	"github.com/idilsaglam/todo-cli/internal/tui"
)

func newInteractiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Enter interactive mode",
		Long: `Open the todo list in a full-screen modal editor.

Normal mode: j/k move, g/G top/bottom, i edit, o new entry, enter/space done, : command.
Insert and new mode: type to edit, enter to commit, esc to leave (esc drops a new entry).
Commands: :w write, :q quit without writing, :wq write and quit.`,
		Args: args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.store()
			if err != nil {
				return err
			}
			// stderr is hidden behind the alt screen, so only log to a file
			logger := logging.Discard()
			if app.LogFile != "" {
				l, closer, err := logging.Open(app.LogFile, app.level)
				if err != nil {
					return err
				}
				defer closer.Close()
				logger = l
			}
			logger.Debug("opening todo file", "file", s.Path)
			return tui.Run(s, tui.Options{Logger: logger, Now: app.now})
		},
	}
}

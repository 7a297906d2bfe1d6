package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todo-cli/internal/model"
	"github.com/idilsaglam/todo-cli/internal/ui"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <words...>",
		Short: "Add a todo list item",
		Args:  args(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			s, err := app.store()
			if err != nil {
				return err
			}
			r := model.New(app.now(), strings.Join(a, " "))
			if err := s.Append(r); err != nil {
				return err
			}
			app.logger.Debug("appended todo", "file", s.Path)

			out := cmd.OutOrStdout()
			ui.OK(out, "Added: "+r.Description)
			fmt.Fprintln(out, ui.C(ui.Current().Stamp, r.Stamp()))
			return nil
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all todo list items",
		Args:    args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.store()
			if err != nil {
				return err
			}
			records, err := s.Load()
			if err != nil {
				return err
			}
			app.logger.Debug("loaded todos", "file", s.Path, "count", len(records))

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, ui.C(ui.Current().Muted, "No todos"))
				return nil
			}
			for i, r := range records {
				fmt.Fprintf(out, "%d. [%s] %s\n", i+1, ui.C(ui.Current().Stamp, r.Stamp()), r.Description)
			}
			return nil
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <index>",
		Aliases: []string{"rm", "done"},
		Short:   "Remove a todo list item by its 1-based index",
		Args:    args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			n, err := strconv.Atoi(a[0])
			if err != nil {
				return usageError{fmt.Errorf("remove: not a number: %s", a[0])}
			}
			s, err := app.store()
			if err != nil {
				return err
			}
			records, err := s.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if n < 1 || n > len(records) {
				fmt.Fprintln(out, ui.C(ui.Current().Error, fmt.Sprintf("Invalid todo index: %d", n)))
				fmt.Fprintln(out, ui.Dim("Hint: run `todo ls` to see valid indexes"))
				return nil
			}
			removed := records[n-1]
			records = append(records[:n-1], records[n:]...)
			if err := s.Save(records); err != nil {
				return err
			}
			app.logger.Debug("removed todo", "file", s.Path, "index", n)
			ui.OK(out, "Removed: "+removed.Description)
			return nil
		},
	}
}

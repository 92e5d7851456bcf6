package cli

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/ui"
)

func newLsCmd(app *App) *cobra.Command {
	var group bool

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Print the list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			ui.Panel(cmd.OutOrStdout(), ui.ListLines(store.State(), group))
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group output by pending/done")
	return cmd
}

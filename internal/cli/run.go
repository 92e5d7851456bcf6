package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/ui"
)

func newRunCmd(app *App) *cobra.Command {
	var group bool

	cmd := &cobra.Command{
		Use:   "run [file|-]",
		Short: "Apply a script of commands and print the result",
		Long: `Each line holds one command. Positions are 1-based and refer to the
list as it is when the line runs.

  add <text...>         append a todo
  rm <n>                delete
  done <n>              toggle completion
  edit <n> <text...>    replace the text
  select <n>            add to the selection
  unselect <n>          remove from the selection
  toggle <n>            toggle selection
  move <from> <to>      move one item
  batch <n> up|down     move the selection after (up) or before (down) n
  ls                    print the list

Blank lines and lines starting with # are ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, closeSrc, err := openScript(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			defer closeSrc()

			store, err := app.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			s := &Script{
				Store: store,
				Out:   cmd.OutOrStdout(),
				Err:   cmd.ErrOrStderr(),
				Group: group,
			}
			if err := s.Run(src); err != nil {
				return err
			}
			ui.Panel(cmd.OutOrStdout(), ui.ListLines(store.State(), group))
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group output by pending/done")
	return cmd
}

func openScript(stdin io.Reader, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open script: %w", err)
	}
	return f, func() { f.Close() }, nil
}

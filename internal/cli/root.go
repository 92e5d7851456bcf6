// Package cli wires the tada commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/seed"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

// App carries the state shared by every command.
type App struct {
	Config *config.Config
	Logger *logrus.Logger

	color  string
	closer io.Closer
}

// NewRootCmd builds the tada command tree.
func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "tada",
		Short:         "Todo list with multi-select drag and drop",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  tada

  # Print the seed list grouped by status
  tada ls --group

  # Apply a script and print the result
  echo "select 2
  select 4
  batch 3 up" | tada run -
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI. Logs are dropped unless a
			// log file is configured, since stderr shares the screen.
			store, err := app.open(nil)
			if err != nil {
				return err
			}
			return tui.Run(store, logging.Component(app.Logger, "tui"))
		},
	}

	config.BindFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().StringVar(&app.color, "color", "auto", "color output (auto, always, never)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}
		app.Config = cfg
		ui.SetTheme(cfg.Theme)
		switch app.color {
		case "auto":
		case "always":
			ui.SetColorForcing(true, false)
		case "never":
			ui.SetColorForcing(false, true)
		default:
			return &UsageError{Msg: "--color must be one of: auto, always, never"}
		}
		return nil
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.closer == nil {
			return nil
		}
		return app.closer.Close()
	}

	cmd.AddCommand(newLsCmd(app))
	cmd.AddCommand(newRunCmd(app))
	return cmd
}

// open builds the logger and a store seeded from the configured list.
func (a *App) open(logOut io.Writer) (*todo.Store, error) {
	logger, closer, err := logging.New(a.Config, logOut)
	if err != nil {
		return nil, err
	}
	a.Logger, a.closer = logger, closer

	list, err := seed.LoadList(a.Config.SeedPath, todo.NewUUID)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	logging.Component(logger, "seed").WithFields(logrus.Fields{
		"path":     a.Config.SeedPath,
		"items":    len(list.Items),
		"selected": len(list.Selected),
	}).Debug("seed loaded")

	return todo.New(list.Items, list.Selected,
		todo.WithLogger(logging.Component(logger, "store")),
	), nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return run(NewRootCmd(), os.Args[1:], os.Stderr)
}

func run(cmd *cobra.Command, args []string, stderr io.Writer) int {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	ui.Fail(stderr, err.Error())
	var usage *UsageError
	if errors.As(err, &usage) {
		return 2
	}
	return 1
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/josephgoksu/todo/internal/app"
	"github.com/josephgoksu/todo/internal/config"
	"github.com/josephgoksu/todo/internal/logger"
	"github.com/josephgoksu/todo/internal/ui"
	"github.com/josephgoksu/todo/store"
	"github.com/josephgoksu/todo/types"
)

func isVerbose() bool {
	return viper.GetBool("verbose")
}

func newLogger(cmd *cobra.Command) *log.Logger {
	return logger.New(cmd.ErrOrStderr(), isVerbose())
}

func openStore(cfg *types.AppConfig, l *log.Logger) (store.TaskStore, error) {
	path, err := config.StoragePath()
	if err != nil {
		return nil, err
	}
	return store.Open(appFs, path,
		store.WithAtomicSave(cfg.Storage.Atomic),
		store.WithLogger(l),
	)
}

// runInvocation opens the task file, dispatches inv and closes the file.
// The file is opened before the command is checked so a missing file is
// bootstrapped, and a corrupt one reported, whatever the command.
func runInvocation(cmd *cobra.Command, inv app.Invocation) error {
	cfg := GetConfig()
	l := newLogger(cmd)

	s, err := openStore(cfg, l)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	out := cmd.OutOrStdout()
	c := app.NewContext(s, out)
	c.Log = l
	c.Renderer = ui.NewListRenderer(cfg.Display.Locale, cfg.Display.Color && ui.IsTerminal(out))

	return app.Dispatch(c, inv)
}

// minArgs is cobra.MinimumNArgs with an argument-kind error.
func minArgs(n int, what string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return types.NewError(types.KindArgument, cmd.Name(), fmt.Sprintf("no %s after '%s'", what, cmd.Name()), nil)
		}
		return nil
	}
}

// noArgs is cobra.NoArgs with an argument-kind error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return types.NewError(types.KindArgument, cmd.Name(), fmt.Sprintf("unexpected argument %q", args[0]), nil)
	}
	return nil
}

func outputFormatsHelp() string {
	return strings.Join(config.OutputFormats, "|")
}

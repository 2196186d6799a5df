/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/josephgoksu/todo/internal/app"
	"github.com/josephgoksu/todo/internal/config"
	"github.com/josephgoksu/todo/internal/logger"
	"github.com/josephgoksu/todo/types"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// storageFile overrides the task file location.
	storageFile string
	// version is the application version.
	version = "1.0.0"

	// appFs is the filesystem the task store is opened on.
	appFs afero.Fs = afero.NewOsFs()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "A personal task list kept in $HOME/.todo",
	Long: `todo keeps an ordered list of tasks in a single JSON file in your home
directory. Tasks are addressed by their position in the list.

  todo list
  todo add buy milk
  todo remove 0 2`,
	Args:              rootArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: preRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInvocation(cmd, app.Invocation{})
	},
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

// Execute runs the command tree and returns the process exit code.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() int {
	logger.SetVersion(version)
	logger.SetLastInput(strings.Join(os.Args[1:], " "))

	if err := rootCmd.Execute(); err != nil {
		PrintError(rootCmd.ErrOrStderr(), err)
		return exitCode(err)
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.todorc.yaml or ./.todorc.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&storageFile, "file", "f", "", "task file (default is $HOME/.todo)")

	// Offer "list" for "lst" and "remove" for "remve".
	rootCmd.SuggestionsMinimumDistance = 2

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return types.NewError(types.KindArgument, cmd.Name(), err.Error(), nil)
	})
}

// rootArgs rejects anything that did not resolve to a subcommand.
func rootArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	msg := fmt.Sprintf("unknown command %q", args[0])
	if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
		msg += fmt.Sprintf(", did you mean %q?", suggestions[0])
	}
	return types.NewError(types.KindArgument, "", msg, nil)
}

func preRun(cmd *cobra.Command, args []string) error {
	logger.SetCommand(cmd.Name())
	if err := initConfig(cmd); err != nil {
		return err
	}
	logger.SetBasePath(config.DataDir())
	return nil
}

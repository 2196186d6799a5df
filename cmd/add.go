/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/josephgoksu/todo/internal/app"
)

var addCmd = &cobra.Command{
	Use:   "add <description...>",
	Short: "Append a task",
	Long: `Append a task to the end of the list. All words after "add" are joined
with single spaces into one description.`,
	Example: "  todo add buy milk and eggs",
	Args:    minArgs(1, "description"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInvocation(cmd, app.Invocation{Command: app.CommandAdd, Args: args})
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	// Words after the first are description text, not flags.
	addCmd.Flags().SetInterspersed(false)
}

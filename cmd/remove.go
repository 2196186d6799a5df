/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/josephgoksu/todo/internal/app"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id...>",
	Aliases: []string{"rm"},
	Short:   "Remove tasks by id",
	Long: `Remove one or more tasks. Ids are the positions printed by "todo list"
before the command runs; they may be given in any order. If any id is invalid
nothing is removed.`,
	Example: "  todo remove 1 3",
	Args:    minArgs(1, "task ids"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInvocation(cmd, app.Invocation{Command: app.CommandRemove, Args: args})
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

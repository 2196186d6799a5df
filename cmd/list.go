/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/josephgoksu/todo/internal/app"
	"github.com/josephgoksu/todo/internal/config"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print all tasks with their ids",
	Args:    noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInvocation(cmd, app.Invocation{
			Command: app.CommandList,
			Output:  GetConfig().Display.Output,
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("output", "o", config.DefaultOutput, "output format ("+outputFormatsHelp()+")")
}

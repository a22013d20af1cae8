package main

import (
	"github.com/spf13/cobra"
	"github.com/zoro11031/orbit-setup/internal/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the prompts in the library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext(true)
		if err != nil {
			return err
		}
		cli.ListEntries(ctx)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <filename>",
	Short: "Print a prompt's content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext(true)
		if err != nil {
			return err
		}
		return cli.ShowEntry(ctx, args[0])
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}

package main

import (
	"github.com/spf13/cobra"
	"github.com/zoro11031/orbit-setup/internal/cli"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which prompt files are installed",
	Long:  `Compare the target directory with the library and report each file as current, modified, or missing.`,
	Args:  cobra.NoArgs,
	RunE:  showStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func showStatus(cmd *cobra.Command, args []string) error {
	ctx, err := newContext(true)
	if err != nil {
		return err
	}

	return cli.ShowStatus(ctx)
}

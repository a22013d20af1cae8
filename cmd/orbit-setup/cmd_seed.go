package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zoro11031/orbit-setup/internal/cli"
	"github.com/zoro11031/orbit-setup/internal/config"
)

var dryRun bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the prompt library",
	Long: `Create the target directory if needed and write every prompt file into it.

Files are written in library order. The first failure stops the run; files
written before it stay on disk.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the files that would be written without writing them")

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx, err := newContext(true)
	if err != nil {
		return err
	}

	if err := ctx.Config.Set(config.KeyDryRun, strconv.FormatBool(dryRun)); err != nil {
		return err
	}

	_, err = cli.Seed(ctx)
	return err
}

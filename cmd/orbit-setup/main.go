package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zoro11031/orbit-setup/internal/cli"
	"github.com/zoro11031/orbit-setup/internal/config"
	"github.com/zoro11031/orbit-setup/internal/ui"
	"github.com/zoro11031/orbit-setup/pkg/version"
)

var (
	targetDir string
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "orbit-setup",
	Short: "Install the Orbit Prompt Library",
	Long: `Writes the Orbit Prompt Library into a project's command directory.

Each prompt becomes one markdown file under .claude/commands (or --dir).
Existing prompt files are overwritten; other files are left alone.

Run without arguments to write the library into the default directory.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true, // We handle errors manually, but silence usage on error
	SilenceErrors:     true, // We format errors ourselves for consistent output
	PersistentPreRunE: applyGlobalFlags,
	RunE:              runSeed,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Launch interactive menu",
	Long:  `Launch the interactive menu to seed, inspect, or retarget the prompt library.`,
	RunE:  runInteractiveMenu,
}

func init() {
	rootCmd.Version = version.Short()
	rootCmd.SetVersionTemplate(version.Name + " version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&targetDir, "dir", config.DefaultTargetDir, "Directory to write prompt files into")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(menuCmd)
}

func applyGlobalFlags(cmd *cobra.Command, args []string) error {
	if noColor {
		ui.SetNoColor(true)
	}
	return nil
}

// newContext builds a setup context and applies the --dir flag to it
func newContext(nonInteractive bool) (*cli.SetupContext, error) {
	ctx, err := cli.NewSetupContextWithOptions(nonInteractive)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize setup context: %w", err)
	}

	if err := ctx.Config.Set(config.KeyTargetDir, targetDir); err != nil {
		return nil, fmt.Errorf("invalid --dir: %w", err)
	}

	return ctx, nil
}

func runInteractiveMenu(cmd *cobra.Command, args []string) error {
	ctx, err := newContext(false)
	if err != nil {
		return err
	}

	menu := cli.NewMenu(ctx)
	return menu.Show()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

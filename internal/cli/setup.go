// Package cli provides the command-line interface layer for orbit-setup,
// including the shared context, the library actions, and the interactive
// menu. It bridges user commands to the seeder.
package cli

import (
	"fmt"
	"strings"

	"github.com/zoro11031/orbit-setup/internal/config"
	"github.com/zoro11031/orbit-setup/internal/library"
	"github.com/zoro11031/orbit-setup/internal/seeder"
	"github.com/zoro11031/orbit-setup/internal/system"
	"github.com/zoro11031/orbit-setup/internal/ui"
)

// SetupContext holds all dependencies needed for seeding operations
type SetupContext struct {
	Config  *config.Config
	UI      *ui.UI
	FS      system.FileSystemManager
	Library *library.Library
	Seeder  *seeder.Seeder
}

// NewSetupContextWithOptions creates a new SetupContext with custom options
func NewSetupContextWithOptions(nonInteractive bool) (*SetupContext, error) {
	uiInstance := ui.New()
	uiInstance.SetNonInteractive(nonInteractive)

	return NewSetupContextWith(config.New(), uiInstance, system.NewFileSystem())
}

// NewSetupContextWith wires a context from explicit dependencies
func NewSetupContextWith(cfg *config.Config, uiInstance *ui.UI, fs system.FileSystemManager) (*SetupContext, error) {
	lib, err := library.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt library: %w", err)
	}

	return &SetupContext{
		Config:  cfg,
		UI:      uiInstance,
		FS:      fs,
		Library: lib,
		Seeder:  seeder.NewSeeder(fs, cfg, uiInstance),
	}, nil
}

// Seed writes the whole library into the configured directory
func Seed(ctx *SetupContext) (*seeder.Result, error) {
	return ctx.Seeder.Run(ctx.Library.Entries())
}

// Status reports the state of every library entry in the configured directory
func Status(ctx *SetupContext) ([]seeder.EntryStatus, error) {
	return ctx.Seeder.Plan(ctx.Config.TargetDir(), ctx.Library.Entries())
}

// ShowStatus prints per-entry status and a progress line
func ShowStatus(ctx *SetupContext) error {
	dir := ctx.Config.TargetDir()
	statuses, err := Status(ctx)
	if err != nil {
		return err
	}

	ctx.UI.Header("Prompt Library Status")
	ctx.UI.BoldLabel("Target directory: ", dir)
	ctx.UI.Print("")

	for i, st := range statuses {
		switch st.State {
		case seeder.StateCurrent:
			ctx.UI.Successf("[%d] ✓ %s", i, st.Filename)
		case seeder.StateModified:
			ctx.UI.Warningf("[%d] ~ %s (modified locally, will be overwritten)", i, st.Filename)
		default:
			ctx.UI.Infof("[%d] - %s (missing)", i, st.Filename)
		}
	}

	ctx.UI.Print("")
	ctx.UI.Separator()
	ctx.UI.Infof("Progress: %s", seeder.Summary(statuses))
	ctx.UI.Separator()

	return nil
}

// ListEntries prints each entry with its title and summary
func ListEntries(ctx *SetupContext) {
	for _, e := range ctx.Library.Entries() {
		ctx.UI.Resultf("%-22s %s", e.Filename, e.Title)
		ctx.UI.Resultf("%-22s %s", "", e.Summary)
	}
}

// ShowEntry prints the raw content of one entry
func ShowEntry(ctx *SetupContext, filename string) error {
	e, ok := ctx.Library.Lookup(filename)
	if !ok {
		return fmt.Errorf("unknown entry: %s (available: %s)", filename, strings.Join(ctx.Library.Names(), ", "))
	}
	ctx.UI.Result(string(e.Content))
	return nil
}

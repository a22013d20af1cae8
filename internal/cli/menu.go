package cli

import (
	"errors"
	"fmt"

	"github.com/zoro11031/orbit-setup/internal/config"
	"github.com/zoro11031/orbit-setup/internal/seeder"
)

// ErrExit is returned when the user chooses to exit the menu
var ErrExit = errors.New("exit")

// Menu options, in display order
const (
	optionSeed      = "Seed prompt library"
	optionList      = "List prompts"
	optionStatus    = "Show status"
	optionTargetDir = "Change target directory"
	optionExit      = "Exit"
)

var menuOptions = []string{optionSeed, optionList, optionStatus, optionTargetDir, optionExit}

// Menu provides an interactive menu interface
type Menu struct {
	ctx *SetupContext
}

// NewMenu creates a new Menu instance
func NewMenu(ctx *SetupContext) *Menu {
	return &Menu{ctx: ctx}
}

// Show displays the main menu and handles user input
func (m *Menu) Show() error {
	if m.ctx.UI.IsNonInteractive() {
		return fmt.Errorf("the menu requires an interactive terminal")
	}

	m.ctx.UI.Header(m.ctx.Library.Name)
	m.ctx.UI.Infof("%d prompts, target directory: %s", m.ctx.Library.Len(), m.ctx.Config.TargetDir())

	for {
		m.ctx.UI.Print("")
		idx, err := m.ctx.UI.PromptSelect("What would you like to do?", menuOptions)
		if err != nil {
			return err
		}

		if err := m.handleChoice(menuOptions[idx]); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			m.ctx.UI.Error(fmt.Sprintf("%v", err))
		}
	}
}

// handleChoice processes the user's menu choice
func (m *Menu) handleChoice(choice string) error {
	switch choice {
	case optionSeed:
		return m.seed()
	case optionList:
		ListEntries(m.ctx)
		return nil
	case optionStatus:
		return ShowStatus(m.ctx)
	case optionTargetDir:
		return m.changeTargetDir()
	case optionExit:
		return ErrExit
	default:
		return fmt.Errorf("invalid choice: %s", choice)
	}
}

// seed asks before overwriting local edits, then runs the seeder
func (m *Menu) seed() error {
	statuses, err := Status(m.ctx)
	if err != nil {
		return err
	}

	if modified := seeder.CountByState(statuses)[seeder.StateModified]; modified > 0 {
		m.ctx.UI.Warningf("%d prompt files in %s differ from the library", modified, m.ctx.Config.TargetDir())
		proceed, err := m.ctx.UI.PromptYesNo("Overwrite them?", false)
		if err != nil {
			return fmt.Errorf("failed to prompt: %w", err)
		}
		if !proceed {
			m.ctx.UI.Info("Seeding cancelled")
			return nil
		}
	}

	_, err = Seed(m.ctx)
	return err
}

func (m *Menu) changeTargetDir() error {
	dir, err := m.ctx.UI.PromptInput("Target directory", m.ctx.Config.TargetDir())
	if err != nil {
		return fmt.Errorf("failed to prompt for target directory: %w", err)
	}

	if err := m.ctx.Config.Set(config.KeyTargetDir, dir); err != nil {
		return fmt.Errorf("invalid target directory: %w", err)
	}

	m.ctx.UI.Successf("Target directory set to %s", m.ctx.Config.TargetDir())
	return nil
}

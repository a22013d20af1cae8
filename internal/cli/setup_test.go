package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zoro11031/orbit-setup/internal/config"
	"github.com/zoro11031/orbit-setup/internal/system"
	"github.com/zoro11031/orbit-setup/internal/ui"
)

func newTestContext(t *testing.T) (*SetupContext, *system.MockFileSystem, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	ui.SetNoColor(true)
	var stdout, stderr bytes.Buffer
	testUI := ui.NewWithWriters(&stdout, &stderr)
	testUI.SetNonInteractive(true)

	cfg := config.New()
	if err := cfg.Set(config.KeyTargetDir, "/work/.claude/commands"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	mock := system.NewMockFileSystem()
	ctx, err := NewSetupContextWith(cfg, testUI, mock)
	if err != nil {
		t.Fatalf("NewSetupContextWith() failed: %v", err)
	}
	return ctx, mock, &stdout, &stderr
}

func TestSeed(t *testing.T) {
	ctx, mock, stdout, _ := newTestContext(t)

	result, err := Seed(ctx)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	if len(result.Written) != ctx.Library.Len() {
		t.Errorf("Seed() wrote %d files, want %d", len(result.Written), ctx.Library.Len())
	}
	if len(mock.WrittenFiles) != ctx.Library.Len() {
		t.Errorf("mock holds %d files, want %d", len(mock.WrittenFiles), ctx.Library.Len())
	}
	if !strings.HasPrefix(stdout.String(), "Created brief.md\n") {
		t.Errorf("stdout = %q, want first line Created brief.md", stdout.String())
	}
}

func TestShowStatus(t *testing.T) {
	ctx, mock, _, stderr := newTestContext(t)

	if _, err := Seed(ctx); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	mock.WrittenFiles["/work/.claude/commands/next.md"] = []byte("edited")

	if err := ShowStatus(ctx); err != nil {
		t.Fatalf("ShowStatus() error = %v", err)
	}

	out := stderr.String()
	if !strings.Contains(out, "Target directory: /work/.claude/commands\n") {
		t.Errorf("status output missing target directory: %q", out)
	}
	if !strings.Contains(out, "next.md (modified locally") {
		t.Errorf("status output missing modified entry: %q", out)
	}
	if !strings.Contains(out, "Progress: 19/20 up to date, 1 modified, 0 missing") {
		t.Errorf("status output missing progress line: %q", out)
	}
}

func TestListEntries(t *testing.T) {
	ctx, _, stdout, _ := newTestContext(t)

	ListEntries(ctx)

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	if len(lines) != 2*ctx.Library.Len() {
		t.Fatalf("ListEntries() printed %d lines, want %d", len(lines), 2*ctx.Library.Len())
	}
	if !strings.HasPrefix(lines[0], "brief.md") {
		t.Errorf("first line = %q, want brief.md first", lines[0])
	}
}

func TestShowEntry(t *testing.T) {
	ctx, _, stdout, _ := newTestContext(t)

	if err := ShowEntry(ctx, "tasks.md"); err != nil {
		t.Fatalf("ShowEntry() error = %v", err)
	}
	if stdout.String() != "Show tasks\n" {
		t.Errorf("ShowEntry() printed %q", stdout.String())
	}

	err := ShowEntry(ctx, "missing.md")
	if err == nil {
		t.Fatal("ShowEntry() error = nil, want error for unknown entry")
	}
	if !strings.Contains(err.Error(), "available: brief.md, review.md,") {
		t.Errorf("ShowEntry() error = %v, want list of available entries", err)
	}
}

func TestMenuRequiresInteractiveTerminal(t *testing.T) {
	ctx, _, _, _ := newTestContext(t)

	if err := NewMenu(ctx).Show(); err == nil {
		t.Error("Show() error = nil, want error in non-interactive mode")
	}
}

func TestMenuHandleChoice(t *testing.T) {
	ctx, mock, _, _ := newTestContext(t)
	m := NewMenu(ctx)

	if err := m.handleChoice(optionExit); err != ErrExit {
		t.Errorf("handleChoice(exit) = %v, want ErrExit", err)
	}
	if err := m.handleChoice("bogus"); err == nil {
		t.Error("handleChoice(bogus) error = nil, want error")
	}

	if err := m.handleChoice(optionSeed); err != nil {
		t.Fatalf("handleChoice(seed) error = %v", err)
	}
	if len(mock.WrittenFiles) != ctx.Library.Len() {
		t.Errorf("seed wrote %d files, want %d", len(mock.WrittenFiles), ctx.Library.Len())
	}
}

func TestMenuSeedDeclinesOverwriteOfEdits(t *testing.T) {
	ctx, mock, _, stderr := newTestContext(t)

	if err := mock.EnsureDirectory("/work/.claude/commands", 0755); err != nil {
		t.Fatalf("EnsureDirectory() error = %v", err)
	}
	mock.WrittenFiles["/work/.claude/commands/brief.md"] = []byte("my edits")

	// Non-interactive PromptYesNo returns the default, which is "no"
	if err := NewMenu(ctx).seed(); err != nil {
		t.Fatalf("seed() error = %v", err)
	}

	if string(mock.WrittenFiles["/work/.claude/commands/brief.md"]) != "my edits" {
		t.Error("seed() overwrote edited file without confirmation")
	}
	if !strings.Contains(stderr.String(), "Seeding cancelled") {
		t.Errorf("stderr = %q, want cancellation notice", stderr.String())
	}
}

// Package seeder writes the prompt library into a target directory. A run
// ensures the directory exists, then writes every entry in order, stopping
// at the first failure. Files written before a failure are left in place.
package seeder

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/zoro11031/orbit-setup/internal/common"
	"github.com/zoro11031/orbit-setup/internal/config"
	"github.com/zoro11031/orbit-setup/internal/library"
	"github.com/zoro11031/orbit-setup/internal/system"
	"github.com/zoro11031/orbit-setup/internal/ui"
)

// CompleteMessage is printed after every entry has been written
const CompleteMessage = "Orbit Prompt Library setup complete."

// Seeder materializes library entries as files
type Seeder struct {
	fs     system.FileSystemManager
	config *config.Config
	ui     *ui.UI
}

// Result describes a finished run
type Result struct {
	Dir     string
	Written []string
	DryRun  bool
}

// NewSeeder creates a new Seeder instance
func NewSeeder(fs system.FileSystemManager, cfg *config.Config, ui *ui.UI) *Seeder {
	return &Seeder{
		fs:     fs,
		config: cfg,
		ui:     ui,
	}
}

// EnsureDirectory creates path and any missing parents. An existing
// directory is left as is.
func (s *Seeder) EnsureDirectory(path string) error {
	if err := s.fs.EnsureDirectory(path, s.config.DirPerms()); err != nil {
		return &FilesystemError{Op: OpMkdir, Path: path, Err: err}
	}
	return nil
}

// WriteEntry writes content to dir/filename, replacing any existing content
func (s *Seeder) WriteEntry(dir, filename string, content []byte) error {
	path := filepath.Join(dir, filename)

	if err := common.ValidateFilename(filename); err != nil {
		return &FilesystemError{Op: OpWrite, Path: path, Err: err}
	}

	if err := s.fs.WriteFile(path, content, s.config.FilePerms()); err != nil {
		return &FilesystemError{Op: OpWrite, Path: path, Err: err}
	}
	return nil
}

// Run writes entries into the configured target directory. Each successful
// write is confirmed with a "Created <filename>" line. The first error
// aborts the run; the returned Result lists what was written before it.
func (s *Seeder) Run(entries []library.Entry) (*Result, error) {
	dir := s.config.TargetDir()
	result := &Result{Dir: dir, DryRun: s.config.DryRun()}

	if result.DryRun {
		for _, e := range entries {
			s.ui.WouldCreate(e.Filename)
		}
		s.ui.Infof("Dry run: %d files would be written to %s", len(entries), dir)
		return result, nil
	}

	if err := s.EnsureDirectory(dir); err != nil {
		return result, err
	}

	for _, e := range entries {
		if err := s.WriteEntry(dir, e.Filename, e.Content); err != nil {
			return result, err
		}
		result.Written = append(result.Written, e.Filename)
		s.ui.Created(e.Filename)
	}

	s.ui.Result("")
	s.ui.Result(CompleteMessage)
	return result, nil
}

// Plan reports the on-disk state of each entry in dir without writing
func (s *Seeder) Plan(dir string, entries []library.Entry) ([]EntryStatus, error) {
	statuses := make([]EntryStatus, 0, len(entries))

	exists, err := s.fs.DirectoryExists(dir)
	if err != nil {
		return statuses, &FilesystemError{Op: OpRead, Path: dir, Err: err}
	}

	for _, e := range entries {
		path := filepath.Join(dir, e.Filename)
		st := EntryStatus{Filename: e.Filename, Path: path}

		// Nothing to read before the first run
		if !exists {
			statuses = append(statuses, st)
			continue
		}

		data, err := s.fs.ReadFile(path)
		switch {
		case err == nil:
			if string(data) == string(e.Content) {
				st.State = StateCurrent
			} else {
				st.State = StateModified
			}
		case errors.Is(err, fs.ErrNotExist):
			st.State = StateMissing
		default:
			return statuses, &FilesystemError{Op: OpRead, Path: path, Err: err}
		}

		statuses = append(statuses, st)
	}

	return statuses, nil
}

// CountByState tallies statuses per state
func CountByState(statuses []EntryStatus) map[State]int {
	counts := make(map[State]int, 3)
	for _, st := range statuses {
		counts[st.State]++
	}
	return counts
}

// Summary formats a one-line overview of a plan
func Summary(statuses []EntryStatus) string {
	counts := CountByState(statuses)
	return fmt.Sprintf("%d/%d up to date, %d modified, %d missing",
		counts[StateCurrent], len(statuses), counts[StateModified], counts[StateMissing])
}

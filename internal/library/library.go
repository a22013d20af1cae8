// Package library holds the Orbit Prompt Library: the fixed set of prompt
// templates that orbit-setup writes into a project's command directory.
// Each prompt is packaged as its own markdown file and written verbatim;
// manifest.yaml fixes the order and carries display metadata.
package library

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/zoro11031/orbit-setup/internal/common"
	"gopkg.in/yaml.v3"
)

//go:embed manifest.yaml prompts/*.md
var content embed.FS

const (
	manifestFile = "manifest.yaml"
	promptsDir   = "prompts"
)

// Entry is a single prompt template to be materialized as a file
type Entry struct {
	Filename string
	Title    string
	Summary  string
	Content  []byte
}

// Library is the ordered, validated set of entries
type Library struct {
	Name    string
	entries []Entry
	index   map[string]int
}

type manifest struct {
	Name    string          `yaml:"name"`
	Entries []manifestEntry `yaml:"entries"`
}

type manifestEntry struct {
	File    string `yaml:"file"`
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
}

// Load returns the embedded prompt library
func Load() (*Library, error) {
	return LoadFS(content)
}

// LoadFS reads a manifest and its prompt files from fsys. The prompts are
// expected under prompts/ next to manifest.yaml.
func LoadFS(fsys fs.FS) (*Library, error) {
	raw, err := fs.ReadFile(fsys, manifestFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", manifestFile, err)
	}

	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", manifestFile, err)
	}

	if len(m.Entries) == 0 {
		return nil, fmt.Errorf("%s lists no entries", manifestFile)
	}

	lib := &Library{
		Name:    m.Name,
		entries: make([]Entry, 0, len(m.Entries)),
		index:   make(map[string]int, len(m.Entries)),
	}

	for _, me := range m.Entries {
		if err := common.ValidateFilename(me.File); err != nil {
			return nil, fmt.Errorf("invalid manifest entry: %w", err)
		}
		if _, dup := lib.index[me.File]; dup {
			return nil, fmt.Errorf("duplicate manifest entry: %s", me.File)
		}

		body, err := fs.ReadFile(fsys, path.Join(promptsDir, me.File))
		if err != nil {
			return nil, fmt.Errorf("failed to read prompt %s: %w", me.File, err)
		}

		lib.index[me.File] = len(lib.entries)
		lib.entries = append(lib.entries, Entry{
			Filename: me.File,
			Title:    me.Title,
			Summary:  me.Summary,
			Content:  body,
		})
	}

	return lib, nil
}

// Entries returns a copy of the entries in write order
func (l *Library) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Names returns the entry filenames in write order
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		names = append(names, e.Filename)
	}
	return names
}

// Lookup finds an entry by filename
func (l *Library) Lookup(filename string) (Entry, bool) {
	i, ok := l.index[filename]
	if !ok {
		return Entry{}, false
	}
	return l.entries[i], true
}

// Len returns the number of entries
func (l *Library) Len() int {
	return len(l.entries)
}

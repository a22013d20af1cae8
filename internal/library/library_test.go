package library

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Orbit Prompt Library", lib.Name)
	assert.Equal(t, 20, lib.Len())

	// Order follows the manifest
	names := lib.Names()
	assert.Equal(t, "brief.md", names[0])
	assert.Equal(t, "review.md", names[1])
	assert.Equal(t, "research-context.md", names[len(names)-1])

	for _, e := range lib.Entries() {
		assert.NotEmpty(t, e.Title, "entry %s has no title", e.Filename)
		assert.NotEmpty(t, e.Summary, "entry %s has no summary", e.Filename)
		assert.NotEmpty(t, e.Content, "entry %s has no content", e.Filename)
	}
}

func loadEmbedded(t *testing.T) *Library {
	t.Helper()
	lib, err := Load()
	require.NoError(t, err)
	return lib
}

func TestEmbeddedContentIsVerbatim(t *testing.T) {
	lib := loadEmbedded(t)

	tests := []struct {
		filename string
		want     string
	}{
		{"tasks.md", "Show tasks"},
		{"task-init.md", "I have a PRD at scripts/prd.txt. Can you parse it and set up initial tasks?"},
		{"git-commit.md", "Please review my current changes and suggest an appropriate commit message that follows conventional commit format."},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			e, ok := lib.Lookup(tt.filename)
			require.True(t, ok)
			assert.Equal(t, tt.want, string(e.Content))
		})
	}
}

func TestEmbeddedContentHasNoTrailingNewline(t *testing.T) {
	for _, e := range loadEmbedded(t).Entries() {
		assert.False(t, bytes.HasSuffix(e.Content, []byte("\n")), "entry %s ends with a newline", e.Filename)
	}
}

func TestLookupMissing(t *testing.T) {
	_, ok := loadEmbedded(t).Lookup("nope.md")
	assert.False(t, ok)
}

func TestEntriesReturnsCopy(t *testing.T) {
	lib := loadEmbedded(t)
	entries := lib.Entries()
	entries[0].Filename = "changed.md"

	assert.Equal(t, "brief.md", lib.Names()[0])
}

func TestLoadFSErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want string
	}{
		{
			name: "missing manifest",
			fsys: fstest.MapFS{},
			want: "failed to read manifest.yaml",
		},
		{
			name: "malformed yaml",
			fsys: fstest.MapFS{
				"manifest.yaml": {Data: []byte("entries: [")},
			},
			want: "failed to parse manifest.yaml",
		},
		{
			name: "no entries",
			fsys: fstest.MapFS{
				"manifest.yaml": {Data: []byte("name: empty\n")},
			},
			want: "lists no entries",
		},
		{
			name: "duplicate filename",
			fsys: fstest.MapFS{
				"manifest.yaml": {Data: []byte("entries:\n  - file: a.md\n  - file: a.md\n")},
				"prompts/a.md":  {Data: []byte("a")},
			},
			want: "duplicate manifest entry: a.md",
		},
		{
			name: "path traversal",
			fsys: fstest.MapFS{
				"manifest.yaml": {Data: []byte("entries:\n  - file: ../a.md\n")},
			},
			want: "invalid manifest entry",
		},
		{
			name: "prompt file missing",
			fsys: fstest.MapFS{
				"manifest.yaml": {Data: []byte("entries:\n  - file: a.md\n")},
			},
			want: "failed to read prompt a.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFS(tt.fsys)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"manifest.yaml": {Data: []byte("name: test\nentries:\n  - file: b.md\n    title: B\n  - file: a.md\n")},
		"prompts/a.md":  {Data: []byte("alpha\n")},
		"prompts/b.md":  {Data: []byte("beta")},
	}

	lib, err := LoadFS(fsys)
	require.NoError(t, err)

	assert.Equal(t, []string{"b.md", "a.md"}, lib.Names())

	b, ok := lib.Lookup("b.md")
	require.True(t, ok)
	assert.Equal(t, "B", b.Title)
	assert.Equal(t, []byte("beta"), b.Content)

	a, ok := lib.Lookup("a.md")
	require.True(t, ok)
	assert.Equal(t, []byte("alpha\n"), a.Content)
}

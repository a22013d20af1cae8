package system

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// MockFileSystem is a mock of the FileSystem for testing purposes.
// It captures written files in memory and implements FileSystemManager.
type MockFileSystem struct {
	mu           sync.Mutex
	WrittenFiles map[string][]byte
	Directories  map[string]bool
	// WriteOrder records every successful WriteFile path in call order
	WriteOrder []string
	// FailPaths makes WriteFile or EnsureDirectory return the mapped error for that path
	FailPaths map[string]error
}

var _ FileSystemManager = (*MockFileSystem)(nil)

// NewMockFileSystem creates a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		WrittenFiles: make(map[string][]byte),
		Directories:  make(map[string]bool),
		FailPaths:    make(map[string]error),
	}
}

// FailOn makes any operation on path fail with err
func (m *MockFileSystem) FailOn(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FailPaths[filepath.Clean(path)] = err
}

// EnsureDirectory records the directory and its parents.
func (m *MockFileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	if err, ok := m.FailPaths[path]; ok {
		return err
	}
	if _, ok := m.WrittenFiles[path]; ok {
		return errors.New(path + " exists but is not a directory")
	}

	for p := path; ; p = filepath.Dir(p) {
		m.Directories[p] = true
		if parent := filepath.Dir(p); parent == p {
			break
		}
	}
	return nil
}

// WriteFile captures the content that would be written to a file.
func (m *MockFileSystem) WriteFile(path string, content []byte, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	if err, ok := m.FailPaths[path]; ok {
		return err
	}

	m.WrittenFiles[path] = append([]byte(nil), content...)
	m.WriteOrder = append(m.WriteOrder, path)
	return nil
}

// ReadFile returns previously written content
func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.WrittenFiles[filepath.Clean(path)]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return data, nil
}

// DirectoryExists reports whether path was created as a directory
func (m *MockFileSystem) DirectoryExists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Directories[filepath.Clean(path)], nil
}

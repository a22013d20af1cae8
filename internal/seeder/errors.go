package seeder

import "fmt"

// Filesystem operations reported in FilesystemError.Op
const (
	OpMkdir = "mkdir"
	OpWrite = "write"
	OpRead  = "read"
)

// FilesystemError is the single error kind returned by the seeder. It covers
// directory creation, per-file writes, and reads made while planning.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem error (%s): %v", e.Op, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

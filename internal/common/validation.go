package common

import (
	"fmt"
	"os"
	"strings"
)

// ValidateFilename validates a bare file name that will be joined onto a
// target directory. Separators and dot entries are rejected so an entry can
// never escape the directory it is written to.
func ValidateFilename(name string) error {
	if name == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	if name == "." || name == ".." {
		return fmt.Errorf("invalid filename: %s", name)
	}

	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("filename must not contain path separators: %s", name)
	}

	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("filename contains NUL byte: %q", name)
	}

	if len(name) > 255 {
		return fmt.Errorf("filename too long (max 255 characters): %s", name)
	}

	return nil
}

// ValidateDirPath validates a target directory path. Relative paths are
// allowed and resolve against the working directory.
func ValidateDirPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("directory path cannot be empty")
	}

	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("directory path contains NUL byte: %q", path)
	}

	return nil
}

// ValidatePerms validates a permission mode for created files or directories
func ValidatePerms(perms os.FileMode) error {
	if perms&^os.ModePerm != 0 {
		return fmt.Errorf("permissions must only contain permission bits, got: %v", perms)
	}

	// Owner must at least be able to write, otherwise a rerun cannot overwrite
	if perms&0200 == 0 {
		return fmt.Errorf("permissions must grant owner write access, got: %o", perms)
	}

	return nil
}

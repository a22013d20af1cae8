package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Output location
	KeyTargetDir = "TARGET_DIR"

	// Permissions, as octal strings
	KeyDirPerms  = "DIR_PERMS"
	KeyFilePerms = "FILE_PERMS"

	// Behaviour
	KeyDryRun = "DRY_RUN"
)

// DefaultTargetDir is where the prompt library is written when no directory is given
const DefaultTargetDir = ".claude/commands"

// Default values for configuration keys
var Defaults = map[string]string{
	KeyTargetDir: DefaultTargetDir,
	KeyDirPerms:  "0755",
	KeyFilePerms: "0644",
	KeyDryRun:    "false",
}

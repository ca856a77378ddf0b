// Package statedir resolves where zeta keeps its local state.
//
// Priority order: --state-dir flag > ZETA_STATE_DIR env > ~/.zeta default.
package statedir

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvVar overrides the default state directory.
const EnvVar = "ZETA_STATE_DIR"

var override string

// SetDir sets an override for the state directory.
// This is typically called when parsing the --state-dir flag.
func SetDir(dir string) {
	override = dir
}

// Root returns the state root directory.
func Root() (string, error) {
	if override != "" {
		return override, nil
	}

	if envDir := os.Getenv(EnvVar); envDir != "" {
		return envDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return filepath.Join(home, ".zeta"), nil
}

// PrefsPath returns the debug preferences file.
// Returns: <state_root>/prefs.yaml
func PrefsPath() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "prefs.yaml"), nil
}

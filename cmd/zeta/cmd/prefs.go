package cmd

import (
	"fmt"
	"slices"

	"github.com/manjunathc23/zeta/cmd/zeta/internal/statedir"
	"github.com/manjunathc23/zeta/pkg/prefs"
)

func init() {
	RegisterCommand(&Command{
		Name:  "prefs",
		Short: "Show or change developer settings",
		Long: `Show or change the developer settings stored in the state directory.

Settings:
  enableStrictMode          Panic on adapter contract violations (bool)
  enableVerboseDiagnostics  Include kind, index and stack in diagnostics (bool)
  enableStickyHeaders       Draw per-day section headers (bool, default true)
  httpLoggingLevel          NONE, BASIC, HEADERS or BODY
  flickrEnv                 prod, staging or mock

Usage:
  zeta prefs                      # List all settings
  zeta prefs get enableStrictMode
  zeta prefs set flickrEnv mock`,
		Usage: "zeta prefs [list | get KEY | set KEY VALUE]",
		Run:   runPrefs,
	})
}

func runPrefs(args []string) error {
	store, debug, err := openDebugPrefs()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		for _, key := range prefs.AllKeys() {
			value, err := debug.Get(key)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "%-26s %s\n", key, value)
		}
		for _, key := range unknownKeys(store) {
			fmt.Fprintf(stdout, "%-26s %s (unknown)\n", key, store.String(key, ""))
		}
		return nil
	case "get":
		if len(args) != 2 {
			return fmt.Errorf("usage: zeta prefs get KEY")
		}
		value, err := debug.Get(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, value)
		return nil
	case "set":
		if len(args) != 3 {
			return fmt.Errorf("usage: zeta prefs set KEY VALUE")
		}
		if err := debug.Set(args[1], args[2]); err != nil {
			return err
		}
		if err := store.Save(); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s = %s\n", args[1], args[2])
		return nil
	default:
		return fmt.Errorf("unknown prefs action %q (use list, get or set)", args[0])
	}
}

// unknownKeys returns the stored keys this build has no setting for, such as
// settings left behind by older versions.
func unknownKeys(store prefs.Store) []string {
	known := make(map[string]bool)
	for _, key := range prefs.AllKeys() {
		known[key] = true
	}
	var keys []string
	for _, key := range store.Keys() {
		if !known[key] {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys
}

// openDebugPrefs opens the preferences file in the state directory.
func openDebugPrefs() (*prefs.FileStore, *prefs.Debug, error) {
	path, err := statedir.PrefsPath()
	if err != nil {
		return nil, nil, err
	}
	store, err := prefs.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return store, prefs.NewDebug(store, nil), nil
}

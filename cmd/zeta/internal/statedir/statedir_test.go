package statedir

import (
	"path/filepath"
	"testing"
)

func TestRootPriority(t *testing.T) {
	t.Cleanup(func() { SetDir("") })

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvVar, "")

	got, err := Root()
	if err != nil {
		t.Fatalf("Root: %v", err)
	}
	if want := filepath.Join(home, ".zeta"); got != want {
		t.Fatalf("default root = %q, want %q", got, want)
	}

	t.Setenv(EnvVar, "/from/env")
	if got, _ := Root(); got != "/from/env" {
		t.Fatalf("env root = %q", got)
	}

	SetDir("/from/flag")
	if got, _ := Root(); got != "/from/flag" {
		t.Fatalf("flag root = %q", got)
	}
}

func TestPrefsPath(t *testing.T) {
	t.Cleanup(func() { SetDir("") })
	SetDir("/state")

	got, err := PrefsPath()
	if err != nil {
		t.Fatalf("PrefsPath: %v", err)
	}
	if got != filepath.Join("/state", "prefs.yaml") {
		t.Fatalf("PrefsPath = %q", got)
	}
}

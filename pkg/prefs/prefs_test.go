package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manjunathc23/zeta/pkg/errors"
)

type recordingHandler struct {
	errs []*errors.Error
}

func (h *recordingHandler) HandleError(err *errors.Error)      { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError) {}

func TestFileStoreMissingFile(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "prefs.yaml"))
	require.NoError(t, err)
	assert.True(t, s.Bool("missing", true))
	assert.Equal(t, "x", s.String("missing", "x"))
	assert.Equal(t, 3, s.Int("missing", 3))
	assert.Empty(t, s.Keys())
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")
	s, err := Open(path)
	require.NoError(t, err)

	s.SetBool("flag", true)
	s.SetInt("count", 7)
	s.SetString("name", "zeta")
	require.NoError(t, s.Save())

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.True(t, reopened.Bool("flag", false))
	assert.Equal(t, 7, reopened.Int("count", 0))
	assert.Equal(t, "7", reopened.String("count", ""))
	assert.Equal(t, "zeta", reopened.String("name", ""))
	assert.ElementsMatch(t, []string{"flag", "count", "name"}, reopened.Keys())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files should not be left behind")
}

func TestFileStoreBadValuesUseDefault(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "prefs.yaml"))
	require.NoError(t, err)
	s.SetString("flag", "maybe")
	s.SetString("count", "many")
	assert.False(t, s.Bool("flag", false))
	assert.Equal(t, 1, s.Int("count", 1))
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("[not: a map"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
	var zerr *errors.Error
	require.ErrorAs(t, err, &zerr)
	require.Equal(t, errors.KindStorage, zerr.Kind)
}

func TestDebugDefaults(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "prefs.yaml"))
	require.NoError(t, err)
	d := NewDebug(s, &recordingHandler{})

	assert.False(t, d.StrictModeEnabled())
	assert.False(t, d.VerboseDiagnosticsEnabled())
	assert.True(t, d.StickyHeadersEnabled())
	assert.Equal(t, EnvProd, d.FlickrEnv())
	assert.Equal(t, HTTPLogNone, d.HTTPLoggingLevel())
}

func TestDebugHTTPLoggingLevelFallback(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "prefs.yaml"))
	require.NoError(t, err)
	h := &recordingHandler{}
	d := NewDebug(s, h)

	s.SetString(KeyHTTPLoggingLevel, "VERBOSE")
	assert.Equal(t, HTTPLogBasic, d.HTTPLoggingLevel())
	require.Len(t, h.errs, 1)
	assert.Equal(t, errors.KindConfig, h.errs[0].Kind)

	d.SetHTTPLoggingLevel(HTTPLogHeaders)
	assert.Equal(t, HTTPLogHeaders, d.HTTPLoggingLevel())
}

func TestDebugSetAndGet(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "prefs.yaml"))
	require.NoError(t, err)
	d := NewDebug(s, &recordingHandler{})

	tests := []struct {
		key, value, want string
	}{
		{KeyStrictMode, "on", "true"},
		{KeyVerboseDiagnostics, "1", "true"},
		{KeyStickyHeaders, "false", "false"},
		{KeyHTTPLoggingLevel, "body", "BODY"},
		{KeyFlickrEnv, "staging", "staging"},
	}
	for _, tt := range tests {
		require.NoError(t, d.Set(tt.key, tt.value), tt.key)
		got, err := d.Get(tt.key)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.key)
	}

	assert.Error(t, d.Set(KeyStrictMode, "perhaps"))
	assert.Error(t, d.Set(KeyFlickrEnv, "moon"))
	assert.Error(t, d.Set("unknown", "x"))
	_, err = d.Get("unknown")
	assert.Error(t, err)
}

func TestDebugFlickrEnvOutOfRange(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "prefs.yaml"))
	require.NoError(t, err)
	s.SetInt(KeyFlickrEnv, 42)
	assert.Equal(t, EnvProd, NewDebug(s, nil).FlickrEnv())
}

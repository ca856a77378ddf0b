package prefs

import (
	"fmt"
	"strings"

	"github.com/manjunathc23/zeta/pkg/errors"
)

// Keys of the developer settings.
const (
	KeyStrictMode         = "enableStrictMode"
	KeyVerboseDiagnostics = "enableVerboseDiagnostics"
	KeyStickyHeaders      = "enableStickyHeaders"
	KeyHTTPLoggingLevel   = "httpLoggingLevel"
	KeyFlickrEnv          = "flickrEnv"
)

// HTTPLoggingLevel controls how much of each feed request is logged.
type HTTPLoggingLevel string

// Logging levels, from silent to full response bodies.
const (
	HTTPLogNone    HTTPLoggingLevel = "NONE"
	HTTPLogBasic   HTTPLoggingLevel = "BASIC"
	HTTPLogHeaders HTTPLoggingLevel = "HEADERS"
	HTTPLogBody    HTTPLoggingLevel = "BODY"
)

// ParseHTTPLoggingLevel parses a level name, case-insensitively.
func ParseHTTPLoggingLevel(s string) (HTTPLoggingLevel, error) {
	switch lvl := HTTPLoggingLevel(strings.ToUpper(strings.TrimSpace(s))); lvl {
	case HTTPLogNone, HTTPLogBasic, HTTPLogHeaders, HTTPLogBody:
		return lvl, nil
	}
	return "", fmt.Errorf("unknown http logging level %q", s)
}

// Env selects the feed backend.
type Env int

// Feed backends. EnvMock serves a built-in sample feed.
const (
	EnvProd Env = iota
	EnvStaging
	EnvMock
)

// String returns the name accepted by Debug.Set.
func (e Env) String() string {
	switch e {
	case EnvStaging:
		return "staging"
	case EnvMock:
		return "mock"
	default:
		return "prod"
	}
}

// Debug exposes developer settings stored in a Store.
type Debug struct {
	store       Store
	diagnostics errors.Handler
}

// NewDebug wraps store. Diagnostics receives warnings about unreadable
// values; nil uses the global handler.
func NewDebug(store Store, diagnostics errors.Handler) *Debug {
	return &Debug{store: store, diagnostics: diagnostics}
}

// StrictModeEnabled reports whether adapter contract violations panic.
func (d *Debug) StrictModeEnabled() bool {
	return d.store.Bool(KeyStrictMode, false)
}

// VerboseDiagnosticsEnabled reports whether diagnostics include the error
// kind, index and stack trace.
func (d *Debug) VerboseDiagnosticsEnabled() bool {
	return d.store.Bool(KeyVerboseDiagnostics, false)
}

// StickyHeadersEnabled defaults to true.
func (d *Debug) StickyHeadersEnabled() bool {
	return d.store.Bool(KeyStickyHeaders, true)
}

// FlickrEnv returns the feed backend. Unknown stored values read as EnvProd.
func (d *Debug) FlickrEnv() Env {
	env := Env(d.store.Int(KeyFlickrEnv, int(EnvProd)))
	if env < EnvProd || env > EnvMock {
		return EnvProd
	}
	return env
}

// HTTPLoggingLevel returns the stored level, NONE when unset. A stored name
// this build does not know falls back to BASIC and reports a warning.
func (d *Debug) HTTPLoggingLevel() HTTPLoggingLevel {
	saved := d.store.String(KeyHTTPLoggingLevel, string(HTTPLogNone))
	lvl, err := ParseHTTPLoggingLevel(saved)
	if err != nil {
		errors.ReportTo(d.diagnostics, errors.New("prefs.HTTPLoggingLevel", errors.KindConfig, err))
		return HTTPLogBasic
	}
	return lvl
}

// SetStrictMode toggles strict adapter checks.
func (d *Debug) SetStrictMode(enabled bool) {
	d.store.SetBool(KeyStrictMode, enabled)
}

// SetVerboseDiagnostics toggles verbose diagnostics.
func (d *Debug) SetVerboseDiagnostics(enabled bool) {
	d.store.SetBool(KeyVerboseDiagnostics, enabled)
}

// SetStickyHeaders toggles the per-day section headers.
func (d *Debug) SetStickyHeaders(enabled bool) {
	d.store.SetBool(KeyStickyHeaders, enabled)
}

// SetFlickrEnv selects the feed backend.
func (d *Debug) SetFlickrEnv(env Env) {
	d.store.SetInt(KeyFlickrEnv, int(env))
}

// SetHTTPLoggingLevel sets how much of each feed request is logged.
func (d *Debug) SetHTTPLoggingLevel(lvl HTTPLoggingLevel) {
	d.store.SetString(KeyHTTPLoggingLevel, string(lvl))
}

// Set assigns a setting from its textual form, validating known keys.
func (d *Debug) Set(key, value string) error {
	switch key {
	case KeyStrictMode, KeyVerboseDiagnostics, KeyStickyHeaders:
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		d.store.SetBool(key, b)
	case KeyHTTPLoggingLevel:
		lvl, err := ParseHTTPLoggingLevel(value)
		if err != nil {
			return err
		}
		d.SetHTTPLoggingLevel(lvl)
	case KeyFlickrEnv:
		for _, env := range []Env{EnvProd, EnvStaging, EnvMock} {
			if env.String() == value {
				d.SetFlickrEnv(env)
				return nil
			}
		}
		return fmt.Errorf("unknown flickr environment %q", value)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

// Get returns the textual form of a known setting.
func (d *Debug) Get(key string) (string, error) {
	switch key {
	case KeyStrictMode:
		return fmt.Sprint(d.StrictModeEnabled()), nil
	case KeyVerboseDiagnostics:
		return fmt.Sprint(d.VerboseDiagnosticsEnabled()), nil
	case KeyStickyHeaders:
		return fmt.Sprint(d.StickyHeadersEnabled()), nil
	case KeyHTTPLoggingLevel:
		return string(d.HTTPLoggingLevel()), nil
	case KeyFlickrEnv:
		return d.FlickrEnv().String(), nil
	default:
		return "", fmt.Errorf("unknown setting %q", key)
	}
}

// AllKeys lists the known settings in display order.
func AllKeys() []string {
	return []string{KeyStrictMode, KeyVerboseDiagnostics, KeyStickyHeaders, KeyHTTPLoggingLevel, KeyFlickrEnv}
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "on", "yes", "1":
		return true, nil
	case "false", "off", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

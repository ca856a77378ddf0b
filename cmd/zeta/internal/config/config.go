package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the optional project configuration file.
const FileName = "zeta.yaml"

// Config represents the optional zeta.yaml configuration.
type Config struct {
	App   AppConfig   `yaml:"app"`
	Debug DebugConfig `yaml:"debug"`
	Feed  FeedConfig  `yaml:"feed"`
	List  ListConfig  `yaml:"list"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// DebugConfig contains developer toggles. Values set in the debug
// preferences take precedence when enabled there.
type DebugConfig struct {
	Strict  bool `yaml:"strict,omitempty"`
	Verbose bool `yaml:"verbose,omitempty"`
}

// FeedConfig selects where photos come from.
type FeedConfig struct {
	URL      string   `yaml:"url,omitempty"`
	File     string   `yaml:"file,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
	PageSize int      `yaml:"page_size,omitempty"`
}

// ListConfig sizes the terminal list.
type ListConfig struct {
	Header     *bool  `yaml:"header,omitempty"`
	Title      string `yaml:"title,omitempty"`
	Height     int    `yaml:"height,omitempty"`
	Width      int    `yaml:"width,omitempty"`
	ItemExtent int    `yaml:"item_extent,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string

	Strict  bool
	Verbose bool

	FeedURL  string
	FeedFile string
	Tags     []string
	PageSize int

	Header     bool
	Title      string
	Height     int
	Width      int
	ItemExtent int
}

const (
	defaultPageSize   = 20
	defaultHeight     = 12
	defaultWidth      = 60
	defaultItemExtent = 2
)

// LoadOptional reads zeta.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads zeta.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	r := &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		Strict:     cfg.Debug.Strict,
		Verbose:    cfg.Debug.Verbose,
		FeedURL:    strings.TrimSpace(cfg.Feed.URL),
		FeedFile:   strings.TrimSpace(cfg.Feed.File),
		Tags:       cfg.Feed.Tags,
		PageSize:   positiveOr(cfg.Feed.PageSize, defaultPageSize),
		Header:     cfg.List.Header == nil || *cfg.List.Header,
		Title:      strings.TrimSpace(cfg.List.Title),
		Height:     positiveOr(cfg.List.Height, defaultHeight),
		Width:      positiveOr(cfg.List.Width, defaultWidth),
		ItemExtent: positiveOr(cfg.List.ItemExtent, defaultItemExtent),
	}
	if r.Title == "" {
		r.Title = appName
	}
	if r.FeedFile != "" && !filepath.IsAbs(r.FeedFile) {
		r.FeedFile = filepath.Join(dir, r.FeedFile)
	}
	return r, nil
}

// FindProjectRoot walks up from the current directory to find zeta.yaml or
// go.mod. Without either, the current directory is the root.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		for _, marker := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// modulePath returns the module path declared in dir/go.mod, or "" when
// there is no go.mod.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func positiveOr(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		modName, _, ok := module.SplitPathVersion(modulePath)
		if ok {
			parts := strings.Split(modName, "/")
			if len(parts) > 0 {
				base = parts[len(parts)-1]
			}
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "zeta"
	}
	return base
}

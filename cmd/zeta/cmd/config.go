package cmd

import (
	"fmt"
	"strings"

	"github.com/manjunathc23/zeta/cmd/zeta/internal/config"
	"github.com/manjunathc23/zeta/cmd/zeta/internal/statedir"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the resolved configuration",
		Long: `Show the configuration zeta resolves for the current project.

Values come from zeta.yaml in the project root (the nearest directory
containing zeta.yaml or go.mod), with defaults for anything not set.`,
		Usage: "zeta config",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(args, " "))
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	stateDir, err := statedir.Root()
	if err != nil {
		return err
	}

	printResolved(cfg, stateDir)
	return nil
}

func printResolved(cfg *config.Resolved, stateDir string) {
	module := cfg.ModulePath
	if module == "" {
		module = "(none)"
	}
	feed := "public feed"
	switch {
	case cfg.FeedFile != "":
		feed = cfg.FeedFile
	case cfg.FeedURL != "":
		feed = cfg.FeedURL
	}
	tags := "(any)"
	if len(cfg.Tags) > 0 {
		tags = strings.Join(cfg.Tags, ", ")
	}

	fmt.Fprintf(stdout, "Project: %s\n", cfg.AppName)
	fmt.Fprintf(stdout, "  root:        %s\n", cfg.Root)
	fmt.Fprintf(stdout, "  module:      %s\n", module)
	fmt.Fprintf(stdout, "  state dir:   %s\n", stateDir)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Feed:")
	fmt.Fprintf(stdout, "  source:      %s\n", feed)
	fmt.Fprintf(stdout, "  tags:        %s\n", tags)
	fmt.Fprintf(stdout, "  page size:   %d\n", cfg.PageSize)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "List:")
	fmt.Fprintf(stdout, "  header:      %v (%q)\n", cfg.Header, cfg.Title)
	fmt.Fprintf(stdout, "  viewport:    %dx%d\n", cfg.Width, cfg.Height)
	fmt.Fprintf(stdout, "  item extent: %d\n", cfg.ItemExtent)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Debug:")
	fmt.Fprintf(stdout, "  strict:      %v\n", cfg.Strict)
	fmt.Fprintf(stdout, "  verbose:     %v\n", cfg.Verbose)
}

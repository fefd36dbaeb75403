package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seabattle/internal/config"
	"github.com/vovakirdan/seabattle/internal/platform/console"
	"github.com/vovakirdan/seabattle/internal/platform/tui"
)

// loadConfig loads the config file and applies the flags set on cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyFlags overrides cfg with every flag the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("ui") {
		cfg.Display.UI = flagUI
	}
	if flags.Changed("seed-human-fleet") {
		cfg.Fleet.SeedHuman = flagSeedHumanFleet
	}
	if flags.Changed("require-fleet") {
		cfg.Fleet.RequireComplete = flagRequireFleet
	}
	if flags.Changed("no-history") && flagNoHistory {
		cfg.Storage.Enabled = false
	}
}

// isTerminal reports whether both stdin and stdout are terminals.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// resolveUI maps a display.ui mode to a frontend ID.
func resolveUI(mode string, terminal bool) string {
	switch mode {
	case config.UIConsole:
		return console.ID
	case config.UITUI:
		return tui.ID
	}
	if terminal {
		return tui.ID
	}
	return console.ID
}

// newLogger builds the diagnostic logger. Logs go to the configured file, or
// to stderr unless quiet is set. The returned func closes the log file.
func newLogger(cfg config.LogConfig, quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: cfg.Timestamps,
		Prefix:          "seabattle",
		Level:           level,
	})
	return logger, closeFn, nil
}

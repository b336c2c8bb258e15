package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/notecards/internal/app"
	"github.com/marcus/notecards/internal/config"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file (.json or .toml)")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	logPath      = flag.String("log", "", "write logs to this file")
	localeFlag   = flag.String("locale", "", "date locale, e.g. en-GB (default from $LANG)")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	// Handle version flag
	if *versionFlag || *shortVersion {
		fmt.Printf("notecards version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	// Resolve the config path up front so reloads and theme saves use it
	path := *configPath
	if path == "" {
		path = config.ConfigPath()
	}
	path = config.ExpandPath(path)

	cfg, err := config.LoadFrom(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *localeFlag != "" {
		cfg.Locale = *localeFlag
	}

	// The terminal belongs to the UI, so logs go to a file or nowhere
	logFile := cfg.LogFile
	if *logPath != "" {
		logFile = config.ExpandPath(*logPath)
	}
	logger, closeLog, err := setupLogger(logFile, *debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	opts := []app.Option{
		app.WithLogger(logger),
		app.WithConfigPath(path),
		app.WithVersion(effectiveVersion(Version)),
		app.WithLocaleOverride(*localeFlag),
	}

	// Live reload is optional
	watcher, err := watchConfig(path, logger)
	if err != nil {
		logger.Warn("config watcher disabled", "path", path, "err", err)
	} else {
		defer watcher.Close()
		opts = append(opts, app.WithWatcher(watcher))
	}

	model := app.New(cfg, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// watchConfig starts the config watcher, creating the config directory first
// so a config written later is still picked up.
func watchConfig(path string, logger *slog.Logger) (*config.Watcher, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return config.NewWatcher(path, logger)
}

// setupLogger returns a text logger writing to path, or a discarding one
// when path is empty.
func setupLogger(path string, debugLog bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if debugLog {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, opts)), func() { _ = f.Close() }, nil
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	// Fall back to VCS info
	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision == "" {
		return "devel"
	}
	ver := "devel+" + shortRevision(revision)
	if dirty {
		ver += "+dirty"
	}
	return ver
}

// shortRevision returns the first 12 chars of a revision.
func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: notecards [options]\n\n")
		fmt.Fprintf(os.Stderr, "A terminal notes board: add, edit and delete note cards.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}

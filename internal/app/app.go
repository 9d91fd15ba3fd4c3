// Package app wires Freighter together: configuration, logging, the API
// client, and the terminal UI.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"freighter/internal/config"
	"freighter/internal/northwind"
	"freighter/internal/prefs"
	"freighter/internal/selection"
	"freighter/internal/ui"
)

// Options configure the Freighter application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/freighter/prefs.toml
	BaseURL    string // overrides the configured API endpoint
	PageSize   int    // overrides the configured page size
}

// Run boots the Freighter TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if url := strings.TrimSpace(opts.BaseURL); url != "" {
		cfg.BaseURL = url
	}
	if opts.PageSize > 0 {
		cfg.PageSize = opts.PageSize
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	if opts.PageSize <= 0 && userPrefs.PageSize > 0 {
		cfg.PageSize = userPrefs.PageSize
	}

	logger := newLogger(cfg.LogPath)
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("base_url", cfg.BaseURL),
		zap.Int("page_size", cfg.PageSize))

	client, err := northwind.NewClient(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Relay:     &selection.Relay{},
		Logger:    logger,
		PageSize:  cfg.PageSize,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	err = ui.Run(uiOpts)
	logger.Info("stopped", zap.Error(err))
	return err
}

// newLogger builds a file-backed logger. The UI owns the terminal, so
// logging anywhere else would corrupt the display; any failure to set the
// file up degrades to a no-op logger rather than blocking startup.
func newLogger(path string) *zap.Logger {
	if strings.TrimSpace(path) == "" {
		return zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zap.NewNop()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

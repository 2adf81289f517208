package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/akyairhashvil/rtauth/internal/auth"
	"github.com/akyairhashvil/rtauth/internal/config"
	"github.com/akyairhashvil/rtauth/internal/database"
	"github.com/akyairhashvil/rtauth/internal/tui"
	"github.com/akyairhashvil/rtauth/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var errNoTerminal = errors.New("rtauth needs an interactive terminal")

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	// 1. Configuration and logging
	cfg, err := config.Load(config.Path())
	if err != nil {
		return err
	}
	if err := util.EnsureDir(cfg.DataDir); err != nil {
		return err
	}
	level, _ := cfg.SlogLevel()
	logger, logCloser, err := util.OpenLog(cfg.LogFile, level)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Journal and backend
	deps, closer, err := buildDeps(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { util.LogError("close journal", closer.Close()) }()
	applyTheme(ctx, cfg, deps.Settings, logger)

	// 3. Start Program
	logger.Info("starting", "journal", cfg.Journal, "theme", tui.ThemeKey())
	p := tea.NewProgram(tui.NewMainModel(ctx, deps), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// buildDeps opens the journal when enabled and wires the simulated backend
// to it. The returned closer releases the journal.
func buildDeps(ctx context.Context, cfg config.Config, logger *slog.Logger) (tui.Deps, io.Closer, error) {
	deps := tui.Deps{Logger: logger}
	opts := []auth.Option{auth.WithLogger(logger)}
	var closer io.Closer = nopCloser{}

	if cfg.Journal {
		db, err := database.Open(ctx, cfg.DBPath())
		if err != nil {
			return deps, nil, err
		}
		deps.Events = db
		deps.Settings = db
		opts = append(opts, auth.WithJournal(db))
		closer = db
	}

	svc, err := auth.NewSimulated(cfg, opts...)
	if err != nil {
		_ = closer.Close()
		return deps, nil, err
	}
	deps.Service = svc
	return deps, closer, nil
}

// applyTheme selects the stored theme, falling back to the configured one.
func applyTheme(ctx context.Context, cfg config.Config, settings database.SettingsRepository, logger *slog.Logger) {
	if settings != nil {
		if name, ok := settings.GetSetting(ctx, config.SettingTheme); ok && tui.SetTheme(name) {
			return
		}
	}
	if !tui.SetTheme(cfg.Theme) {
		logger.Warn("unknown theme, using default", "theme", cfg.Theme)
	}
}

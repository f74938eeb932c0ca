package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"keycalc/cmd/keycalc/ui"
	"keycalc/internal/config"
	"keycalc/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// runInteractive opens the keypad window.
func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := logging.Initialize(cfg.Logging.Options()); err != nil {
		return err
	}
	defer func() { _ = logging.Sync() }()
	logging.Boot("config: %s (watch=%v)", configPath, watch)

	renderer := lipgloss.NewRenderer(os.Stdout, termenv.WithColorCache(true))
	model, err := ui.New(cfg, renderer)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse || watch {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	if watch {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		w, err := startWatcher(ctx, p)
		if err != nil {
			return err
		}
		defer w.Stop()
	}

	_, err = p.Run()
	return err
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return cfg, nil
}

// startWatcher forwards config changes into the running program.
func startWatcher(ctx context.Context, p *tea.Program) (*config.Watcher, error) {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	w, err := config.NewWatcher(configPath, config.DefaultReloadDelay,
		func(cfg *config.Config) { p.Send(ui.ConfigReloadedMsg{Config: cfg}) },
		func(err error) { p.Send(ui.ConfigErrorMsg{Err: err}) },
	)
	if err != nil {
		return nil, err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return nil, err
	}
	return w, nil
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mpolanco/oraculo/internal/config"
	"github.com/mpolanco/oraculo/internal/logging"
	"github.com/mpolanco/oraculo/internal/tui"
)

var version = "dev"

func main() {
	dir, err := config.ConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	debug := false
	if cfg, err := config.Load(); err == nil && cfg != nil {
		debug = cfg.Debug
	}

	logger := logging.New(dir, debug)
	defer logger.Sync()
	logger.Info("oraculo starting", zap.String("version", version))

	app, err := tui.NewApp(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	app.SetProgram(p)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

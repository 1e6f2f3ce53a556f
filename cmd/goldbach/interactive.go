package main

import (
	"fmt"

	"goldbach/cmd/goldbach/config"
	"goldbach/cmd/goldbach/ui"
	"goldbach/internal/logging"
)

// runInteractive starts the interactive explorer. The TUI owns the
// terminal, so logging goes to category files under the config dir
// instead of stdout.
func runInteractive() error {
	cfg, _ := config.Load()

	if dir, err := config.Dir(); err == nil {
		if err := logging.Initialize(dir); err != nil {
			fmt.Printf("Warning: debug logging unavailable: %v\n", err)
		}
	}
	defer logging.CloseAll()

	tracker := openTracker()
	logging.Session("interactive session starting (theme=%s, workers=%d)", cfg.Theme, cfg.Workers)

	err := ui.Run(ui.Options{
		Theme:       cfg.Theme,
		MaxNumber:   cfg.MaxNumber,
		Workers:     cfg.Workers,
		LegendLimit: cfg.LegendLimit,
		ChartWidth:  cfg.ChartWidth,
		ChartHeight: cfg.ChartHeight,
		Tracker:     tracker,
	})

	if tracker != nil {
		_ = tracker.Save()
	}
	logging.Session("interactive session ended")
	return err
}

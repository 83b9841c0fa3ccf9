package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"gol2/internal/app"
	"gol2/internal/sim"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the interactive window",
		Long: `Open the interactive window.

Controls: space pause, N single step, C clear, R randomize, Tab / Shift+Tab
cycle rules, S / L quick save and load, T toggle brush/line, H toggle heat,
Up/Down speed, [ ] brush radius, F1 overlay, Q quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd)
		},
	}
	addSimFlags(cmd)
	return cmd
}

func runPlay(cmd *cobra.Command) error {
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := slog.Default()
	session, err := sim.New(cfg, logger)
	if err != nil {
		return err
	}
	game := app.New(session, path, logger)
	return app.Run(game, "gol2 - "+session.Name())
}

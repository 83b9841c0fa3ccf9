package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"gol2/internal/core"
	"gol2/internal/sim"
	"gol2/internal/telemetry"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Advance a board headless and optionally record statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ticks, _ := cmd.Flags().GetInt("ticks")
			every, _ := cmd.Flags().GetInt("stats-every")
			statsPath, _ := cmd.Flags().GetString("stats")
			tps, _ := cmd.Flags().GetInt("tps")
			load, _ := cmd.Flags().GetString("load")
			save, _ := cmd.Flags().GetString("save")
			if every < 1 {
				every = 1
			}

			logger := slog.Default()
			session, err := sim.New(cfg, logger)
			if err != nil {
				return err
			}
			if load != "" {
				if err := session.LoadBoard(load); err != nil {
					return err
				}
			}

			var stats *telemetry.Writer
			if statsPath != "" {
				stats, err = telemetry.Create(statsPath)
				if err != nil {
					return err
				}
				defer stats.Close()
			}

			var pacer *core.FixedStep
			if tps > 0 {
				pacer = core.NewFixedStep(tps)
			}

			if err := stats.Write(session.Stats()); err != nil {
				return err
			}
			for i := 1; i <= ticks; i++ {
				if pacer != nil {
					pacer.Wait()
				}
				session.Step()
				if i%every == 0 || i == ticks {
					st := session.Stats()
					logger.Debug("tick", "stats", st)
					if err := stats.Write(st); err != nil {
						return err
					}
				}
			}

			if save != "" {
				if _, err := session.SaveBoard(save); err != nil {
					return err
				}
			}
			if err := stats.Close(); err != nil {
				return fmt.Errorf("closing stats: %w", err)
			}

			final := session.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: generation %d, %d alive (%.1f%%)\n",
				final.Rule, final.Generation, final.Alive, final.Density*100)
			return nil
		},
	}
	addSimFlags(cmd)
	cmd.Flags().Int("ticks", 100, "Generations to simulate")
	cmd.Flags().String("stats", "", "Write per-generation statistics to this CSV file")
	cmd.Flags().Int("stats-every", 1, "Record statistics every N generations")
	cmd.Flags().Int("tps", 0, "Pace the run at this many ticks per second (0 = as fast as possible)")
	cmd.Flags().String("load", "", "Start from this saved board instead of a random one")
	cmd.Flags().String("save", "", "Save the final board under this name")
	return cmd
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"gol2/internal/sim"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <save>",
		Short: "Print a saved board as text, optionally after advancing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ticks, _ := cmd.Flags().GetInt("ticks")

			session, err := sim.New(cfg, slog.Default())
			if err != nil {
				return err
			}
			if err := session.LoadBoard(args[0]); err != nil {
				return err
			}
			for i := 0; i < ticks; i++ {
				session.Step()
			}

			st := session.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %dx%d generation %d, %d alive\n",
				st.Rule, session.Size().W, session.Size().H, st.Generation, st.Alive)
			fmt.Fprint(out, session.Board().String())
			return nil
		},
	}
	cmd.Flags().String("rule", "", "Rule to advance the board with")
	cmd.Flags().Int64("seed", 0, "Random seed for stochastic rules (0 = time-based)")
	cmd.Flags().Int("ticks", 0, "Generations to advance before printing")
	return cmd
}

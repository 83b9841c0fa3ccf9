// Command gol2 runs the cellular-automaton sandbox, either in a window or
// headless for batch runs.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"gol2/internal/config"
	"gol2/internal/logging"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gol2",
		Short: "Cellular automaton sandbox with heat trails and custom rules",
		Long: `gol2 runs Life-like cellular automata on a wrapping board.

Without a subcommand it opens the interactive window (requires a build with
the 'ebiten' tag). The run and show subcommands work headless.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, _ := cmd.Flags().GetString("log-level")
			slog.SetDefault(logging.NewLogger(level, cmd.ErrOrStderr()))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", config.DefaultPath(), "Path to the YAML config file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newPlayCmd(),
		newRunCmd(),
		newShowCmd(),
		newRulesCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gol2 version %s\n", version)
		},
	}
}

// loadConfig reads the file named by --config and applies the simulation
// flags shared by the subcommands that define them.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, path, err
	}
	flags := cmd.Flags()
	if flags.Changed("rule") {
		cfg.Simulation.Rule, _ = flags.GetString("rule")
	}
	if flags.Changed("seed") {
		cfg.Simulation.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("width") {
		cfg.Board.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		cfg.Board.Height, _ = flags.GetInt("height")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, path, err
	}
	return cfg, path, nil
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().String("rule", "", "Rule name or notation (e.g. Conway, 23/36, B3/S23)")
	cmd.Flags().Int64("seed", 0, "Random seed (0 = time-based)")
	cmd.Flags().Int("width", 0, "Board width override")
	cmd.Flags().Int("height", 0, "Board height override")
}

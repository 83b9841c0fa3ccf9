package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gol2/internal/rules"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the selectable rules in menu order",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i, n := range rules.Catalog {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, n.Name, rules.Describe(n.Rule))
			}
			return tw.Flush()
		},
	}
}

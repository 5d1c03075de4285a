package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkpred/similarity"
)

func newMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "List the available metrics",
		Long: `List every metric with its domain and formula.

Metrics over "common-neighbor pairs" score pairs sharing at least one neighbor;
PA scores the existing edges.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDOMAIN\tFORMULA")
			for _, m := range similarity.AllMetrics() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", m, m.Domain(), m.Formula())
			}
			return w.Flush()
		},
	}
}

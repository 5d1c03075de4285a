package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "linkpred",
		Short: "linkpred - neighborhood-based link prediction",
		Long: `linkpred computes similarity scores for node pairs of an undirected graph:
CN, AA, RA, RA_CNI, PA, JC, SA, SO, HPI, HDI and LLHN.

Every metric is written as its own table of (source, target, similarity) rows.`,
	}
	root.AddCommand(newRunCmd(), newMetricsCmd())

	return root
}

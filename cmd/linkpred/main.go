// Command linkpred scores node pairs of an undirected graph with eleven
// neighborhood-based link-prediction metrics and exports one table per metric.
//
// Usage:
//
//	linkpred run --edges cora.cites --nodes cora.content --renumber --largest-component --out results
//	linkpred run --config run.yaml
//	linkpred metrics
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

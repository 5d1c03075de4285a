package preprocess

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/linkpred/core"
)

// WriteEdges writes g as "source target" rows, canonical and sorted, after a header.
func WriteEdges(w io.Writer, g *core.Graph) error {
	cw := newSpaceWriter(w)
	if err := cw.Write([]string{"source", "target"}); err != nil {
		return fmt.Errorf("WriteEdges: %w", err)
	}
	for _, e := range g.Edges() {
		if err := cw.Write([]string{strconv.Itoa(e.From), strconv.Itoa(e.To)}); err != nil {
			return fmt.Errorf("WriteEdges: %w", err)
		}
	}

	return flush(cw, "WriteEdges")
}

// WriteNodes writes nc as "nodeID label" rows after a header.
func WriteNodes(w io.Writer, nc *NodeClasses) error {
	cw := newSpaceWriter(w)
	if err := cw.Write([]string{"nodeID", "label"}); err != nil {
		return fmt.Errorf("WriteNodes: %w", err)
	}
	for _, n := range nc.Nodes {
		if err := cw.Write([]string{strconv.Itoa(n.Node), strconv.Itoa(n.Class)}); err != nil {
			return fmt.Errorf("WriteNodes: %w", err)
		}
	}

	return flush(cw, "WriteNodes")
}

func newSpaceWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = ' '

	return cw
}

func flush(cw *csv.Writer, method string) error {
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}

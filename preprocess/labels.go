package preprocess

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/katalvlaran/linkpred/edgelist"
)

// NodeLabel is a raw (node name, class name) row of a node file.
type NodeLabel struct {
	Node  string
	Class string
}

// NodeClass assigns a dense class id to a dense node id.
type NodeClass struct {
	Node  int
	Class int
}

// NodeClasses is the remapped node file: Classes[c] names class c.
type NodeClasses struct {
	Classes []string
	Nodes   []NodeClass
}

// ReadNodeLabels reads rows of "node [features...] class", keeping the first
// and last column, as in Cora/Citeseer ".content" files.
func ReadNodeLabels(r io.Reader, opts ...edgelist.Option) ([]NodeLabel, error) {
	var out []NodeLabel
	err := edgelist.ScanRecords(r, func(line int, fields []string) error {
		if len(fields) < 2 {
			return &edgelist.LineError{Line: line, Text: strings.Join(fields, " "), Reason: "need node and class"}
		}
		out = append(out, NodeLabel{Node: fields[0], Class: fields[len(fields)-1]})
		return nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("ReadNodeLabels: %w", err)
	}

	return out, nil
}

// NodeNames returns the node column of labels, for Renumber.
func NodeNames(labels []NodeLabel) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = l.Node
	}

	return out
}

// RemapLabels resolves node names through m and class names to dense ids in
// sorted name order. With a non-nil sub, node ids are translated onto it and
// nodes outside it are dropped, together with classes nobody keeps.
// Rows come out sorted by node id.
//
// Errors: ErrUnknownNode for a node name m does not know.
func RemapLabels(labels []NodeLabel, m *Mapping, sub *Subgraph) (*NodeClasses, error) {
	type kept struct {
		node  int
		class string
	}
	rows := make([]kept, 0, len(labels))
	for _, l := range labels {
		id, ok := m.ID(l.Node)
		if !ok {
			return nil, fmt.Errorf("RemapLabels: %q: %w", l.Node, ErrUnknownNode)
		}
		if sub != nil {
			if id >= len(sub.OldToNew) || sub.OldToNew[id] < 0 {
				continue
			}
			id = sub.OldToNew[id]
		}
		rows = append(rows, kept{node: id, class: l.Class})
	}

	classes := make([]string, 0)
	for _, r := range rows {
		classes = append(classes, r.class)
	}
	slices.Sort(classes)
	classes = slices.Compact(classes)

	out := &NodeClasses{Classes: classes, Nodes: make([]NodeClass, len(rows))}
	for i, r := range rows {
		c, _ := slices.BinarySearch(classes, r.class)
		out.Nodes[i] = NodeClass{Node: r.node, Class: c}
	}
	slices.SortStableFunc(out.Nodes, func(a, b NodeClass) int { return a.Node - b.Node })

	return out, nil
}

package preprocess

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linkpred/core"
	"github.com/katalvlaran/linkpred/edgelist"
)

// ErrUnknownNode indicates a node name that the mapping never saw.
var ErrUnknownNode = errors.New("preprocess: node not in mapping")

// Mapping is a bijection between node names and dense ids.
type Mapping struct {
	ids    map[string]int
	labels []string
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{ids: make(map[string]int)}
}

// Add returns the id of label, assigning the next free id on first sight.
func (m *Mapping) Add(label string) int {
	if id, ok := m.ids[label]; ok {
		return id
	}
	id := len(m.labels)
	m.ids[label] = id
	m.labels = append(m.labels, label)

	return id
}

// ID returns the id of label.
func (m *Mapping) ID(label string) (int, bool) {
	id, ok := m.ids[label]

	return id, ok
}

// Label returns the name of id, or "" when id is out of range.
func (m *Mapping) Label(id int) string {
	if id < 0 || id >= len(m.labels) {
		return ""
	}

	return m.labels[id]
}

// Len returns the number of mapped nodes.
func (m *Mapping) Len() int { return len(m.labels) }

// Renumber maps every name in nodes, then every edge endpoint, to dense ids
// in order of first appearance. Nodes listed in nodes but absent from edges
// become isolated ids.
func Renumber(edges []edgelist.LabeledEdge, nodes ...string) (*edgelist.EdgeList, *Mapping) {
	m := NewMapping()
	for _, n := range nodes {
		m.Add(n)
	}
	out := make([]core.Edge, len(edges))
	for i, e := range edges {
		out[i] = core.Edge{From: m.Add(e.From), To: m.Add(e.To)}
	}

	return &edgelist.EdgeList{Edges: out, NodeCount: m.Len()}, m
}

// Subgraph is a graph extracted from a larger one, with the id maps between them.
type Subgraph struct {
	Graph *core.Graph

	// NewToOld[i] is the original id of node i.
	NewToOld []int

	// OldToNew[v] is the new id of original node v, or -1 when v was dropped.
	OldToNew []int
}

// Compose re-targets m onto the subgraph ids: the returned Mapping names
// node i of s after the original node NewToOld[i].
func (s *Subgraph) Compose(m *Mapping) (*Mapping, error) {
	out := NewMapping()
	for newID, oldID := range s.NewToOld {
		if oldID >= m.Len() {
			return nil, fmt.Errorf("Compose: original node %d: %w", oldID, ErrUnknownNode)
		}
		if got := out.Add(m.Label(oldID)); got != newID {
			return nil, fmt.Errorf("Compose: label %q maps twice", m.Label(oldID))
		}
	}

	return out, nil
}

package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/linkpred/config"
	"github.com/katalvlaran/linkpred/core"
	"github.com/katalvlaran/linkpred/edgelist"
	"github.com/katalvlaran/linkpred/preprocess"
)

// dataset is the graph a run scores, plus what preprocessing knows about it.
type dataset struct {
	graph *core.Graph

	// mapping names the nodes of the graph as read, before any component
	// extraction. Identity ("0", "1", ...) for dense integer input with a
	// node file; nil when neither renumbering nor a node file applies.
	mapping *preprocess.Mapping

	// sub is set when the largest component was extracted.
	sub *preprocess.Subgraph

	// classes is set when a node file was given.
	classes *preprocess.NodeClasses
}

// load reads the edge file (and node file), builds the graph and applies the
// configured preprocessing steps.
func load(ctx context.Context, cfg *config.Config) (*dataset, error) {
	delim, err := cfg.InputDelimiter()
	if err != nil {
		return nil, err
	}
	var opts []edgelist.Option
	if delim != 0 {
		opts = append(opts, edgelist.WithDelimiter(delim))
	}

	var labels []preprocess.NodeLabel
	if path := cfg.NodesPath(); path != "" {
		if labels, err = readFile(path, func(f *os.File) ([]preprocess.NodeLabel, error) {
			return preprocess.ReadNodeLabels(f, opts...)
		}); err != nil {
			return nil, err
		}
	}

	var (
		el *edgelist.EdgeList
		ds = &dataset{}
	)
	if cfg.Renumber() {
		raw, rerr := readFile(cfg.EdgesPath(), func(f *os.File) ([]edgelist.LabeledEdge, error) {
			return edgelist.ReadLabels(f, opts...)
		})
		if rerr != nil {
			return nil, rerr
		}
		el, ds.mapping = preprocess.Renumber(raw, preprocess.NodeNames(labels)...)
	} else {
		if el, err = readFile(cfg.EdgesPath(), func(f *os.File) (*edgelist.EdgeList, error) {
			return edgelist.Read(f, opts...)
		}); err != nil {
			return nil, err
		}
		if labels != nil {
			// labelled nodes without edges stay as isolated nodes
			el.NodeCount = max(el.NodeCount, maxNodeID(labels)+1)
			ds.mapping = identity(el.NodeCount)
		}
	}

	if ds.graph, err = core.Build(el.NodeCount, el.Edges); err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.EdgesPath(), err)
	}

	if cfg.LargestComponent() {
		if ds.sub, err = preprocess.LargestComponent(ctx, ds.graph); err != nil {
			return nil, err
		}
		ds.graph = ds.sub.Graph
	}

	if labels != nil {
		if ds.classes, err = preprocess.RemapLabels(labels, ds.mapping, ds.sub); err != nil {
			return nil, err
		}
	}

	return ds, nil
}

// save writes the preprocessed graph (and node classes) next to the results.
func (ds *dataset) save(dir, prefix string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("save: %w", err)
	}
	if prefix == "" {
		prefix = "graph"
	}

	edgesPath := filepath.Join(dir, prefix+".edges")
	if err := writeFile(edgesPath, func(f *os.File) error { return preprocess.WriteEdges(f, ds.graph) }); err != nil {
		return nil, err
	}
	written := []string{edgesPath}
	if ds.classes != nil {
		nodesPath := filepath.Join(dir, prefix+".nodes")
		if err := writeFile(nodesPath, func(f *os.File) error { return preprocess.WriteNodes(f, ds.classes) }); err != nil {
			return nil, err
		}
		written = append(written, nodesPath)
	}

	return written, nil
}

func identity(n int) *preprocess.Mapping {
	m := preprocess.NewMapping()
	for i := 0; i < n; i++ {
		m.Add(strconv.Itoa(i))
	}

	return m
}

// maxNodeID returns the largest decimal id among the node names, or -1.
// Other names are left for RemapLabels to reject.
func maxNodeID(labels []preprocess.NodeLabel) int {
	best := -1
	for _, l := range labels {
		if id, err := strconv.Atoi(l.Node); err == nil && id > best {
			best = id
		}
	}

	return best
}

func readFile[T any](path string, parse func(*os.File) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("load: %w", err)
	}
	defer f.Close()

	v, err := parse(f)
	if err != nil {
		return zero, fmt.Errorf("load %s: %w", path, err)
	}

	return v, nil
}

func writeFile(path string, write func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("save %s: %w", path, cerr)
		}
	}()

	if err = write(f); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

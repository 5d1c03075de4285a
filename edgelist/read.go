package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/linkpred/core"
)

// ScanRecords calls fn for every content line of r with its 1-based line
// number and its fields. Blank lines and lines starting with '#' or '%' are
// skipped. A non-nil error from fn stops the scan and is returned as is.
func ScanRecords(r io.Reader, fn func(line int, fields []string) error, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	split := o.splitter()
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' || text[0] == '%' {
			continue
		}
		if err = fn(line, split(text)); err != nil {
			return err
		}
	}
	if err = sc.Err(); err != nil {
		return fmt.Errorf("edgelist: read after line %d: %w", line, err)
	}

	return nil
}

// splitter returns the field splitter for o.
func (o Options) splitter() func(string) []string {
	if o.Delimiter == 0 {
		return func(s string) []string {
			return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
		}
	}
	d := string(o.Delimiter)

	return func(s string) []string {
		parts := strings.Split(s, d)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
}

// Read parses a dense integer edge list.
//
// The first content line is taken as a header when its first two fields are
// not both integers. Self-loops and duplicates pass through; core.Build
// rejects the former and collapses the latter.
func Read(r io.Reader, opts ...Option) (*EdgeList, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	var (
		edges   []core.Edge
		maxID   = -1
		content = 0
	)
	err = ScanRecords(r, func(line int, fields []string) error {
		content++
		if len(fields) < 2 {
			return lineError(line, fields, "need two fields")
		}
		u, uerr := parseID(fields[0])
		v, verr := parseID(fields[1])
		if uerr != nil || verr != nil {
			if content == 1 && !isNumeric(fields[0]) && !isNumeric(fields[1]) {
				return nil
			}
			return lineError(line, fields, "node ids must be non-negative integers")
		}
		if o.NodeCount > 0 && (u >= o.NodeCount || v >= o.NodeCount) {
			return fmt.Errorf("edgelist: line %d: edge (%d,%d) with node count %d: %w",
				line, u, v, o.NodeCount, core.ErrOutOfRangeNode)
		}
		maxID = max(maxID, u, v)
		edges = append(edges, core.Edge{From: u, To: v})
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	n := maxID + 1
	if o.NodeCount > 0 {
		n = o.NodeCount
	}

	return &EdgeList{Edges: edges, NodeCount: n}, nil
}

// ReadLabels parses an edge list whose node names are arbitrary tokens.
// No header detection is done: every content line is an edge.
func ReadLabels(r io.Reader, opts ...Option) ([]LabeledEdge, error) {
	var edges []LabeledEdge
	err := ScanRecords(r, func(line int, fields []string) error {
		if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
			return lineError(line, fields, "need two fields")
		}
		edges = append(edges, LabeledEdge{From: fields[0], To: fields[1]})
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return edges, nil
}

func parseID(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, strconv.ErrRange
	}

	return v, nil
}

// isNumeric reports whether s parses as a number of any sign or form.
func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)

	return err == nil
}

func lineError(line int, fields []string, reason string) error {
	return &LineError{Line: line, Text: strings.Join(fields, " "), Reason: reason}
}

package similarity

import (
	"fmt"
	"strings"
)

// Metric identifies one of the eleven similarity indices.
type Metric int

// The metrics, in their canonical output order.
const (
	CN    Metric = iota // common neighbors
	AA                  // Adamic-Adar
	RA                  // resource allocation
	RACNI               // resource allocation with common-neighbor interactions
	PA                  // preferential attachment
	JC                  // Jaccard
	SA                  // Salton
	SO                  // Sørensen
	HPI                 // hub promoted
	HDI                 // hub depressed
	LLHN                // local Leicht-Holme-Newman
	metricCount
)

// Domain says which pairs a metric scores.
type Domain int

const (
	// DomainCommonNeighbors covers the pairs with at least one shared neighbor.
	DomainCommonNeighbors Domain = iota
	// DomainEdges covers the observed edges of the graph.
	DomainEdges
)

func (d Domain) String() string {
	if d == DomainEdges {
		return "edges"
	}

	return "common-neighbor pairs"
}

var metricNames = [metricCount]string{
	CN: "CN", AA: "AA", RA: "RA", RACNI: "RA_CNI", PA: "PA",
	JC: "JC", SA: "SA", SO: "SO", HPI: "HPI", HDI: "HDI", LLHN: "LLHN",
}

var metricFormulas = [metricCount]string{
	CN:    "cn(x,y)",
	AA:    "Σ_z 1/ln(deg(z))",
	RA:    "Σ_z 1/deg(z)",
	RACNI: "ra(x,y) + Σ_{a∈N(x), b∈N(y)} |1/deg(a) − 1/deg(b)|",
	PA:    "deg(x)·deg(y)",
	JC:    "cn/(deg(x)+deg(y)−cn)",
	SA:    "cn/√(deg(x)·deg(y))",
	SO:    "2·cn/(deg(x)+deg(y))",
	HPI:   "cn/min(deg(x),deg(y))",
	HDI:   "cn/max(deg(x),deg(y))",
	LLHN:  "cn/(deg(x)·deg(y))",
}

// String returns the table name of m, e.g. "RA_CNI".
func (m Metric) String() string {
	if !m.valid() {
		return fmt.Sprintf("Metric(%d)", int(m))
	}

	return metricNames[m]
}

// Formula returns a human-readable definition of m.
func (m Metric) Formula() string {
	if !m.valid() {
		return ""
	}

	return metricFormulas[m]
}

// Domain reports which pairs m scores. Only PA is edge-domain.
func (m Metric) Domain() Domain {
	if m == PA {
		return DomainEdges
	}

	return DomainCommonNeighbors
}

func (m Metric) valid() bool { return m >= 0 && m < metricCount }

// isRatio reports whether m is one of the six cn/degree reductions.
func (m Metric) isRatio() bool { return m >= JC && m <= LLHN }

// AllMetrics returns every metric in canonical order.
func AllMetrics() []Metric {
	out := make([]Metric, metricCount)
	for i := range out {
		out[i] = Metric(i)
	}

	return out
}

// ParseMetric resolves a table name, case-insensitively. "RA-CNI" is
// accepted as an alias of "RA_CNI".
func ParseMetric(s string) (Metric, error) {
	key := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_")
	for m, name := range metricNames {
		if name == key {
			return Metric(m), nil
		}
	}

	return 0, fmt.Errorf("ParseMetric(%q): %w", s, ErrUnknownMetric)
}

// ParseMetrics resolves a list of names, dropping duplicates and keeping
// first-seen order. An empty list means every metric.
func ParseMetrics(names []string) ([]Metric, error) {
	if len(names) == 0 {
		return AllMetrics(), nil
	}
	var (
		out  []Metric
		seen [metricCount]bool
	)
	for _, s := range names {
		m, err := ParseMetric(s)
		if err != nil {
			return nil, err
		}
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}

	return out, nil
}

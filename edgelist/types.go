package edgelist

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/katalvlaran/linkpred/core"
)

// Sentinel errors for parsing.
var (
	// ErrMalformedLine indicates a line that is not "source target [...]".
	ErrMalformedLine = errors.New("edgelist: malformed line")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("edgelist: invalid option supplied")
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// LineError reports where parsing failed.
type LineError struct {
	Line   int
	Text   string
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("edgelist: line %d %q: %s: %v", e.Line, e.Text, e.Reason, ErrMalformedLine)
}

// Unwrap lets errors.Is match ErrMalformedLine.
func (e *LineError) Unwrap() error { return ErrMalformedLine }

// EdgeList is a parsed dense edge stream.
type EdgeList struct {
	Edges     []core.Edge
	NodeCount int
}

// LabeledEdge is an edge between two opaque node names.
type LabeledEdge struct {
	From string
	To   string
}

// Option configures parsing.
type Option func(*Options)

// Options holds parsing settings.
type Options struct {
	// NodeCount, if > 0, fixes n instead of deriving max id + 1.
	NodeCount int

	// Delimiter, if non-zero, is the only field separator. Zero means any
	// run of whitespace or commas.
	Delimiter rune

	err error
}

// WithNodeCount fixes the node count; ids must then lie in [0, n).
func WithNodeCount(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: node count must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.NodeCount = n
	}
}

// WithDelimiter makes r the only field separator. Whitespace around fields
// is trimmed. Letters, digits and line breaks are rejected.
func WithDelimiter(r rune) Option {
	return func(o *Options) {
		if r == '\n' || r == '\r' || unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			o.err = fmt.Errorf("%w: delimiter %q", ErrOptionViolation, r)
			return
		}
		o.Delimiter = r
	}
}

func resolve(opts []Option) (Options, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

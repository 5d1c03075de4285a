package export

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"sync"
)

// Sentinel errors for export.
var (
	// ErrInvalidTableName indicates an empty table name or one that would escape the output directory.
	ErrInvalidTableName = errors.New("export: invalid table name")

	// ErrDuplicateTable indicates the same table was written twice to one sink.
	ErrDuplicateTable = errors.New("export: table already written")

	// ErrClosed indicates a write to a closed sink.
	ErrClosed = errors.New("export: sink closed")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("export: invalid option supplied")
)

// ctxCheckEvery is how many rows a sink writes between context checks.
const ctxCheckEvery = 4096

// Row is one scored pair.
type Row struct {
	Source     int
	Target     int
	Similarity float64
}

// Sink consumes per-metric row streams.
type Sink interface {
	// WriteTable drains rows into the table called name. rows must be
	// re-iterable: wrappers such as MultiSink range over it once per target.
	WriteTable(ctx context.Context, name string, rows iter.Seq[Row]) error

	// Close flushes and releases resources; later writes fail with ErrClosed.
	Close() error
}

// Option configures file-backed sinks.
type Option func(*Options)

// Options holds file layout settings shared by CSVSink and MsgpackSink.
type Options struct {
	// Prefix is prepended to every file name as "<prefix>_". Empty means no prefix.
	Prefix string

	// Delimiter separates CSV fields; ' ' by default.
	Delimiter rune

	// Header controls the CSV header line; true by default.
	Header bool

	err error
}

// DefaultOptions returns no prefix, a space delimiter and a header line.
func DefaultOptions() Options {
	return Options{Delimiter: ' ', Header: true}
}

// WithPrefix sets the file name prefix. Path separators are rejected.
func WithPrefix(p string) Option {
	return func(o *Options) {
		if strings.ContainsAny(p, `/\`) {
			o.err = fmt.Errorf("%w: prefix %q contains a path separator", ErrOptionViolation, p)
			return
		}
		o.Prefix = p
	}
}

// WithDelimiter sets the CSV field separator. Quotes and line breaks are rejected.
func WithDelimiter(r rune) Option {
	return func(o *Options) {
		if r == '"' || r == '\r' || r == '\n' || r == 0xFFFD {
			o.err = fmt.Errorf("%w: delimiter %q", ErrOptionViolation, r)
			return
		}
		o.Delimiter = r
	}
}

// WithHeader toggles the CSV header line.
func WithHeader(on bool) Option {
	return func(o *Options) { o.Header = on }
}

// resolve applies opts over the defaults and reports any recorded violation.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// fileName builds "<prefix>_<name><ext>", or "<name><ext>" without prefix.
func (o Options) fileName(name, ext string) string {
	if o.Prefix == "" {
		return name + ext
	}

	return o.Prefix + "_" + name + ext
}

// tableSet guards a sink against invalid, duplicate and post-Close writes.
type tableSet struct {
	mu     sync.Mutex
	seen   map[string]struct{}
	closed bool
}

// claim registers name or explains why it cannot be written.
func (s *tableSet) claim(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("table %q: %w", name, ErrInvalidTableName)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("table %q: %w", name, ErrClosed)
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, dup := s.seen[name]; dup {
		return fmt.Errorf("table %q: %w", name, ErrDuplicateTable)
	}
	s.seen[name] = struct{}{}

	return nil
}

// close marks the set closed; it reports whether it was open.
func (s *tableSet) close() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	was := !s.closed
	s.closed = true

	return was
}

// drain feeds rows to fn, checking ctx every ctxCheckEvery rows.
func drain(ctx context.Context, rows iter.Seq[Row], fn func(Row) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var (
		n   int
		err error
	)
	for r := range rows {
		n++
		if n%ctxCheckEvery == 0 {
			if err = ctx.Err(); err != nil {
				return err
			}
		}
		if err = fn(r); err != nil {
			return err
		}
	}

	return nil
}

package export

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"
)

// MemorySink keeps every table in memory. Safe for concurrent use.
type MemorySink struct {
	tables tableSet

	mu    sync.RWMutex
	names []string
	rows  map[string][]Row
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{rows: make(map[string][]Row)}
}

// WriteTable copies rows into memory. A cancelled write stores nothing.
func (s *MemorySink) WriteTable(ctx context.Context, name string, rows iter.Seq[Row]) error {
	if err := s.tables.claim(name); err != nil {
		return fmt.Errorf("MemorySink.WriteTable: %w", err)
	}
	var buf []Row
	err := drain(ctx, rows, func(r Row) error {
		buf = append(buf, r)
		return nil
	})
	if err != nil {
		return fmt.Errorf("MemorySink.WriteTable(%s): %w", name, err)
	}

	s.mu.Lock()
	s.names = append(s.names, name)
	s.rows[name] = buf
	s.mu.Unlock()

	return nil
}

// Close marks the sink closed; tables stay readable.
func (s *MemorySink) Close() error {
	s.tables.close()

	return nil
}

// Names returns the table names in write order.
func (s *MemorySink) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.names)
}

// Table returns a copy of the rows of name.
func (s *MemorySink) Table(name string) ([]Row, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, ok := s.rows[name]

	return slices.Clone(rows), ok
}

// MultiSink writes every table to each of its sinks in order. The row
// sequence is iterated once per sink, so it must be re-iterable.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink fans out to sinks; nil entries are skipped.
func NewMultiSink(sinks ...Sink) *MultiSink {
	m := &MultiSink{}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}

	return m
}

// WriteTable stops at the first failing sink.
func (m *MultiSink) WriteTable(ctx context.Context, name string, rows iter.Seq[Row]) error {
	for _, s := range m.sinks {
		if err := s.WriteTable(ctx, name, rows); err != nil {
			return err
		}
	}

	return nil
}

// Close closes every sink and joins their errors.
func (m *MultiSink) Close() error {
	var errs []error
	for _, s := range m.sinks {
		errs = append(errs, s.Close())
	}

	return errors.Join(errs...)
}

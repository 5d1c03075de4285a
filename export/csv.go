package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strconv"
)

// csvHeader mirrors the column names of the result tables.
var csvHeader = []string{"source", "target", "similarity"}

// CSVSink writes each table to "<dir>/<prefix>_<name>.csv".
type CSVSink struct {
	dir    string
	opts   Options
	tables tableSet
}

// NewCSVSink creates dir if needed and returns a sink writing into it.
//
// Errors: ErrOptionViolation, or the os error from creating dir.
func NewCSVSink(dir string, opts ...Option) (*CSVSink, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("NewCSVSink: %w", err)
	}

	return &CSVSink{dir: dir, opts: o}, nil
}

// Path returns the file a table called name is written to.
func (s *CSVSink) Path(name string) string {
	return filepath.Join(s.dir, s.opts.fileName(name, ".csv"))
}

// WriteTable writes the header (unless disabled) and one line per row.
// A failed or cancelled write removes the partial file.
func (s *CSVSink) WriteTable(ctx context.Context, name string, rows iter.Seq[Row]) (err error) {
	if err = s.tables.claim(name); err != nil {
		return fmt.Errorf("CSVSink.WriteTable: %w", err)
	}
	path := s.Path(name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("CSVSink.WriteTable(%s): %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("CSVSink.WriteTable(%s): %w", name, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	w := csv.NewWriter(f)
	w.Comma = s.opts.Delimiter
	if s.opts.Header {
		if err = w.Write(csvHeader); err != nil {
			return fmt.Errorf("CSVSink.WriteTable(%s): %w", name, err)
		}
	}
	record := make([]string, 3)
	err = drain(ctx, rows, func(r Row) error {
		record[0] = strconv.Itoa(r.Source)
		record[1] = strconv.Itoa(r.Target)
		record[2] = strconv.FormatFloat(r.Similarity, 'g', -1, 64)
		return w.Write(record)
	})
	if err != nil {
		return fmt.Errorf("CSVSink.WriteTable(%s): %w", name, err)
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("CSVSink.WriteTable(%s): %w", name, err)
	}

	return nil
}

// Close marks the sink closed. Files are closed per table, so there is
// nothing left to flush.
func (s *CSVSink) Close() error {
	s.tables.close()

	return nil
}

package export

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// rowFields is the arity of one encoded row.
const rowFields = 3

// MsgpackSink writes each table to "<dir>/<prefix>_<name>.msgpack" as a
// stream of [source, target, similarity] arrays.
type MsgpackSink struct {
	dir    string
	opts   Options
	tables tableSet
}

// NewMsgpackSink creates dir if needed and returns a sink writing into it.
// Only the Prefix option applies.
func NewMsgpackSink(dir string, opts ...Option) (*MsgpackSink, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("NewMsgpackSink: %w", err)
	}

	return &MsgpackSink{dir: dir, opts: o}, nil
}

// Path returns the file a table called name is written to.
func (s *MsgpackSink) Path(name string) string {
	return filepath.Join(s.dir, s.opts.fileName(name, ".msgpack"))
}

// WriteTable encodes every row. A failed or cancelled write removes the partial file.
func (s *MsgpackSink) WriteTable(ctx context.Context, name string, rows iter.Seq[Row]) (err error) {
	if err = s.tables.claim(name); err != nil {
		return fmt.Errorf("MsgpackSink.WriteTable: %w", err)
	}
	path := s.Path(name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("MsgpackSink.WriteTable(%s): %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("MsgpackSink.WriteTable(%s): %w", name, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	bw := bufio.NewWriter(f)
	enc := msgpack.NewEncoder(bw)
	err = drain(ctx, rows, func(r Row) error {
		return encodeRow(enc, r)
	})
	if err != nil {
		return fmt.Errorf("MsgpackSink.WriteTable(%s): %w", name, err)
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("MsgpackSink.WriteTable(%s): %w", name, err)
	}

	return nil
}

// Close marks the sink closed.
func (s *MsgpackSink) Close() error {
	s.tables.close()

	return nil
}

func encodeRow(enc *msgpack.Encoder, r Row) error {
	if err := enc.EncodeArrayLen(rowFields); err != nil {
		return err
	}
	if err := enc.EncodeInt(int64(r.Source)); err != nil {
		return err
	}
	if err := enc.EncodeInt(int64(r.Target)); err != nil {
		return err
	}

	return enc.EncodeFloat64(r.Similarity)
}

// ReadMsgpack decodes a stream written by MsgpackSink.
//
// Errors: a decode error wrapped with the row index, or a row whose array
// length is not 3.
func ReadMsgpack(r io.Reader) ([]Row, error) {
	dec := msgpack.NewDecoder(bufio.NewReader(r))
	var rows []Row
	for i := 0; ; i++ {
		n, err := dec.DecodeArrayLen()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("ReadMsgpack: row %d: %w", i, err)
		}
		if n != rowFields {
			return nil, fmt.Errorf("ReadMsgpack: row %d has %d fields, want %d", i, n, rowFields)
		}
		var row Row
		if row.Source, err = dec.DecodeInt(); err != nil {
			return nil, fmt.Errorf("ReadMsgpack: row %d source: %w", i, err)
		}
		if row.Target, err = dec.DecodeInt(); err != nil {
			return nil, fmt.Errorf("ReadMsgpack: row %d target: %w", i, err)
		}
		if row.Similarity, err = dec.DecodeFloat64(); err != nil {
			return nil, fmt.Errorf("ReadMsgpack: row %d similarity: %w", i, err)
		}
		rows = append(rows, row)
	}
}

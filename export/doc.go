// Package export is the persistence boundary of linkpred: it receives one
// row stream per similarity metric and writes it somewhere. No scoring logic
// lives here.
//
// A row is (source, target, similarity) with source < target. Producers hand
// rows over as an iter.Seq[Row]; every Sink consumes a table exactly once per
// WriteTable call, in the order the sequence yields.
//
// Sinks:
//
//   - CSVSink:     one "<dir>/<prefix>_<TABLE>.csv" file per table, header
//     "source target similarity", space separated by default.
//   - MsgpackSink: one "<dir>/<prefix>_<TABLE>.msgpack" file per table, a
//     stream of [source, target, similarity] arrays; ReadMsgpack decodes it.
//   - MemorySink:  keeps tables in memory, for tests and library callers.
//   - MultiSink:   fans a table out to several sinks in order.
//   - Recorder:    wraps a Sink and keeps per-table summary statistics that
//     end up in the run Manifest (manifest.yaml).
//
// Errors:
//
//   - ErrInvalidTableName  empty names or names containing path separators.
//   - ErrDuplicateTable    a table name written twice to the same sink.
//   - ErrClosed            WriteTable after Close.
//   - ErrOptionViolation   invalid Option values.
//
// Floats are written in the shortest representation that round-trips
// (strconv 'g', -1), so equal inputs give byte-identical files.
package export

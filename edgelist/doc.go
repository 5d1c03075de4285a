// Package edgelist parses plain-text edge lists into the dense edge stream
// that core.Build consumes.
//
// Accepted format, one edge per line:
//
//	# comment            (also "%" comments, as in KONECT/Matrix Market dumps)
//	source target        (optional header, first content line only)
//	0 1
//	0,2
//	1	2  0.75          (extra columns such as weights are ignored)
//
// Fields are separated by any run of whitespace or commas, or by a single
// custom delimiter set with WithDelimiter. Blank lines are skipped.
//
// Read returns integer ids and NodeCount = max id + 1 unless WithNodeCount
// overrides it. ReadLabels keeps the ids as opaque strings for datasets whose
// node names are not dense integers; preprocess.Renumber maps them to ids.
// ScanRecords exposes the tokenizer for other line formats (node label files).
//
// Errors:
//
//   - *LineError wrapping ErrMalformedLine, with the 1-based line number and text.
//   - core.ErrOutOfRangeNode when an id does not fit WithNodeCount.
//   - ErrOptionViolation for invalid options, or the reader's I/O error.
package edgelist

// Package output provides formatters for emitting rows of text fields.
//
// Supported formats:
//   - delimited: fields joined by the configured delimiter, one line per row
//   - table: aligned text table for human reading
//   - jsonl: one JSON array of fields per line
package output

import (
	"fmt"
	"io"
)

// Formatter writes rows to a destination. WriteRow may buffer; Flush must be
// called once after the last row.
type Formatter interface {
	WriteRow(row []string) error
	Flush() error
}

// New returns the formatter named by format, writing to w. The delimiter is
// used only by the delimited format.
func New(format string, w io.Writer, delimiter string) (Formatter, error) {
	switch format {
	case "delimited":
		return NewDelimited(w, delimiter), nil
	case "table":
		return NewTable(w), nil
	case "jsonl":
		return NewJSONL(w), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (use delimited, table, or jsonl)", format)
	}
}

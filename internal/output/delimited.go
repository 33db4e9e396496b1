package output

import (
	"fmt"
	"io"
	"strings"
)

// Delimited writes one line per row with fields joined by the delimiter.
// This is the default format and matches the input shape byte for byte.
type Delimited struct {
	w         io.Writer
	delimiter string
}

// NewDelimited creates a delimited formatter writing to w.
func NewDelimited(w io.Writer, delimiter string) *Delimited {
	return &Delimited{w: w, delimiter: delimiter}
}

// WriteRow writes the row as a single joined line.
func (d *Delimited) WriteRow(row []string) error {
	_, err := fmt.Fprintln(d.w, strings.Join(row, d.delimiter))
	return err
}

// Flush is a no-op; rows are written as they arrive.
func (d *Delimited) Flush() error {
	return nil
}

package reader

import (
	"encoding/csv"
	"io"
	"strings"
)

// Delimited reads delimiter-separated text rows. Fields are trimmed of
// surrounding whitespace, and the field count of the first row is enforced
// for the rest of the input.
type Delimited struct {
	r      *csv.Reader
	closer io.Closer
}

// NewDelimited creates a delimited-text source reading from r.
func NewDelimited(r io.Reader, delimiter rune) *Delimited {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	return &Delimited{r: cr}
}

// Next returns the next row, or io.EOF at end of input.
func (d *Delimited) Next() ([]string, error) {
	row, err := d.r.Read()
	if err != nil {
		return nil, err
	}
	for i, f := range row {
		row[i] = strings.TrimSpace(f)
	}
	return row, nil
}

// Close closes the underlying file, if any. It is a no-op for stdin and
// in-memory sources.
func (d *Delimited) Close() error {
	if d.closer != nil {
		return d.closer.Close()
	}
	return nil
}

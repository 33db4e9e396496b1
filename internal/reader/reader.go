// Package reader provides row sources for csvutil operations.
//
// A Source yields one row of text fields at a time. Delimited text is the
// primary input format; files with a .parquet extension are read as parquet
// and surfaced as text rows in schema column order.
package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Source reads rows from an input. Next returns io.EOF once the input is
// exhausted.
type Source interface {
	Next() ([]string, error)
	Close() error
}

// Open creates a source for path. An empty path means standard input, read
// as delimited text. Files ending in .parquet are read as parquet; any other
// path is read as delimited text using delimiter.
func Open(path string, delimiter rune) (Source, error) {
	if path == "" {
		return NewDelimited(os.Stdin, delimiter), nil
	}

	if strings.ToLower(filepath.Ext(path)) == ".parquet" {
		return OpenParquet(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	d := NewDelimited(f, delimiter)
	d.closer = f
	return d, nil
}

// Delimiter validates a delimiter flag value and returns it as a rune.
func Delimiter(s string) (rune, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return r[0], nil
}

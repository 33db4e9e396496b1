// Package pick projects rows onto a user-selected list of fields.
package pick

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors reported while parsing a fields list or projecting a row.
var (
	ErrMalformedFields = errors.New("unable to interpret fields")
	ErrFieldRange      = errors.New("field index out of range")
)

// ParseFields parses a comma-separated list of zero-indexed fields, such as
// "0,2,5". The order, including repeats, is preserved in the output.
func ParseFields(s string) ([]int, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty list", ErrMalformedFields)
	}

	parts := strings.Split(s, ",")
	fields := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedFields, p)
		}
		fields[i] = n
	}
	return fields, nil
}

// Project returns the row reduced to the given fields, in the order given.
func Project(row []string, fields []int) ([]string, error) {
	out := make([]string, len(fields))
	for i, n := range fields {
		if n >= len(row) {
			return nil, fmt.Errorf("%w: %d (row has %d fields)", ErrFieldRange, n, len(row))
		}
		out[i] = row[n]
	}
	return out, nil
}

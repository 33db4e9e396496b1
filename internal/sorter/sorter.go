// Package sorter orders buffered rows by one or more typed field keys.
package sorter

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

// Errors reported while parsing key specs or sorting rows.
var (
	ErrMalformedKey = errors.New("unable to interpret field")
	ErrUnknownType  = errors.New("unknown type for field/type pair")
	ErrFieldRange   = errors.New("field index out of range")
)

// KeyType selects how a key's values compare.
type KeyType int

const (
	String KeyType = iota
	Int
	Float
)

var keyPattern = regexp.MustCompile(`^([0-9]+)(:[a-z]+)?$`)

// Key is one field to sort on.
type Key struct {
	Field int
	Type  KeyType
}

// ParseKey parses a key spec such as "3" or "3:float". The type qualifier
// defaults to string.
func ParseKey(s string) (Key, error) {
	m := keyPattern.FindStringSubmatch(s)
	if m == nil {
		return Key{}, fmt.Errorf("%w: %q", ErrMalformedKey, s)
	}

	field, err := strconv.Atoi(m[1])
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q", ErrMalformedKey, s)
	}

	switch m[2] {
	case "", ":string":
		return Key{Field: field, Type: String}, nil
	case ":int":
		return Key{Field: field, Type: Int}, nil
	case ":float":
		return Key{Field: field, Type: Float}, nil
	default:
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// ParseKeys parses every key spec, preserving order.
func ParseKeys(specs []string) ([]Key, error) {
	keys := make([]Key, 0, len(specs))
	for _, s := range specs {
		k, err := ParseKey(s)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Sort orders rows in place, applying one stable sort per key in the order
// the keys were specified. The last key therefore becomes the primary
// ordering, with earlier keys breaking ties.
func Sort(rows [][]string, keys []Key) error {
	for _, k := range keys {
		if err := sortByKey(rows, k); err != nil {
			return err
		}
	}
	return nil
}

func sortByKey(rows [][]string, k Key) error {
	type decorated struct {
		row []string
		s   string
		i   int64
		f   float64
	}

	dec := make([]decorated, len(rows))
	for n, row := range rows {
		if k.Field >= len(row) {
			return fmt.Errorf("%w: %d (row has %d fields)", ErrFieldRange, k.Field, len(row))
		}

		d := decorated{row: row}
		v := row[k.Field]
		switch k.Type {
		case Int:
			i, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("field %d: %w", k.Field, err)
			}
			d.i = i
		case Float:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("field %d: %w", k.Field, err)
			}
			d.f = f
		default:
			d.s = v
		}
		dec[n] = d
	}

	sort.SliceStable(dec, func(a, b int) bool {
		switch k.Type {
		case Int:
			return dec[a].i < dec[b].i
		case Float:
			return dec[a].f < dec[b].f
		default:
			return dec[a].s < dec[b].s
		}
	})

	for n := range dec {
		rows[n] = dec[n].row
	}
	return nil
}

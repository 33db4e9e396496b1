package merge

import (
	"fmt"
	"regexp"
	"strconv"
)

var specPattern = regexp.MustCompile(`^([0-9]+):([a-z]+)$`)

// Binding pairs a zero-indexed field with the reduction applied to it.
type Binding struct {
	Field int
	Fn    Reduction
}

// ParseBinding parses a field:function spec such as "2:sum".
func ParseBinding(s string) (Binding, error) {
	m := specPattern.FindStringSubmatch(s)
	if m == nil {
		return Binding{}, fmt.Errorf("%w: %q", ErrMalformedSpec, s)
	}

	field, err := strconv.Atoi(m[1])
	if err != nil {
		return Binding{}, fmt.Errorf("%w: %q", ErrMalformedSpec, s)
	}

	fn, err := ParseReduction(m[2])
	if err != nil {
		return Binding{}, err
	}

	return Binding{Field: field, Fn: fn}, nil
}

// ParseBindings parses every spec, preserving order. The order determines
// the order of appended output fields.
func ParseBindings(specs []string) ([]Binding, error) {
	bindings := make([]Binding, 0, len(specs))
	for _, s := range specs {
		b, err := ParseBinding(s)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, b)
	}
	return bindings, nil
}

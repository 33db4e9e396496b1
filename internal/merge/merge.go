package merge

import (
	"fmt"
	"slices"
)

// Merger is the merge state machine. It consumes rows one at a time, keeps
// at most one open group (the comparable key plus the raw values each
// aggregated field took so far), and emits one output row per maximal run of
// rows sharing a key. Rows with an identical key that are not contiguous are
// never merged together.
type Merger struct {
	bindings   []Binding
	fields     []int        // distinct aggregated field indices, first-use order
	aggregated map[int]bool // membership view of fields
	emit       func([]string) error

	// key is nil exactly when no group is open; the comparable projection is
	// always non-nil, even when every field is aggregated.
	key    []string
	values map[int][]string
}

// NewMerger creates a merger that calls emit once for every closed group.
func NewMerger(bindings []Binding, emit func([]string) error) *Merger {
	m := &Merger{
		bindings:   bindings,
		aggregated: make(map[int]bool, len(bindings)),
		emit:       emit,
	}
	for _, b := range bindings {
		if !m.aggregated[b.Field] {
			m.aggregated[b.Field] = true
			m.fields = append(m.fields, b.Field)
		}
	}
	return m
}

// Add feeds one row to the merger. It either extends the open group or
// flushes it and opens a new one.
func (m *Merger) Add(row []string) error {
	for _, i := range m.fields {
		if i >= len(row) {
			return fmt.Errorf("%w: %d (row has %d fields)", ErrFieldRange, i, len(row))
		}
	}

	key := m.project(row)
	if m.key == nil {
		m.open(row, key)
		return nil
	}

	if slices.Equal(key, m.key) {
		for _, i := range m.fields {
			m.values[i] = append(m.values[i], row[i])
		}
		return nil
	}

	if err := m.Flush(); err != nil {
		return err
	}
	m.open(row, key)
	return nil
}

// Flush closes the open group, if any, and emits its output row: the
// comparable key followed by each binding's reduction in spec order. It must
// be called once after the last row.
func (m *Merger) Flush() error {
	if m.key == nil {
		return nil
	}

	out := append([]string(nil), m.key...)
	for _, b := range m.bindings {
		v, ok, err := b.Fn.Apply(m.values[b.Field])
		if err != nil {
			return err
		}
		if ok {
			out = append(out, v)
		}
	}

	m.key = nil
	m.values = nil
	return m.emit(out)
}

// project returns the comparable key: the row without its aggregated fields,
// in original order.
func (m *Merger) project(row []string) []string {
	key := make([]string, 0, len(row)-len(m.fields))
	for i, f := range row {
		if !m.aggregated[i] {
			key = append(key, f)
		}
	}
	return key
}

func (m *Merger) open(row, key []string) {
	m.key = key
	m.values = make(map[int][]string, len(m.fields))
	for _, i := range m.fields {
		m.values[i] = []string{row[i]}
	}
}

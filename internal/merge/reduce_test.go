package merge

import (
	"errors"
	"testing"
)

func TestParseReduction(t *testing.T) {
	names := []string{"sum", "min", "max", "mean", "median", "stdev", "first", "last", "ignore"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			r, err := ParseReduction(name)
			if err != nil {
				t.Fatalf("ParseReduction(%q) error: %v", name, err)
			}
			if r.String() != name {
				t.Errorf("got %q, want %q", r.String(), name)
			}
		})
	}
}

func TestParseReductionUnknown(t *testing.T) {
	for _, name := range []string{"avg", "SUM", "count", ""} {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseReduction(name); !errors.Is(err, ErrUnknownFunction) {
				t.Errorf("ParseReduction(%q) error = %v, want ErrUnknownFunction", name, err)
			}
		})
	}
}

func TestReductionApply(t *testing.T) {
	tests := []struct {
		name     string
		fn       Reduction
		values   []string
		want     string
		wantEmit bool
	}{
		{name: "sum of integers", fn: Sum, values: []string{"10", "20", "30"}, want: "60", wantEmit: true},
		{name: "sum of floats", fn: Sum, values: []string{"1.5", "2.5"}, want: "4", wantEmit: true},
		{name: "min", fn: Min, values: []string{"3", "1", "2"}, want: "1", wantEmit: true},
		{name: "min with negatives", fn: Min, values: []string{"-1", "2"}, want: "-1", wantEmit: true},
		{name: "max", fn: Max, values: []string{"3", "9", "2"}, want: "9", wantEmit: true},
		{name: "mean", fn: Mean, values: []string{"1", "2", "3", "4"}, want: "2.5", wantEmit: true},
		{name: "median of odd count", fn: Median, values: []string{"3", "1", "2"}, want: "2", wantEmit: true},
		{name: "median of even count", fn: Median, values: []string{"4", "1", "3", "2"}, want: "2.5", wantEmit: true},
		{name: "stdev of pair", fn: Stdev, values: []string{"2", "4"}, want: "1.4142135623730951", wantEmit: true},
		{name: "stdev of singleton is zero", fn: Stdev, values: []string{"5"}, want: "0", wantEmit: true},
		{name: "stdev of identical values", fn: Stdev, values: []string{"3", "3", "3"}, want: "0", wantEmit: true},
		{name: "first keeps raw text", fn: First, values: []string{"alpha", "beta"}, want: "alpha", wantEmit: true},
		{name: "last keeps raw text", fn: Last, values: []string{"alpha", "beta"}, want: "beta", wantEmit: true},
		{name: "ignore emits nothing", fn: Ignore, values: []string{"1", "2"}, want: "", wantEmit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, emit, err := tt.fn.Apply(tt.values)
			if err != nil {
				t.Fatalf("Apply(%v) error: %v", tt.values, err)
			}
			if emit != tt.wantEmit {
				t.Fatalf("Apply(%v) emit = %t, want %t", tt.values, emit, tt.wantEmit)
			}
			if got != tt.want {
				t.Errorf("Apply(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestReductionApplyNonNumeric(t *testing.T) {
	numeric := []Reduction{Sum, Min, Max, Mean, Median, Stdev}
	for _, fn := range numeric {
		t.Run(fn.String(), func(t *testing.T) {
			if _, _, err := fn.Apply([]string{"1", "oops"}); !errors.Is(err, ErrNonNumericValue) {
				t.Errorf("%s.Apply error = %v, want ErrNonNumericValue", fn, err)
			}
		})
	}
}

// Package merge folds runs of similar sequential rows into single output
// rows. Consecutive rows that agree on every field not bound to a reduction
// form a group; when a group closes, each bound reduction is applied to the
// values its field took across the group and the result is appended to the
// output row.
package merge

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Errors reported while parsing field:function specs or reducing values.
var (
	ErrMalformedSpec   = errors.New("unable to interpret field:function")
	ErrUnknownFunction = errors.New("no such field:function operation")
	ErrNonNumericValue = errors.New("non-numeric value")
	ErrFieldRange      = errors.New("field index out of range")
)

// Reduction identifies one of the recognized aggregation functions. The set
// is closed; ParseReduction rejects anything else.
type Reduction int

const (
	Sum Reduction = iota
	Min
	Max
	Mean
	Median
	Stdev
	First
	Last
	Ignore
)

// ParseReduction resolves a function name from a field:function spec.
func ParseReduction(name string) (Reduction, error) {
	switch name {
	case "sum":
		return Sum, nil
	case "min":
		return Min, nil
	case "max":
		return Max, nil
	case "mean":
		return Mean, nil
	case "median":
		return Median, nil
	case "stdev":
		return Stdev, nil
	case "first":
		return First, nil
	case "last":
		return Last, nil
	case "ignore":
		return Ignore, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
}

// String returns the spec name of the reduction.
func (r Reduction) String() string {
	switch r {
	case Sum:
		return "sum"
	case Min:
		return "min"
	case Max:
		return "max"
	case Mean:
		return "mean"
	case Median:
		return "median"
	case Stdev:
		return "stdev"
	case First:
		return "first"
	case Last:
		return "last"
	case Ignore:
		return "ignore"
	default:
		return fmt.Sprintf("Reduction(%d)", int(r))
	}
}

// Apply folds a non-empty sequence of raw field values into a single output
// value. The boolean reports whether the reduction contributes an output
// field; Ignore does not. First and Last pass text through unparsed; every
// other reduction parses all values as floating point.
func (r Reduction) Apply(values []string) (string, bool, error) {
	switch r {
	case First:
		return values[0], true, nil
	case Last:
		return values[len(values)-1], true, nil
	case Ignore:
		return "", false, nil
	}

	nums, err := toFloats(values)
	if err != nil {
		return "", false, err
	}

	var out float64
	switch r {
	case Sum:
		out = sumOf(nums)
	case Min:
		out = minOf(nums)
	case Max:
		out = maxOf(nums)
	case Mean:
		out = sumOf(nums) / float64(len(nums))
	case Median:
		out = medianOf(nums)
	case Stdev:
		out = stdevOf(nums)
	default:
		return "", false, fmt.Errorf("%w: %s", ErrUnknownFunction, r)
	}
	return strconv.FormatFloat(out, 'g', -1, 64), true, nil
}

func toFloats(values []string) ([]float64, error) {
	nums := make([]float64, len(values))
	for i, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNonNumericValue, v)
		}
		nums[i] = f
	}
	return nums, nil
}

func sumOf(nums []float64) float64 {
	var total float64
	for _, n := range nums {
		total += n
	}
	return total
}

// minOf and maxOf keep the first-seen extremum on ties.
func minOf(nums []float64) float64 {
	m := nums[0]
	for _, n := range nums[1:] {
		if n < m {
			m = n
		}
	}
	return m
}

func maxOf(nums []float64) float64 {
	m := nums[0]
	for _, n := range nums[1:] {
		if n > m {
			m = n
		}
	}
	return m
}

func medianOf(nums []float64) float64 {
	s := append([]float64(nil), nums...)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// stdevOf computes the sample standard deviation. A single value is
// duplicated to a pair first, so the statistic is defined and yields 0
// instead of failing on insufficient data.
func stdevOf(nums []float64) float64 {
	if len(nums) == 1 {
		nums = []float64{nums[0], nums[0]}
	}
	mean := sumOf(nums) / float64(len(nums))
	var ss float64
	for _, n := range nums {
		d := n - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(nums)-1))
}

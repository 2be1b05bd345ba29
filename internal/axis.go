package internal

import (
	"slices"
)

// A compressed axis holds the distinct coordinate values of the loop along one
// dimension, ascending. Neighboring values bound the gaps that the crossing
// index is keyed on, so the number of gaps is one less than the number of
// values.
type Axis []uint64

func NewAxis(values []uint64) Axis {
	axis := slices.Clone(values)
	slices.Sort(axis)
	return Axis(slices.Compact(axis))
}

func compress(loop Loop) (xs, ys Axis) {
	xValues := make([]uint64, len(loop))
	yValues := make([]uint64, len(loop))
	for i, p := range loop {
		xValues[i] = p.X
		yValues[i] = p.Y
	}
	return NewAxis(xValues), NewAxis(yValues)
}

// Position of v on the axis, if it is one of the axis values.
func (a Axis) Rank(v uint64) (int, bool) {
	return slices.BinarySearch(a, v)
}

func (a Axis) GapCount() int {
	if len(a) < 2 {
		return 0
	}
	return len(a) - 1
}

func (a Axis) Gap(i int) Gap {
	return Gap{a[i], a[i+1]}
}

// The gaps lying entirely within [lo, hi], as the half open rank range
// [first, end). The range is empty when lo and hi share a value or bracket no
// pair of neighboring values.
func (a Axis) GapsWithin(lo, hi uint64) (first, end int) {
	first, _ = slices.BinarySearch(a, lo)
	// Index of the first value past hi, which is one past the last gap's upper bound
	last, found := slices.BinarySearch(a, hi)
	if found {
		last++
	}
	end = last - 1
	if end < first {
		end = first
	}
	return first, end
}

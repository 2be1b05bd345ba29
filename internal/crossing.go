package internal

import (
	"fmt"
	"slices"
	"strings"

	"github.com/logrusorgru/aurora"
)

// A crossing index records, for every gap of one axis, where the edges of the
// loop pass through that gap along the other axis. Walking a list from low to
// high alternates between entering and leaving the polygon.
//
// Lists are stored by gap rank rather than by value pair: the ranks are dense,
// and a gap with no edges through it is just an empty list.
type CrossingIndex struct {
	axis  Axis
	lists [][]uint64
}

func newCrossingIndex(axis Axis) *CrossingIndex {
	return &CrossingIndex{
		axis:  axis,
		lists: make([][]uint64, axis.GapCount()),
	}
}

// Record an edge at position at spanning [lo, hi] on the indexed axis. Every
// gap fully inside the span gets a crossing.
func (c *CrossingIndex) add(lo, hi, at uint64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	first, end := c.axis.GapsWithin(lo, hi)
	for i := first; i < end; i++ {
		c.lists[i] = append(c.lists[i], at)
	}
}

func (c *CrossingIndex) sort() {
	for _, list := range c.lists {
		slices.Sort(list)
	}
}

func (c *CrossingIndex) Axis() Axis {
	return c.axis
}

// Crossings through gap i. The slice is owned by the index and must not be
// modified.
func (c *CrossingIndex) Crossings(i int) []uint64 {
	return c.lists[i]
}

// Crossings through the gap bounded by the given pair of axis values. The gap
// must be a pair of neighboring values on the axis.
func (c *CrossingIndex) Lookup(g Gap) ([]uint64, bool) {
	i, ok := c.axis.Rank(g.Low)
	if !ok || i+1 >= len(c.axis) || c.axis[i+1] != g.High {
		return nil, false
	}
	return c.lists[i], true
}

// Total number of crossings over all gaps.
func (c *CrossingIndex) Len() int {
	n := 0
	for _, list := range c.lists {
		n += len(list)
	}
	return n
}

func (c *CrossingIndex) String() string {
	var b strings.Builder
	for i, list := range c.lists {
		fmt.Fprintf(&b, "%s %v\n", aurora.Cyan(c.axis.Gap(i)), list)
	}
	return b.String()
}

// Classify the edge between two consecutive vertices. ok is false when the
// points are identical or differ on both axes.
func classify(a, b Point) (o Orientation, ok bool) {
	switch {
	case a.X == b.X && a.Y != b.Y:
		return Vertical, true
	case a.Y == b.Y && a.X != b.X:
		return Horizontal, true
	}
	return 0, false
}

// Build both crossing indices for the loop. Rows are keyed by gaps of the y
// axis and hold the x positions of vertical edges; columns are keyed by gaps
// of the x axis and hold the y positions of horizontal edges.
func buildCrossings(loop Loop, xs, ys Axis) (rows, columns *CrossingIndex) {
	rows = newCrossingIndex(ys)
	columns = newCrossingIndex(xs)
	for i := range loop {
		a, b := loop.Edge(i)
		orientation, ok := classify(a, b)
		if !ok {
			fatalf(ErrMalformedPolygon, "edge %d from %v to %v is not axis-aligned", i, a, b)
		}
		if orientation == Vertical {
			rows.add(a.Y, b.Y, a.X)
		} else {
			columns.add(a.X, b.X, a.Y)
		}
	}
	rows.sort()
	columns.sort()
	return rows, columns
}

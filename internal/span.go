package internal

import "slices"

// Enclosure within a single gap is a two state machine. Reading a gap's
// crossing list from low to high, each crossing flips between outside and
// inside: crossings at even indices open an inside run, and crossings at odd
// indices close it. An interval is enclosed by the gap if it starts in an
// inside run and that run closes no earlier than the interval's far end.

type spanState int

const (
	outside spanState = iota
	inside
)

func (s spanState) String() string {
	if s == inside {
		return "inside"
	}
	return "outside"
}

// Find the state at lo. When lo is inside, open is the index of the crossing
// that started the run containing it.
func enter(crossings []uint64, lo uint64) (state spanState, open int) {
	i, found := slices.BinarySearch(crossings, lo)
	switch {
	case found && i%2 == 1:
		// Sitting on a closing crossing. Whatever follows is outside.
		return outside, i
	case found:
		return inside, i
	case i == 0, i >= len(crossings), i%2 == 0:
		return outside, i
	default:
		return inside, i - 1
	}
}

// Does one inside run of the gap cover all of [lo, hi]?
func covers(crossings []uint64, lo, hi uint64) bool {
	state, open := enter(crossings, lo)
	if state != inside {
		return false
	}
	closing := open + 1
	return closing < len(crossings) && crossings[closing] >= hi
}

package internal

import "math/bits"

// Number of grid cells in the inclusive rectangle. Panics with ErrOverflow
// instead of wrapping.
func Area(r Rect) uint64 {
	width, carryW := bits.Add64(r.Width(), 1, 0)
	height, carryH := bits.Add64(r.Height(), 1, 0)
	hi, lo := bits.Mul64(width, height)
	if carryW != 0 || carryH != 0 || hi != 0 {
		fatalf(ErrOverflow, "rectangle %v", r)
	}
	return lo
}

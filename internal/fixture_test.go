package internal

// Loops shared by the tests in this package.

// The worked example: a notched shape whose bounding box is 10x7 but whose
// largest inside rectangle runs from (2,3) to (9,5).
func notchedLoop() Loop {
	return Loop{
		{7, 1},
		{11, 1},
		{11, 7},
		{9, 7},
		{9, 5},
		{2, 5},
		{2, 3},
		{7, 3},
	}
}

// A staircase climbing from (0,0) to (step*n, step*n), closed along the top
// and left sides.
func staircase(n int, step uint64) Loop {
	loop := Loop{{0, 0}}
	for i := uint64(0); i < uint64(n); i++ {
		loop = append(loop, Point{step * (i + 1), step * i})
		loop = append(loop, Point{step * (i + 1), step * (i + 1)})
	}
	return append(loop, Point{0, step * uint64(n)})
}

// Cells on or inside the loop, found by casting a ray to the left from every
// cell in the bounding box. Only usable on small loops.
func insideCells(loop Loop) map[Point]struct{} {
	cells := make(map[Point]struct{})
	var maxX, maxY uint64
	for i := range loop {
		a, b := loop.Edge(i)
		maxX = max(maxX, a.X)
		maxY = max(maxY, a.Y)
		// Boundary cells
		r := RectFromCorners(a, b)
		for x := r.Min.X; x <= r.Max.X; x++ {
			for y := r.Min.Y; y <= r.Max.Y; y++ {
				cells[Point{x, y}] = struct{}{}
			}
		}
	}
	for x := uint64(0); x <= maxX; x++ {
		for y := uint64(0); y <= maxY; y++ {
			crossings := 0
			for i := range loop {
				a, b := loop.Edge(i)
				if a.X != b.X || a.X >= x {
					continue
				}
				lo, hi := min(a.Y, b.Y), max(a.Y, b.Y)
				if lo <= y && y < hi {
					crossings++
				}
			}
			if crossings%2 == 1 {
				cells[Point{x, y}] = struct{}{}
			}
		}
	}
	return cells
}

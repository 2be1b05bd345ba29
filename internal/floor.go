package internal

import (
	"github.com/golang/glog"
)

// A rectilinear polygon has at least four corners. Anything shorter cannot
// bound an area, so it is rejected rather than special-cased.
const minLoopLength = 4

// A floor is a rectilinear loop together with the indices needed to answer
// enclosure queries against it. It is built once and never modified, so
// queries may run concurrently.
type Floor struct {
	loop    Loop
	xs, ys  Axis
	rows    *CrossingIndex
	columns *CrossingIndex

	// Number of goroutines used by the pair scans. Zero or one scans serially.
	Workers int
}

// Index a loop of points. Panics with ErrMalformedPolygon if the loop is too
// short or any edge, including the closing one, is not axis-aligned.
func NewFloor(points []Point) *Floor {
	if len(points) < minLoopLength {
		fatalf(ErrMalformedPolygon, "loop has %d vertices, need at least %d", len(points), minLoopLength)
	}
	loop := make(Loop, len(points))
	copy(loop, points)

	xs, ys := compress(loop)
	rows, columns := buildCrossings(loop, xs, ys)
	glog.V(2).Infof("indexed %d vertices: %d x values, %d y values, %d row crossings, %d column crossings",
		len(loop), len(xs), len(ys), rows.Len(), columns.Len())

	return &Floor{
		loop:    loop,
		xs:      xs,
		ys:      ys,
		rows:    rows,
		columns: columns,
	}
}

func (f *Floor) Loop() Loop { return f.loop }

func (f *Floor) XAxis() Axis { return f.xs }
func (f *Floor) YAxis() Axis { return f.ys }

// Crossings of vertical edges, keyed by gaps of the y axis.
func (f *Floor) Rows() *CrossingIndex { return f.rows }

// Crossings of horizontal edges, keyed by gaps of the x axis.
func (f *Floor) Columns() *CrossingIndex { return f.columns }

// Does the rectangle with corners a and b lie inside the polygon? Both corners
// must sit on the compressed axes (vertices always do); a rectangle with a side
// between axis values cannot be checked against whole gaps and is reported as
// not enclosed, as is a pair of coincident points.
func (f *Floor) IsEnclosed(a, b Point) bool {
	if a == b {
		return false
	}
	r := RectFromCorners(a, b)
	for _, v := range []uint64{r.Min.X, r.Max.X} {
		if _, ok := f.xs.Rank(v); !ok {
			return false
		}
	}
	for _, v := range []uint64{r.Min.Y, r.Max.Y} {
		if _, ok := f.ys.Rank(v); !ok {
			return false
		}
	}
	return f.enclosed(r)
}

func (f *Floor) enclosed(r Rect) bool {
	// Every row the rectangle spans must hold its x range in one inside run...
	first, end := f.ys.GapsWithin(r.Min.Y, r.Max.Y)
	for i := first; i < end; i++ {
		if !covers(f.rows.Crossings(i), r.Min.X, r.Max.X) {
			return false
		}
	}
	// ...and every column must hold its y range.
	first, end = f.xs.GapsWithin(r.Min.X, r.Max.X)
	for i := first; i < end; i++ {
		if !covers(f.columns.Crossings(i), r.Min.Y, r.Max.Y) {
			return false
		}
	}
	return true
}

// Largest rectangle spanned by any two vertices, ignoring the polygon.
func (f *Floor) MaxRawArea() uint64 {
	best := f.scan(func(a, b Point) (uint64, bool) {
		return Area(RectFromCorners(a, b)), true
	})
	return best.area
}

// Largest rectangle spanned by two vertices that lies inside the polygon, and
// its area. Ties go to the pair that comes first in loop order. Panics with
// ErrNoEnclosedRectangle if no pair qualifies.
func (f *Floor) BestRectangle() (Rect, uint64) {
	best := f.scan(func(a, b Point) (uint64, bool) {
		if a == b {
			return 0, false
		}
		r := RectFromCorners(a, b)
		if !f.enclosed(r) {
			return 0, false
		}
		return Area(r), true
	})
	if !best.ok {
		fatalf(ErrNoEnclosedRectangle, "checked every pair of %d vertices", len(f.loop))
	}
	rect := RectFromCorners(f.loop[best.i], f.loop[best.j])
	glog.V(1).Infof("best enclosed rectangle %v between vertices %d and %d, area %d", rect, best.i, best.j, best.area)
	return rect, best.area
}

func (f *Floor) MaxEnclosedArea() uint64 {
	_, area := f.BestRectangle()
	return area
}

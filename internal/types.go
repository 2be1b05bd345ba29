package internal

import "fmt"

// Points are values. A loop never hands out pointers into itself, so nothing
// can move a vertex after the floor has been indexed.
type Point struct {
	X uint64
	Y uint64
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// A loop is closed implicitly: the last point connects back to the first.
type Loop []Point

// The two endpoints of edge i. The last edge wraps around to the first point.
func (l Loop) Edge(i int) (a, b Point) {
	return l[CircularIndex(i, len(l))], l[CircularIndex(i+1, len(l))]
}

type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// A gap is the span between two neighboring values of a compressed axis.
type Gap struct {
	Low, High uint64
}

func (g Gap) String() string {
	return fmt.Sprintf("[%d,%d]", g.Low, g.High)
}

// Inclusive on both ends. Min is never greater than Max on either axis.
type Rect struct {
	Min, Max Point
}

// Normalize the rectangle spanned by two opposite corners.
func RectFromCorners(a, b Point) Rect {
	return Rect{
		Min: Point{min(a.X, b.X), min(a.Y, b.Y)},
		Max: Point{max(a.X, b.X), max(a.Y, b.Y)},
	}
}

func (r Rect) Width() uint64  { return r.Max.X - r.Min.X }
func (r Rect) Height() uint64 { return r.Max.Y - r.Min.Y }

func (r Rect) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}

// Finding the largest rectangles inside rectilinear polygons.
//
// A floor is a simple polygon on the integer grid whose edges are all
// horizontal or vertical, given as its corners in loop order. This package
// answers which pairs of corners span a rectangle lying entirely inside the
// floor, and how large the largest such rectangle is. Areas count grid cells,
// so a rectangle from (2,3) to (9,5) has area 8*3 = 24.
package enclosure

import (
	"github.com/pkg/errors"

	"github.com/osuushi/enclosure/internal"
)

type Point = internal.Point
type Rect = internal.Rect

var (
	ErrMalformedPolygon    = internal.ErrMalformedPolygon
	ErrNoEnclosedRectangle = internal.ErrNoEnclosedRectangle
	ErrOverflow            = internal.ErrOverflow
)

type Option func(*internal.Floor)

// Split the pair scans over n goroutines. Results do not depend on n.
func WithWorkers(n int) Option {
	return func(f *internal.Floor) {
		f.Workers = n
	}
}

// An indexed floor. It is immutable, and safe for concurrent use.
type Floor struct {
	floor *internal.Floor
}

// Index the loop of points. The loop closes from the last point back to the
// first; it must have at least four points, and every edge must be horizontal
// or vertical, or ErrMalformedPolygon is returned. Simplicity of the loop is
// assumed, not checked.
func New(points []Point, options ...Option) (floor *Floor, err error) {
	defer recoverInto(&err)
	f := internal.NewFloor(points)
	for _, option := range options {
		option(f)
	}
	return &Floor{f}, nil
}

// The loop the floor was built from.
func (f *Floor) Loop() []Point {
	return append([]Point(nil), f.floor.Loop()...)
}

// Whether the rectangle with corners a and b lies inside the floor. The
// corners are expected to be vertices of the loop. Coincident points span no
// rectangle and report false.
func (f *Floor) IsEnclosed(a, b Point) bool {
	return f.floor.IsEnclosed(a, b)
}

// The largest area spanned by any two vertices, inside the floor or not.
func (f *Floor) MaxRawArea() (area uint64, err error) {
	defer recoverInto(&err)
	return f.floor.MaxRawArea(), nil
}

// The largest area spanned by two vertices whose rectangle lies inside the
// floor.
func (f *Floor) MaxEnclosedArea() (area uint64, err error) {
	defer recoverInto(&err)
	return f.floor.MaxEnclosedArea(), nil
}

// Like MaxEnclosedArea, but also returns the rectangle. When several
// rectangles tie, the one whose corners come first in the loop wins.
func (f *Floor) BestRectangle() (rect Rect, area uint64, err error) {
	defer recoverInto(&err)
	rect, area = f.floor.BestRectangle()
	return rect, area, nil
}

// Render the floor to a PNG file, highlighting the best rectangle if there is
// one. scale is the size of a grid cell in pixels.
func (f *Floor) Draw(path string, scale float64) error {
	if scale <= 0 {
		return errors.Errorf("scale must be positive, got %v", scale)
	}
	rect, _, err := f.BestRectangle()
	switch {
	case errors.Is(err, ErrNoEnclosedRectangle):
		return internal.DrawPNG(path, f.floor.Loop(), nil, scale)
	case err != nil:
		return err
	}
	return internal.DrawPNG(path, f.floor.Loop(), &rect, scale)
}

// Display a PNG inline in an iTerm compatible terminal.
func ShowPNG(path string) {
	internal.CatPNG(path)
}

// Build a floor from points and report its largest raw rectangle area.
func MaxRawArea(points []Point) (uint64, error) {
	f, err := New(points)
	if err != nil {
		return 0, err
	}
	return f.MaxRawArea()
}

// Build a floor from points and report its largest enclosed rectangle area.
func MaxEnclosedArea(points []Point) (uint64, error) {
	f, err := New(points)
	if err != nil {
		return 0, err
	}
	return f.MaxEnclosedArea()
}

func recoverInto(err *error) {
	if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
		*err = recoveredErr
	}
}

package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFloor(t *testing.T) {
	f := NewFloor(notchedLoop())
	assert.Equal(t, notchedLoop(), f.Loop())
	assert.Equal(t, Axis{2, 7, 9, 11}, f.XAxis())
	assert.Equal(t, Axis{1, 3, 5, 7}, f.YAxis())
	assert.Equal(t, 6, f.Rows().Len())
	assert.Equal(t, 6, f.Columns().Len())
	assert.Equal(t, f.YAxis(), f.Rows().Axis())
	assert.Equal(t, f.XAxis(), f.Columns().Axis())
}

func TestNewFloor_CopiesInput(t *testing.T) {
	points := notchedLoop()
	f := NewFloor(points)
	points[0] = Point{100, 100}
	assert.Equal(t, Point{7, 1}, f.Loop()[0])
}

func TestNewFloor_TooShort(t *testing.T) {
	cases := map[string][]Point{
		"empty":         nil,
		"single point":  {{1, 1}},
		"segment":       {{1, 1}, {1, 5}},
		"three corners": {{1, 1}, {1, 5}, {4, 5}},
	}
	for name, points := range cases {
		t.Run(name, func(t *testing.T) {
			err := Catch(func() { NewFloor(points) })
			assert.ErrorIs(t, err, ErrMalformedPolygon)
		})
	}
}

func TestNewFloor_Rebuild(t *testing.T) {
	a := NewFloor(notchedLoop())
	b := NewFloor(notchedLoop())
	assert.Equal(t, a, b)
	assert.Equal(t, a.MaxRawArea(), b.MaxRawArea())
	assert.Equal(t, a.MaxEnclosedArea(), b.MaxEnclosedArea())
}

func TestFloor_MaxRawArea(t *testing.T) {
	assert.Equal(t, uint64(50), NewFloor(notchedLoop()).MaxRawArea())
	assert.Equal(t, uint64(121), NewFloor(staircase(1, 10)).MaxRawArea())
}

func TestFloor_MaxEnclosedArea(t *testing.T) {
	f := NewFloor(notchedLoop())
	assert.Equal(t, uint64(24), f.MaxEnclosedArea())

	rect, area := f.BestRectangle()
	assert.Equal(t, uint64(24), area)
	assert.Equal(t, Rect{Min: Point{2, 3}, Max: Point{9, 5}}, rect)

	// A square encloses its own bounding box
	assert.Equal(t, uint64(121), NewFloor(staircase(1, 10)).MaxEnclosedArea())
}

func TestFloor_IsEnclosed(t *testing.T) {
	f := NewFloor(notchedLoop())

	assert.True(t, f.IsEnclosed(Point{7, 1}, Point{9, 5}))
	assert.Equal(t, uint64(15), Area(RectFromCorners(Point{7, 1}, Point{9, 5})))
	assert.True(t, f.IsEnclosed(Point{9, 5}, Point{2, 3}))
	assert.True(t, f.IsEnclosed(Point{11, 1}, Point{9, 7}))

	// Bounding box pairs cut through the notch
	assert.False(t, f.IsEnclosed(Point{2, 5}, Point{11, 1}))
	assert.False(t, f.IsEnclosed(Point{2, 3}, Point{11, 7}))
	assert.False(t, f.IsEnclosed(Point{7, 1}, Point{11, 7}))

	// Coincident points are never a candidate
	assert.False(t, f.IsEnclosed(Point{7, 1}, Point{7, 1}))
	// Corners off the compressed axes can't be checked against whole gaps
	assert.False(t, f.IsEnclosed(Point{8, 2}, Point{9, 5}))
}

func TestFloor_IsEnclosedSymmetric(t *testing.T) {
	for _, loop := range []Loop{notchedLoop(), staircase(5, 3)} {
		f := NewFloor(loop)
		for _, a := range loop {
			for _, b := range loop {
				assert.Equal(t, f.IsEnclosed(a, b), f.IsEnclosed(b, a), "%v %v", a, b)
			}
		}
	}
}

// For rectangles with area on both axes, the index answer must agree with
// checking every cell.
func TestFloor_IsEnclosedMatchesCells(t *testing.T) {
	for name, loop := range map[string]Loop{
		"notched":   notchedLoop(),
		"staircase": staircase(4, 2),
	} {
		t.Run(name, func(t *testing.T) {
			f := NewFloor(loop)
			cells := insideCells(loop)
			for i, a := range loop {
				for _, b := range loop[i+1:] {
					r := RectFromCorners(a, b)
					if r.Width() == 0 || r.Height() == 0 {
						continue
					}
					expected := true
					for x := r.Min.X; x <= r.Max.X && expected; x++ {
						for y := r.Min.Y; y <= r.Max.Y; y++ {
							if _, ok := cells[Point{x, y}]; !ok {
								expected = false
								break
							}
						}
					}
					assert.Equal(t, expected, f.IsEnclosed(a, b), "rectangle %v", r)
				}
			}
		})
	}
}

func TestFloor_RawBoundsEnclosed(t *testing.T) {
	for _, loop := range []Loop{notchedLoop(), staircase(1, 4), staircase(6, 5)} {
		f := NewFloor(loop)
		assert.GreaterOrEqual(t, f.MaxRawArea(), f.MaxEnclosedArea())
	}
}

func TestFloor_NoEnclosedRectangle(t *testing.T) {
	f := NewFloor(notchedLoop())
	// Forget every crossing, so no gap has any inside at all
	f.rows = newCrossingIndex(f.ys)
	f.columns = newCrossingIndex(f.xs)

	err := Catch(func() { f.MaxEnclosedArea() })
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoEnclosedRectangle)
}

func TestFloor_Overflow(t *testing.T) {
	huge := ^uint64(0)
	f := NewFloor([]Point{{0, 0}, {huge, 0}, {huge, 1}, {0, 1}})
	err := Catch(func() { f.MaxRawArea() })
	assert.ErrorIs(t, err, ErrOverflow)
	err = Catch(func() { f.MaxEnclosedArea() })
	assert.ErrorIs(t, err, ErrOverflow)
}

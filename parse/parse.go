// Loaders turning polygon descriptions into loops of points for the enclosure
// package.
//
// Every loader accepts only non-negative integral coordinates, and returns the
// vertices in the order given. A ring that repeats its first point at the end
// (as WKT and GeoJSON require) has the repeat dropped, since a floor's loop is
// closed implicitly.
package parse

import (
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/osuushi/enclosure"
)

const (
	FormatLines   = "lines"
	FormatSVG     = "svg"
	FormatWKT     = "wkt"
	FormatGeoJSON = "geojson"
)

var Formats = []string{FormatLines, FormatSVG, FormatWKT, FormatGeoJSON}

// Read a polygon from r in the named format.
func Load(format string, r io.Reader) ([]enclosure.Point, error) {
	switch format {
	case FormatLines:
		return Lines(r)
	case FormatSVG:
		return SVG(r)
	case FormatWKT, FormatGeoJSON:
	default:
		return nil, errors.Errorf("unknown format %q", format)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	if format == FormatWKT {
		return WKT(string(data))
	}
	return GeoJSON(data)
}

// Float coordinates are only exact up to 2^53
const maxExactCoordinate = 1 << 53

func coordinate(v float64) (uint64, error) {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return 0, errors.Errorf("coordinate %v is not finite", v)
	case v < 0:
		return 0, errors.Errorf("coordinate %v is negative", v)
	case v != math.Trunc(v):
		return 0, errors.Errorf("coordinate %v is not an integer", v)
	case v > maxExactCoordinate:
		return 0, errors.Errorf("coordinate %v is too large to be exact", v)
	}
	return uint64(v), nil
}

func point(x, y float64) (enclosure.Point, error) {
	px, err := coordinate(x)
	if err != nil {
		return enclosure.Point{}, errors.Wrap(err, "x")
	}
	py, err := coordinate(y)
	if err != nil {
		return enclosure.Point{}, errors.Wrap(err, "y")
	}
	return enclosure.Point{X: px, Y: py}, nil
}

func dropClosingPoint(points []enclosure.Point) []enclosure.Point {
	if n := len(points); n > 1 && points[0] == points[n-1] {
		return points[:n-1]
	}
	return points
}

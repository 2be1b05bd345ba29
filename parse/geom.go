package parse

import (
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/osuushi/enclosure"
)

// Read a WKT POLYGON with a single ring.
func WKT(s string) ([]enclosure.Point, error) {
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "parsing WKT")
	}
	return fromGeometry(g)
}

// Read a GeoJSON Polygon geometry with a single ring.
func GeoJSON(data []byte) ([]enclosure.Point, error) {
	var g geom.T
	if err := geojson.Unmarshal(data, &g); err != nil {
		return nil, errors.Wrap(err, "parsing GeoJSON")
	}
	return fromGeometry(g)
}

func fromGeometry(g geom.T) ([]enclosure.Point, error) {
	polygon, ok := g.(*geom.Polygon)
	if !ok {
		return nil, errors.Errorf("expected a polygon, got %T", g)
	}
	// Floors have no holes
	if n := polygon.NumLinearRings(); n != 1 {
		return nil, errors.Errorf("expected a polygon with one ring, got %d", n)
	}

	coords := polygon.LinearRing(0).Coords()
	points := make([]enclosure.Point, 0, len(coords))
	for i, c := range coords {
		p, err := point(c.X(), c.Y())
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i)
		}
		points = append(points, p)
	}
	return dropClosingPoint(points), nil
}

package parse

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/enclosure"
)

// Read the single <polygon> element of an SVG document. This is not a general
// SVG reader: transforms are ignored, and paths, rects and other shapes are not
// considered.
func SVG(r io.Reader) ([]enclosure.Point, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing SVG")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygon found in SVG")
	}
	if len(polygons) > 1 {
		return nil, errors.Errorf("expected one polygon in SVG, found %d", len(polygons))
	}
	return svgPoints(polygons[0].Attributes["points"])
}

// The points attribute is a list of numbers separated by whitespace and/or
// commas, taken in x,y pairs.
func svgPoints(attribute string) ([]enclosure.Point, error) {
	fields := strings.FieldsFunc(attribute, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d) in polygon points", len(fields))
	}

	points := make([]enclosure.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		p, err := point(x, y)
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i/2)
		}
		points = append(points, p)
	}
	return dropClosingPoint(points), nil
}

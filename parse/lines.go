package parse

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/enclosure"
)

// Read one "x,y" vertex per line. Blank lines are skipped and whitespace
// around either number is ignored.
func Lines(r io.Reader) ([]enclosure.Point, error) {
	var points []enclosure.Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		p, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parseLine(line string) (enclosure.Point, error) {
	xString, yString, ok := strings.Cut(line, ",")
	if !ok {
		return enclosure.Point{}, errors.Errorf("expected x,y but got %q", line)
	}
	x, err := strconv.ParseUint(strings.TrimSpace(xString), 10, 64)
	if err != nil {
		return enclosure.Point{}, errors.Wrapf(err, "invalid x value %q", xString)
	}
	y, err := strconv.ParseUint(strings.TrimSpace(yString), 10, 64)
	if err != nil {
		return enclosure.Point{}, errors.Wrapf(err, "invalid y value %q", yString)
	}
	return enclosure.Point{X: x, Y: y}, nil
}

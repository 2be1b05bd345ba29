package parse

import (
	"embed"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osuushi/enclosure"
)

// SVG fixtures are available by name in the fixtures/ directory, sans
// extension.

//go:embed fixtures
var fixtures embed.FS

func openFixture(t *testing.T, name string) io.ReadCloser {
	t.Helper()
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "could not load fixture %q", name)
	t.Cleanup(func() { fixture.Close() })
	return fixture
}

var notched = []enclosure.Point{
	{X: 7, Y: 1},
	{X: 11, Y: 1},
	{X: 11, Y: 7},
	{X: 9, Y: 7},
	{X: 9, Y: 5},
	{X: 2, Y: 5},
	{X: 2, Y: 3},
	{X: 7, Y: 3},
}

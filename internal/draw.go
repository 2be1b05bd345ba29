package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the shape, in pixels
const drawPadding = 20

// Render the loop, filled, with rect (if not nil) highlighted on top, and save
// it as a PNG. Each grid cell is scale pixels wide, and cells are drawn whole,
// so a rectangle's area is exactly what it covers.
func DrawPNG(path string, loop Loop, rect *Rect, scale float64) error {
	if len(loop) == 0 {
		return errors.New("nothing to draw")
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range loop {
		minX = math.Min(minX, float64(p.X))
		minY = math.Min(minY, float64(p.Y))
		maxX = math.Max(maxX, float64(p.X))
		maxY = math.Max(maxY, float64(p.Y))
	}

	width := int(scale*(maxX-minX+1)) + drawPadding*2
	height := int(scale*(maxY-minY+1)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Grid y grows downward, which is already the image convention, so there
	// is no flip here.
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Vertices mark cells, so the outline runs through cell centers
	c.SetLineWidth(2 / scale)
	c.MoveTo(float64(loop[0].X)+0.5, float64(loop[0].Y)+0.5)
	for _, p := range loop[1:] {
		c.LineTo(float64(p.X)+0.5, float64(p.Y)+0.5)
	}
	c.ClosePath()
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	if rect != nil {
		c.DrawRectangle(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Width()+1), float64(rect.Height()+1))
		c.SetRGBA(1, 0.2, 0.2, 0.6)
		c.Fill()
	}

	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Print a PNG inline in the terminal. Only terminals speaking the iTerm image
// protocol will show anything.
func CatPNG(path string) {
	imgcat.CatFile(path, os.Stdout)
}

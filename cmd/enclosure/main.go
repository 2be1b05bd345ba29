package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/enclosure"
	"github.com/osuushi/enclosure/parse"
)

// Report the largest rectangles spanned by corners of a rectilinear polygon.
// Input defaults to stdin, one "x,y" vertex per line in loop order.
var (
	app = kingpin.New("enclosure", "Find the largest rectangles inside a rectilinear polygon.")

	format = app.Flag("format", "Input format.").Short('f').Default(parse.FormatLines).
		Envar("ENCLOSURE_FORMAT").Enum(parse.Formats...)
	workers = app.Flag("workers", "Goroutines used to scan vertex pairs.").Short('w').Default("1").
		Envar("ENCLOSURE_WORKERS").Int()
	drawPath = app.Flag("draw", "Write a PNG of the polygon and its best rectangle to this path.").
			Envar("ENCLOSURE_DRAW").String()
	scale = app.Flag("scale", "Pixels per grid cell when drawing.").Default("4").
		Envar("ENCLOSURE_SCALE").Float64()
	showImage = app.Flag("imgcat", "Print the drawing inline (iTerm only).").Bool()
	noColor   = app.Flag("no-color", "Disable colored output.").Envar("NO_COLOR").Bool()
	verbose   = app.Flag("verbose", "Log verbosity.").Short('v').Default("0").Int()

	input = app.Arg("input", "Polygon file. Reads stdin when omitted.").File()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	configureLogging(*verbose)
	defer glog.Flush()

	if err := run(os.Stdout); err != nil {
		glog.Exitf("enclosure: %v", err)
	}
}

// glog reads its settings from the standard flag set, which kingpin does not
// touch.
func configureLogging(verbosity int) {
	flag.Set("logtostderr", "true")
	flag.Set("v", strconv.Itoa(verbosity))
}

func run(out io.Writer) error {
	var in io.Reader = os.Stdin
	if *input != nil {
		defer (*input).Close()
		in = *input
	}

	points, err := parse.Load(*format, in)
	if err != nil {
		return err
	}
	glog.V(1).Infof("read %d vertices as %s", len(points), *format)

	floor, err := enclosure.New(points, enclosure.WithWorkers(*workers))
	if err != nil {
		return err
	}
	return report(out, floor, aurora.NewAurora(!*noColor))
}

func report(out io.Writer, floor *enclosure.Floor, au aurora.Aurora) error {
	raw, err := floor.MaxRawArea()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %v\n", au.Bold("max raw area:"), au.Cyan(raw))

	rect, area, err := floor.BestRectangle()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %v\n", au.Bold("max enclosed area:"), au.Green(area))
	fmt.Fprintf(out, "%s %v\n", au.Bold("best rectangle:"), rect)

	if *drawPath != "" {
		if err := floor.Draw(*drawPath, *scale); err != nil {
			return err
		}
		glog.V(1).Infof("wrote %s", *drawPath)
		if *showImage {
			enclosure.ShowPNG(*drawPath)
		}
	}
	return nil
}

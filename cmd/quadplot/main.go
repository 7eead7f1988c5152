package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"quadgrid/grid"
	"quadgrid/hal"
	"quadgrid/tasks/quadrant"

	"tinygo.org/x/tinyfont/proggy"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		if errors.Is(err, quadrant.ErrInvalidNumeric) {
			fatalf(2, "%s (%v)", quadrant.NumericErrorMessage, err)
		}
		fatalf(1, "quadplot: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("quadplot", flag.ContinueOnError)
	var (
		xText   = fs.String("x", "", "X coordinate.")
		yText   = fs.String("y", "", "Y coordinate.")
		outPath = fs.String("o", "", "Write the grid as PNG to this file.")
		size    = fs.Int("size", hal.SurfaceSize, "Side of the square surface in pixels.")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *size < 20 || *size > 4096 {
		return fmt.Errorf("invalid size %d (want 20..4096)", *size)
	}

	x, y, err := quadrant.ParsePoint(*xText, *yText)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, quadrant.ResultText(grid.Classify(x, y).String()))

	if *outPath == "" {
		return nil
	}
	fb := hal.NewFramebuffer(*size, *size)
	d := grid.NewFramebufferDisplay(fb, 0, 0, *size, *size)
	grid.NewRenderer(grid.NewRasterCanvas(d, &proggy.TinySZ8pt7b)).DrawPoint(x, y)
	return hal.WritePNGFile(*outPath, fb)
}

func fatalf(code int, format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}

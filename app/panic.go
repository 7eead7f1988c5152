package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"

	"quadgrid/grid"
	"quadgrid/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// showPanic logs the panic with its stack, paints it over the whole
// framebuffer and returns it as an error so the runner stops.
func showPanic(h hal.HAL, v any) error {
	stack := debug.Stack()
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("quadgrid panic: %v", v))
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}

	err := fmt.Errorf("panic: %v", v)

	disp := h.Display()
	if disp == nil {
		return err
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return err
	}

	fb.ClearRGB(255, 255, 255)

	font := &proggy.TinySZ8pt7b
	lineH := int16(font.GetYAdvance())
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 || lineH <= 0 {
		_ = fb.Present()
		return err
	}

	d := grid.NewFramebufferDisplay(fb, 0, 0, fb.Width(), fb.Height())
	lines := []string{"quadgrid panic:", fmt.Sprintf("%v", v), "stack:"}
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	}

	fg := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	cols := fb.Width() / int(fontWidth)
	y := lineH
	for _, line := range lines {
		if int(y) > fb.Height() {
			break
		}
		rs := []rune(line)
		if len(rs) > cols {
			rs = rs[:cols]
		}
		tinyfont.WriteLine(d, font, 2, y, string(rs), fg)
		y += lineH
	}
	_ = fb.Present()
	return err
}

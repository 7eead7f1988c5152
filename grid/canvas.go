package grid

import "image/color"

var (
	ColorBackground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorAxis       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	ColorGridline   = color.RGBA{R: 0xD3, G: 0xD3, B: 0xD3, A: 0xFF}
	ColorLabel      = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	ColorPoint      = color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
)

// Canvas is a drawing surface with its origin in the top-left corner and y
// growing downwards.
type Canvas interface {
	Size() (w, h int16)
	Clear(c color.RGBA)
	StrokeLine(x0, y0, x1, y1 float64, c color.RGBA)
	FillCircle(cx, cy, r float64, c color.RGBA)
	// FillText draws s starting at (x, y), where y is the vertical middle of the
	// text row. The text is rotated clockwise by angle degrees around (x, y).
	FillText(x, y, angle float64, s string, c color.RGBA)
}

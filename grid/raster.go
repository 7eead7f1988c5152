package grid

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// RasterCanvas draws onto any TinyGo display with integer pixel coordinates.
type RasterCanvas struct {
	d    drivers.Displayer
	font tinyfont.Fonter

	capHeight int16
}

// NewRasterCanvas returns a canvas drawing onto d, writing text with font.
func NewRasterCanvas(d drivers.Displayer, font tinyfont.Fonter) *RasterCanvas {
	c := &RasterCanvas{d: d, font: font}
	if font != nil {
		info := font.GetGlyph('0').Info()
		c.capHeight = -int16(info.YOffset)
		if c.capHeight <= 0 {
			c.capHeight = int16(info.Height)
		}
	}
	return c
}

func (c *RasterCanvas) Size() (w, h int16) { return c.d.Size() }

func (c *RasterCanvas) Clear(col color.RGBA) {
	w, h := c.d.Size()
	if f, ok := c.d.(rectFiller); ok {
		_ = f.FillRectangle(0, 0, w, h, col)
		return
	}
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			c.d.SetPixel(x, y, col)
		}
	}
}

func (c *RasterCanvas) StrokeLine(x0, y0, x1, y1 float64, col color.RGBA) {
	drawLine(c.d, roundInt(x0), roundInt(y0), roundInt(x1), roundInt(y1), col)
}

func (c *RasterCanvas) FillCircle(cx, cy, r float64, col color.RGBA) {
	fillCircle(c.d, roundInt(cx), roundInt(cy), roundInt(r), col)
}

func (c *RasterCanvas) FillText(x, y, angle float64, s string, col color.RGBA) {
	if c.font == nil || s == "" {
		return
	}
	baseline := y + float64(c.capHeight)/2
	var d drivers.Displayer = c.d
	if angle != 0 {
		d = newRotatedDisplay(c.d, x, y, angle)
	}
	tinyfont.WriteLine(d, c.font, int16(roundInt(x)), int16(roundInt(baseline)), s, col)
}

func roundInt(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int(math.Round(v))
}

func drawLine(d drivers.Displayer, x0, y0, x1, y1 int, col color.RGBA) {
	if f, ok := d.(rectFiller); ok {
		switch {
		case y0 == y1:
			if x1 < x0 {
				x0, x1 = x1, x0
			}
			_ = f.FillRectangle(int16(x0), int16(y0), int16(x1-x0+1), 1, col)
			return
		case x0 == x1:
			if y1 < y0 {
				y0, y1 = y1, y0
			}
			_ = f.FillRectangle(int16(x0), int16(y0), 1, int16(y1-y0+1), col)
			return
		}
	}

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		d.SetPixel(int16(x0), int16(y0), col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func fillCircle(d drivers.Displayer, cx, cy, r int, col color.RGBA) {
	if r < 0 {
		return
	}
	for y := -r; y <= r; y++ {
		dx := int(math.Sqrt(float64(r*r - y*y)))
		drawLine(d, cx-dx, cy+y, cx+dx, cy+y, col)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// rotatedDisplay rotates everything drawn through it around (ox, oy).
type rotatedDisplay struct {
	d        drivers.Displayer
	ox, oy   float64
	sin, cos float64
	// thicken stamps a second pixel to close the holes a non-right-angle
	// rotation leaves in a bitmap glyph.
	thicken bool
}

func newRotatedDisplay(d drivers.Displayer, ox, oy, angle float64) *rotatedDisplay {
	rad := angle * math.Pi / 180
	return &rotatedDisplay{
		d:       d,
		ox:      math.Round(ox),
		oy:      math.Round(oy),
		sin:     math.Sin(rad),
		cos:     math.Cos(rad),
		thicken: math.Mod(angle, 90) != 0,
	}
}

func (r *rotatedDisplay) Size() (x, y int16) { return r.d.Size() }

func (r *rotatedDisplay) SetPixel(x, y int16, c color.RGBA) {
	dx := float64(x) - r.ox
	dy := float64(y) - r.oy
	px := roundInt(r.ox + dx*r.cos - dy*r.sin)
	py := roundInt(r.oy + dx*r.sin + dy*r.cos)
	r.d.SetPixel(int16(px), int16(py), c)
	if r.thicken {
		r.d.SetPixel(int16(px+1), int16(py), c)
	}
}

func (r *rotatedDisplay) Display() error { return r.d.Display() }

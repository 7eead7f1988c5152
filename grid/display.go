package grid

import (
	"image/color"

	"quadgrid/hal"

	"tinygo.org/x/drivers"
)

// FramebufferDisplay exposes a rectangle of an RGB565 framebuffer as a TinyGo
// display. Coordinates are local to the rectangle; pixels outside it are dropped.
type FramebufferDisplay struct {
	fb hal.Framebuffer

	x0 int
	y0 int
	w  int
	h  int
}

var _ drivers.Displayer = (*FramebufferDisplay)(nil)

// NewFramebufferDisplay returns a display over the w x h rectangle at (x, y) of fb,
// clipped to the framebuffer bounds.
func NewFramebufferDisplay(fb hal.Framebuffer, x, y, w, h int) *FramebufferDisplay {
	if fb != nil {
		if x+w > fb.Width() {
			w = fb.Width() - x
		}
		if y+h > fb.Height() {
			h = fb.Height() - y
		}
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &FramebufferDisplay{fb: fb, x0: x, y0: y, w: w, h: h}
}

func (d *FramebufferDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.w), int16(d.h)
}

func (d *FramebufferDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.w || iy < 0 || iy >= d.h {
		return
	}
	buf := d.fb.Buffer()
	off := (d.y0+iy)*d.fb.StrideBytes() + (d.x0+ix)*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	pixel := hal.RGB565(c.R, c.G, c.B)
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *FramebufferDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *FramebufferDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return nil
	}

	x0 := clampInt(int(x), 0, d.w)
	y0 := clampInt(int(y), 0, d.h)
	x1 := clampInt(int(x)+int(width), 0, d.w)
	y1 := clampInt(int(y)+int(height), 0, d.h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := (d.y0 + py) * stride
		for px := x0; px < x1; px++ {
			off := row + (d.x0+px)*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

func (d *FramebufferDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

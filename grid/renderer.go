package grid

import "fmt"

const (
	// PointRadius is the radius of the plotted point marker in pixels.
	PointRadius = 5.0
	// XLabelAngle is the clockwise rotation of horizontal-axis tick labels.
	XLabelAngle = 45.0

	labelGap = 4.0
)

// Renderer draws the coordinate grid and a single point onto a Canvas.
//
// Every Draw call repaints the whole surface; nothing from a previous point
// survives into the next frame.
type Renderer struct {
	c Canvas

	width  float64
	height float64
	offX   float64
	offY   float64
}

// NewRenderer returns a renderer owning c for its lifetime.
func NewRenderer(c Canvas) *Renderer {
	w, h := c.Size()
	return &Renderer{
		c:      c,
		width:  float64(w),
		height: float64(h),
		offX:   float64(w) / 2,
		offY:   float64(h) / 2,
	}
}

// Origin is the pixel the Cartesian origin maps to.
func (r *Renderer) Origin() (px, py float64) { return r.offX, r.offY }

// Project maps (x, y) to surface pixels at the scale that (x, y) itself selects.
func (r *Renderer) Project(x, y float64) (px, py float64) {
	return r.project(x, y, ScaleFactor(x, y))
}

func (r *Renderer) project(x, y, s float64) (px, py float64) {
	return r.offX + x/s*r.offX, r.offY - y/s*r.offY
}

// DrawAxes clears the surface and draws both axes with their secondary gridlines.
func (r *Renderer) DrawAxes() {
	r.c.Clear(ColorBackground)

	stepX := r.offX / Divisions
	stepY := r.offY / Divisions
	for i := 1; i <= Divisions; i++ {
		dx := float64(i) * stepX
		r.c.StrokeLine(r.offX+dx, 0, r.offX+dx, r.height, ColorGridline)
		r.c.StrokeLine(r.offX-dx, 0, r.offX-dx, r.height, ColorGridline)

		dy := float64(i) * stepY
		r.c.StrokeLine(0, r.offY+dy, r.width, r.offY+dy, ColorGridline)
		r.c.StrokeLine(0, r.offY-dy, r.width, r.offY-dy, ColorGridline)
	}

	r.c.StrokeLine(0, r.offY, r.width, r.offY, ColorAxis)
	r.c.StrokeLine(r.offX, 0, r.offX, r.height, ColorAxis)
}

// DrawLabels writes the tick values for the scale (x, y) selects.
func (r *Renderer) DrawLabels(x, y float64) {
	r.drawLabels(ScaleFactor(x, y))
}

func (r *Renderer) drawLabels(s float64) {
	step := TickStep(s)
	for i := 1; i <= Divisions; i++ {
		v := float64(i) * step
		dx := float64(i) * r.offX / Divisions
		dy := float64(i) * r.offY / Divisions

		r.c.FillText(r.offX+dx+2, r.offY+labelGap+2, XLabelAngle, FormatTick(v), ColorLabel)
		r.c.FillText(r.offX-dx+2, r.offY+labelGap+2, XLabelAngle, FormatTick(-v), ColorLabel)

		r.c.FillText(r.offX+labelGap, r.offY+dy, 0, FormatTick(-v), ColorLabel)
		r.c.FillText(r.offX+labelGap, r.offY-dy, 0, FormatTick(v), ColorLabel)
	}
}

// DrawGrid draws the empty coordinate system at the base scale.
func (r *Renderer) DrawGrid() {
	r.DrawAxes()
	r.drawLabels(BaseUnit)
}

// DrawPoint repaints the grid at the scale (x, y) selects and marks the point.
func (r *Renderer) DrawPoint(x, y float64) {
	s := ScaleFactor(x, y)

	r.DrawAxes()
	r.drawLabels(s)

	px, py := r.project(x, y, s)
	r.c.FillCircle(px, py, PointRadius, ColorPoint)
}

// FormatTick renders a tick value with one decimal place.
func FormatTick(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

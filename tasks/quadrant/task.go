// Package quadrant is the interactive form: two coordinate fields, a calculate
// trigger, the classification line and the plotted grid underneath.
package quadrant

import (
	"errors"
	"fmt"
	"strconv"

	"quadgrid/grid"
	"quadgrid/hal"
	"quadgrid/metrics"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	focusX = iota
	focusY
	focusButton
	focusCount
)

const caretBlinkTicks = 500

// Config carries the optional collaborators of the task.
type Config struct {
	// Logger receives one line per calculation; nil disables logging.
	Logger hal.Logger
	// Audio plays the error tone; nil or a nil PWM output keeps the task silent.
	Audio   hal.Audio
	Metrics *metrics.Metrics
	// FormHeight is the height of the form strip above the grid surface.
	FormHeight int
}

// Task owns the framebuffer: the form strip on top and the grid surface below it.
type Task struct {
	disp hal.Display
	in   hal.Input
	tm   hal.Time
	cfg  Config

	fb      hal.Framebuffer
	events  <-chan hal.KeyEvent
	ticks   <-chan uint64
	form    *grid.FramebufferDisplay
	surface *grid.RasterCanvas
	r       *grid.Renderer

	font       tinyfont.Fonter
	fontWidth  int16
	fontHeight int16
	fontOffset int16

	fields [2]field
	focus  int
	result string
	modal  string

	plotted  bool
	lastX    float64
	lastY    float64
	now      uint64
	caretOn  bool
	caretAt  uint64
	started  bool
	dirty    bool
	tone     *tone
	toneDead bool
}

// New builds the task; nothing is drawn until the first Step.
func New(disp hal.Display, in hal.Input, tm hal.Time, cfg Config) *Task {
	if cfg.FormHeight <= 0 {
		cfg.FormHeight = hal.FormHeight
	}
	t := &Task{disp: disp, in: in, tm: tm, cfg: cfg, caretOn: true}
	t.fields[focusX].label = "X:"
	t.fields[focusY].label = "Y:"
	return t
}

func (t *Task) init() bool {
	if t.started {
		return t.fb != nil
	}
	t.started = true

	if t.disp != nil {
		t.fb = t.disp.Framebuffer()
	}
	if t.fb == nil || t.fb.Format() != hal.PixelFormatRGB565 {
		t.fb = nil
		return false
	}
	if t.in != nil {
		if kbd := t.in.Keyboard(); kbd != nil {
			t.events = kbd.Events()
		}
	}
	if t.tm != nil {
		t.ticks = t.tm.Ticks()
	}
	t.initFont()

	w := t.fb.Width()
	t.form = grid.NewFramebufferDisplay(t.fb, 0, 0, w, t.cfg.FormHeight)
	surface := grid.NewFramebufferDisplay(t.fb, 0, t.cfg.FormHeight, w, t.fb.Height()-t.cfg.FormHeight)
	t.surface = grid.NewRasterCanvas(surface, t.font)
	t.r = grid.NewRenderer(t.surface)

	t.r.DrawGrid()
	t.renderForm()
	_ = t.fb.Present()
	return true
}

func (t *Task) initFont() {
	t.font = &proggy.TinySZ8pt7b
	info := t.font.GetGlyph('0').Info()
	t.fontOffset = -int16(info.YOffset)
	t.fontHeight = int16(t.font.GetYAdvance())
	_, outboxWidth := tinyfont.LineWidth(t.font, "0")
	t.fontWidth = int16(outboxWidth)
	if t.fontWidth <= 0 {
		t.fontWidth = 6
	}
}

// Step drains pending ticks and key events and redraws what changed. It never
// blocks; runners call it once per frame.
func (t *Task) Step() error {
	if !t.init() {
		return nil
	}

	for drained := false; !drained; {
		select {
		case seq := <-t.ticks:
			t.advance(seq)
		default:
			drained = true
		}
	}

	for drained := false; !drained; {
		select {
		case ev := <-t.events:
			t.handleKey(ev)
		default:
			drained = true
		}
	}

	t.feedTone()

	if t.dirty {
		t.dirty = false
		t.renderForm()
		_ = t.fb.Present()
	}
	return nil
}

func (t *Task) advance(seq uint64) {
	t.now = seq
	if t.now-t.caretAt >= caretBlinkTicks {
		t.caretAt = t.now
		t.caretOn = !t.caretOn
		if t.modal == "" && t.focus != focusButton {
			t.dirty = true
		}
	}
}

func (t *Task) handleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}

	if t.modal != "" {
		switch ev.Code {
		case hal.KeyEnter, hal.KeyEscape:
			t.modal = ""
			t.dirty = true
		}
		return
	}

	f := t.focusedField()
	changed := false
	switch ev.Code {
	case hal.KeyEnter, hal.KeyF1:
		t.Calculate()
		return
	case hal.KeyEscape:
		t.Reset()
		return
	case hal.KeyTab, hal.KeyDown:
		t.focus = (t.focus + 1) % focusCount
		changed = true
	case hal.KeyUp:
		t.focus = (t.focus + focusCount - 1) % focusCount
		changed = true
	case hal.KeyLeft:
		changed = f != nil && f.move(-1)
	case hal.KeyRight:
		changed = f != nil && f.move(1)
	case hal.KeyHome:
		changed = f != nil && f.home()
	case hal.KeyEnd:
		changed = f != nil && f.end()
	case hal.KeyBackspace:
		changed = f != nil && f.backspace()
	case hal.KeyDelete:
		changed = f != nil && f.deleteForward()
	case hal.KeyUnknown:
		switch {
		case ev.Rune == '\t':
			t.focus = (t.focus + 1) % focusCount
			changed = true
		case ev.Rune == '\r' || ev.Rune == '\n':
			t.Calculate()
			return
		case ev.Rune != 0 && f != nil:
			changed = f.insert(ev.Rune)
		}
	}
	if changed {
		t.caretOn = true
		t.caretAt = t.now
		t.dirty = true
	}
}

func (t *Task) focusedField() *field {
	if t.focus == focusX || t.focus == focusY {
		return &t.fields[t.focus]
	}
	return nil
}

// SetFields replaces the text of both coordinate fields.
func (t *Task) SetFields(x, y string) {
	t.fields[focusX].set(x)
	t.fields[focusY].set(y)
	t.dirty = true
}

// Fields returns the current text of both coordinate fields.
func (t *Task) Fields() (x, y string) {
	return t.fields[focusX].String(), t.fields[focusY].String()
}

// Result is the classification line, empty until a point is calculated.
func (t *Task) Result() string { return t.result }

// Modal is the text of the open error notification, or "".
func (t *Task) Modal() string { return t.modal }

// Calculate classifies and plots the point in the fields. Invalid input opens
// the error notification and leaves the grid untouched.
func (t *Task) Calculate() {
	if !t.init() {
		return
	}
	t.dirty = true

	xText, yText := t.Fields()
	x, y, err := ParsePoint(xText, yText)
	if err != nil {
		t.reject(err)
		return
	}

	region := grid.Classify(x, y)
	scale := grid.ScaleFactor(x, y)
	t.result = ResultText(region.String())
	t.r.DrawPoint(x, y)
	t.plotted, t.lastX, t.lastY = true, x, y

	t.logf("quadrant: point (%s, %s) is in %s, scale %s", fmtNum(x), fmtNum(y), region, fmtNum(scale))
	t.cfg.Metrics.Rendered(region.String(), scale)
}

func (t *Task) reject(err error) {
	t.modal = NumericErrorMessage
	t.logf("quadrant: rejected input: %v", err)
	t.cfg.Metrics.Rejected()
	if errors.Is(err, ErrInvalidNumeric) {
		t.startTone()
	}
}

// Reset clears both fields and the result and shows the bare grid.
func (t *Task) Reset() {
	if !t.init() {
		return
	}
	t.fields[focusX].set("")
	t.fields[focusY].set("")
	t.focus = focusX
	t.result = ""
	t.plotted = false
	t.r.DrawGrid()
	t.dirty = true
}

// LastPoint reports the point currently plotted, if any.
func (t *Task) LastPoint() (x, y float64, ok bool) {
	return t.lastX, t.lastY, t.plotted
}

func (t *Task) logf(format string, args ...any) {
	if t.cfg.Logger == nil {
		return
	}
	t.cfg.Logger.WriteLineString(fmt.Sprintf(format, args...))
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

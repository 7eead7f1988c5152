package quadrant

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

var (
	colorFormBG     = color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
	colorText       = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF}
	colorDim        = color.RGBA{R: 0x70, G: 0x70, B: 0x70, A: 0xFF}
	colorFieldBG    = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorBorder     = color.RGBA{R: 0xA0, G: 0xA0, B: 0xA0, A: 0xFF}
	colorFocus      = color.RGBA{R: 0x30, G: 0x70, B: 0xD0, A: 0xFF}
	colorButtonBG   = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	colorModalBG    = color.RGBA{R: 0xFF, G: 0xE4, B: 0xE1, A: 0xFF}
	colorModalEdge  = color.RGBA{R: 0xC0, G: 0x20, B: 0x20, A: 0xFF}
	colorModalTitle = color.RGBA{R: 0xA0, G: 0x10, B: 0x10, A: 0xFF}
)

const (
	rowH      = 16
	fieldW    = 150
	labelW    = 20
	buttonW   = 120
	padX      = 8
	findLabel = "Find Quadrant"
)

func (t *Task) renderForm() {
	if t.form == nil {
		return
	}
	w, h := t.form.Size()
	_ = t.form.FillRectangle(0, 0, w, h, colorFormBG)

	if t.modal != "" {
		t.renderModal(w, h)
		return
	}

	t.renderField(padX, 4, &t.fields[focusX], t.focus == focusX)
	t.renderField(padX+labelW+fieldW+24, 4, &t.fields[focusY], t.focus == focusY)

	bx, by := int16(padX), int16(4+rowH+4)
	edge := colorBorder
	if t.focus == focusButton {
		edge = colorFocus
	}
	t.box(bx, by, buttonW, rowH, colorButtonBG, edge)
	tw := t.textWidth(findLabel)
	t.text(bx+(buttonW-tw)/2, by, findLabel, colorText)
	t.text(bx+buttonW+padX, by, "Enter: find  Tab: next  Esc: clear", colorDim)

	if t.result != "" {
		t.text(padX, by+rowH+4, t.result, colorText)
	}
}

func (t *Task) renderField(x, y int16, f *field, focused bool) {
	t.text(x, y, f.label, colorText)

	bx := x + labelW
	edge := colorBorder
	if focused {
		edge = colorFocus
	}
	t.box(bx, y, fieldW, rowH, colorFieldBG, edge)

	cols := int((fieldW - 6) / t.fontWidth)
	start, vis := f.window(cols)
	t.text(bx+3, y, string(vis), colorText)

	if focused && t.caretOn {
		cx := bx + 3 + int16(f.cursor-start)*t.fontWidth
		_ = t.form.FillRectangle(cx, y+2, 1, rowH-4, colorText)
	}
}

func (t *Task) renderModal(w, h int16) {
	t.box(2, 2, w-4, h-4, colorModalBG, colorModalEdge)
	t.text(padX, 5, "Error", colorModalTitle)
	t.text(padX, 5+rowH, t.modal, colorText)
	t.text(padX, 5+2*rowH, "Press Enter to continue", colorDim)
}

func (t *Task) box(x, y, w, h int16, bg, edge color.RGBA) {
	_ = t.form.FillRectangle(x, y, w, h, bg)
	_ = t.form.FillRectangle(x, y, w, 1, edge)
	_ = t.form.FillRectangle(x, y+h-1, w, 1, edge)
	_ = t.form.FillRectangle(x, y, 1, h, edge)
	_ = t.form.FillRectangle(x+w-1, y, 1, h, edge)
}

// text writes s in a rowH-tall row whose top edge is y.
func (t *Task) text(x, y int16, s string, c color.RGBA) {
	if s == "" {
		return
	}
	baseline := y + (rowH+t.fontOffset)/2
	tinyfont.WriteLine(t.form, t.font, x, baseline, s, c)
}

func (t *Task) textWidth(s string) int16 {
	_, outbox := tinyfont.LineWidth(t.font, s)
	return int16(outbox)
}

package quadrant

import "unicode"

const maxFieldRunes = 24

// field is a single-line text input.
type field struct {
	label  string
	text   []rune
	cursor int
}

func (f *field) String() string { return string(f.text) }

func (f *field) set(s string) {
	f.text = []rune(s)
	if len(f.text) > maxFieldRunes {
		f.text = f.text[:maxFieldRunes]
	}
	f.cursor = len(f.text)
}

func (f *field) insert(r rune) bool {
	if !unicode.IsPrint(r) || len(f.text) >= maxFieldRunes {
		return false
	}
	f.text = append(f.text, 0)
	copy(f.text[f.cursor+1:], f.text[f.cursor:])
	f.text[f.cursor] = r
	f.cursor++
	return true
}

func (f *field) backspace() bool {
	if f.cursor == 0 {
		return false
	}
	f.text = append(f.text[:f.cursor-1], f.text[f.cursor:]...)
	f.cursor--
	return true
}

func (f *field) deleteForward() bool {
	if f.cursor >= len(f.text) {
		return false
	}
	f.text = append(f.text[:f.cursor], f.text[f.cursor+1:]...)
	return true
}

func (f *field) move(delta int) bool {
	c := f.cursor + delta
	if c < 0 {
		c = 0
	}
	if c > len(f.text) {
		c = len(f.text)
	}
	if c == f.cursor {
		return false
	}
	f.cursor = c
	return true
}

func (f *field) home() bool { return f.move(-len(f.text)) }
func (f *field) end() bool  { return f.move(len(f.text)) }

// window returns the visible slice for a box cols wide that keeps the cursor in view.
func (f *field) window(cols int) (start int, vis []rune) {
	if cols <= 0 {
		return 0, nil
	}
	if f.cursor > cols-1 {
		start = f.cursor - (cols - 1)
	}
	end := start + cols
	if end > len(f.text) {
		end = len(f.text)
	}
	return start, f.text[start:end]
}

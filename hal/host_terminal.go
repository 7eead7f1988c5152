package hal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// RunTerminal shows the framebuffer in the current terminal using half-block
// cells and forwards tcell key events as keyboard input. It blocks until ctx is
// done or the user presses Ctrl+C / Ctrl+Q.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: init: %w", err)
	}
	defer screen.Fini()

	logs := newRingLog(32)
	h := newHost(logs, nil)
	step := newApp(h)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	view := &termView{screen: screen, fb: h.fb, logs: logs}

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyCtrlQ {
					return nil
				}
				if ke, ok := keyEventFromTcell(ev); ok {
					h.kbd.push(ke)
				}
			case *tcell.EventResize:
				screen.Sync()
				view.shown = 0
			}
		case <-t.C:
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			view.draw()
		}
	}
}

func keyEventFromTcell(ev *tcell.EventKey) (KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return KeyEvent{Press: true, Rune: ev.Rune()}, true
	case tcell.KeyUp:
		return KeyEvent{Code: KeyUp, Press: true}, true
	case tcell.KeyDown:
		return KeyEvent{Code: KeyDown, Press: true}, true
	case tcell.KeyLeft:
		return KeyEvent{Code: KeyLeft, Press: true}, true
	case tcell.KeyRight:
		return KeyEvent{Code: KeyRight, Press: true}, true
	case tcell.KeyEnter:
		return KeyEvent{Code: KeyEnter, Press: true}, true
	case tcell.KeyEscape:
		return KeyEvent{Code: KeyEscape, Press: true}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent{Code: KeyBackspace, Press: true}, true
	case tcell.KeyTab, tcell.KeyBacktab:
		return KeyEvent{Code: KeyTab, Press: true}, true
	case tcell.KeyDelete:
		return KeyEvent{Code: KeyDelete, Press: true}, true
	case tcell.KeyHome:
		return KeyEvent{Code: KeyHome, Press: true}, true
	case tcell.KeyEnd:
		return KeyEvent{Code: KeyEnd, Press: true}, true
	case tcell.KeyF1:
		return KeyEvent{Code: KeyF1, Press: true}, true
	}
	return KeyEvent{}, false
}

type termView struct {
	screen  tcell.Screen
	fb      *hostFramebuffer
	logs    *ringLog
	scratch []byte
	shown   uint64
}

// draw packs two framebuffer rows into each terminal row ('▀' with fg = top,
// bg = bottom). The framebuffer is shrunk to fit; each cell half keeps the
// darkest source pixel so one-pixel grid lines and text survive the shrink.
func (v *termView) draw() {
	n := v.fb.presentCount()
	if n == v.shown {
		return
	}
	v.shown = n

	if len(v.scratch) != len(v.fb.buf) {
		v.scratch = make([]byte, len(v.fb.buf))
	}
	v.fb.snapshotRGB565(v.scratch)

	cols, rows := v.screen.Size()
	rows-- // status line
	if cols <= 0 || rows <= 0 {
		return
	}
	step := shrinkFactor(v.fb.width, v.fb.height, cols, rows*2)
	outW := (v.fb.width + step - 1) / step
	outH := (v.fb.height + step - 1) / step

	v.screen.Clear()
	for cy := 0; cy*2 < outH && cy < rows; cy++ {
		for cx := 0; cx < outW && cx < cols; cx++ {
			tr, tg, tb := v.sample(cx*step, cy*2*step, step)
			br, bg, bb := v.sample(cx*step, (cy*2+1)*step, step)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(tr), int32(tg), int32(tb))).
				Background(tcell.NewRGBColor(int32(br), int32(bg), int32(bb)))
			v.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}

	status := v.logs.last()
	for i, r := range []rune(status) {
		if i >= cols {
			break
		}
		v.screen.SetContent(i, rows, r, nil, tcell.StyleDefault)
	}
	v.screen.Show()
}

func (v *termView) sample(x0, y0, step int) (r, g, b uint8) {
	r, g, b = 0xFF, 0xFF, 0xFF
	best := -1
	for y := y0; y < y0+step && y < v.fb.height; y++ {
		for x := x0; x < x0+step && x < v.fb.width; x++ {
			off := y*v.fb.stride + x*2
			pr, pg, pb := rgb888From565(uint16(v.scratch[off]) | uint16(v.scratch[off+1])<<8)
			luma := 299*int(pr) + 587*int(pg) + 114*int(pb)
			if best < 0 || luma < best {
				best = luma
				r, g, b = pr, pg, pb
			}
		}
	}
	return r, g, b
}

// shrinkFactor returns the smallest integer divisor that fits w x h into maxW x maxH.
func shrinkFactor(w, h, maxW, maxH int) int {
	if maxW <= 0 || maxH <= 0 {
		return 1
	}
	s := 1
	for (w+s-1)/s > maxW || (h+s-1)/s > maxH {
		s++
	}
	return s
}

package hal

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRGB565RoundTrip(t *testing.T) {
	for _, c := range [][3]uint8{{0, 0, 0}, {0xFF, 0xFF, 0xFF}, {0xFF, 0, 0}, {0xD3, 0xD3, 0xD3}} {
		r, g, b := rgb888From565(RGB565(c[0], c[1], c[2]))
		if absDiff(r, c[0]) > 8 || absDiff(g, c[1]) > 4 || absDiff(b, c[2]) > 8 {
			t.Fatalf("round trip %v -> (%d,%d,%d)", c, r, g, b)
		}
	}
}

func TestPixelAtOutOfRange(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.ClearRGB(0xFF, 0xFF, 0xFF)
	if r, g, b := PixelAt(fb, 1, 1); r != 0xFF || g != 0xFF || b != 0xFF {
		t.Fatalf("PixelAt(1,1) = %d,%d,%d", r, g, b)
	}
	if r, g, b := PixelAt(fb, 4, 0); r != 0 || g != 0 || b != 0 {
		t.Fatalf("out of range read = %d,%d,%d, want black", r, g, b)
	}
}

func TestWritePNG(t *testing.T) {
	fb := NewFramebuffer(8, 6)
	fb.ClearRGB(0xFF, 0, 0)

	var buf bytes.Buffer
	if err := WritePNG(&buf, fb); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Fatalf("bounds = %v", b)
	}
	r, g, b, a := img.At(3, 3).RGBA()
	if r>>8 != 0xFF || g != 0 || b != 0 || a>>8 != 0xFF {
		t.Fatalf("pixel = %x %x %x %x", r, g, b, a)
	}
}

func TestShrinkFactor(t *testing.T) {
	cases := []struct {
		w, h, maxW, maxH, want int
	}{
		{400, 464, 400, 464, 1},
		{400, 464, 200, 232, 2},
		{400, 464, 160, 96, 5},
		{400, 464, 0, 10, 1},
	}
	for _, tc := range cases {
		if got := shrinkFactor(tc.w, tc.h, tc.maxW, tc.maxH); got != tc.want {
			t.Fatalf("shrinkFactor(%d,%d,%d,%d) = %d, want %d", tc.w, tc.h, tc.maxW, tc.maxH, got, tc.want)
		}
	}
}

func TestRingLogKeepsLastLines(t *testing.T) {
	r := newRingLog(2)
	if r.last() != "" {
		t.Fatalf("empty ring last = %q", r.last())
	}
	for _, s := range []string{"a\n", "b\n", "c\r\n"} {
		_, _ = r.Write([]byte(s))
	}
	if len(r.lines) != 2 || r.last() != "c" {
		t.Fatalf("lines = %q", r.lines)
	}
}

func TestKeyboardPushDropsWhenFull(t *testing.T) {
	k := newHostKeyboard()
	for i := 0; i < cap(k.ch)+10; i++ {
		k.push(KeyEvent{Code: KeyEnter, Press: true})
	}
	if len(k.ch) != cap(k.ch) {
		t.Fatalf("queued %d, want %d", len(k.ch), cap(k.ch))
	}
}

func TestHostTimeFirstStepEmits(t *testing.T) {
	tm := newHostTime()
	tm.step(3)
	if len(tm.ch) != 3 {
		t.Fatalf("first step emitted %d ticks, want 3", len(tm.ch))
	}
	if v := <-tm.ch; v != 1 {
		t.Fatalf("first tick = %d, want 1", v)
	}
}

func TestRunHeadlessStopsAfterTicksAndSnapshots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	h := newHost(&bytes.Buffer{}, nil)

	steps := 0
	newApp := func(h HAL) func() error {
		fb := h.Display().Framebuffer()
		return func() error {
			steps++
			fb.ClearRGB(0, 0, 0xFF)
			return fb.Present()
		}
	}
	err := runHeadless(context.Background(), h, newApp, HeadlessConfig{Hz: 500, Ticks: 3, Snapshot: path})
	if err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}
	if h.fb.presentCount() != 3 {
		t.Fatalf("presents = %d, want 3", h.fb.presentCount())
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != SurfaceSize || b.Dy() != SurfaceSize+FormHeight {
		t.Fatalf("snapshot bounds = %v", b)
	}
}

func TestRunHeadlessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h := newHost(&bytes.Buffer{}, nil)
	err := runHeadless(ctx, h, func(HAL) func() error { return nil }, HeadlessConfig{})
	if err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	// SurfaceSize is the side of the square grid surface in pixels.
	SurfaceSize = 400
	// FormHeight is the height of the input form strip above the grid surface.
	FormHeight = 64
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
	aud    Audio
}

// New returns a host HAL implementation logging to stdout.
func New() HAL {
	return newHost(os.Stdout, newHostAudio())
}

func newHost(logw io.Writer, aud Audio) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: logw},
		fb:     newHostFramebuffer(SurfaceSize, SurfaceSize+FormHeight),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
		aud:    aud,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }
func (h *hostHAL) Audio() Audio     { return h.aud }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// ringLog keeps the last lines written; used when stdout belongs to the terminal UI.
type ringLog struct {
	mu    sync.Mutex
	lines []string
	max   int
}

func newRingLog(max int) *ringLog {
	return &ringLog{max: max}
}

func (r *ringLog) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := string(p)
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	r.lines = append(r.lines, s)
	if len(r.lines) > r.max {
		r.lines = r.lines[len(r.lines)-r.max:]
	}
	return len(p), nil
}

func (r *ringLog) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.lines) == 0 {
		return ""
	}
	return r.lines[len(r.lines)-1]
}

// NewTestHAL returns a host HAL with a silent logger and no audio.
//
// The returned feed function injects key events as if typed.
func NewTestHAL(logw io.Writer) (HAL, func(KeyEvent)) {
	if logw == nil {
		logw = io.Discard
	}
	h := newHost(logw, nil)
	return h, h.kbd.push
}

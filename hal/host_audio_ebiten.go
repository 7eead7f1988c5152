//go:build cgo

package hal

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// hostAudio exposes audio output on desktop via Ebiten's audio package.
type hostAudio struct {
	pwm *hostPWMAudio
}

func newHostAudio() hostAudio {
	return hostAudio{pwm: &hostPWMAudio{vol: 0x60}}
}

func (a hostAudio) PWM() PWMAudio { return a.pwm }

// hostPWMAudio buffers mono samples in a ring and feeds them to an Ebiten player.
//
// An empty ring plays silence instead of blocking the player, so short one-off
// tones can be written without keeping a producer alive.
type hostPWMAudio struct {
	mu sync.Mutex

	ctx        *audio.Context
	player     *audio.Player
	sampleRate uint32

	buf []int16
	r   int
	n   int

	vol uint8
}

func (a *hostPWMAudio) Start(sampleRate uint32) error {
	if sampleRate == 0 {
		return errors.New("host audio: invalid sample rate")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ctx == nil {
		if c := audio.CurrentContext(); c != nil {
			a.ctx = c
		} else {
			a.ctx = audio.NewContext(int(sampleRate))
		}
	}
	if a.ctx.SampleRate() != int(sampleRate) {
		return errors.New("host audio: ebiten audio context sample rate is fixed")
	}
	if a.player != nil {
		return nil
	}
	a.sampleRate = sampleRate

	ring := int(sampleRate / 4)
	if ring < 2048 {
		ring = 2048
	}
	a.buf = make([]int16, ring)
	a.r, a.n = 0, 0

	p, err := a.ctx.NewPlayer(&hostAudioReader{a: a})
	if err != nil {
		return err
	}
	p.SetBufferSize(50 * time.Millisecond)
	p.SetVolume(float64(a.vol) / 255.0)
	p.Play()
	a.player = p
	return nil
}

func (a *hostPWMAudio) Stop() error {
	a.mu.Lock()
	p := a.player
	a.player = nil
	a.n = 0
	a.mu.Unlock()

	if p != nil {
		return p.Close()
	}
	return nil
}

func (a *hostPWMAudio) SetVolume(vol uint8) {
	a.mu.Lock()
	a.vol = vol
	p := a.player
	a.mu.Unlock()

	if p != nil {
		p.SetVolume(float64(vol) / 255.0)
	}
}

// WriteSample queues one sample; it is dropped when the ring is full.
func (a *hostPWMAudio) WriteSample(sample int16) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.buf) == 0 || a.n == len(a.buf) {
		return
	}
	a.buf[(a.r+a.n)%len(a.buf)] = sample
	a.n++
}

func (a *hostPWMAudio) PendingSamples() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.n
}

type hostAudioReader struct {
	a *hostPWMAudio
}

func (r *hostAudioReader) Read(p []byte) (int, error) {
	a := r.a
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.player == nil && a.n == 0 && len(a.buf) == 0 {
		return 0, io.EOF
	}
	// Ebiten audio expects 16-bit little-endian stereo.
	for i := 0; i+3 < len(p); i += 4 {
		var s int16
		if a.n > 0 {
			s = a.buf[a.r]
			a.r = (a.r + 1) % len(a.buf)
			a.n--
		}
		p[i+0] = byte(s)
		p[i+1] = byte(s >> 8)
		p[i+2] = byte(s)
		p[i+3] = byte(s >> 8)
	}
	return len(p) &^ 3, nil
}

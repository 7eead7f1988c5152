package hal

import "time"

// hostTime turns wall-clock progress between runner frames into millisecond ticks.
type hostTime struct {
	ch  chan uint64
	seq uint64

	tick time.Duration
	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), tick: time.Millisecond}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step advances the clock; the first call emits n ticks so consumers see time start.
func (t *hostTime) step(n uint64) {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.emit(n)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / t.tick)
	if ticks == 0 {
		return
	}
	t.acc %= t.tick
	t.emit(ticks)
}

func (t *hostTime) emit(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}

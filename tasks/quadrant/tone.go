package quadrant

const (
	toneSampleRate = 22050
	toneHz         = 880
	toneMillis     = 120
	toneAmplitude  = 6000
)

// tone is a square-wave beep written into the PWM output a slice at a time.
type tone struct {
	left   int
	phase  int
	period int
}

func (t *Task) startTone() {
	if t.toneDead || t.cfg.Audio == nil {
		return
	}
	out := t.cfg.Audio.PWM()
	if out == nil {
		t.toneDead = true
		return
	}
	if err := out.Start(toneSampleRate); err != nil {
		t.logf("quadrant: error tone disabled: %v", err)
		t.toneDead = true
		return
	}
	t.tone = &tone{
		left:   toneSampleRate * toneMillis / 1000,
		period: toneSampleRate / toneHz,
	}
}

// feedTone tops up the output buffer without ever blocking the UI loop.
func (t *Task) feedTone() {
	if t.tone == nil || t.cfg.Audio == nil {
		return
	}
	out := t.cfg.Audio.PWM()
	if out == nil {
		t.tone = nil
		return
	}
	const chunk = toneSampleRate / 30
	for i := 0; i < chunk && t.tone.left > 0; i++ {
		s := int16(toneAmplitude)
		if t.tone.phase >= t.tone.period/2 {
			s = -toneAmplitude
		}
		out.WriteSample(s)
		t.tone.phase++
		if t.tone.phase >= t.tone.period {
			t.tone.phase = 0
		}
		t.tone.left--
	}
	if t.tone.left == 0 {
		t.tone = nil
	}
}

package record

import "time"

// pacer throttles frame captures to a steady frames-per-second rate using
// a fixed-step accumulator.
type pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

func newPacer(fps int) *pacer {
	if fps <= 0 {
		fps = 30
	}
	p := &pacer{step: time.Second / time.Duration(fps)}
	p.accumulator = p.step
	return p
}

// shouldCapture reports whether enough time passed for the next frame.
func (p *pacer) shouldCapture() bool {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}

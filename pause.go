package tween

import "math"

// Pause consumes time without mutating anything. Use it to hold a
// [Sequence] in place, or via [Delay].
type Pause struct {
	duration float64
	current  float64
}

// NewPause returns a tween that does nothing for the given duration.
func NewPause(duration float64) *Pause {
	return &Pause{duration: duration}
}

// Remaining reports the time left to sit out.
func (p *Pause) Remaining() float64 {
	return p.duration - p.current
}

// Done reports whether the pause has elapsed.
func (p *Pause) Done() bool {
	return p.Remaining() <= 0
}

// Reset rewinds the clock to zero.
func (p *Pause) Reset() {
	p.current = 0
}

// Update advances the clock by delta (clamped to the pause's span) and
// returns the negation of the time that was left before the call, exactly
// like [Single.Update] minus the value write.
func (p *Pause) Update(delta float64) float64 {
	remain := p.duration - p.current
	p.current += math.Min(remain, delta)
	if p.current < 0 {
		p.current = 0
	}
	return -remain
}

// Clone returns an independent copy.
func (p *Pause) Clone() Tween {
	c := *p
	return &c
}

package tween

import (
	"math"

	"github.com/phanxgames/tween/ease"
)

// Single interpolates one value between two bounds over a duration, with
// one easing curve and mode. Create one with [FromTo], [To], or [From].
//
// A Single with duration <= 0 is complete from the start; its first update
// writes the end bound and reports completion instead of dividing by zero.
type Single[T Tweenable[T]] struct {
	acc      Access[T]
	start    T
	end      T
	current  float64
	duration float64
	curve    ease.Curve
	mode     ease.Mode
}

// Remaining reports the time left until the tween reaches its end bound.
func (s *Single[T]) Remaining() float64 {
	return s.duration - s.current
}

// Done reports whether the tween has run for its full duration.
func (s *Single[T]) Done() bool {
	return s.Remaining() <= 0
}

// Reset rewinds the clock to zero. Bounds, curve, and the accessed value
// are left untouched.
func (s *Single[T]) Reset() {
	s.current = 0
}

// Update advances the clock by delta (clamped to the tween's span), writes
// the eased value through the access handle, and returns the negation of
// the time that was left before the call. A zero delta is a pure no-op;
// a negative delta rewinds.
func (s *Single[T]) Update(delta float64) float64 {
	if delta == 0 {
		return -s.Remaining()
	}
	remain := s.duration - s.current
	s.current += math.Min(remain, delta)
	if s.current < 0 {
		s.current = 0
	}
	t := 1.0
	if s.duration > 0 {
		t = s.current / s.duration
	}
	a := ease.Ease(s.curve, s.mode, t)
	s.acc.Set(s.acc.Get().Lerp(s.start, s.end, a))
	return -remain
}

// Clone returns an independent copy sharing the same access handle.
func (s *Single[T]) Clone() Tween {
	c := *s
	return &c
}

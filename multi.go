package tween

import "github.com/phanxgames/tween/ease"

// Keyframe is one segment of a [Multi] timeline: interpolate from Start to
// End over Duration, eased with the given mode. Durations must be strictly
// positive; [Series] rejects anything else.
type Keyframe[T any] struct {
	Start    T
	End      T
	Duration float64
	Mode     ease.Mode
}

// Multi interpolates a value through a series of keyframe segments,
// consumed strictly in order. Time wraps forward automatically across
// segment boundaries; past the last segment the value parks on its end
// bound. Create one with [Series].
//
// Unlike [Single], Multi reports no overshoot: Update returns the delta
// unchanged, so parents cannot recover leftover time from it within the
// same call.
type Multi[T Tweenable[T]] struct {
	acc     Access[T]
	curve   ease.Curve
	frames  []Keyframe[T]
	index   int
	elapsed float64 // within the active segment, not normalized
}

// Remaining reports the summed time left across the active and following
// segments.
func (m *Multi[T]) Remaining() float64 {
	total := 0.0
	for _, f := range m.frames[m.index:] {
		total += f.Duration
	}
	return total - m.elapsed
}

// Done reports whether every segment has been consumed.
func (m *Multi[T]) Done() bool {
	return m.Remaining() <= 0
}

// Reset rewinds to the start of the first segment.
func (m *Multi[T]) Reset() {
	m.index = 0
	m.elapsed = 0
}

// Update advances the timeline by delta, wrapping across as many segment
// boundaries as the delta covers, writes the active segment's eased value,
// and returns delta unchanged. A zero delta is a pure no-op. Negative
// deltas rewind within the active segment only and clamp at its start.
func (m *Multi[T]) Update(delta float64) float64 {
	if delta == 0 {
		return delta
	}
	m.elapsed += delta
	last := len(m.frames) - 1
	for m.index < last && m.elapsed-m.frames[m.index].Duration > 0 {
		m.elapsed -= m.frames[m.index].Duration
		m.index++
	}
	f := m.frames[m.index]
	if m.index == last && m.elapsed > f.Duration {
		m.elapsed = f.Duration
	}
	if m.elapsed < 0 {
		m.elapsed = 0
	}
	a := ease.Ease(m.curve, f.Mode, m.elapsed/f.Duration)
	m.acc.Set(m.acc.Get().Lerp(f.Start, f.End, a))
	return delta
}

// Clone returns an independent copy sharing the same access handle.
func (m *Multi[T]) Clone() Tween {
	c := *m
	c.frames = make([]Keyframe[T], len(m.frames))
	copy(c.frames, m.frames)
	return &c
}

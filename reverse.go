package tween

import "math"

// Reverse plays its child backward from the child's completed state.
// Create one with [Rev].
//
// Construction runs the child forward to completion once, both to capture
// its total duration and to leave it in the state playback rewinds from;
// that pass writes the child's end value through its access handle, so
// building a Reverse (or a [Yoyo]) touches the animated value. A snapshot
// of the completed child is kept so Reset can restore it without another
// visible write.
//
// Reversal is less capable than authoring the mirrored tween by hand: it
// cannot change the child's durations, and a reversed [Multi] only rewinds
// within its final segment.
type Reverse struct {
	tween    Tween
	snapshot Tween // child at completion, for Reset
	current  float64
	duration float64
}

// Remaining reports the reversal time left. The clock is tracked here,
// independently of the child's own bookkeeping.
func (r *Reverse) Remaining() float64 {
	return r.duration - r.current
}

// Done reports whether the child has been fully rewound.
func (r *Reverse) Done() bool {
	return r.Remaining() <= 0
}

// Reset restores the child to its completed state and rewinds the clock,
// ready to play backward again. The animated value is not written.
func (r *Reverse) Reset() {
	r.current = 0
	r.tween = r.snapshot.Clone()
}

// Update advances its own clock by delta (clamped to the reversal's span)
// and feeds -delta to the child, relying on the child's update contract
// being symmetric in time. Returns the negation of the time that was left
// before the call, like [Single.Update].
func (r *Reverse) Update(delta float64) float64 {
	if delta == 0 {
		return -r.Remaining()
	}
	remain := r.duration - r.current
	r.current += math.Min(remain, delta)
	if r.current < 0 {
		r.current = 0
	}
	r.tween.Update(-delta)
	return -remain
}

// Clone deep-copies the reversal, its child, and the reset snapshot.
func (r *Reverse) Clone() Tween {
	return &Reverse{
		tween:    r.tween.Clone(),
		snapshot: r.snapshot.Clone(),
		current:  r.current,
		duration: r.duration,
	}
}

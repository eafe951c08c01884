package tween

import "math"

// Repeat restarts its child forever. Its remaining time is infinite and it
// never reports done, so it belongs at the root of a tree (or under a
// driver that stops it externally): embedding it in a finite Sequence or
// Parallel makes the enclosing node's remaining time infinite too, and
// handing it to [Rev] never terminates. Neither misuse is checked. Create
// one with [Rep].
type Repeat struct {
	tween Tween
}

// Remaining is positive infinity; a Repeat never completes on its own.
func (r *Repeat) Remaining() float64 {
	return math.Inf(1)
}

// Done always reports false.
func (r *Repeat) Done() bool {
	return false
}

// Reset rewinds the child to the start of its cycle.
func (r *Repeat) Reset() {
	r.tween.Reset()
}

// Update feeds time into the child in a loop: each time the child finishes
// its cycle it is reset and the measured leftover carries into the next
// cycle, so one large delta can run several full cycles. A cycle that
// consumes no time is reset once and then abandoned for this call, so a
// zero-duration child cannot spin the loop forever. Always returns zero;
// a Repeat never exhausts.
func (r *Repeat) Update(delta float64) float64 {
	remain := delta
	for remain > 0 {
		before := r.tween.Remaining()
		r.tween.Update(remain)
		if !r.tween.Done() {
			break
		}
		consumed := before - r.tween.Remaining()
		r.tween.Reset()
		if consumed <= 0 {
			break
		}
		remain -= consumed
	}
	return 0
}

// Clone deep-copies the repeat and its child.
func (r *Repeat) Clone() Tween {
	return &Repeat{tween: r.tween.Clone()}
}

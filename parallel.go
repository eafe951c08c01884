package tween

import "math"

// Parallel advances all of its children through the same logical time. The
// group's span is bounded by the slowest child; faster children are never
// advanced past their own completion. Create one with [Par].
type Parallel struct {
	tweens []Tween
}

// Remaining reports the largest remaining time among the children, or zero
// for an empty group.
func (p *Parallel) Remaining() float64 {
	max := 0.0
	for _, tw := range p.tweens {
		if r := tw.Remaining(); r > max {
			max = r
		}
	}
	return max
}

// Done reports whether the slowest child has completed.
func (p *Parallel) Done() bool {
	return p.Remaining() <= 0
}

// Reset resets every child.
func (p *Parallel) Reset() {
	for _, tw := range p.tweens {
		tw.Reset()
	}
}

// Update feeds each child min(child remaining, delta) and returns the
// pre-update maximum remaining minus delta. The return goes negative once
// the group has finished within the call; parents treat that as an
// overshoot report, not as time still available — a [Sequence] moves past
// a finished group by measuring its consumption, never by re-feeding the
// negative return.
func (p *Parallel) Update(delta float64) float64 {
	maxRemain := 0.0
	for _, tw := range p.tweens {
		remain := tw.Remaining()
		if remain > maxRemain {
			maxRemain = remain
		}
		tw.Update(math.Min(remain, delta))
	}
	return maxRemain - delta
}

// Clone deep-copies the group and all of its children.
func (p *Parallel) Clone() Tween {
	c := &Parallel{tweens: make([]Tween, len(p.tweens))}
	for i, tw := range p.tweens {
		c.tweens[i] = tw.Clone()
	}
	return c
}

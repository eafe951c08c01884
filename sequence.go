package tween

// Sequence runs its children strictly in order. The active child absorbs
// time until it completes; the surplus then cascades to the next child
// within the same Update call, so a large delta can cross several child
// boundaries in one tick. Create one with [Seq].
type Sequence struct {
	tweens []Tween
	index  int
}

// Remaining reports the summed remaining time of all children.
func (s *Sequence) Remaining() float64 {
	total := 0.0
	for _, tw := range s.tweens {
		total += tw.Remaining()
	}
	return total
}

// Done reports whether every child has completed.
func (s *Sequence) Done() bool {
	return s.Remaining() <= 0
}

// Reset rewinds the index to the first child and resets every child, not
// just those already passed.
func (s *Sequence) Reset() {
	s.index = 0
	for _, tw := range s.tweens {
		tw.Reset()
	}
}

// Update feeds delta to the active child and walks forward. Children
// report leftovers under two conventions (timed leaves negate their
// remaining time, Multi and Exec echo the delta), so the sequence measures
// each child's actual consumption from its Remaining before and after the
// update rather than trusting the returned arithmetic. A child that sits
// at zero remaining (Exec) still receives one zero-delta update so it gets
// its firing.
//
// A negative delta rewinds: it is fed to the active child, and once that
// child clamps at its own start the index steps back so earlier children
// rewind too. This is what lets [Rev] play a completed sequence backward.
//
// Returns the unconsumed surplus (non-negative) once all children are
// done, or the still-running child's own leftover signal.
func (s *Sequence) Update(delta float64) float64 {
	if delta < 0 {
		return s.rewind(delta)
	}
	rest := delta
	for s.index < len(s.tweens) {
		tw := s.tweens[s.index]
		before := tw.Remaining()
		ret := tw.Update(rest)
		if !tw.Done() {
			return ret
		}
		rest -= before - tw.Remaining()
		if rest < 0 {
			rest = 0
		}
		s.index++
	}
	return rest
}

// rewind pushes negative time backward through the children. rest is
// negative and moves toward zero as children absorb it; a child that
// regains no remaining time is fully rewound (or timeless, like Exec), so
// the index steps back past it.
func (s *Sequence) rewind(delta float64) float64 {
	rest := delta
	for rest < 0 {
		if s.index >= len(s.tweens) {
			s.index = len(s.tweens) - 1
		}
		if s.index < 0 {
			return rest
		}
		tw := s.tweens[s.index]
		before := tw.Remaining()
		tw.Update(rest)
		rest += tw.Remaining() - before
		if rest >= 0 {
			break
		}
		if s.index == 0 {
			break
		}
		s.index--
	}
	return rest
}

// Clone deep-copies the sequence and all of its children.
func (s *Sequence) Clone() Tween {
	c := &Sequence{
		tweens: make([]Tween, len(s.tweens)),
		index:  s.index,
	}
	for i, tw := range s.tweens {
		c.tweens[i] = tw.Clone()
	}
	return c
}

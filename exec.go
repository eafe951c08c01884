package tween

// Exec fires a callback exactly once, on its first update after
// construction or a reset. It consumes no time: Remaining is always zero,
// so a parent considers it complete instantly, but it still needs that one
// Update call — which is why Done reads the fired flag rather than the
// remaining time.
type Exec struct {
	fn       func()
	executed bool
}

// NewExec returns a tween that runs fn once when first updated.
func NewExec(fn func()) *Exec {
	return &Exec{fn: fn}
}

// Remaining is always zero; Exec consumes no time.
func (e *Exec) Remaining() float64 {
	return 0
}

// Done reports whether the callback has fired.
func (e *Exec) Done() bool {
	return e.executed
}

// Reset arms the callback to fire again on the next update.
func (e *Exec) Reset() {
	e.executed = false
}

// Update fires the callback if it hasn't fired yet (a zero delta counts)
// and returns delta unchanged.
func (e *Exec) Update(delta float64) float64 {
	if !e.executed {
		e.executed = true
		e.fn()
	}
	return delta
}

// Clone returns a copy sharing the same callback. The copy tracks its own
// fired state.
func (e *Exec) Clone() Tween {
	c := *e
	return &c
}

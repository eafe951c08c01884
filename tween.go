package tween

// Tweenable is satisfied by any value type the engine can interpolate.
//
// Lerp is called on the value currently held by the animated storage, with
// the node's start and end bounds and the eased factor. Implementations
// normally ignore the receiver and return start + (end-start)*alpha, but a
// custom type may consult the receiver to blend with writes made outside
// the engine between updates.
type Tweenable[T any] interface {
	Lerp(start, end T, alpha float64) T
}

// Float is a float64 scalar that can be tweened.
type Float float64

// Lerp linearly interpolates between start and end.
func (Float) Lerp(start, end Float, alpha float64) Float {
	return start + Float(float64(end-start)*alpha)
}

// Tween is a single node of a tween tree: a unit of timed behavior driven by
// caller-supplied time deltas. Leaves interpolate a value or consume time;
// composites arrange children sequentially, in parallel, repeated, or
// reversed. Nodes are structurally immutable after construction — only
// their time-progress state changes.
//
// The engine owns no clock and spawns no goroutines. A tree must be driven
// from a single goroutine, and within one Update call children advance in a
// fixed deterministic order, so identical delta sequences reproduce
// identical results.
type Tween interface {
	// Remaining reports the time left in the node's current finite cycle.
	// It is math.Inf(1) for Repeat, which never completes.
	Remaining() float64

	// Done reports whether the node has completed. For most nodes this is
	// Remaining() <= 0; Exec instead reports whether its callback has fired.
	Done() bool

	// Reset returns the time-progress state to the start without touching
	// structure or bounds.
	Reset()

	// Update advances the node by delta and mutates whatever it controls.
	// The node consumes as much of the delta as it can and reports leftover
	// time to its parent: timed leaves return the negation of the time they
	// had left before the call (non-positive while running, with the
	// magnitude of the just-exhausted cycle when they finish), while Multi
	// and Exec return the delta unchanged. Updating a finished node is
	// harmless. Negative deltas rewind nodes that support it.
	Update(delta float64) float64

	// Clone deep-copies the node tree. Access handles are copied by value
	// and keep pointing at the same storage, so a clone animates the same
	// target independently of the original's clock.
	Clone() Tween
}

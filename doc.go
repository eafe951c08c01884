// Package tween is a composable interpolation engine: it advances
// caller-owned numeric or vector state over time according to timing rules
// and non-linear easing curves from [github.com/phanxgames/tween/ease].
//
// The engine owns plans, never storage. A program holds some mutable value
// — a position, a color channel, an opacity — and builds a tween tree
// describing how that value should change; each frame it feeds the tree a
// time delta and the tree mutates the value through an [Access] handle.
// There is no internal clock, scheduler, or goroutine: everything is
// synchronous and driven by explicit [Tween.Update] calls.
//
// # Quick start
//
//	x := tween.Float(0)
//	t := tween.To(tween.Of(&x), tween.Float(100), ease.Cubic, ease.Out, 1.5)
//
//	// each frame:
//	t.Update(dt)
//	if t.Done() { ... }
//
// # Composition
//
// Leaves interpolate one value ([FromTo], [To], [From]), step through
// keyframes ([Series]), consume time ([NewPause]), or fire a one-shot
// callback ([NewExec]). Composites arrange children: [Seq] runs them in
// order, [Par] concurrently, [Rep] forever, [Rev] backward. [Yoyo] and
// [Delay] are derived from those primitives:
//
//	bob := tween.Yoyo(tween.FromTo(tween.Of(&y), tween.Float(0), tween.Float(12), ease.Sine, ease.InOut, 0.4))
//	hit := tween.Delay(tween.NewExec(playSound), 0.25)
//
// Any type with a Lerp method can be animated; [Float], [Vec2], and
// [Color] are provided.
//
// # Driving
//
// A node consumes as much of each delta as it can and reports unconsumed
// or overshot time to its parent, which is how sequencing and repetition
// stay frame-rate independent: a single large delta crosses child
// boundaries and cycle restarts without losing time. Trees are exclusively
// owned, cheap to [Tween.Clone], and reusable via [Tween.Reset].
package tween

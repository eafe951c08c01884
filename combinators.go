package tween

import (
	"fmt"

	"github.com/phanxgames/tween/ease"
)

// FromTo tweens the accessed value from start to end over the given
// duration, eased by curve in the given mode.
func FromTo[T Tweenable[T]](acc Access[T], start, end T, curve ease.Curve, mode ease.Mode, duration float64) *Single[T] {
	return &Single[T]{
		acc:      acc,
		start:    start,
		end:      end,
		duration: duration,
		curve:    curve,
		mode:     mode,
	}
}

// To tweens the accessed value from its current value to end.
func To[T Tweenable[T]](acc Access[T], end T, curve ease.Curve, mode ease.Mode, duration float64) *Single[T] {
	return FromTo(acc, acc.Get(), end, curve, mode, duration)
}

// From tweens the accessed value from start back to its current value.
func From[T Tweenable[T]](acc Access[T], start T, curve ease.Curve, mode ease.Mode, duration float64) *Single[T] {
	return FromTo(acc, start, acc.Get(), curve, mode, duration)
}

// Series tweens the accessed value through a series of keyframe segments.
// This is cheaper than chaining n-1 [Single] tweens for n data points.
// The keyframe list must be non-empty and every segment duration strictly
// positive; anything else is rejected here rather than corrupting the
// timeline later.
func Series[T Tweenable[T]](acc Access[T], frames []Keyframe[T], curve ease.Curve) (*Multi[T], error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("tween: series needs at least one keyframe")
	}
	for i, f := range frames {
		if f.Duration <= 0 {
			return nil, fmt.Errorf("tween: keyframe %d has non-positive duration %v", i, f.Duration)
		}
	}
	own := make([]Keyframe[T], len(frames))
	copy(own, frames)
	return &Multi[T]{acc: acc, curve: curve, frames: own}, nil
}

// Seq runs the given tweens one after another.
func Seq(tweens ...Tween) *Sequence {
	return &Sequence{tweens: tweens}
}

// Par runs the given tweens concurrently in logical time, bounded by the
// slowest of them.
func Par(tweens ...Tween) *Parallel {
	return &Parallel{tweens: tweens}
}

// Rep restarts the given tween forever. See [Repeat] for the structural
// constraints an infinite tween imposes.
func Rep(t Tween) *Repeat {
	return &Repeat{tween: t}
}

// Rev plays the given tween backward. The tween is run forward to
// completion here, once, to capture its duration — which writes its end
// value through its access handle. Do not pass a [Repeat]; its infinite
// remaining time makes this call spin forever.
func Rev(t Tween) *Reverse {
	rem := t.Remaining()
	t.Update(rem)
	return &Reverse{
		tween:    t,
		snapshot: t.Clone(),
		duration: rem,
	}
}

// Yoyo plays the given tween forward and backward, forever. The forward
// branch is an independent deep copy; the original becomes the reversed
// branch and is advanced to completion by [Rev] during construction.
func Yoyo(t Tween) Tween {
	forward := t.Clone()
	return Rep(Seq(forward, Rev(t)))
}

// Delay runs the given tween after sitting out the given time.
func Delay(t Tween, time float64) Tween {
	return Seq(NewPause(time), t)
}

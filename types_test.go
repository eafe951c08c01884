package tween

import (
	"testing"

	"github.com/phanxgames/tween/ease"
)

func TestVec2Tween(t *testing.T) {
	pos := Vec2{X: 0, Y: 100}
	tw := To(Of(&pos), Vec2{X: 50, Y: 0}, ease.Linear, ease.In, 1.0)

	tw.Update(0.5)
	if !approx(pos.X, 25) || !approx(pos.Y, 50) {
		t.Errorf("pos = %+v at halfway, want {25 50}", pos)
	}
	tw.Update(0.5)
	if !approx(pos.X, 50) || !approx(pos.Y, 0) {
		t.Errorf("pos = %+v at end, want {50 0}", pos)
	}
}

func TestColorTween(t *testing.T) {
	c := Color{R: 1, G: 0, B: 0, A: 1}
	target := Color{R: 0, G: 1, B: 0.5, A: 0.5}
	tw := To(Of(&c), target, ease.Linear, ease.In, 1.0)

	tw.Update(1.0)
	if !approx(c.R, 0) || !approx(c.G, 1) || !approx(c.B, 0.5) || !approx(c.A, 0.5) {
		t.Errorf("c = %+v, want %+v", c, target)
	}
}

func TestColorOvershootUnclamped(t *testing.T) {
	// Back easing swings outside [0, 1]; channels follow it. Clamping is
	// the renderer's job.
	c := Color{}
	tw := FromTo(Of(&c), Color{}, Color{R: 1, G: 1, B: 1, A: 1}, ease.Back, ease.In, 1.0)

	tw.Update(0.3)
	if c.R >= 0 {
		t.Errorf("c.R = %v at back-in dip, want negative", c.R)
	}
}

func TestFloatLerp(t *testing.T) {
	var f Float
	if got := f.Lerp(2, 10, 0.25); !approx(float64(got), 4) {
		t.Errorf("Lerp(2, 10, 0.25) = %v, want 4", got)
	}
}

package tween

import (
	"testing"

	"github.com/phanxgames/tween/ease"
)

func TestGroupDoneFlagTransition(t *testing.T) {
	x, y := Float(0), Float(0)
	g := NewGroup(
		To(Of(&x), Float(100), ease.Linear, ease.In, 0.5),
		To(Of(&y), Float(200), ease.Linear, ease.In, 1.0),
	)

	if g.Done {
		t.Fatal("should not be Done at start")
	}

	g.Update(0.5)
	if g.Done {
		t.Fatal("should not be Done while the slower member runs")
	}

	g.Update(0.5)
	if !g.Done {
		t.Fatal("should be Done after the slowest member finishes")
	}
	if !approx(float64(x), 100) || !approx(float64(y), 200) {
		t.Errorf("x = %v, y = %v, want 100 and 200", x, y)
	}

	// Update after done is a no-op, not a panic.
	g.Update(0.1)
	if !g.Done {
		t.Fatal("should remain Done")
	}
}

func TestGroupFeedsFullDelta(t *testing.T) {
	// Unlike Parallel, a Group hands every member the whole delta; the
	// members clamp themselves.
	x := Float(0)
	g := NewGroup(To(Of(&x), Float(10), ease.Linear, ease.In, 1.0))

	g.Update(5.0)
	if !approx(float64(x), 10) {
		t.Errorf("x = %v, want 10", x)
	}
	if !g.Done {
		t.Fatal("should be Done")
	}
}

func TestGroupReset(t *testing.T) {
	x := Float(0)
	g := NewGroup(To(Of(&x), Float(10), ease.Linear, ease.In, 1.0))

	g.Update(1.0)
	g.Reset()
	if g.Done {
		t.Fatal("Reset should unlatch Done")
	}

	g.Update(0.5)
	if !approx(float64(x), 5) {
		t.Errorf("x = %v after reset and update, want 5", x)
	}
}

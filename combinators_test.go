package tween

import (
	"testing"

	"github.com/phanxgames/tween/ease"
)

func TestYoyoFullCycle(t *testing.T) {
	v := Float(0)
	y := Yoyo(FromTo(Of(&v), Float(0), Float(10), ease.Linear, ease.In, 1.0))

	// Four quarter-steps: forward to 10 over the first second, back to 0
	// over the next.
	y.Update(0.5)
	if !approx(float64(v), 5) {
		t.Errorf("v = %v at 0.5, want 5", v)
	}
	y.Update(0.5)
	if !approx(float64(v), 10) {
		t.Errorf("v = %v at 1.0, want 10", v)
	}
	y.Update(0.5)
	if !approx(float64(v), 5) {
		t.Errorf("v = %v at 1.5, want 5", v)
	}
	y.Update(0.5)
	if !approx(float64(v), 0) {
		t.Errorf("v = %v at 2.0, want back at 0", v)
	}
	if y.Done() {
		t.Fatal("yoyo never finishes (it repeats)")
	}
}

func TestYoyoSecondCycle(t *testing.T) {
	v := Float(0)
	y := Yoyo(FromTo(Of(&v), Float(0), Float(10), ease.Linear, ease.In, 1.0))

	// Run one full cycle, then check the next cycle replays identically.
	for i := 0; i < 4; i++ {
		y.Update(0.5)
	}
	y.Update(0.5)
	if !approx(float64(v), 5) {
		t.Errorf("v = %v forward in cycle 2, want 5", v)
	}
	y.Update(0.5)
	if !approx(float64(v), 10) {
		t.Errorf("v = %v at cycle 2 peak, want 10", v)
	}
	y.Update(1.0)
	if !approx(float64(v), 0) {
		t.Errorf("v = %v at cycle 2 end, want 0", v)
	}
}

func TestYoyoBranchesAreIndependentCopies(t *testing.T) {
	v := Float(0)
	single := FromTo(Of(&v), Float(0), Float(10), ease.Linear, ease.In, 1.0)
	y := Yoyo(single)

	// The original was consumed by the reversed branch during
	// construction; driving the yoyo must not depend on it.
	y.Update(0.25)
	if !approx(float64(v), 2.5) {
		t.Errorf("v = %v, want 2.5", v)
	}
}

func TestDelayHoldsThenRuns(t *testing.T) {
	v := Float(0)
	d := Delay(FromTo(Of(&v), Float(0), Float(10), ease.Linear, ease.In, 1.0), 1.0)

	d.Update(0.5)
	if !approx(float64(v), 0) {
		t.Errorf("v = %v during the delay, want 0", v)
	}

	d.Update(1.0)
	if !approx(float64(v), 5) {
		t.Errorf("v = %v after the delay elapsed, want 5", v)
	}
	if !approx(d.Remaining(), 0.5) {
		t.Errorf("Remaining = %v, want 0.5", d.Remaining())
	}
}

func TestDelayedExecScenario(t *testing.T) {
	fired := 0
	d := Delay(NewExec(func() { fired++ }), 1.0)

	d.Update(0.5)
	if fired != 0 {
		t.Fatal("callback fired during the delay")
	}

	// Crossing the 1.0 boundary fires the callback exactly once.
	d.Update(0.6)
	if fired != 1 {
		t.Errorf("fired = %d after crossing the boundary, want 1", fired)
	}

	d.Update(1.0)
	if fired != 1 {
		t.Errorf("fired = %d after further updates, want still 1", fired)
	}
}

func TestNestedComposition(t *testing.T) {
	v, w := Float(0), Float(0)
	root := Seq(
		Par(
			FromTo(Of(&v), Float(0), Float(4), ease.Linear, ease.In, 1.0),
			FromTo(Of(&w), Float(0), Float(8), ease.Linear, ease.In, 2.0),
		),
		FromTo(Of(&v), Float(4), Float(0), ease.Linear, ease.In, 1.0),
	)

	if !approx(root.Remaining(), 3.0) {
		t.Errorf("Remaining = %v, want 3.0 (par max + tail)", root.Remaining())
	}

	root.Update(2.5)
	if !approx(float64(w), 8) {
		t.Errorf("w = %v, want 8", w)
	}
	if !approx(float64(v), 2) {
		t.Errorf("v = %v halfway down the tail, want 2", v)
	}

	root.Update(0.5)
	if !root.Done() {
		t.Fatal("should be done after 3.0 total")
	}
	if !approx(float64(v), 0) {
		t.Errorf("v = %v at the end, want 0", v)
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() []float64 {
		v := Float(0)
		y := Yoyo(FromTo(Of(&v), Float(0), Float(10), ease.Cubic, ease.InOut, 1.0))
		out := make([]float64, 0, 8)
		for i := 0; i < 8; i++ {
			y.Update(0.3)
			out = append(out, float64(v))
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("step %d diverged: %v vs %v", i, a[i], b[i])
		}
	}
}

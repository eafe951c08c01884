// Package ease provides the easing curve catalog used by the tween engine.
//
// A [Curve] maps normalized progress t in [0, 1] to an interpolation factor.
// The factor is usually also in [0, 1], but curves like [Back] and [Elastic]
// deliberately overshoot. Every curve offers three variants — In, Out, and
// InOut — selected at the call site with a [Mode].
//
// All curves are pure functions of t (and of per-curve constants). They
// allocate nothing, never fail, and extrapolate without checks when t falls
// outside [0, 1].
package ease

import "math"

// Mode selects which variant of a curve governs an animation.
type Mode uint8

const (
	In    Mode = iota // accelerate from the start value
	Out               // decelerate into the end value
	InOut             // ease in for the first half, out for the second
)

// Curve is an easing curve with in, out, and in-out variants.
//
// Every variant maps progress t to an interpolation factor, with
// InOut(0) == 0 and InOut(1) == 1 for all curves in this package.
// For curves built with [FromFunc], Out is the mirror of In
// (Out(t) == 1 - In(1-t)) and InOut splits the two halves; the
// named catalog curves define all three variants explicitly.
type Curve interface {
	In(t float64) float64
	Out(t float64) float64
	InOut(t float64) float64
}

// Ease applies the curve variant selected by mode to t.
func Ease(c Curve, mode Mode, t float64) float64 {
	switch mode {
	case Out:
		return c.Out(t)
	case InOut:
		return c.InOut(t)
	default:
		return c.In(t)
	}
}

// FromFunc builds a Curve from a bare ease-in function. The Out variant is
// derived as the point mirror 1 - in(1-t), and InOut runs the derived pair
// back to back, each rescaled to half the range.
func FromFunc(in func(t float64) float64) Curve {
	return funcCurve(in)
}

type funcCurve func(float64) float64

func (f funcCurve) In(t float64) float64  { return f(t) }
func (f funcCurve) Out(t float64) float64 { return 1 - f(1-t) }
func (f funcCurve) InOut(t float64) float64 {
	if t < 0.5 {
		return f(2*t) / 2
	}
	return 0.5 + (1-f(2-2*t))/2
}

// Catalog curves. Linear through Bounce carry no parameters; Elastic and
// Back have parameterized constructors below.
var (
	Linear  Curve = linear{}
	Quad    Curve = quad{}
	Cubic   Curve = cubic{}
	Quart   Curve = quart{}
	Quint   Curve = quint{}
	Sine    Curve = sine{}
	Circ    Curve = circ{}
	Bounce  Curve = bounce{}
	Elastic Curve = elastic{}
	Back    Curve = back{overshoot: defaultOvershoot}
)

// ElasticCurve returns an elastic curve with an explicit amplitude and
// period. An amplitude below 1 (including 0) behaves as 1; a period of 0
// uses the default 0.3 (0.45 for the in-out variant).
func ElasticCurve(amplitude, period float64) Curve {
	return elastic{amplitude: amplitude, period: period}
}

// BackCurve returns a back curve with an explicit overshoot constant.
// [Back] uses 1.70158, which overshoots by about 10%.
func BackCurve(overshoot float64) Curve {
	return back{overshoot: overshoot}
}

const defaultOvershoot = 1.70158

type linear struct{}

func (linear) In(t float64) float64    { return t }
func (linear) Out(t float64) float64   { return t }
func (linear) InOut(t float64) float64 { return t }

type quad struct{}

func (quad) In(t float64) float64  { return t * t }
func (quad) Out(t float64) float64 { return -t * (t - 2) }
func (quad) InOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t
	}
	t--
	return -0.5 * (t*(t-2) - 1)
}

type cubic struct{}

func (cubic) In(t float64) float64 { return t * t * t }
func (cubic) Out(t float64) float64 {
	s := t - 1
	return s*s*s + 1
}
func (cubic) InOut(t float64) float64 {
	s := t * 2
	if s < 1 {
		return 0.5 * s * s * s
	}
	u := s - 2
	return 0.5 * (u*u*u + 2)
}

type quart struct{}

func (quart) In(t float64) float64 { return t * t * t * t }
func (quart) Out(t float64) float64 {
	s := t - 1
	return -(s*s*s*s - 1)
}
func (quart) InOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t * t
	}
	t -= 2
	return -0.5 * (t*t*t*t - 2)
}

type quint struct{}

func (quint) In(t float64) float64 { return t * t * t * t * t }
func (quint) Out(t float64) float64 {
	s := t - 1
	return s*s*s*s*s + 1
}
func (quint) InOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t*t*t + 2)
}

type sine struct{}

func (sine) In(t float64) float64    { return -math.Cos(t*math.Pi/2) + 1 }
func (sine) Out(t float64) float64   { return math.Sin(t * math.Pi / 2) }
func (sine) InOut(t float64) float64 { return -0.5 * (math.Cos(math.Pi*t) - 1) }

type circ struct{}

func (circ) In(t float64) float64 { return -math.Sqrt(1-t*t) + 1 }
func (circ) Out(t float64) float64 {
	t--
	return math.Sqrt(1 - t*t)
}
func (circ) InOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return -0.5 * (math.Sqrt(1-t*t) - 1)
	}
	t -= 2
	return 0.5 * (math.Sqrt(1-t*t) + 1)
}

type bounce struct{}

func (b bounce) In(t float64) float64 { return 1 - b.Out(1-t) }
func (bounce) Out(t float64) float64 {
	// Four parabolic arcs with decaying height. The magic constants make
	// the arcs meet and the last one land exactly on 1.
	switch {
	case t < 1/2.75:
		return 7.5625 * t * t
	case t < 2/2.75:
		s := t - 1.5/2.75
		return 7.5625*s*s + 0.75
	case t < 2.5/2.75:
		s := t - 2.25/2.75
		return 7.5625*s*s + 0.9375
	default:
		s := t - 2.625/2.75
		return 7.5625*s*s + 0.984375
	}
}
func (b bounce) InOut(t float64) float64 {
	if t < 0.5 {
		return b.In(t*2) * 0.5
	}
	return b.Out(t*2-1)*0.5 + 0.5
}

// elastic is a damped sine oscillation. amplitude below 1 (including the
// zero value) is treated as 1; period 0 means the default 0.3.
type elastic struct {
	amplitude, period float64
}

func (e elastic) params(defaultPeriod float64) (a, p, s float64) {
	p = e.period
	if p == 0 {
		p = defaultPeriod
	}
	a = e.amplitude
	if a < 1 {
		// At or below unit amplitude the phase shift simplifies to p/4.
		return 1, p, p / 4
	}
	return a, p, p / (2 * math.Pi) * math.Asin(1/a)
}

func (e elastic) In(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	a, p, s := e.params(0.3)
	t--
	return -(a * math.Pow(2, 10*t) * math.Sin((t-s)*(2*math.Pi)/p))
}

func (e elastic) Out(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	a, p, s := e.params(0.3)
	return a*math.Pow(2, -10*t)*math.Sin((t-s)*(2*math.Pi)/p) + 1
}

func (e elastic) InOut(t float64) float64 {
	if t == 0 {
		return 0
	}
	t *= 2
	if t == 2 {
		return 1
	}
	a, p, s := e.params(0.3 * 1.5)
	if t < 1 {
		t--
		return -0.5 * (a * math.Pow(2, 10*t) * math.Sin((t-s)*(2*math.Pi)/p))
	}
	t--
	return a*math.Pow(2, -10*t)*math.Sin((t-s)*(2*math.Pi)/p)*0.5 + 1
}

// back pulls slightly past the start (In) or the end (Out) before settling.
type back struct {
	overshoot float64
}

func (b back) In(t float64) float64 {
	s := b.overshoot
	return t * t * ((s+1)*t - s)
}

func (b back) Out(t float64) float64 {
	s := b.overshoot
	u := t - 1
	return u*u*((s+1)*u+s) + 1
}

func (b back) InOut(t float64) float64 {
	// The overshoot is scaled by 1.525 so the halves blend smoothly.
	q := b.overshoot * 1.525
	u := t * 2
	if u < 1 {
		return 0.5 * (u * u * ((q+1)*u - q))
	}
	r := u - 2
	return 0.5 * (r*r*((q+1)*r+q) + 2)
}

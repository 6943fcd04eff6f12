package animation

import "math"

// EaseFunc maps linear progress in [0,1] to eased progress.
type EaseFunc func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return clamp01(t) }

var named = map[string]EaseFunc{
	"":            Linear,
	"linear":      Linear,
	"ease":        CubicBezier(0.25, 0.1, 0.25, 1),
	"ease-in":     CubicBezier(0.42, 0, 1, 1),
	"ease-out":    CubicBezier(0, 0, 0.58, 1),
	"ease-in-out": CubicBezier(0.42, 0, 0.58, 1),
}

// Lookup returns the named timing function. Unknown names fall back to
// linear and report false.
func Lookup(name string) (EaseFunc, bool) {
	if f, ok := named[name]; ok {
		return f, true
	}
	return Linear, false
}

// CubicBezier builds a timing function with control points (x1,y1) and
// (x2,y2), the way CSS defines cubic-bezier().
func CubicBezier(x1, y1, x2, y2 float64) EaseFunc {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	return func(t float64) float64 {
		t = clamp01(t)
		if t == 0 || t == 1 {
			return t
		}
		// Newton first, bisection if the slope is too flat
		s := t
		for i := 0; i < 8; i++ {
			x := sampleX(s) - t
			if math.Abs(x) < 1e-6 {
				return sampleY(s)
			}
			d := slopeX(s)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= x / d
		}
		lo, hi := 0.0, 1.0
		s = t
		for i := 0; i < 32; i++ {
			x := sampleX(s)
			if math.Abs(x-t) < 1e-6 {
				break
			}
			if x < t {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return sampleY(s)
	}
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

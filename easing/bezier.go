package easing

import (
	"fmt"
	"math"
	"sort"
)

// CubicBezier returns a curve defined by the two interior control points of a
// cubic bezier anchored at (0,0) and (1,1), matching the CSS timing function.
// The x coordinates must stay inside [0,1] so x(s) is invertible
func CubicBezier(x1, y1, x2, y2 float64) (Easing, error) {
	if x1 < 0 || x1 > 1 || x2 < 0 || x2 > 1 {
		return Easing{}, fmt.Errorf("%w: bezier x control points (%g, %g) must be in [0,1]", ErrInvalidParameter, x1, x2)
	}
	if math.IsNaN(y1) || math.IsNaN(y2) {
		return Easing{}, fmt.Errorf("%w: bezier y control points are NaN", ErrInvalidParameter)
	}
	name := fmt.Sprintf("cubic-bezier(%g,%g,%g,%g)", x1, y1, x2, y2)
	return New(name, func(t float64) float64 {
		if t == 0 || t == 1 {
			return t
		}
		return bezierEval(solveBezierX(t, x1, x2), y1, y2)
	}), nil
}

// bezierEval computes the 1D cubic bezier with anchors 0 and 1 at parameter s
func bezierEval(s, p1, p2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*s*p1 + 3*inv*s*s*p2 + s*s*s
}

func bezierDeriv(s, p1, p2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*p1 + 6*inv*s*(p2-p1) + 3*s*s*(1-p2)
}

// solveBezierX inverts x(s) = t with Newton iterations, falling back to
// bisection when the derivative degenerates
func solveBezierX(t, x1, x2 float64) float64 {
	s := t
	for i := 0; i < 8; i++ {
		x := bezierEval(s, x1, x2) - t
		if math.Abs(x) < 1e-7 {
			return s
		}
		d := bezierDeriv(s, x1, x2)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= x / d
		if s < 0 {
			s = 0
		} else if s > 1 {
			s = 1
		}
	}

	// Bisection fallback: x(s) is monotonic for x controls in [0,1]
	lo, hi := 0.0, 1.0
	for i := 0; i < 32; i++ {
		s = (lo + hi) / 2
		if bezierEval(s, x1, x2) < t {
			lo = s
		} else {
			hi = s
		}
	}
	return s
}

// Point is a single sample of an explicit easing curve
type Point struct {
	T float64 // normalized time in [0,1]
	V float64 // progress at T
}

// Points returns a piecewise-linear curve through explicit samples
// At least two points are required and times must be strictly increasing
func Points(pts []Point) (Easing, error) {
	if len(pts) < 2 {
		return Easing{}, fmt.Errorf("%w: point list needs at least 2 points, got %d", ErrInvalidParameter, len(pts))
	}
	for i, p := range pts {
		if p.T < 0 || p.T > 1 {
			return Easing{}, fmt.Errorf("%w: point %d time %g outside [0,1]", ErrInvalidParameter, i, p.T)
		}
		if i > 0 && p.T <= pts[i-1].T {
			return Easing{}, fmt.Errorf("%w: point times must be strictly increasing at index %d", ErrInvalidParameter, i)
		}
	}

	samples := make([]Point, len(pts))
	copy(samples, pts)

	name := fmt.Sprintf("points(%d)", len(samples))
	return New(name, func(t float64) float64 {
		if t <= samples[0].T {
			return samples[0].V
		}
		last := samples[len(samples)-1]
		if t >= last.T {
			return last.V
		}
		// First sample with T > t; its predecessor starts the segment
		i := sort.Search(len(samples), func(i int) bool { return samples[i].T > t })
		a, b := samples[i-1], samples[i]
		frac := (t - a.T) / (b.T - a.T)
		return a.V + (b.V-a.V)*frac
	}), nil
}

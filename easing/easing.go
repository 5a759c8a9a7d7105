// Package easing provides deterministic progress-remapping curves for the
// motion engine. An Easing carries a stable descriptor name so interpolation
// results can be memoized by the engine cache.
package easing

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned when a parametric curve is constructed
// with out-of-range arguments
var ErrInvalidParameter = errors.New("easing: invalid parameter")

// CurveFunc maps normalized time t in [0,1] to progress
type CurveFunc func(t float64) float64

// Easing is an immutable named progress curve
// The zero value behaves as Linear
type Easing struct {
	name string
	fn   CurveFunc
}

// New wraps a curve function under a descriptor name
func New(name string, fn CurveFunc) Easing {
	return Easing{name: name, fn: fn}
}

// Name returns the descriptor used for cache keys
func (e Easing) Name() string {
	if e.name == "" {
		return "linear"
	}
	return e.name
}

// Apply evaluates the curve at t, clamping t to [0,1]
// Total function: out-of-range input never errors
func (e Easing) Apply(t float64) float64 {
	if t <= 0 {
		t = 0
	} else if t >= 1 {
		t = 1
	}
	if e.fn == nil {
		return t
	}
	return e.fn(t)
}

// Interpolate maps t onto the [from, to] value range through the curve
func (e Easing) Interpolate(t, from, to float64) float64 {
	return from + (to-from)*e.Apply(t)
}

// --- Standard curves ---

var (
	Linear = Easing{name: "linear"}

	InQuad    = New("in-quad", func(t float64) float64 { return t * t })
	OutQuad   = New("out-quad", func(t float64) float64 { return t * (2 - t) })
	InOutQuad = New("in-out-quad", inOut(func(t float64) float64 { return t * t }))

	InCubic    = New("in-cubic", func(t float64) float64 { return t * t * t })
	OutCubic   = New("out-cubic", invert(func(t float64) float64 { return t * t * t }))
	InOutCubic = New("in-out-cubic", inOut(func(t float64) float64 { return t * t * t }))

	InQuart    = New("in-quart", func(t float64) float64 { return t * t * t * t })
	OutQuart   = New("out-quart", invert(func(t float64) float64 { return t * t * t * t }))
	InOutQuart = New("in-out-quart", inOut(func(t float64) float64 { return t * t * t * t }))

	InQuint    = New("in-quint", func(t float64) float64 { return t * t * t * t * t })
	OutQuint   = New("out-quint", invert(func(t float64) float64 { return t * t * t * t * t }))
	InOutQuint = New("in-out-quint", inOut(func(t float64) float64 { return t * t * t * t * t }))

	InSine    = New("in-sine", func(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) })
	OutSine   = New("out-sine", func(t float64) float64 { return math.Sin(t * math.Pi / 2) })
	InOutSine = New("in-out-sine", func(t float64) float64 { return (1 - math.Cos(t*math.Pi)) / 2 })

	InExpo    = New("in-expo", expoIn)
	OutExpo   = New("out-expo", invert(expoIn))
	InOutExpo = New("in-out-expo", inOut(expoIn))

	InCirc    = New("in-circ", circIn)
	OutCirc   = New("out-circ", invert(circIn))
	InOutCirc = New("in-out-circ", inOut(circIn))

	InBounce    = New("in-bounce", func(t float64) float64 { return 1 - bounceOut(1-t) })
	OutBounce   = New("out-bounce", bounceOut)
	InOutBounce = New("in-out-bounce", inOut(func(t float64) float64 { return 1 - bounceOut(1-t) }))

	// Defaults for the parametric families
	InBack     = New("in-back", backInFn(defaultOvershoot))
	OutBack    = New("out-back", invert(backInFn(defaultOvershoot)))
	InOutBack  = New("in-out-back", inOut(backInFn(defaultOvershoot)))
	InElastic  = New("in-elastic", elasticInFn(1, defaultPeriod))
	OutElastic = New("out-elastic", invert(elasticInFn(1, defaultPeriod)))
)

const (
	defaultOvershoot = 1.70158
	defaultPeriod    = 0.3
)

// invert reflects an ease-in curve into its ease-out counterpart
func invert(fn CurveFunc) CurveFunc {
	return func(t float64) float64 { return 1 - fn(1-t) }
}

// inOut splits a curve into symmetric accelerate/decelerate halves
func inOut(fn CurveFunc) CurveFunc {
	return func(t float64) float64 {
		if t < 0.5 {
			return fn(2*t) / 2
		}
		return 1 - fn(2*(1-t))/2
	}
}

func expoIn(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

func circIn(t float64) float64 {
	return 1 - math.Sqrt(1-t*t)
}

// bounceOut is the classic four-segment parabolic bounce
func bounceOut(t float64) float64 {
	const n, d = 7.5625, 2.75
	switch {
	case t < 1/d:
		return n * t * t
	case t < 2/d:
		t -= 1.5 / d
		return n*t*t + 0.75
	case t < 2.5/d:
		t -= 2.25 / d
		return n*t*t + 0.9375
	default:
		t -= 2.625 / d
		return n*t*t + 0.984375
	}
}

func backInFn(s float64) CurveFunc {
	return func(t float64) float64 { return t * t * ((s+1)*t - s) }
}

func elasticInFn(amplitude, period float64) CurveFunc {
	if amplitude < 1 {
		amplitude = 1
	}
	return func(t float64) float64 {
		if t == 0 || t == 1 {
			return t
		}
		s := period / (2 * math.Pi) * math.Asin(1/amplitude)
		t -= 1
		return -(amplitude * math.Pow(2, 10*t) * math.Sin((t-s)*(2*math.Pi)/period))
	}
}

// --- Parametric constructors ---

// Power returns t^p easing; p must be positive
func Power(p float64) (Easing, error) {
	if p <= 0 || math.IsNaN(p) {
		return Easing{}, fmt.Errorf("%w: power exponent %v must be > 0", ErrInvalidParameter, p)
	}
	return New(fmt.Sprintf("power(%g)", p), func(t float64) float64 {
		return math.Pow(t, p)
	}), nil
}

// Back returns an ease-in curve that pulls behind the start before
// accelerating; overshoot controls how far it pulls back
func Back(overshoot float64) (Easing, error) {
	if overshoot < 0 || math.IsNaN(overshoot) {
		return Easing{}, fmt.Errorf("%w: back overshoot %v must be >= 0", ErrInvalidParameter, overshoot)
	}
	return New(fmt.Sprintf("back(%g)", overshoot), backInFn(overshoot)), nil
}

// Elastic returns an exponentially decaying sinusoid ease-in
// Amplitude below 1 is treated as 1; period must be positive
func Elastic(amplitude, period float64) (Easing, error) {
	if period <= 0 || math.IsNaN(period) {
		return Easing{}, fmt.Errorf("%w: elastic period %v must be > 0", ErrInvalidParameter, period)
	}
	if math.IsNaN(amplitude) {
		return Easing{}, fmt.Errorf("%w: elastic amplitude is NaN", ErrInvalidParameter)
	}
	return New(fmt.Sprintf("elastic(%g,%g)", amplitude, period), elasticInFn(amplitude, period)), nil
}

// Steps quantizes output into count discrete levels with no interpolation
// between them. jumpStart moves the jump to the beginning of each interval,
// so any t > 0 is already past the first boundary
func Steps(count int, jumpStart bool) (Easing, error) {
	if count < 1 {
		return Easing{}, fmt.Errorf("%w: step count %d must be >= 1", ErrInvalidParameter, count)
	}
	n := float64(count)
	name := fmt.Sprintf("steps(%d,end)", count)
	if jumpStart {
		name = fmt.Sprintf("steps(%d,start)", count)
	}
	return New(name, func(t float64) float64 {
		var v float64
		if jumpStart {
			v = math.Ceil(t*n) / n
		} else {
			v = math.Floor(t*n) / n
		}
		if v > 1 {
			v = 1
		}
		return v
	}), nil
}

package easing

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

// continuous curves must anchor both endpoints
func TestEndpointAnchors(t *testing.T) {
	curves := []Easing{
		Linear,
		InQuad, OutQuad, InOutQuad,
		InCubic, OutCubic, InOutCubic,
		InQuart, OutQuart, InOutQuart,
		InQuint, OutQuint, InOutQuint,
		InSine, OutSine, InOutSine,
		InExpo, OutExpo, InOutExpo,
		InCirc, OutCirc, InOutCirc,
		InBounce, OutBounce, InOutBounce,
		InBack, OutBack, InOutBack,
		InElastic, OutElastic,
	}

	for _, e := range curves {
		t.Run(e.Name(), func(t *testing.T) {
			if v := e.Apply(0); math.Abs(v) > 1e-6 {
				t.Errorf("Apply(0) = %v, want 0", v)
			}
			if v := e.Apply(1); math.Abs(v-1) > 1e-6 {
				t.Errorf("Apply(1) = %v, want 1", v)
			}
		})
	}
}

func TestApplyClampsOutOfRange(t *testing.T) {
	for _, e := range []Easing{Linear, InQuad, OutBounce} {
		if got, want := e.Apply(-0.5), e.Apply(0); got != want {
			t.Errorf("%s: Apply(-0.5) = %v, want %v", e.Name(), got, want)
		}
		if got, want := e.Apply(1.5), e.Apply(1); got != want {
			t.Errorf("%s: Apply(1.5) = %v, want %v", e.Name(), got, want)
		}
	}
}

func TestInterpolate(t *testing.T) {
	if got := Linear.Interpolate(0.5, 10, 20); math.Abs(got-15) > eps {
		t.Errorf("Linear.Interpolate(0.5, 10, 20) = %v, want 15", got)
	}
	// Discontinuous variants still pin the start value through Interpolate
	steps, err := Steps(4, false)
	if err != nil {
		t.Fatalf("Steps: %v", err)
	}
	if got := steps.Interpolate(0, 5, 9); got != 5 {
		t.Errorf("steps.Interpolate(0, 5, 9) = %v, want 5", got)
	}
	if got := steps.Interpolate(1, 5, 9); got != 9 {
		t.Errorf("steps.Interpolate(1, 5, 9) = %v, want 9", got)
	}
}

func TestSteps(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		jumpStart bool
		t         float64
		want      float64
	}{
		{"end-below-first-boundary", 4, false, 0.2, 0},
		{"end-at-boundary", 4, false, 0.25, 0.25},
		{"end-mid", 4, false, 0.6, 0.5},
		{"end-final", 4, false, 1.0, 1.0},
		{"start-jumps-immediately", 4, true, 0.01, 0.25},
		{"start-mid", 4, true, 0.6, 0.75},
		{"start-zero", 4, true, 0.0, 0},
		{"single-step-end", 1, false, 0.99, 0},
		{"single-step-start", 1, true, 0.01, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Steps(tt.count, tt.jumpStart)
			if err != nil {
				t.Fatalf("Steps(%d): %v", tt.count, err)
			}
			if got := e.Apply(tt.t); math.Abs(got-tt.want) > eps {
				t.Errorf("Apply(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestStepsQuantized(t *testing.T) {
	e, err := Steps(5, false)
	if err != nil {
		t.Fatalf("Steps: %v", err)
	}
	// Output may only take the 6 quantized levels, never between
	levels := map[float64]bool{0: true, 0.2: true, 0.4: true, 0.6: true, 0.8: true, 1: true}
	for ti := 0.0; ti <= 1.0; ti += 0.01 {
		v := e.Apply(ti)
		rounded := math.Round(v*10) / 10
		if !levels[rounded] || math.Abs(v-rounded) > eps {
			t.Fatalf("Apply(%v) = %v is not a step level", ti, v)
		}
	}
}

func TestParametricValidation(t *testing.T) {
	tests := []struct {
		name string
		make func() (Easing, error)
	}{
		{"power-zero", func() (Easing, error) { return Power(0) }},
		{"power-negative", func() (Easing, error) { return Power(-2) }},
		{"elastic-zero-period", func() (Easing, error) { return Elastic(1, 0) }},
		{"elastic-negative-period", func() (Easing, error) { return Elastic(1, -0.3) }},
		{"steps-zero", func() (Easing, error) { return Steps(0, false) }},
		{"back-negative", func() (Easing, error) { return Back(-1) }},
		{"bezier-x-out-of-range", func() (Easing, error) { return CubicBezier(-0.1, 0, 0.5, 1) }},
		{"points-too-few", func() (Easing, error) { return Points([]Point{{0, 0}}) }},
		{"points-not-increasing", func() (Easing, error) {
			return Points([]Point{{0, 0}, {0.5, 0.3}, {0.5, 0.8}, {1, 1}})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.make(); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("got err %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestPower(t *testing.T) {
	e, err := Power(2)
	if err != nil {
		t.Fatalf("Power(2): %v", err)
	}
	if got := e.Apply(0.5); math.Abs(got-0.25) > eps {
		t.Errorf("Power(2).Apply(0.5) = %v, want 0.25", got)
	}
}

func TestCubicBezier(t *testing.T) {
	// ease-in-out-ish curve: starts slow, ends slow, hits midpoint at 0.5
	e, err := CubicBezier(0.42, 0, 0.58, 1)
	if err != nil {
		t.Fatalf("CubicBezier: %v", err)
	}
	if v := e.Apply(0); v != 0 {
		t.Errorf("Apply(0) = %v", v)
	}
	if v := e.Apply(1); v != 1 {
		t.Errorf("Apply(1) = %v", v)
	}
	if v := e.Apply(0.5); math.Abs(v-0.5) > 1e-4 {
		t.Errorf("Apply(0.5) = %v, want 0.5", v)
	}
	// Monotonic for this control set
	prev := -1.0
	for ti := 0.0; ti <= 1.0; ti += 0.02 {
		v := e.Apply(ti)
		if v < prev-eps {
			t.Fatalf("non-monotonic at t=%v: %v < %v", ti, v, prev)
		}
		prev = v
	}
}

func TestPoints(t *testing.T) {
	e, err := Points([]Point{{0, 0}, {0.5, 0.8}, {1, 1}})
	if err != nil {
		t.Fatalf("Points: %v", err)
	}
	if v := e.Apply(0.25); math.Abs(v-0.4) > eps {
		t.Errorf("Apply(0.25) = %v, want 0.4", v)
	}
	if v := e.Apply(0.75); math.Abs(v-0.9) > eps {
		t.Errorf("Apply(0.75) = %v, want 0.9", v)
	}
	if v := e.Apply(1); v != 1 {
		t.Errorf("Apply(1) = %v, want 1", v)
	}
}

func TestRegistry(t *testing.T) {
	if err := Register("half", func(t float64) float64 { return t / 2 }); err != nil {
		t.Fatalf("Register: %v", err)
	}
	e, err := Named("half")
	if err != nil {
		t.Fatalf("Named: %v", err)
	}
	if got := e.Apply(1); math.Abs(got-0.5) > eps {
		t.Errorf("custom Apply(1) = %v, want 0.5", got)
	}
	if e.Name() != "custom:half" {
		t.Errorf("Name() = %q", e.Name())
	}

	if _, err := Named("missing"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Named(missing) err = %v, want ErrInvalidParameter", err)
	}
	if err := Register("", nil); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Register empty err = %v, want ErrInvalidParameter", err)
	}
}

func TestZeroValueIsLinear(t *testing.T) {
	var e Easing
	if e.Name() != "linear" {
		t.Errorf("zero value Name() = %q, want linear", e.Name())
	}
	if got := e.Apply(0.3); math.Abs(got-0.3) > eps {
		t.Errorf("zero value Apply(0.3) = %v", got)
	}
}

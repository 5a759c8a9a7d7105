package spring

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"valid", Config{Mass: 1, Stiffness: 100, Damping: 10}, true},
		{"zero-damping", Config{Mass: 1, Stiffness: 100}, true},
		{"zero-mass", Config{Stiffness: 100, Damping: 10}, false},
		{"negative-mass", Config{Mass: -1, Stiffness: 100}, false},
		{"zero-stiffness", Config{Mass: 1, Damping: 10}, false},
		{"negative-damping", Config{Mass: 1, Stiffness: 100, Damping: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("Validate() = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestValueEndpoints(t *testing.T) {
	s, err := NewSolver(Gentle())
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	if got := s.Value(0, 3, 8); math.Abs(got-3) > 1e-9 {
		t.Errorf("Value(0) = %v, want 3", got)
	}
	// Far future: settled at the target
	if got := s.Value(60, 3, 8); math.Abs(got-8) > 1e-6 {
		t.Errorf("Value(60) = %v, want 8", got)
	}
}

// At or above critical damping the solution never overshoots the target
func TestOverdampedMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		mass := 0.5 + rng.Float64()*4
		stiffness := 20 + rng.Float64()*500
		critical := 2 * math.Sqrt(mass*stiffness)
		damping := critical * (1 + rng.Float64()*2) // zeta in [1, 3]
		from := rng.Float64()*200 - 100
		to := rng.Float64()*200 - 100

		s, err := NewSolver(Config{Mass: mass, Stiffness: stiffness, Damping: damping})
		if err != nil {
			t.Fatalf("NewSolver: %v", err)
		}

		prev := s.Value(0, from, to)
		for tau := 0.01; tau < 5; tau += 0.01 {
			cur := s.Value(tau, from, to)
			if from < to && cur < prev-1e-9 || from > to && cur > prev+1e-9 {
				t.Fatalf("case %d: non-monotonic at tau=%v (m=%v k=%v c=%v from=%v to=%v)",
					i, tau, mass, stiffness, damping, from, to)
			}
			// Never crosses the target
			if (to-cur)*(to-from) < -1e-6 {
				t.Fatalf("case %d: overshoot at tau=%v: value %v past target %v", i, tau, cur, to)
			}
			prev = cur
		}
	}
}

func TestSettled(t *testing.T) {
	s, err := NewSolver(Wobbly())
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}

	if s.Settled(0, 0, 100) {
		t.Error("Settled(0) = true for from != to")
	}

	est := s.EstimateDuration(0, 100)
	if est <= 0 {
		t.Fatalf("EstimateDuration = %v, want > 0", est)
	}
	if !s.Settled(est.Seconds(), 0, 100) {
		t.Errorf("not settled at estimated duration %v", est)
	}
}

func TestSettledIdenticalEndpoints(t *testing.T) {
	s, err := NewSolver(Stiff())
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	if !s.Settled(0, 5, 5) {
		t.Error("identical endpoints should settle immediately")
	}
	if d := s.EstimateDuration(5, 5); d != 0 {
		t.Errorf("EstimateDuration(5,5) = %v, want 0", d)
	}
}

func TestEstimateDurationHolds(t *testing.T) {
	s, err := NewSolver(Bouncy())
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	est := s.EstimateDuration(0, 1)

	// The solution must stay inside the band from the estimate onward
	for off := time.Duration(0); off <= 50*time.Millisecond; off += 5 * time.Millisecond {
		tau := (est + off).Seconds()
		if !s.Settled(tau, 0, 1) {
			t.Errorf("left the precision band %v after the estimate", off)
		}
	}
}

func TestPresetsAreValid(t *testing.T) {
	presets := map[string]Config{
		"gentle":       Gentle(),
		"wobbly":       Wobbly(),
		"stiff":        Stiff(),
		"slow":         Slow(),
		"bouncy":       Bouncy(),
		"no-overshoot": NoOvershoot(),
	}
	for name, cfg := range presets {
		t.Run(name, func(t *testing.T) {
			if _, err := NewSolver(cfg); err != nil {
				t.Errorf("preset invalid: %v", err)
			}
		})
	}
}

func TestNoOvershootPresetIsCritical(t *testing.T) {
	s, err := NewSolver(NoOvershoot())
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	prev := s.Value(0, 0, 1)
	for tau := 0.005; tau < 3; tau += 0.005 {
		cur := s.Value(tau, 0, 1)
		if cur > 1+1e-6 {
			t.Fatalf("overshoot at tau=%v: %v", tau, cur)
		}
		if cur < prev-1e-9 {
			t.Fatalf("non-monotonic at tau=%v", tau)
		}
		prev = cur
	}
}

func TestDefaultPrecisionApplied(t *testing.T) {
	s, err := NewSolver(Config{Mass: 1, Stiffness: 100, Damping: 10})
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	if got := s.Precision(); got != DefaultPrecision {
		t.Errorf("Precision() = %v, want %v", got, DefaultPrecision)
	}
}

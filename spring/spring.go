// Package spring implements a closed-form damped harmonic oscillator used for
// physically motivated animation. Position and velocity are evaluated directly
// at any elapsed time, so callers can tick at arbitrary rates without
// accumulating integration error.
package spring

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidParameter is returned for non-physical spring configuration
var ErrInvalidParameter = errors.New("spring: invalid parameter")

// DefaultPrecision is the settle band applied when Config.Precision is zero
const DefaultPrecision = 0.01

// Config describes the oscillator
// Mass and Stiffness must be strictly positive; Damping must be non-negative
type Config struct {
	Mass      float64
	Stiffness float64
	Damping   float64
	Velocity  float64 // initial velocity in value units per second
	Precision float64 // settle band half-width; 0 selects DefaultPrecision
}

// Validate rejects configurations the closed-form solution is undefined for
func (c Config) Validate() error {
	if c.Mass <= 0 || math.IsNaN(c.Mass) {
		return fmt.Errorf("%w: mass %v must be > 0", ErrInvalidParameter, c.Mass)
	}
	if c.Stiffness <= 0 || math.IsNaN(c.Stiffness) {
		return fmt.Errorf("%w: stiffness %v must be > 0", ErrInvalidParameter, c.Stiffness)
	}
	if c.Damping < 0 || math.IsNaN(c.Damping) {
		return fmt.Errorf("%w: damping %v must be >= 0", ErrInvalidParameter, c.Damping)
	}
	return nil
}

// Solver evaluates the oscillator for a fixed Config
// Derived quantities are precomputed once at construction
type Solver struct {
	cfg       Config
	omega0    float64 // natural angular frequency sqrt(k/m)
	zeta      float64 // damping ratio: damping / (2*sqrt(k*m))
	precision float64
}

// NewSolver validates cfg and precomputes the solution branch parameters
func NewSolver(cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	precision := cfg.Precision
	if precision <= 0 {
		precision = DefaultPrecision
	}
	return &Solver{
		cfg:       cfg,
		omega0:    math.Sqrt(cfg.Stiffness / cfg.Mass),
		zeta:      cfg.Damping / (2 * math.Sqrt(cfg.Stiffness*cfg.Mass)),
		precision: precision,
	}, nil
}

// Config returns the solver's configuration
func (s *Solver) Config() Config { return s.cfg }

// Precision returns the effective settle band half-width
func (s *Solver) Precision() float64 { return s.precision }

// Value returns position at elapsed time tau (seconds) moving from -> to
func (s *Solver) Value(tau, from, to float64) float64 {
	x, _ := s.solve(tau, from, to)
	return x
}

// VelocityAt returns velocity at elapsed time tau (seconds)
func (s *Solver) VelocityAt(tau, from, to float64) float64 {
	_, v := s.solve(tau, from, to)
	return v
}

// solve selects the damping branch and evaluates position and velocity
// Displacement is expressed relative to the rest position `to`
func (s *Solver) solve(tau, from, to float64) (pos, vel float64) {
	if tau < 0 {
		tau = 0
	}
	a := from - to // initial displacement
	v0 := s.cfg.Velocity
	w0 := s.omega0
	z := s.zeta

	switch {
	case z < 1:
		// Underdamped: decaying sinusoid at the damped frequency
		wd := w0 * math.Sqrt(1-z*z)
		b := (v0 + z*w0*a) / wd
		env := math.Exp(-z * w0 * tau)
		sin, cos := math.Sincos(wd * tau)
		pos = to + env*(a*cos+b*sin)
		vel = env * ((b*wd-a*z*w0)*cos - (a*wd+b*z*w0)*sin)

	case z == 1:
		// Critically damped
		c := v0 + w0*a
		env := math.Exp(-w0 * tau)
		pos = to + env*(a+c*tau)
		vel = env * (c - w0*(a+c*tau))

	default:
		// Overdamped: two real exponential modes
		disc := w0 * math.Sqrt(z*z-1)
		r1 := -z*w0 + disc
		r2 := -z*w0 - disc
		c1 := (v0 - r2*a) / (r1 - r2)
		c2 := a - c1
		e1 := math.Exp(r1 * tau)
		e2 := math.Exp(r2 * tau)
		pos = to + c1*e1 + c2*e2
		vel = c1*r1*e1 + c2*r2*e2
	}
	return pos, vel
}

// Settled reports whether both position and velocity are inside the precision
// band at tau. Identical endpoints settle immediately regardless of tau
func (s *Solver) Settled(tau, from, to float64) bool {
	if from == to && s.cfg.Velocity == 0 {
		return true
	}
	pos, vel := s.solve(tau, from, to)
	return math.Abs(pos-to) < s.precision && math.Abs(vel) < s.precision
}

// estimateStep and estimateCap bound the numeric settling search
// Settling time has no closed form for arbitrary parameters, so the solution
// is sampled forward until it enters the precision band and stays there
const (
	estimateStep = time.Millisecond
	estimateHold = 100 * time.Millisecond
	estimateCap  = 30 * time.Second
)

// EstimateDuration returns the first time at which the solution enters the
// precision band around `to` and remains inside it for a hold window
func (s *Solver) EstimateDuration(from, to float64) time.Duration {
	if from == to && s.cfg.Velocity == 0 {
		return 0
	}

	var settledSince time.Duration = -1
	for t := time.Duration(0); t <= estimateCap; t += estimateStep {
		if s.Settled(t.Seconds(), from, to) {
			if settledSince < 0 {
				settledSince = t
			}
			if t-settledSince >= estimateHold {
				return settledSince
			}
		} else {
			settledSince = -1
		}
	}
	if settledSince >= 0 {
		return settledSince
	}
	return estimateCap
}

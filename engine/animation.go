package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/lixenwraith/motion/easing"
	"github.com/lixenwraith/motion/property"
	"github.com/lixenwraith/motion/spring"
)

// ErrInvalidParameter is returned for animation configuration the engine
// cannot run; raised at construction, never mid-animation
var ErrInvalidParameter = errors.New("engine: invalid parameter")

// State is the animation runtime state
type State uint8

const (
	StatePending State = iota
	StateRunning
	StatePaused
	StateCompleted
	StateCancelled
)

// String implements fmt.Stringer
func (s State) String() string {
	switch s {
	case StatePending:
		return "Pending"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateCompleted:
		return "Completed"
	case StateCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// LoopMode controls repetition
type LoopMode uint8

const (
	LoopNone LoopMode = iota
	LoopCount
	LoopInfinite
)

// Direction controls playback orientation per cycle
type Direction uint8

const (
	DirectionNormal Direction = iota
	DirectionReverse
	DirectionAlternate
)

// Update is one resolved property output delivered to a sink
type Update struct {
	Target   string
	Property string
	Category property.Category
	Value    property.Value
}

// Sink receives interpolated values; the caller resolves targets to live
// widget properties. Implementations must not retain the Update past the call
type Sink interface {
	Apply(Update)
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(Update)

// Apply implements Sink
func (f SinkFunc) Apply(u Update) { f(u) }

// AnimConfig configures a single animation
// Spring, when set, overrides Easing and Duration: spring animations run on
// raw elapsed time until settled instead of normalizing to [0,1]
type AnimConfig struct {
	Duration   time.Duration
	Delay      time.Duration
	Easing     easing.Easing
	Spring     *spring.Config
	Loop       LoopMode
	LoopCount  int
	Direction  Direction
	Autoplay   bool
	OnComplete func()
}

// Animation is a single timed transition of one property (or grouped set)
// from start to end values. It is owned exclusively by whichever Timeline or
// Manager registered it; after construction only the runtime state mutates,
// and only through Start/Pause/Resume/Cancel and Tick
type Animation struct {
	id     string
	target string
	prop   property.Property
	cfg    AnimConfig

	solver *spring.Solver // non-nil selects spring mode
	sink   Sink
	cache  *InterpolationCache // optional, injected by the owning Manager

	state   State
	elapsed time.Duration // advanced only while Running
	fired   bool          // OnComplete delivered
}

// NewAnimation validates cfg and builds an animation in StatePending
func NewAnimation(target string, prop property.Property, cfg AnimConfig, sink Sink) (*Animation, error) {
	a := &Animation{
		id:     xid.New().String(),
		target: target,
		prop:   prop,
		cfg:    cfg,
		sink:   sink,
	}

	if cfg.Spring != nil {
		solver, err := spring.NewSolver(*cfg.Spring)
		if err != nil {
			return nil, fmt.Errorf("animation %q: %w", target, err)
		}
		a.solver = solver
	} else if cfg.Duration <= 0 {
		return nil, fmt.Errorf("%w: animation %q duration %v must be > 0", ErrInvalidParameter, target, cfg.Duration)
	}

	if cfg.Loop == LoopCount && cfg.LoopCount < 1 {
		return nil, fmt.Errorf("%w: animation %q loop count %d must be >= 1", ErrInvalidParameter, target, cfg.LoopCount)
	}
	if cfg.Delay < 0 {
		return nil, fmt.Errorf("%w: animation %q delay %v must be >= 0", ErrInvalidParameter, target, cfg.Delay)
	}

	return a, nil
}

// ID returns the unique animation instance id
func (a *Animation) ID() string { return a.id }

// Target returns the external target identifier
func (a *Animation) Target() string { return a.target }

// State returns the current runtime state
func (a *Animation) State() State { return a.state }

// Elapsed returns accumulated running time, including the delay window
func (a *Animation) Elapsed() time.Duration { return a.elapsed }

// Start transitions Pending -> Running; a no-op in any other state
func (a *Animation) Start() {
	if a.state == StatePending {
		a.state = StateRunning
	}
}

// Pause freezes elapsed-time accounting without altering accumulated time
func (a *Animation) Pause() {
	if a.state == StateRunning {
		a.state = StatePaused
	}
}

// Resume continues a paused animation
func (a *Animation) Resume() {
	if a.state == StatePaused {
		a.state = StateRunning
	}
}

// Cancel stops all future ticks without invoking OnComplete
// Reachable from any non-terminal state
func (a *Animation) Cancel() {
	if a.state != StateCompleted && a.state != StateCancelled {
		a.state = StateCancelled
	}
}

// TotalDuration returns delay plus active time, used for timeline placement
// Spring durations are estimated numerically; infinite loops report one cycle
func (a *Animation) TotalDuration() time.Duration {
	if a.solver != nil {
		return a.cfg.Delay + a.solver.EstimateDuration(0, 1)
	}
	switch a.cfg.Loop {
	case LoopCount:
		return a.cfg.Delay + a.cfg.Duration*time.Duration(a.cfg.LoopCount)
	default:
		return a.cfg.Delay + a.cfg.Duration
	}
}

// setCache injects the owning manager's interpolation cache
func (a *Animation) setCache(c *InterpolationCache) { a.cache = c }

// Tick advances the animation by delta and returns the updates produced
// Ticks in any state but Running are silent no-ops
func (a *Animation) Tick(delta time.Duration) []Update {
	if a.state != StateRunning {
		return nil
	}

	a.elapsed += delta
	tau := a.elapsed - a.cfg.Delay
	if tau < 0 {
		// Still inside the delay window
		return nil
	}

	if a.solver != nil {
		return a.tickSpring(tau)
	}
	return a.tickEased(tau)
}

// tickSpring evaluates the closed-form solution per leaf on raw elapsed time
func (a *Animation) tickSpring(tau time.Duration) []Update {
	sec := tau.Seconds()

	if a.solver.Settled(sec, 0, 1) {
		// Snap every leaf to its exact end value on the settling tick
		updates := a.emit(a.prop.At(1, func(from, to, t float64) float64 { return to }))
		a.complete()
		return updates
	}

	interp := func(from, to, t float64) float64 {
		return a.solver.Value(sec, from, to)
	}
	return a.emit(a.prop.At(0, interp))
}

// tickEased computes loop/direction-adjusted progress and applies easing,
// consulting the interpolation cache when one is attached
func (a *Animation) tickEased(tau time.Duration) []Update {
	ratio := float64(tau) / float64(a.cfg.Duration)

	var cycle int
	var frac float64
	done := false

	switch a.cfg.Loop {
	case LoopInfinite:
		cycle = int(ratio)
		frac = ratio - float64(cycle)
	case LoopCount:
		cycle = int(ratio)
		if cycle >= a.cfg.LoopCount {
			cycle = a.cfg.LoopCount - 1
			frac = 1
			done = true
		} else {
			frac = ratio - float64(cycle)
		}
	default:
		if ratio >= 1 {
			frac = 1
			done = true
		} else {
			frac = ratio
		}
	}

	progress := frac
	switch a.cfg.Direction {
	case DirectionReverse:
		progress = 1 - frac
	case DirectionAlternate:
		if cycle%2 == 1 {
			progress = 1 - frac
		}
	}

	updates := a.emit(a.prop.At(progress, a.interpolator()))
	if done {
		a.complete()
	}
	return updates
}

// interpolator returns the scalar interpolation path, memoized when a cache
// is attached
func (a *Animation) interpolator() property.Interpolator {
	e := a.cfg.Easing
	if a.cache == nil {
		return func(from, to, t float64) float64 {
			return e.Interpolate(t, from, to)
		}
	}
	name := e.Name()
	return func(from, to, t float64) float64 {
		key := interpKey(name, from, to, t)
		return a.cache.GetOrCompute(key, func() float64 {
			return e.Interpolate(t, from, to)
		})
	}
}

// emit converts resolved property values to updates and feeds the sink
func (a *Animation) emit(vals []property.PropertyValue) []Update {
	if len(vals) == 0 {
		return nil
	}
	updates := make([]Update, len(vals))
	for i, v := range vals {
		updates[i] = Update{
			Target:   a.target,
			Property: v.Name,
			Category: v.Category,
			Value:    v.Value,
		}
		if a.sink != nil {
			a.sink.Apply(updates[i])
		}
	}
	return updates
}

// complete transitions to Completed and delivers OnComplete exactly once
func (a *Animation) complete() {
	a.state = StateCompleted
	if !a.fired && a.cfg.OnComplete != nil {
		a.fired = true
		a.cfg.OnComplete()
	}
}

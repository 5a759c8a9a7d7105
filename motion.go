// Package motion is the animation engine of a terminal widget toolkit:
// property interpolation, spring physics, timeline sequencing, stagger delay
// computation, and batched update dispatch.
//
// The engine never renders and never self-schedules. Callers register
// animations against string target identifiers, drive them with elapsed-time
// deltas through Manager.UpdateAll, and apply the resulting batched values to
// their own widget properties through a Sink.
package motion

import (
	"fmt"
	"sort"
	"time"

	"github.com/lixenwraith/motion/easing"
	"github.com/lixenwraith/motion/engine"
	"github.com/lixenwraith/motion/property"
	"github.com/lixenwraith/motion/spring"
)

// FromTo is a scalar start/end pair
type FromTo struct {
	From, To float64
}

// PairFromTo is a 2D start/end pair
type PairFromTo struct {
	From, To property.Pair
}

// ColorFromTo is a color start/end pair
type ColorFromTo struct {
	From, To property.RGB
}

// Params enumerates everything Animate accepts: timing, easing or spring
// selection, loop mode, direction, autoplay, the fixed set of common
// properties, a custom scalar map, and a keyframe sequence alternative
type Params struct {
	Duration   time.Duration
	Delay      time.Duration
	Easing     easing.Easing
	Spring     *spring.Config
	Loop       engine.LoopMode
	LoopCount  int
	Direction  engine.Direction
	Autoplay   bool
	OnComplete func()
	Sink       engine.Sink

	Opacity    *FromTo
	TranslateX *FromTo
	TranslateY *FromTo
	Scale      *FromTo
	Rotate     *FromTo
	Color      *ColorFromTo
	Size       *PairFromTo
	Position   *PairFromTo
	Custom     map[string]FromTo
	Frames     *property.KeyframeSequence
}

// Animate builds an animation for target from params
// At least one property must be given. The animation is returned in Pending
// state; register it with a Manager (or Timeline) to drive it
func Animate(target string, p Params) (*engine.Animation, error) {
	props := make([]property.Property, 0, 4)

	if p.Opacity != nil {
		props = append(props, property.Opacity(p.Opacity.From, p.Opacity.To))
	}
	if p.Position != nil {
		props = append(props, property.Position(p.Position.From, p.Position.To))
	}
	if p.Size != nil {
		props = append(props, property.Size(p.Size.From, p.Size.To))
	}
	if p.TranslateX != nil {
		props = append(props, property.TranslateX(p.TranslateX.From, p.TranslateX.To))
	}
	if p.TranslateY != nil {
		props = append(props, property.TranslateY(p.TranslateY.From, p.TranslateY.To))
	}
	if p.Scale != nil {
		props = append(props, property.Scale(p.Scale.From, p.Scale.To))
	}
	if p.Rotate != nil {
		props = append(props, property.Rotation(p.Rotate.From, p.Rotate.To))
	}
	if p.Color != nil {
		props = append(props, property.Color(p.Color.From, p.Color.To))
	}
	if len(p.Custom) > 0 {
		names := make([]string, 0, len(p.Custom))
		for name := range p.Custom {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			ft := p.Custom[name]
			props = append(props, property.Custom(name, ft.From, ft.To))
		}
	}
	if p.Frames != nil {
		props = append(props, property.Frames(p.Frames))
	}

	if len(props) == 0 {
		return nil, fmt.Errorf("%w: animation %q has no properties", engine.ErrInvalidParameter, target)
	}

	var prop property.Property
	if len(props) == 1 {
		prop = props[0]
	} else {
		prop = property.Set(props...)
	}

	duration := p.Duration
	if duration == 0 && p.Frames != nil {
		duration = p.Frames.Duration()
	}

	cfg := engine.AnimConfig{
		Duration:   duration,
		Delay:      p.Delay,
		Easing:     p.Easing,
		Spring:     p.Spring,
		Loop:       p.Loop,
		LoopCount:  p.LoopCount,
		Direction:  p.Direction,
		Autoplay:   p.Autoplay,
		OnComplete: p.OnComplete,
	}
	return engine.NewAnimation(target, prop, cfg, p.Sink)
}

// NewTimeline creates an empty timeline builder
func NewTimeline() *engine.Timeline {
	return engine.NewTimeline()
}

// NewManager creates the tick context holding independent animations
func NewManager(cfg engine.ManagerConfig) *engine.Manager {
	return engine.NewManager(cfg)
}

// Stagger returns a stagger configuration with base delay applied
func Stagger(base time.Duration, cfg engine.StaggerConfig) engine.StaggerConfig {
	cfg.Base = base
	return cfg
}

package property

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/lixenwraith/motion/easing"
)

// ErrInvalidKeyframes is returned for malformed keyframe sequences
var ErrInvalidKeyframes = errors.New("property: invalid keyframes")

// Keyframe is one value snapshot at a normalized time
// Easing, when set, shapes the segment arriving at this keyframe
type Keyframe struct {
	Time   float64
	Values map[string]Value
	Easing *easing.Easing
}

// KeyframeSequence interpolates through ordered snapshots by progress
// fraction rather than simple two-point easing
type KeyframeSequence struct {
	frames   []Keyframe
	names    []string // union of property names, first-occurrence order
	duration time.Duration
}

// NewKeyframeSequence validates and builds a sequence
// Times must lie in [0,1] and be strictly increasing; duplicates are a
// construction error
func NewKeyframeSequence(duration time.Duration, frames []Keyframe) (*KeyframeSequence, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: sequence needs at least one keyframe", ErrInvalidKeyframes)
	}
	for i, f := range frames {
		if f.Time < 0 || f.Time > 1 {
			return nil, fmt.Errorf("%w: keyframe %d time %g outside [0,1]", ErrInvalidKeyframes, i, f.Time)
		}
		if i > 0 && f.Time <= frames[i-1].Time {
			return nil, fmt.Errorf("%w: keyframe times must be strictly increasing at index %d", ErrInvalidKeyframes, i)
		}
	}

	s := &KeyframeSequence{
		frames:   make([]Keyframe, len(frames)),
		duration: duration,
	}
	copy(s.frames, frames)

	// Union of names with deterministic output ordering
	seen := make(map[string]bool)
	for _, f := range frames {
		keys := make([]string, 0, len(f.Values))
		for name := range f.Values {
			keys = append(keys, name)
		}
		sort.Strings(keys)
		for _, name := range keys {
			if !seen[name] {
				seen[name] = true
				s.names = append(s.names, name)
			}
		}
	}
	return s, nil
}

// Duration returns the configured total duration
func (s *KeyframeSequence) Duration() time.Duration { return s.duration }

// InterpolateAt resolves every property at progress, clamping before the
// first keyframe and after the last. Properties absent from a bracketing
// keyframe hold their last known value; no extrapolation
func (s *KeyframeSequence) InterpolateAt(progress float64) []PropertyValue {
	out := make([]PropertyValue, 0, len(s.names))
	for _, name := range s.names {
		if v, ok := s.valueAt(name, progress); ok {
			out = append(out, PropertyValue{Name: name, Category: CategoryFor(name), Value: v})
		}
	}
	return out
}

// valueAt resolves one property at progress
func (s *KeyframeSequence) valueAt(name string, progress float64) (Value, bool) {
	// Segment start: last frame with Time <= progress
	// sort.Search finds the first frame past progress
	idx := sort.Search(len(s.frames), func(i int) bool { return s.frames[i].Time > progress }) - 1

	if idx < 0 {
		// Before the first keyframe: clamp to the earliest known value
		return s.firstValue(name, 0)
	}

	// Last frame at or before the segment start that defines this property
	held := -1
	for i := idx; i >= 0; i-- {
		if _, ok := s.frames[i].Values[name]; ok {
			held = i
			break
		}
	}
	if held == -1 {
		// Property only appears later; clamp to its first occurrence
		return s.firstValue(name, idx+1)
	}

	// After the last keyframe, or property missing from the next frame: hold
	if idx >= len(s.frames)-1 {
		return s.frames[held].Values[name], true
	}
	next := s.frames[idx+1]
	nextVal, ok := next.Values[name]
	if !ok || held != idx {
		return s.frames[held].Values[name], true
	}

	cur := s.frames[idx]
	span := next.Time - cur.Time
	local := (progress - cur.Time) / span
	if next.Easing != nil {
		local = next.Easing.Apply(local)
	}
	return cur.Values[name].Lerp(nextVal, local), true
}

// firstValue returns the earliest value of name at or after frame index start
func (s *KeyframeSequence) firstValue(name string, start int) (Value, bool) {
	for i := start; i < len(s.frames); i++ {
		if v, ok := s.frames[i].Values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

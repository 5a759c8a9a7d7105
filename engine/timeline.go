package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/xid"
)

// ErrMalformedPlacement is returned for unparseable placement strings at Add
// time, never at playback
var ErrMalformedPlacement = errors.New("engine: malformed placement")

// ErrUnknownLabel is returned at Build time for placements referencing a
// label that was never added
var ErrUnknownLabel = errors.New("engine: unknown label")

// placementKind tags the parsed placement grammar variant
type placementKind uint8

const (
	placeStart     placementKind = iota // "" or "0": timeline start
	placeAfterPrev                      // "+=N": N ms after end of previous entry
	placeBefore                         // "-=N": N ms before end of previous entry
	placePercent                        // "P%": percentage of total duration
	placeAbsolute                       // "Ns": absolute seconds from start
	placeLabel                          // bare name: previously registered label
)

type placement struct {
	kind    placementKind
	offset  time.Duration
	percent float64
	label   string
}

// parsePlacement validates the placement grammar
func parsePlacement(s string) (placement, error) {
	s = strings.TrimSpace(s)

	switch {
	case s == "" || s == "0":
		return placement{kind: placeStart}, nil

	case strings.HasPrefix(s, "+=") || strings.HasPrefix(s, "-="):
		ms, err := strconv.ParseFloat(s[2:], 64)
		if err != nil || ms < 0 {
			return placement{}, fmt.Errorf("%w: %q", ErrMalformedPlacement, s)
		}
		kind := placeAfterPrev
		if s[0] == '-' {
			kind = placeBefore
		}
		return placement{kind: kind, offset: time.Duration(ms * float64(time.Millisecond))}, nil

	case strings.HasSuffix(s, "%"):
		pct, err := strconv.ParseFloat(s[:len(s)-1], 64)
		if err != nil || pct < 0 {
			return placement{}, fmt.Errorf("%w: %q", ErrMalformedPlacement, s)
		}
		return placement{kind: placePercent, percent: pct}, nil

	case strings.HasSuffix(s, "s"):
		if sec, err := strconv.ParseFloat(s[:len(s)-1], 64); err == nil {
			if sec < 0 {
				return placement{}, fmt.Errorf("%w: %q", ErrMalformedPlacement, s)
			}
			return placement{kind: placeAbsolute, offset: time.Duration(sec * float64(time.Second))}, nil
		}
		// Falls through: names ending in "s" that are not numbers are labels
	}

	// A bare number other than "0" is ambiguous, not a label
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return placement{}, fmt.Errorf("%w: bare number %q (use \"Ns\" or \"+=N\")", ErrMalformedPlacement, s)
	}
	return placement{kind: placeLabel, label: s}, nil
}

// timelineEntry is one placed child animation
type timelineEntry struct {
	anim     *Animation
	place    placement
	start    time.Duration
	resolved bool
	fed      time.Duration // local time already delivered to the child
}

// Timeline composes animations at absolute and relative offsets, advancing
// them as one scheduled unit under a single shared clock
type Timeline struct {
	id      string
	entries []*timelineEntry
	labels  map[string]time.Duration
	cursor  time.Duration // end of the last entry resolvable at add time
	built   bool
	total   time.Duration

	state   State
	elapsed time.Duration
}

// NewTimeline creates an empty timeline
func NewTimeline() *Timeline {
	return &Timeline{
		id:     xid.New().String(),
		labels: make(map[string]time.Duration),
	}
}

// ID returns the unique timeline instance id
func (t *Timeline) ID() string { return t.id }

// State returns the timeline runtime state
func (t *Timeline) State() State { return t.state }

// Add places an animation; pos follows the placement grammar
// Parse failures surface here, not at playback
func (t *Timeline) Add(a *Animation, pos string) error {
	if t.built {
		return fmt.Errorf("%w: timeline already built", ErrInvalidParameter)
	}
	place, err := parsePlacement(pos)
	if err != nil {
		return err
	}

	entry := &timelineEntry{anim: a, place: place}

	// Resolve what can be resolved now; percent and label placements wait
	// for Build, and do not advance the cursor
	switch place.kind {
	case placeStart:
		entry.start = 0
		entry.resolved = true
	case placeAfterPrev:
		entry.start = t.cursor + place.offset
		entry.resolved = true
	case placeBefore:
		entry.start = t.cursor - place.offset
		if entry.start < 0 {
			entry.start = 0
		}
		entry.resolved = true
	case placeAbsolute:
		entry.start = place.offset
		entry.resolved = true
	}
	if entry.resolved {
		t.cursor = entry.start + a.TotalDuration()
	}

	t.entries = append(t.entries, entry)
	return nil
}

// AddLabel records the current cursor position under name
func (t *Timeline) AddLabel(name string) error {
	if t.built {
		return fmt.Errorf("%w: timeline already built", ErrInvalidParameter)
	}
	if name == "" {
		return fmt.Errorf("%w: empty label name", ErrInvalidParameter)
	}
	if _, exists := t.labels[name]; exists {
		return fmt.Errorf("%w: duplicate label %q", ErrInvalidParameter, name)
	}
	t.labels[name] = t.cursor
	return nil
}

// Build resolves all deferred placements into absolute start offsets and
// freezes the schedule. Percent placements resolve against the furthest end
// among non-percent entries; label references may be forward references
func (t *Timeline) Build() error {
	if t.built {
		return nil
	}

	// Labels first, since the label map is complete by now
	for _, e := range t.entries {
		if e.place.kind != placeLabel {
			continue
		}
		off, ok := t.labels[e.place.label]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownLabel, e.place.label)
		}
		e.start = off
		e.resolved = true
	}

	// Total duration known only once everything but percents is placed
	var base time.Duration
	for _, e := range t.entries {
		if e.resolved {
			if end := e.start + e.anim.TotalDuration(); end > base {
				base = end
			}
		}
	}

	t.total = base
	for _, e := range t.entries {
		if e.place.kind == placePercent {
			e.start = time.Duration(e.place.percent / 100 * float64(base))
			e.resolved = true
		}
		if end := e.start + e.anim.TotalDuration(); end > t.total {
			t.total = end
		}
	}

	t.built = true
	return nil
}

// Duration returns the resolved schedule length; zero before Build
func (t *Timeline) Duration() time.Duration { return t.total }

// Start transitions Pending -> Running; children start as their local start
// times pass. Starting an unbuilt timeline builds it first
func (t *Timeline) Start() error {
	if t.state != StatePending {
		return nil
	}
	if err := t.Build(); err != nil {
		return err
	}
	t.state = StateRunning
	return nil
}

// Pause freezes the shared clock
func (t *Timeline) Pause() {
	if t.state == StateRunning {
		t.state = StatePaused
	}
}

// Resume continues a paused timeline
func (t *Timeline) Resume() {
	if t.state == StatePaused {
		t.state = StateRunning
	}
}

// Cancel stops the timeline and all children synchronously
func (t *Timeline) Cancel() {
	if t.state == StateCompleted || t.state == StateCancelled {
		return
	}
	t.state = StateCancelled
	for _, e := range t.entries {
		e.anim.Cancel()
	}
}

// Tick advances the shared clock and dispatches local elapsed time to each
// child in registration order
func (t *Timeline) Tick(delta time.Duration) []Update {
	if t.state != StateRunning {
		return nil
	}

	t.elapsed += delta

	var updates []Update
	live := false
	for _, e := range t.entries {
		local := t.elapsed - e.start
		if local <= 0 {
			live = true
			continue
		}
		if e.anim.State() == StatePending {
			e.anim.Start()
		}
		if feed := local - e.fed; feed > 0 {
			updates = append(updates, e.anim.Tick(feed)...)
			e.fed = local
		}
		if st := e.anim.State(); st == StateRunning || st == StatePaused {
			live = true
		}
	}

	if !live {
		t.state = StateCompleted
	}
	return updates
}

// setCache injects the owning manager's interpolation cache into children
func (t *Timeline) setCache(c *InterpolationCache) {
	for _, e := range t.entries {
		e.anim.setCache(c)
	}
}

package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/motion/property"
)

func anim(t *testing.T, dur time.Duration) *Animation {
	t.Helper()
	a, err := NewAnimation("box", property.Opacity(0, 1), AnimConfig{Duration: dur}, nil)
	if err != nil {
		t.Fatalf("NewAnimation: %v", err)
	}
	return a
}

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		in   string
		kind placementKind
		ok   bool
	}{
		{"", placeStart, true},
		{"0", placeStart, true},
		{"+=200", placeAfterPrev, true},
		{"-=100", placeBefore, true},
		{"50%", placePercent, true},
		{"1.5s", placeAbsolute, true},
		{"intro", placeLabel, true},
		{"flowers", placeLabel, true}, // ends in "s" but not a number
		{"  +=50  ", placeAfterPrev, true},
		{"42", 0, false}, // bare number is ambiguous
		{"+=abc", 0, false},
		{"+=-5", 0, false},
		{"x%", 0, false},
		{"-10%", 0, false},
		{"-2s", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := parsePlacement(tt.in)
			if tt.ok {
				if err != nil {
					t.Fatalf("parsePlacement(%q) = %v", tt.in, err)
				}
				if p.kind != tt.kind {
					t.Errorf("kind = %v, want %v", p.kind, tt.kind)
				}
				return
			}
			if !errors.Is(err, ErrMalformedPlacement) {
				t.Errorf("err = %v, want ErrMalformedPlacement", err)
			}
		})
	}
}

// A at start (500ms), B placed "+=200": B starts at 700ms absolute
func TestTimelineRelativePlacement(t *testing.T) {
	tl := NewTimeline()
	a := anim(t, 500*time.Millisecond)
	b := anim(t, 300*time.Millisecond)

	if err := tl.Add(a, ""); err != nil {
		t.Fatalf("Add a: %v", err)
	}
	if err := tl.Add(b, "+=200"); err != nil {
		t.Fatalf("Add b: %v", err)
	}
	if err := tl.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := tl.entries[1].start; got != 700*time.Millisecond {
		t.Errorf("B start = %v, want 700ms", got)
	}
	if got := tl.Duration(); got != time.Second {
		t.Errorf("Duration = %v, want 1s", got)
	}
}

func TestTimelineBeforePlacement(t *testing.T) {
	tl := NewTimeline()
	tl.Add(anim(t, 500*time.Millisecond), "")
	tl.Add(anim(t, 200*time.Millisecond), "-=100")

	if got := tl.entries[1].start; got != 400*time.Millisecond {
		t.Errorf("start = %v, want 400ms", got)
	}

	// Underflow clamps to zero rather than going negative
	tl2 := NewTimeline()
	tl2.Add(anim(t, 100*time.Millisecond), "")
	tl2.Add(anim(t, 100*time.Millisecond), "-=500")
	if got := tl2.entries[1].start; got != 0 {
		t.Errorf("clamped start = %v, want 0", got)
	}
}

func TestTimelineAbsoluteAndPercent(t *testing.T) {
	tl := NewTimeline()
	tl.Add(anim(t, time.Second), "")
	tl.Add(anim(t, 100*time.Millisecond), "1.5s")
	if err := tl.Add(anim(t, 100*time.Millisecond), "50%"); err != nil {
		t.Fatalf("Add percent: %v", err)
	}
	if err := tl.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := tl.entries[1].start; got != 1500*time.Millisecond {
		t.Errorf("absolute start = %v, want 1.5s", got)
	}
	// 50% of the 1.6s non-percent span
	if got := tl.entries[2].start; got != 800*time.Millisecond {
		t.Errorf("percent start = %v, want 800ms", got)
	}
}

func TestTimelineLabels(t *testing.T) {
	tl := NewTimeline()
	tl.Add(anim(t, 300*time.Millisecond), "")
	if err := tl.AddLabel("intro-done"); err != nil {
		t.Fatalf("AddLabel: %v", err)
	}
	tl.Add(anim(t, 100*time.Millisecond), "intro-done")
	if err := tl.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := tl.entries[1].start; got != 300*time.Millisecond {
		t.Errorf("label start = %v, want 300ms", got)
	}

	if err := NewTimeline().AddLabel(""); err == nil {
		t.Error("empty label accepted")
	}
	dup := NewTimeline()
	dup.AddLabel("x")
	if err := dup.AddLabel("x"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("duplicate label err = %v", err)
	}
}

func TestTimelineUnknownLabel(t *testing.T) {
	tl := NewTimeline()
	tl.Add(anim(t, 100*time.Millisecond), "never-defined")
	if err := tl.Build(); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("Build err = %v, want ErrUnknownLabel", err)
	}
}

func TestTimelineAddAfterBuild(t *testing.T) {
	tl := NewTimeline()
	tl.Add(anim(t, 100*time.Millisecond), "")
	tl.Build()
	if err := tl.Add(anim(t, 100*time.Millisecond), ""); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Add after Build err = %v", err)
	}
	if err := tl.AddLabel("late"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("AddLabel after Build err = %v", err)
	}
}

func TestTimelineTickDispatch(t *testing.T) {
	sinkA := &collector{}
	sinkB := &collector{}
	a, _ := NewAnimation("a", property.Opacity(0, 1), AnimConfig{Duration: 100 * time.Millisecond}, sinkA)
	b, _ := NewAnimation("b", property.Opacity(0, 1), AnimConfig{Duration: 100 * time.Millisecond}, sinkB)

	tl := NewTimeline()
	tl.Add(a, "")
	tl.Add(b, "+=100") // b starts at 200ms
	if err := tl.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// 50ms: only A is active
	tl.Tick(50 * time.Millisecond)
	if got := float64(sinkA.last(t).Value.(property.Scalar)); got != 0.5 {
		t.Errorf("a at 50ms = %v, want 0.5", got)
	}
	if len(sinkB.updates) != 0 {
		t.Errorf("b received %d updates before its start", len(sinkB.updates))
	}

	// 250ms: A completed at its end value, B is 50ms in
	tl.Tick(200 * time.Millisecond)
	if got := float64(sinkA.last(t).Value.(property.Scalar)); got != 1 {
		t.Errorf("a final = %v, want 1", got)
	}
	if got := float64(sinkB.last(t).Value.(property.Scalar)); got != 0.5 {
		t.Errorf("b at 50ms local = %v, want 0.5", got)
	}
	if tl.State() != StateRunning {
		t.Fatalf("state = %v, want Running", tl.State())
	}

	// Past the end: everything done, timeline completes
	tl.Tick(100 * time.Millisecond)
	if tl.State() != StateCompleted {
		t.Errorf("state = %v, want Completed", tl.State())
	}
	if ups := tl.Tick(time.Second); ups != nil {
		t.Error("completed timeline produced updates")
	}
}

func TestTimelinePauseResume(t *testing.T) {
	sink := &collector{}
	a, _ := NewAnimation("a", property.Opacity(0, 1), AnimConfig{Duration: 100 * time.Millisecond}, sink)
	tl := NewTimeline()
	tl.Add(a, "")
	tl.Start()

	tl.Tick(25 * time.Millisecond)
	tl.Pause()
	if ups := tl.Tick(time.Second); ups != nil {
		t.Error("paused timeline produced updates")
	}
	tl.Resume()
	tl.Tick(25 * time.Millisecond)
	if got := float64(sink.last(t).Value.(property.Scalar)); got != 0.5 {
		t.Errorf("value after pause gap = %v, want 0.5", got)
	}
}

func TestTimelineCancelPropagates(t *testing.T) {
	a := anim(t, time.Second)
	tl := NewTimeline()
	tl.Add(a, "")
	tl.Start()
	tl.Tick(100 * time.Millisecond)

	tl.Cancel()
	if tl.State() != StateCancelled {
		t.Errorf("timeline state = %v", tl.State())
	}
	if a.State() != StateCancelled {
		t.Errorf("child state = %v, want Cancelled", a.State())
	}
}

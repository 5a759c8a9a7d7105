package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/motion"
	"github.com/lixenwraith/motion/easing"
	"github.com/lixenwraith/motion/engine"
	"github.com/lixenwraith/motion/property"
	"github.com/lixenwraith/motion/spring"
)

// Colors
var (
	bgColor     = property.RGB{R: 20, G: 20, B: 30}
	fgColor     = property.RGB{R: 200, G: 200, B: 200}
	dimColor    = property.RGB{R: 100, G: 100, B: 100}
	accentColor = property.RGB{R: 100, G: 200, B: 220}
	warmColor   = property.RGB{R: 255, G: 140, B: 60}
)

// widget is a demo rectangle whose visual properties the engine drives
type widget struct {
	label   string
	x, y    float64
	opacity float64
	color   property.RGB
}

// widgetSink routes engine updates into widget fields by target name
type widgetSink struct {
	widgets map[string]*widget
}

func (s *widgetSink) Apply(u engine.Update) {
	w, ok := s.widgets[u.Target]
	if !ok {
		return
	}
	switch u.Property {
	case "opacity":
		w.opacity = float64(u.Value.(property.Scalar))
	case "translate-x":
		w.x = float64(u.Value.(property.Scalar))
	case "translate-y":
		w.y = float64(u.Value.(property.Scalar))
	case "color":
		w.color = u.Value.(property.RGB)
	}
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(bgColor.Tcell()))

	// Dedicated input goroutine
	eventCh := make(chan tcell.Event, 16)
	go func() {
		for {
			eventCh <- screen.PollEvent()
		}
	}()

	sink := &widgetSink{widgets: make(map[string]*widget)}
	mgr := motion.NewManager(engine.ManagerConfig{})
	clock := engine.NewClock()

	if err := setupScene(mgr, sink); err != nil {
		screen.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventCh:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape,
					ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return
				case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					if clock.IsPaused() {
						clock.Resume()
					} else {
						clock.Pause()
					}
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
					setupScene(mgr, sink)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			mgr.UpdateAll(clock.Delta())
			render(screen, sink, mgr, clock)
		}
	}
}

// setupScene registers the three demo groups: a staggered fade-in row, a
// spring-driven slider, and a timeline sequence with a color sweep
func setupScene(mgr *engine.Manager, sink *widgetSink) error {
	// Staggered row: five cells fading in left to right
	stagger := motion.Stagger(120*time.Millisecond, engine.StaggerConfig{})
	delays, err := stagger.Delays(5, nil)
	if err != nil {
		return err
	}
	for i, d := range delays {
		name := fmt.Sprintf("cell-%d", i)
		sink.widgets[name] = &widget{label: "██", x: float64(4 + i*4), y: 4, color: accentColor}
		a, err := motion.Animate(name, motion.Params{
			Duration: 400 * time.Millisecond,
			Delay:    d,
			Easing:   easing.OutCubic,
			Autoplay: true,
			Opacity:  &motion.FromTo{From: 0, To: 1},
			Sink:     sink,
		})
		if err != nil {
			return err
		}
		mgr.Add(a)
	}

	// Spring slider: overshoots and settles on the right edge
	sink.widgets["slider"] = &widget{label: "◆", y: 8, opacity: 1, color: warmColor}
	cfg := spring.Wobbly()
	slide, err := motion.Animate("slider", motion.Params{
		Spring:     &cfg,
		Autoplay:   true,
		TranslateX: &motion.FromTo{From: 4, To: 44},
		Sink:       sink,
	})
	if err != nil {
		return err
	}
	mgr.Add(slide)

	// Timeline: drop a badge in, then sweep its color after a beat
	sink.widgets["badge"] = &widget{label: "■■■", x: 4, opacity: 1, color: dimColor}
	drop, err := motion.Animate("badge", motion.Params{
		Duration:   500 * time.Millisecond,
		Easing:     easing.OutBounce,
		TranslateY: &motion.FromTo{From: 2, To: 12},
		Sink:       sink,
	})
	if err != nil {
		return err
	}
	sweep, err := motion.Animate("badge", motion.Params{
		Duration: 800 * time.Millisecond,
		Color:    &motion.ColorFromTo{From: dimColor, To: warmColor},
		Sink:     sink,
	})
	if err != nil {
		return err
	}

	tl := motion.NewTimeline()
	if err := tl.Add(drop, ""); err != nil {
		return err
	}
	if err := tl.Add(sweep, "+=200"); err != nil {
		return err
	}
	return mgr.AddTimeline(tl)
}

func render(screen tcell.Screen, sink *widgetSink, mgr *engine.Manager, clock *engine.Clock) {
	screen.Clear()

	drawText(screen, 2, 1, "MOTION DEMO", accentColor, tcell.AttrBold)
	drawText(screen, 16, 1, "q: quit | space: pause | r: replay", dimColor, tcell.AttrNone)

	drawText(screen, 2, 3, "stagger", dimColor, tcell.AttrNone)
	drawText(screen, 2, 7, "spring", dimColor, tcell.AttrNone)
	drawText(screen, 2, 11, "timeline", dimColor, tcell.AttrNone)

	for _, w := range sink.widgets {
		if w.opacity <= 0 {
			continue
		}
		// Opacity fakes alpha by scaling toward the background
		c := bgColor.Lerp(w.color, w.opacity).(property.RGB)
		drawText(screen, int(w.x), int(w.y), w.label, c, tcell.AttrNone)
	}

	// HUD: live engine accounting
	_, h := screen.Size()
	stats := mgr.CacheStats()
	hud := fmt.Sprintf("active %d | cache %d/%d hit %.0f%% | avg %s",
		mgr.Active(), stats.Size, stats.MaxSize, stats.HitRate*100,
		mgr.Metrics().AvgTimePerAnimation().Round(time.Microsecond))
	if clock.IsPaused() {
		hud += " | PAUSED"
	}
	drawText(screen, 2, h-2, hud, fgColor, tcell.AttrNone)

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, s string, fg property.RGB, attrs tcell.AttrMask) {
	style := tcell.StyleDefault.Foreground(fg.Tcell()).Background(bgColor.Tcell()).Attributes(attrs)
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/motion/status"
)

// ManagerConfig configures a Manager
type ManagerConfig struct {
	CacheSize int              // interpolation cache bound; 0 selects the default
	Registry  *status.Registry // optional shared metrics registry
	Seed      uint64           // stagger/random seed; 0 derives nothing special
}

// Manager is the explicit context object holding all in-flight animations and
// timelines. It owns the interpolation cache exclusively and performs no
// internal locking; one ticking context per Manager (see package doc)
type Manager struct {
	anims     []*Animation
	timelines []*Timeline

	cache   *InterpolationCache
	metrics *Metrics
	rand    *Rand

	registry *status.Registry
	// Cached metric pointers; tick loop writes without map lookups
	statTicks   *atomic.Int64
	statActive  *atomic.Int64
	statHitRate *status.AtomicFloat
	statPeak    *status.AtomicFloat
}

// NewManager creates a Manager with its own cache and metrics
func NewManager(cfg ManagerConfig) *Manager {
	reg := cfg.Registry
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Manager{
		cache:       NewInterpolationCache(cfg.CacheSize),
		metrics:     NewMetrics(),
		rand:        NewRand(cfg.Seed),
		registry:    reg,
		statTicks:   reg.Ints.Get("motion.ticks"),
		statActive:  reg.Ints.Get("motion.active"),
		statHitRate: reg.Floats.Get("motion.cache_hit_rate"),
		statPeak:    reg.Floats.Get("motion.peak_batch"),
	}
}

// Registry returns the metrics registry
func (m *Manager) Registry() *status.Registry { return m.registry }

// Metrics returns the batch timing statistics
func (m *Manager) Metrics() *Metrics { return m.metrics }

// CacheStats returns interpolation cache accounting
func (m *Manager) CacheStats() CacheStats { return m.cache.Stats() }

// Rand returns the manager's deterministic random source
func (m *Manager) Rand() *Rand { return m.rand }

// Active returns the number of registered animations and timelines
func (m *Manager) Active() int { return len(m.anims) + len(m.timelines) }

// Add registers an animation, wires it to the shared cache, and starts it
// when its config requests autoplay
func (m *Manager) Add(a *Animation) {
	a.setCache(m.cache)
	m.anims = append(m.anims, a)
	if a.cfg.Autoplay {
		a.Start()
	}
}

// AddTimeline registers and starts a timeline, building it if needed
func (m *Manager) AddTimeline(t *Timeline) error {
	if err := t.Build(); err != nil {
		return err
	}
	t.setCache(m.cache)
	m.timelines = append(m.timelines, t)
	return t.Start()
}

// UpdateAll advances everything by delta and returns the batched updates
// Children of one timeline advance in registration order; batches preserve
// per-category insertion order, so same-tick update order is deterministic
func (m *Manager) UpdateAll(delta time.Duration) []Batch {
	started := time.Now()

	var updates []Update
	processed := 0

	for _, a := range m.anims {
		if a.State() != StateRunning {
			continue
		}
		processed++
		updates = append(updates, a.Tick(delta)...)
	}
	for _, t := range m.timelines {
		if t.State() != StateRunning {
			continue
		}
		processed++
		updates = append(updates, t.Tick(delta)...)
	}

	m.compact()

	batches := groupBatches(updates)
	m.metrics.RecordBatchUpdate(processed, time.Since(started))

	m.statTicks.Add(1)
	m.statActive.Store(int64(m.Active()))
	m.statHitRate.Set(m.cache.Stats().HitRate)
	m.statPeak.Max(float64(m.metrics.PeakBatchSize()))

	return batches
}

// compact drops terminal animations and timelines so long-running managers
// do not grow without bound
func (m *Manager) compact() {
	live := m.anims[:0]
	for _, a := range m.anims {
		if st := a.State(); st != StateCompleted && st != StateCancelled {
			live = append(live, a)
		}
	}
	m.anims = live

	liveTl := m.timelines[:0]
	for _, t := range m.timelines {
		if st := t.State(); st != StateCompleted && st != StateCancelled {
			liveTl = append(liveTl, t)
		}
	}
	m.timelines = liveTl
}

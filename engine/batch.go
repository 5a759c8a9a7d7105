package engine

import (
	"time"

	"github.com/lixenwraith/motion/property"
)

// Batch groups same-tick updates of one property category so a renderer can
// apply them in a single pass
type Batch struct {
	Category property.Category
	Updates  []Update
}

// groupBatches splits updates by category, preserving insertion order both
// across categories (first appearance) and within each batch
func groupBatches(updates []Update) []Batch {
	if len(updates) == 0 {
		return nil
	}

	batches := make([]Batch, 0, 4)
	index := make(map[property.Category]int, 4)
	for _, u := range updates {
		i, ok := index[u.Category]
		if !ok {
			i = len(batches)
			index[u.Category] = i
			batches = append(batches, Batch{Category: u.Category})
		}
		batches[i].Updates = append(batches[i].Updates, u)
	}
	return batches
}

// metricsWindow bounds the rolling sample buffer; older samples are dropped
const metricsWindow = 120

// Metrics accumulates batch timing statistics for runtime introspection
// without unbounded memory growth
type Metrics struct {
	totalAnimations uint64
	totalTime       time.Duration
	peakBatch       int

	// Ring buffer of per-animation durations for recent averaging
	window [metricsWindow]time.Duration
	head   int
	filled int
}

// NewMetrics creates zeroed metrics
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordBatchUpdate accumulates one tick's work: count animations processed
// in d total
func (m *Metrics) RecordBatchUpdate(count int, d time.Duration) {
	if count <= 0 {
		return
	}
	m.totalAnimations += uint64(count)
	m.totalTime += d
	if count > m.peakBatch {
		m.peakBatch = count
	}

	m.window[m.head] = d / time.Duration(count)
	m.head = (m.head + 1) % metricsWindow
	if m.filled < metricsWindow {
		m.filled++
	}
}

// AvgTimePerAnimation returns the lifetime average processing cost
func (m *Metrics) AvgTimePerAnimation() time.Duration {
	if m.totalAnimations == 0 {
		return 0
	}
	return m.totalTime / time.Duration(m.totalAnimations)
}

// RecentAvg returns the average per-animation cost over the rolling window
func (m *Metrics) RecentAvg() time.Duration {
	if m.filled == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < m.filled; i++ {
		sum += m.window[i]
	}
	return sum / time.Duration(m.filled)
}

// PeakBatchSize returns the largest batch processed so far
func (m *Metrics) PeakBatchSize() int { return m.peakBatch }

// TotalAnimations returns the lifetime processed count
func (m *Metrics) TotalAnimations() uint64 { return m.totalAnimations }

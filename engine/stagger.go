package engine

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/motion/easing"
)

// ErrMismatchedStaggerInput is returned when spatial stagger receives a
// position list whose length differs from the target count
var ErrMismatchedStaggerInput = errors.New("engine: mismatched stagger input")

// StaggerOrigin selects the distance anchor for delay computation
type StaggerOrigin uint8

const (
	OriginFirst StaggerOrigin = iota
	OriginLast
	OriginCenter
	OriginIndex
	OriginRandom
	OriginPosition
)

// StaggerDirection orients the delay distribution
type StaggerDirection uint8

const (
	StaggerNormal StaggerDirection = iota
	StaggerReverse
	StaggerRandom
)

// GridShape selects the distance metric in grid mode
type GridShape uint8

const (
	GridEuclidean GridShape = iota
	GridManhattan
)

// GridConfig treats targets as cells of a fixed rows x cols grid
type GridConfig struct {
	Rows, Cols int
	Shape      GridShape
}

// Position is a spatial target location for OriginPosition stagger
type Position struct {
	X, Y float64
}

// DelayRange remaps computed delays linearly into [Min, Max]
type DelayRange struct {
	Min, Max time.Duration
}

// StaggerConfig computes per-target delay offsets for a group of
// otherwise-identical animations
type StaggerConfig struct {
	Base        time.Duration
	Origin      StaggerOrigin
	OriginIndex int      // anchor for OriginIndex
	Anchor      Position // anchor for OriginPosition
	Direction   StaggerDirection
	Easing      *easing.Easing // optional shaping of the distance distribution
	Range       *DelayRange    // optional output clamp
	Grid        *GridConfig    // optional grid distance mode
	Seed        uint64         // rand seed; 0 means unseeded (still deterministic per Rand)
}

// Delays returns one delay per target, ordered by ordinal index
// positions is required (and length-checked) only for OriginPosition
func (c StaggerConfig) Delays(count int, positions []Position) ([]time.Duration, error) {
	if count <= 0 {
		return nil, nil
	}
	if c.Origin == OriginPosition && len(positions) != count {
		return nil, fmt.Errorf("%w: %d positions for %d targets", ErrMismatchedStaggerInput, len(positions), count)
	}

	rng := NewRand(c.Seed)
	dist := c.distances(count, positions, rng)

	maxDist := 0.0
	for _, d := range dist {
		if d > maxDist {
			maxDist = d
		}
	}

	// Optional easing reshapes the normalized distance distribution while
	// preserving its scale
	if c.Easing != nil && maxDist > 0 {
		for i, d := range dist {
			dist[i] = c.Easing.Apply(d/maxDist) * maxDist
		}
	}

	delays := make([]time.Duration, count)
	maxDelay := time.Duration(float64(c.Base) * maxDist)
	for i, d := range dist {
		delay := time.Duration(float64(c.Base) * d)
		switch c.Direction {
		case StaggerReverse:
			// Reflect against the max so delays stay non-negative
			delay = maxDelay - delay
		case StaggerRandom:
			if rng.Bool() {
				delay = maxDelay - delay
			}
		}
		delays[i] = delay
	}

	if c.Range != nil {
		remapRange(delays, c.Range.Min, c.Range.Max)
	}
	return delays, nil
}

// distances computes the per-target distance metric for the configured origin
func (c StaggerConfig) distances(count int, positions []Position, rng *Rand) []float64 {
	dist := make([]float64, count)

	if c.Grid != nil && c.Grid.Cols > 0 {
		c.gridDistances(dist, rng)
		return dist
	}

	switch c.Origin {
	case OriginLast:
		for i := range dist {
			dist[i] = float64(count - 1 - i)
		}
	case OriginCenter:
		mid := float64(count-1) / 2
		for i := range dist {
			dist[i] = math.Abs(float64(i) - mid)
		}
	case OriginIndex:
		anchor := c.OriginIndex
		if anchor < 0 {
			anchor = 0
		} else if anchor >= count {
			anchor = count - 1
		}
		for i := range dist {
			dist[i] = math.Abs(float64(i - anchor))
		}
	case OriginRandom:
		anchor := rng.Intn(count)
		for i := range dist {
			dist[i] = math.Abs(float64(i - anchor))
		}
	case OriginPosition:
		for i := range dist {
			dx := positions[i].X - c.Anchor.X
			dy := positions[i].Y - c.Anchor.Y
			dist[i] = math.Hypot(dx, dy)
		}
	default: // OriginFirst
		for i := range dist {
			dist[i] = float64(i)
		}
	}
	return dist
}

// gridDistances measures each cell's distance to the grid anchor cell
func (c StaggerConfig) gridDistances(dist []float64, rng *Rand) {
	cols := c.Grid.Cols
	rows := c.Grid.Rows
	if rows <= 0 {
		rows = (len(dist) + cols - 1) / cols
	}

	var anchorRow, anchorCol float64
	switch c.Origin {
	case OriginLast:
		anchorRow, anchorCol = float64(rows-1), float64(cols-1)
	case OriginCenter:
		anchorRow, anchorCol = float64(rows-1)/2, float64(cols-1)/2
	case OriginIndex:
		anchorRow, anchorCol = float64(c.OriginIndex/cols), float64(c.OriginIndex%cols)
	case OriginRandom:
		idx := rng.Intn(len(dist))
		anchorRow, anchorCol = float64(idx/cols), float64(idx%cols)
	default: // OriginFirst, OriginPosition degenerates to first cell
		anchorRow, anchorCol = 0, 0
	}

	for i := range dist {
		dr := float64(i/cols) - anchorRow
		dc := float64(i%cols) - anchorCol
		if c.Grid.Shape == GridManhattan {
			dist[i] = math.Abs(dr) + math.Abs(dc)
		} else {
			dist[i] = math.Hypot(dr, dc)
		}
	}
}

// remapRange linearly rescales delays from [0, max] into [lo, hi]
func remapRange(delays []time.Duration, lo, hi time.Duration) {
	var maxDelay time.Duration
	for _, d := range delays {
		if d > maxDelay {
			maxDelay = d
		}
	}
	if maxDelay == 0 {
		for i := range delays {
			delays[i] = lo
		}
		return
	}
	span := float64(hi - lo)
	for i, d := range delays {
		frac := float64(d) / float64(maxDelay)
		delays[i] = lo + time.Duration(frac*span)
	}
}

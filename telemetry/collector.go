package telemetry

import "github.com/pthm-cable/glyphfield/systems"

// Collector accumulates per-tick field events within time windows and produces FieldStats.
type Collector struct {
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	repelled  int
	lastSeeds int
	reseeds   int

	snap systems.Snapshot
}

// NewCollector creates a new stats collector.
// windowTicks: ticks per stats window
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowTicks int, dt float64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowDurationTicks: int32(windowTicks),
		dt:                  dt,
	}
}

// RecordTick samples the field after an update and accumulates window counters.
func (c *Collector) RecordTick(field *systems.Field) {
	field.Snapshot(&c.snap)
	c.repelled += c.snap.Repelled
	if c.snap.Seeds > c.lastSeeds {
		c.reseeds += c.snap.Seeds - c.lastSeeds
		c.lastSeeds = c.snap.Seeds
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a FieldStats from the most recent sample and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, text string) FieldStats {
	dispMean, dispP50, dispP90, dispMax := ComputeDisplacementStats(c.snap.Displacement)
	speedMean, kinetic := ComputeMotionStats(c.snap.Speed)

	stats := FieldStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Particles: c.snap.Particles,
		Text:      text,

		DispMean: dispMean,
		DispP50:  dispP50,
		DispP90:  dispP90,
		DispMax:  dispMax,

		SpeedMean:     speedMean,
		KineticEnergy: kinetic,

		Repelled: c.repelled,
		Reseeds:  c.reseeds,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.repelled = 0
	c.reseeds = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}

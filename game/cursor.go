package game

// SweepCursor is a scripted cursor for headless runs. It moves back and forth
// along a horizontal line, crossing the canvas once every sweepTicks ticks.
type SweepCursor struct {
	width      float64
	y          float64
	sweepTicks int
}

// NewSweepCursor creates a cursor sweeping a width-wide canvas at height y.
func NewSweepCursor(width, y float64, sweepTicks int) *SweepCursor {
	if sweepTicks < 1 {
		sweepTicks = 1
	}
	return &SweepCursor{width: width, y: y, sweepTicks: sweepTicks}
}

// Position returns the cursor position at the given tick.
func (c *SweepCursor) Position(tick int32) (x, y float64) {
	n := int(tick) % (2 * c.sweepTicks)
	if n > c.sweepTicks {
		n = 2*c.sweepTicks - n
	}
	return c.width * float64(n) / float64(c.sweepTicks), c.y
}

package components

import "github.com/pthm-cable/glyphfield/vector"

// Spring pulls its owning particle toward Anchor.
// At rest the particle sits RestOffset away from the anchor along the line between them.
type Spring struct {
	Anchor     vector.Vector2
	Stiffness  float64
	RestOffset float64
}

// NewSpring creates a spring anchored at (x, y).
func NewSpring(x, y, stiffness, restOffset float64) Spring {
	return Spring{
		Anchor:     vector.New(x, y),
		Stiffness:  stiffness,
		RestOffset: restOffset,
	}
}

// Force returns the spring force on a particle at pos (f = kx).
// The returned vector is applied directly as a velocity delta.
func (s Spring) Force(pos vector.Vector2) vector.Vector2 {
	d := s.Anchor.Subtract(pos)
	d.SetLength(d.Length() - s.RestOffset)
	return d.Multiply(s.Stiffness)
}

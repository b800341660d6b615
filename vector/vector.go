// Package vector provides the 2D vector type used by the particle simulation.
package vector

import "math"

// Vector2 is a 2D vector with cartesian components.
// Value methods return new vectors; pointer methods mutate in place.
type Vector2 struct {
	X, Y float64
}

// New returns the vector (x, y).
func New(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Subtract returns v - o.
func (v Vector2) Subtract(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Multiply returns v scaled by s.
func (v Vector2) Multiply(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Divide returns v divided by s.
func (v Vector2) Divide(s float64) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// AddTo adds o to v in place.
func (v *Vector2) AddTo(o Vector2) {
	v.X += o.X
	v.Y += o.Y
}

// SubtractTo subtracts o from v in place.
func (v *Vector2) SubtractTo(o Vector2) {
	v.X -= o.X
	v.Y -= o.Y
}

// MultiplyBy scales v by s in place.
func (v *Vector2) MultiplyBy(s float64) {
	v.X *= s
	v.Y *= s
}

// DivideBy divides v by s in place.
func (v *Vector2) DivideBy(s float64) {
	v.X /= s
	v.Y /= s
}

// Normalize scales v to unit length. A zero vector is left unchanged.
func (v *Vector2) Normalize() {
	length := v.Length()
	if length > 0 {
		v.X /= length
		v.Y /= length
	}
}

// Clear resets v to the zero vector.
func (v *Vector2) Clear() {
	v.X = 0
	v.Y = 0
}

// SetAngle rotates v to theta radians, keeping its length.
func (v *Vector2) SetAngle(theta float64) {
	length := v.Length()
	v.X = math.Cos(theta) * length
	v.Y = math.Sin(theta) * length
}

// SetLength rescales v to length r, keeping its angle.
// A zero vector has angle 0, so the result is (r, 0).
func (v *Vector2) SetLength(r float64) {
	angle := v.Angle()
	v.X = math.Cos(angle) * r
	v.Y = math.Sin(angle) * r
}

// Angle returns atan2(y, x) in (-pi, pi].
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Length returns the Euclidean norm of v.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vector2) DistanceTo(o Vector2) float64 {
	return o.Subtract(v).Length()
}

// Equal reports whether v and o have identical components.
func (v Vector2) Equal(o Vector2) bool {
	return v.X == o.X && v.Y == o.Y
}

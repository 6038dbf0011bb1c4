// pkg/physics/vector.go
package physics

import "math"

// Vector2D represents a 2D vector with x and y components
type Vector2D struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Neg returns the vector pointing in the opposite direction
func (v Vector2D) Neg() Vector2D {
	return Vector2D{
		X: -v.X,
		Y: -v.Y,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the same direction.
// Normalizing the zero vector is undefined; callers must guarantee a
// non-zero input.
func (v Vector2D) Normalize() Vector2D {
	length := v.Length()
	return Vector2D{
		X: v.X / length,
		Y: v.Y / length,
	}
}

// Distance returns the distance between two vectors
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// Rotate rotates the vector by angle (in radians)
func (v Vector2D) Rotate(angle float64) Vector2D {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vector2D{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// LengthSquared returns magnitude squared (optimization for comparisons)
func (v Vector2D) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// FromAngle creates a vector from an angle and magnitude
func FromAngle(angle float64, magnitude float64) Vector2D {
	return Vector2D{
		X: magnitude * math.Cos(angle),
		Y: magnitude * math.Sin(angle),
	}
}

// UnitDot returns the dot product of the two vectors after normalizing
// both. Neither input may be the zero vector.
func UnitDot(a, b Vector2D) float64 {
	na := a.Normalize()
	nb := b.Normalize()
	return na.X*nb.X + na.Y*nb.Y
}

// AngleBetween returns the signed angle in radians between two vectors,
// in the range (-pi, pi]. The sign convention matches Rotate: rotating a
// by -AngleBetween(a, b) aligns it with b. Neither input may be the zero
// vector.
func AngleBetween(a, b Vector2D) float64 {
	na := a.Normalize()
	nb := b.Normalize()
	return -math.Atan2(na.X*nb.Y-na.Y*nb.X, na.X*nb.X+na.Y*nb.Y)
}

// LineIntersection returns the intersection point of the line through p1
// with direction v1 and the line through p2 with direction v2, solving
//
//	p1 + n*v1 = p2 + k*v2
//
// for k. The lines must not be parallel. The flight controller only calls
// this with a forward line and its perpendicular, which guarantees a
// solution exists.
func LineIntersection(p1, v1, p2, v2 Vector2D) Vector2D {
	k := (p2.Y - p1.Y - ((v1.Y / v1.X) * (p2.X - p1.X))) /
		((v1.Y * v2.X / v1.X) - v2.Y)

	return Vector2D{
		X: p2.X + v2.X*k,
		Y: p2.Y + v2.Y*k,
	}
}

// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func vectorsAlmostEqual(a, b Vector2D) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestVector2D_Add(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected Vector2D
	}{
		{
			name:     "positive_vectors",
			v1:       Vector2D{X: 3, Y: 4},
			v2:       Vector2D{X: 1, Y: 2},
			expected: Vector2D{X: 4, Y: 6},
		},
		{
			name:     "negative_vectors",
			v1:       Vector2D{X: -3, Y: -4},
			v2:       Vector2D{X: -1, Y: -2},
			expected: Vector2D{X: -4, Y: -6},
		},
		{
			name:     "zero_vector",
			v1:       Vector2D{X: 0, Y: 0},
			v2:       Vector2D{X: 5, Y: -3},
			expected: Vector2D{X: 5, Y: -3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v1.Add(tt.v2)
			if result != tt.expected {
				t.Errorf("Add() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector2D_Sub(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected Vector2D
	}{
		{
			name:     "positive_result",
			v1:       Vector2D{X: 5, Y: 7},
			v2:       Vector2D{X: 2, Y: 3},
			expected: Vector2D{X: 3, Y: 4},
		},
		{
			name:     "same_vectors",
			v1:       Vector2D{X: 4, Y: 6},
			v2:       Vector2D{X: 4, Y: 6},
			expected: Vector2D{X: 0, Y: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v1.Sub(tt.v2)
			if result != tt.expected {
				t.Errorf("Sub() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector2D_Neg(t *testing.T) {
	v := Vector2D{X: 3, Y: -4}
	expected := Vector2D{X: -3, Y: 4}
	if result := v.Neg(); result != expected {
		t.Errorf("Neg() = %v, expected %v", result, expected)
	}
}

func TestVector2D_Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
	}{
		{name: "axis_aligned", v: Vector2D{X: 5, Y: 0}},
		{name: "diagonal", v: Vector2D{X: 3, Y: 4}},
		{name: "negative_components", v: Vector2D{X: -1, Y: -7}},
		{name: "tiny_vector", v: Vector2D{X: 1e-6, Y: 2e-6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Normalize()
			if !almostEqual(result.Length(), 1.0) {
				t.Errorf("Normalize() length = %v, expected 1.0", result.Length())
			}
			// Direction must be preserved
			if !almostEqual(result.X*tt.v.Y, result.Y*tt.v.X) {
				t.Errorf("Normalize() changed direction: %v from %v", result, tt.v)
			}
		})
	}
}

func TestVector2D_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		angle    float64
		expected Vector2D
	}{
		{
			name:     "quarter_turn",
			v:        Vector2D{X: 1, Y: 0},
			angle:    math.Pi / 2,
			expected: Vector2D{X: 0, Y: 1},
		},
		{
			name:     "half_turn",
			v:        Vector2D{X: 1, Y: 0},
			angle:    math.Pi,
			expected: Vector2D{X: -1, Y: 0},
		},
		{
			name:     "negative_quarter_turn",
			v:        Vector2D{X: 0, Y: 1},
			angle:    -math.Pi / 2,
			expected: Vector2D{X: 1, Y: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Rotate(tt.angle)
			if !vectorsAlmostEqual(result, tt.expected) {
				t.Errorf("Rotate(%v) = %v, expected %v", tt.angle, result, tt.expected)
			}
		})
	}
}

func TestUnitDot(t *testing.T) {
	tests := []struct {
		name     string
		a        Vector2D
		b        Vector2D
		expected float64
	}{
		{
			name:     "parallel",
			a:        Vector2D{X: 2, Y: 0},
			b:        Vector2D{X: 7, Y: 0},
			expected: 1,
		},
		{
			name:     "perpendicular",
			a:        Vector2D{X: 3, Y: 0},
			b:        Vector2D{X: 0, Y: 5},
			expected: 0,
		},
		{
			name:     "opposite",
			a:        Vector2D{X: 1, Y: 1},
			b:        Vector2D{X: -2, Y: -2},
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := UnitDot(tt.a, tt.b); !almostEqual(result, tt.expected) {
				t.Errorf("UnitDot() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		name     string
		a        Vector2D
		b        Vector2D
		expected float64
	}{
		{
			name:     "same_direction",
			a:        Vector2D{X: 3, Y: 4},
			b:        Vector2D{X: 3, Y: 4},
			expected: 0,
		},
		{
			name:     "target_left_of_forward",
			a:        Vector2D{X: 0, Y: 1},
			b:        Vector2D{X: 1, Y: 0},
			expected: math.Pi / 2,
		},
		{
			name:     "target_right_of_forward",
			a:        Vector2D{X: 0, Y: -1},
			b:        Vector2D{X: 1, Y: 0},
			expected: -math.Pi / 2,
		},
		{
			name:     "unnormalized_inputs",
			a:        Vector2D{X: 0, Y: 10},
			b:        Vector2D{X: 0.5, Y: 0},
			expected: math.Pi / 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := AngleBetween(tt.a, tt.b); !almostEqual(result, tt.expected) {
				t.Errorf("AngleBetween() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestAngleBetween_Antisymmetric(t *testing.T) {
	pairs := []struct {
		a Vector2D
		b Vector2D
	}{
		{Vector2D{X: 1, Y: 0}, Vector2D{X: 0, Y: 1}},
		{Vector2D{X: 3, Y: 4}, Vector2D{X: -2, Y: 5}},
		{Vector2D{X: -1, Y: -1}, Vector2D{X: 2, Y: -3}},
	}

	for _, p := range pairs {
		ab := AngleBetween(p.a, p.b)
		ba := AngleBetween(p.b, p.a)
		if !almostEqual(ab, -ba) {
			t.Errorf("AngleBetween(%v, %v) = %v, AngleBetween(%v, %v) = %v; expected negation",
				p.a, p.b, ab, p.b, p.a, ba)
		}
	}
}

func TestAngleBetween_MatchesRotate(t *testing.T) {
	// Rotating the second vector by the returned angle must align it with
	// the first. The flight controller relies on this exact relationship.
	forward := Vector2D{X: 1, Y: 0}
	target := Vector2D{X: -3, Y: 7}

	angle := AngleBetween(target, forward)
	aligned := forward.Rotate(angle)

	if !vectorsAlmostEqual(aligned, target.Normalize()) {
		t.Errorf("Rotate(AngleBetween) = %v, expected %v", aligned, target.Normalize())
	}
}

func TestLineIntersection(t *testing.T) {
	tests := []struct {
		name     string
		p1       Vector2D
		v1       Vector2D
		p2       Vector2D
		v2       Vector2D
		expected Vector2D
	}{
		{
			// Ship at origin facing +X, aircraft at (3,4) dropping a
			// perpendicular onto the approach line.
			name:     "perpendicular_onto_x_axis",
			p1:       Vector2D{X: 0, Y: 0},
			v1:       Vector2D{X: 1, Y: 0},
			p2:       Vector2D{X: 3, Y: 4},
			v2:       Vector2D{X: 0, Y: 1},
			expected: Vector2D{X: 3, Y: 0},
		},
		{
			name:     "diagonal_lines",
			p1:       Vector2D{X: 1, Y: 1},
			v1:       Vector2D{X: 1, Y: 1},
			p2:       Vector2D{X: 3, Y: 1},
			v2:       Vector2D{X: -1, Y: 1},
			expected: Vector2D{X: 2, Y: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := LineIntersection(tt.p1, tt.v1, tt.p2, tt.v2)
			if !vectorsAlmostEqual(result, tt.expected) {
				t.Errorf("LineIntersection() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi/2, 2.0)
	if !vectorsAlmostEqual(v, Vector2D{X: 0, Y: 2}) {
		t.Errorf("FromAngle() = %v, expected (0, 2)", v)
	}
}

package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	const tolerance = 1e-9

	if got := a.Add(b); got.Subtract(NewVec3(5, 7, 9)).Length() > tolerance {
		t.Errorf("Add: expected (5,7,9), got %v", got)
	}
	if got := b.Subtract(a); got.Subtract(NewVec3(3, 3, 3)).Length() > tolerance {
		t.Errorf("Subtract: expected (3,3,3), got %v", got)
	}
	if got := a.Dot(b); math.Abs(got-32) > tolerance {
		t.Errorf("Dot: expected 32, got %f", got)
	}
	if got := a.MultiplyVec(b); got.Subtract(NewVec3(4, 10, 18)).Length() > tolerance {
		t.Errorf("MultiplyVec: expected (4,10,18), got %v", got)
	}
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	z := NewVec3(0, 0, 1)

	const tolerance = 1e-9
	if got := x.Cross(y); got.Subtract(z).Length() > tolerance {
		t.Errorf("x × y: expected %v, got %v", z, got)
	}
	if got := y.Cross(x); got.Subtract(z.Negate()).Length() > tolerance {
		t.Errorf("y × x: expected %v, got %v", z.Negate(), got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1) > 1e-9 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	// The zero vector stays zero rather than producing NaN
	zero := NewVec3(0, 0, 0).Normalize()
	if zero.Length() != 0 {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestVec3_IsFinite(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected bool
	}{
		{name: "finite", vector: NewVec3(1, -2, 3.5), expected: true},
		{name: "NaN component", vector: NewVec3(math.NaN(), 0, 0), expected: false},
		{name: "Inf component", vector: NewVec3(0, math.Inf(1), 0), expected: false},
		{name: "negative Inf", vector: NewVec3(0, 0, math.Inf(-1)), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vector.IsFinite(); got != tt.expected {
				t.Errorf("IsFinite(%v) = %t, expected %t", tt.vector, got, tt.expected)
			}
		})
	}
}

func TestVec3_GammaCorrect(t *testing.T) {
	v := NewVec3(0.25, 1.0, 0.0).GammaCorrect(2.0)

	const tolerance = 1e-9
	if math.Abs(v.X-0.5) > tolerance || math.Abs(v.Y-1.0) > tolerance || math.Abs(v.Z-0.0) > tolerance {
		t.Errorf("Expected (0.5, 1.0, 0.0), got %v", v)
	}
}

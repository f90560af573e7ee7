package core

// Epsilon is the self-intersection threshold used wherever rays are
// spawned from a surface (primary hit acceptance, shadow ray offsets).
const Epsilon = 1e-6

// ShadowBias is the minimum parameter t accepted by scene-level
// closest-hit queries, rejecting hits immediately at the ray origin.
const ShadowBias = 1e-3

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// IsValid reports whether the ray has a finite origin and a finite,
// non-zero direction. Downstream intersection math assumes this holds.
func (r Ray) IsValid() bool {
	return r.Origin.IsFinite() && r.Direction.IsFinite() && !r.Direction.IsNearZero()
}

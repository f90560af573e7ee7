package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
)

// ErrInvalidGeometry indicates a sphere with non-finite or non-positive dimensions
var ErrInvalidGeometry = errors.New("invalid sphere geometry")

// Sphere represents a sphere primitive. Immutable after construction;
// MaterialIndex refers into the owning scene's material registry.
type Sphere struct {
	Center        core.Vec3
	Radius        float64
	MaterialIndex int
}

// Intersection holds the result of a single ray-sphere test.
// Ephemeral: produced per test, never stored.
type Intersection struct {
	T      float64
	Point  core.Vec3
	Normal core.Vec3 // unit length, outward facing
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, materialIndex int) Sphere {
	return Sphere{
		Center:        center,
		Radius:        radius,
		MaterialIndex: materialIndex,
	}
}

// ValidateGeometry checks that the sphere has a finite center and a
// positive finite radius
func (s Sphere) ValidateGeometry() error {
	if !s.Center.IsFinite() {
		return fmt.Errorf("%w: non-finite center %v", ErrInvalidGeometry, s.Center)
	}
	if math.IsNaN(s.Radius) || math.IsInf(s.Radius, 0) || s.Radius <= 0 {
		return fmt.Errorf("%w: radius %v", ErrInvalidGeometry, s.Radius)
	}
	return nil
}

// Intersect tests if a ray intersects the sphere.
// Returns the nearest intersection with t > Epsilon; if the ray origin
// is inside the sphere the exit point is returned instead.
func (s Sphere) Intersect(ray core.Ray) (Intersection, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Intersection{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	// Prefer the near root; fall back to the far root when the origin
	// is inside the sphere. Both behind the origin means no hit.
	t := t1
	if t <= core.Epsilon {
		t = t2
		if t <= core.Epsilon {
			return Intersection{}, false
		}
	}

	point := ray.At(t)
	normal := point.Subtract(s.Center).Normalize()

	return Intersection{T: t, Point: point, Normal: normal}, true
}

package lights

import (
	"math/rand"

	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
)

// AreaLight represents a rectangular emitter. Each illumination query
// draws one uniform sample on the rectangle: a 1-sample Monte Carlo
// estimator whose per-pixel noise is accepted by design.
type AreaLight struct {
	Center    core.Vec3
	Normal    core.Vec3 // unit, outward emission direction
	Width     float64
	Height    float64
	Color     core.Vec3
	Intensity float64

	uAxis core.Vec3
	vAxis core.Vec3
}

// NewAreaLight creates a rectangular area light. The u/v rectangle axes
// are derived from the normal on construction.
func NewAreaLight(center, normal core.Vec3, width, height float64, color core.Vec3, intensity float64) *AreaLight {
	n := normal.Normalize()
	u, v := core.BuildOrthonormalBasis(n)
	return &AreaLight{
		Center:    center,
		Normal:    n,
		Width:     width,
		Height:    height,
		Color:     color,
		Intensity: intensity,
		uAxis:     u,
		vAxis:     v,
	}
}

func (al *AreaLight) Type() LightType {
	return LightTypeArea
}

// Area returns the surface area of the rectangle
func (al *AreaLight) Area() float64 {
	return al.Width * al.Height
}

// SamplePointOnSurface returns a uniformly distributed point on the rectangle
func (al *AreaLight) SamplePointOnSurface(rng *rand.Rand) core.Vec3 {
	du := (rng.Float64() - 0.5) * al.Width
	dv := (rng.Float64() - 0.5) * al.Height
	return al.Center.Add(al.uAxis.Multiply(du)).Add(al.vAxis.Multiply(dv))
}

// Illuminate draws one sample on the rectangle and returns its
// contribution with the attenuation cos(θ)·area/distance², where θ is
// measured between the light normal and the direction back toward the
// surface. Back-facing samples contribute nothing.
func (al *AreaLight) Illuminate(point core.Vec3, rng *rand.Rand) (Illumination, bool) {
	samplePoint := al.SamplePointOnSurface(rng)

	toSample := samplePoint.Subtract(point)
	distance := toSample.Length()
	if distance < core.Epsilon {
		return Illumination{}, false
	}
	direction := toSample.Multiply(1.0 / distance)

	// Angle between the emitter normal and the direction back toward
	// the surface point
	cosTheta := al.Normal.Dot(direction.Negate())
	if cosTheta <= 0 {
		return Illumination{}, false
	}

	attenuation := cosTheta * al.Area() / (distance * distance)
	radiance := al.Color.Multiply(al.Intensity * attenuation)

	return Illumination{
		Direction: direction,
		Distance:  distance,
		Radiance:  radiance,
	}, true
}

// IsOccluded reports whether geometry blocks the path to the sampled point
func (al *AreaLight) IsOccluded(point core.Vec3, illum Illumination, scene Occluder) bool {
	return occludedWithin(point, illum.Direction, illum.Distance, scene)
}

// SampleDirection returns the direction to a fresh surface sample and
// the uniform area density 1/area
func (al *AreaLight) SampleDirection(point core.Vec3, rng *rand.Rand) (core.Vec3, float64) {
	samplePoint := al.SamplePointOnSurface(rng)
	area := al.Area()
	if area <= 0 {
		return core.Vec3{}, 0
	}
	return samplePoint.Subtract(point).Normalize(), 1.0 / area
}

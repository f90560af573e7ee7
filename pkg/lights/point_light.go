package lights

import (
	"math/rand"

	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
)

// PointLight represents an isotropic point emitter with inverse-square falloff
type PointLight struct {
	Position  core.Vec3
	Color     core.Vec3 // non-negative per channel
	Intensity float64   // non-negative
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3, intensity float64) *PointLight {
	return &PointLight{Position: position, Color: color, Intensity: intensity}
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Illuminate returns the direction and radiance at the surface point.
// Radiance falls off with the squared distance; a surface point
// coincident with the light position contributes nothing.
func (pl *PointLight) Illuminate(point core.Vec3, rng *rand.Rand) (Illumination, bool) {
	toLight := pl.Position.Subtract(point)
	distance := toLight.Length()
	if distance < core.Epsilon {
		return Illumination{}, false
	}

	direction := toLight.Multiply(1.0 / distance)
	radiance := pl.Color.Multiply(pl.Intensity / (distance * distance))

	return Illumination{
		Direction: direction,
		Distance:  distance,
		Radiance:  radiance,
	}, true
}

// IsOccluded reports whether geometry blocks the path to the light position
func (pl *PointLight) IsOccluded(point core.Vec3, illum Illumination, scene Occluder) bool {
	return occludedWithin(point, illum.Direction, illum.Distance, scene)
}

// SampleDirection returns the deterministic direction to the light with PDF 1
func (pl *PointLight) SampleDirection(point core.Vec3, rng *rand.Rand) (core.Vec3, float64) {
	return pl.Position.Subtract(point).Normalize(), 1.0
}

package lights

import (
	"math"
	"math/rand"

	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
)

// DirectionalLight represents a light infinitely far away, like the sun.
// Direction is the direction the light travels; illumination arrives
// from the opposite direction with no distance falloff.
type DirectionalLight struct {
	Direction core.Vec3 // unit vector, direction light travels
	Color     core.Vec3
	Intensity float64
}

// NewDirectionalLight creates a new directional light. The travel
// direction is normalized on construction.
func NewDirectionalLight(direction, color core.Vec3, intensity float64) *DirectionalLight {
	return &DirectionalLight{
		Direction: direction.Normalize(),
		Color:     color,
		Intensity: intensity,
	}
}

func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Illuminate returns constant radiance arriving against the travel direction
func (dl *DirectionalLight) Illuminate(point core.Vec3, rng *rand.Rand) (Illumination, bool) {
	return Illumination{
		Direction: dl.Direction.Negate(),
		Distance:  math.Inf(1),
		Radiance:  dl.Color.Multiply(dl.Intensity),
	}, true
}

// IsOccluded reports whether any forward intersection blocks the light;
// distance is unbounded so every forward hit counts
func (dl *DirectionalLight) IsOccluded(point core.Vec3, illum Illumination, scene Occluder) bool {
	return occludedWithin(point, illum.Direction, math.Inf(1), scene)
}

// SampleDirection returns the fixed direction toward the light with PDF 1
func (dl *DirectionalLight) SampleDirection(point core.Vec3, rng *rand.Rand) (core.Vec3, float64) {
	return dl.Direction.Negate(), 1.0
}

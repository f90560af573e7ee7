package lights

import (
	"math/rand"

	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
)

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
	LightTypeArea        LightType = "area"
)

// Light is the polymorphic illumination interface. Lights own their
// occlusion test; the scene is passed in behind the Occluder interface.
// The random generator is caller-owned so rendering workers can hold
// independent state and tests can inject a fixed seed. Deterministic
// lights (point, directional) ignore it.
type Light interface {
	Type() LightType

	// Illuminate returns the incident direction (unit, surface toward
	// light), distance, and radiance arriving at the surface point.
	// Returns false when the light contributes nothing (degenerate
	// distance, back-facing area sample).
	Illuminate(point core.Vec3, rng *rand.Rand) (Illumination, bool)

	// IsOccluded reports whether scene geometry blocks the path from
	// the surface point to the light described by illum
	IsOccluded(point core.Vec3, illum Illumination, scene Occluder) bool

	// SampleDirection returns a direction toward the light and the
	// probability density of that sample. PDF is 1 for deterministic
	// lights; area lights return the uniform area density 1/area.
	SampleDirection(point core.Vec3, rng *rand.Rand) (core.Vec3, float64)
}

// Illumination describes a single light query result
type Illumination struct {
	Direction core.Vec3 // unit vector from surface point toward the light
	Distance  float64   // +Inf for directional lights
	Radiance  core.Vec3 // incident radiance at the surface point
}

// Occluder is the scene-side shadow query. Implemented by scene.Scene;
// declared here so lights do not import the scene package.
type Occluder interface {
	// ClosestHit returns the parameter t of the nearest intersection
	// along the ray, or false when nothing is hit
	ClosestHit(ray core.Ray) (float64, bool)
}

// occludedWithin spawns a shadow ray from point toward the light and
// reports whether any geometry lies strictly before maxDistance.
// The origin is offset along the shadow direction to avoid immediate
// self-reintersection.
func occludedWithin(point, direction core.Vec3, maxDistance float64, scene Occluder) bool {
	origin := point.Add(direction.Multiply(core.Epsilon))
	t, hit := scene.ClosestHit(core.NewRay(origin, direction))
	return hit && t < maxDistance-core.Epsilon
}

package material

import (
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
)

// Material is the BRDF evaluation interface shared by all surface models.
// All directions are unit vectors; lightDir points from the surface toward
// the light, viewDir from the surface toward the viewer.
type Material interface {
	// EvaluateBRDF returns the reflectance for the given direction pair
	EvaluateBRDF(lightDir, viewDir, normal core.Vec3) core.Vec3

	// ScatterLight applies the rendering equation for a single light:
	// BRDF * incident radiance * max(0, normal·lightDir)
	ScatterLight(lightDir, viewDir, normal, incident core.Vec3) core.Vec3

	// ValidateEnergyConservation reports whether the material parameters
	// are within physical range. Advisory only: a violation is logged as
	// a warning by the scene, never rejected.
	ValidateEnergyConservation() bool

	// BaseColor returns the material's albedo
	BaseColor() core.Vec3
}

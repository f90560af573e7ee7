package material

import (
	"math"

	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
)

// Lambert represents a perfectly diffuse material
type Lambert struct {
	Albedo core.Vec3 // base color, components in [0,1]
}

// NewLambert creates a new lambertian material
func NewLambert(albedo core.Vec3) *Lambert {
	return &Lambert{Albedo: albedo}
}

// EvaluateBRDF returns the constant lambertian reflectance: albedo / π
func (l *Lambert) EvaluateBRDF(lightDir, viewDir, normal core.Vec3) core.Vec3 {
	return l.Albedo.Multiply(1.0 / math.Pi)
}

// ScatterLight returns BRDF * incident * cos(θ) with the cosine clamped
// at zero, so back-facing light contributes exactly nothing
func (l *Lambert) ScatterLight(lightDir, viewDir, normal, incident core.Vec3) core.Vec3 {
	cosTheta := normal.Dot(lightDir)
	if cosTheta <= 0 {
		return core.Vec3{}
	}
	return l.EvaluateBRDF(lightDir, viewDir, normal).MultiplyVec(incident).Multiply(cosTheta)
}

// ValidateEnergyConservation reports whether every albedo channel is in [0,1]
func (l *Lambert) ValidateEnergyConservation() bool {
	return l.Albedo.X >= 0 && l.Albedo.X <= 1 &&
		l.Albedo.Y >= 0 && l.Albedo.Y <= 1 &&
		l.Albedo.Z >= 0 && l.Albedo.Z <= 1
}

// BaseColor returns the material's albedo
func (l *Lambert) BaseColor() core.Vec3 {
	return l.Albedo
}

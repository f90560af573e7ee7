package material

import (
	"math"

	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
)

// minRoughness floors roughness away from the mirror-limit singularity
// in the distribution and geometry terms
const minRoughness = 0.01

// CookTorrance represents a microfacet BRDF with GGX distribution,
// separable Smith masking-shadowing, and Schlick fresnel
type CookTorrance struct {
	Albedo    core.Vec3 // base color, components in [0,1]
	Roughness float64   // surface roughness in [0.01,1]
	Metallic  float64   // dielectric/conductor blend in [0,1]
	Specular  float64   // dielectric reflectance at normal incidence, in [0,1]
}

// NewCookTorrance creates a cook-torrance material with parameters
// clamped into their valid ranges
func NewCookTorrance(albedo core.Vec3, roughness, metallic, specular float64) *CookTorrance {
	return &CookTorrance{
		Albedo:    albedo.Clamp(0, 1),
		Roughness: max(minRoughness, min(1.0, roughness)),
		Metallic:  max(0.0, min(1.0, metallic)),
		Specular:  max(0.0, min(1.0, specular)),
	}
}

// DistributionGGX evaluates the GGX/Trowbridge-Reitz normal distribution
// for the half vector h: α² / (π·((n·h)²·(α²−1)+1)²) with α = roughness²
func (ct *CookTorrance) DistributionGGX(normal, halfVector core.Vec3) float64 {
	nDotH := normal.Dot(halfVector)
	if nDotH <= 0 {
		return 0
	}

	alpha := ct.Roughness * ct.Roughness
	alpha2 := alpha * alpha

	denomTerm := nDotH*nDotH*(alpha2-1) + 1
	denom := math.Pi * denomTerm * denomTerm
	if denom <= 0 {
		return 0
	}

	return alpha2 / denom
}

// geometrySmithG1 evaluates the single-direction Smith term
// G1(v) = 2 / (1 + √(1 + α²·tan²θ)) using tan²θ = (1−cos²θ)/cos²θ
func (ct *CookTorrance) geometrySmithG1(normal, v core.Vec3) float64 {
	nDotV := normal.Dot(v)
	if nDotV <= 0 {
		return 0
	}
	if nDotV >= 1 {
		return 1
	}

	alpha := ct.Roughness * ct.Roughness
	cos2 := nDotV * nDotV
	tan2 := (1 - cos2) / cos2

	return 2.0 / (1.0 + math.Sqrt(1.0+alpha*alpha*tan2))
}

// GeometrySmith evaluates the separable (uncorrelated) Smith
// masking-shadowing term G = G1(wi)·G1(wo)
func (ct *CookTorrance) GeometrySmith(normal, lightDir, viewDir core.Vec3) float64 {
	return ct.geometrySmithG1(normal, lightDir) * ct.geometrySmithG1(normal, viewDir)
}

// FresnelF0 returns the reflectance at normal incidence: a blend of the
// dielectric specular term and the conductor base color, weighted by metallic
func (ct *CookTorrance) FresnelF0() core.Vec3 {
	dielectric := core.NewVec3(ct.Specular, ct.Specular, ct.Specular)
	return dielectric.Multiply(1 - ct.Metallic).Add(ct.Albedo.Multiply(ct.Metallic))
}

// SchlickFresnel evaluates Schlick's approximation per RGB channel:
// F = F0 + (1−F0)·(1−cosθ)⁵ with cosθ = clamp(v·h, 0, 1)
func (ct *CookTorrance) SchlickFresnel(viewDir, halfVector core.Vec3) core.Vec3 {
	cosTheta := max(0.0, min(1.0, viewDir.Dot(halfVector)))
	f0 := ct.FresnelF0()

	oneMinusCos := 1 - cosTheta
	pow5 := oneMinusCos * oneMinusCos * oneMinusCos * oneMinusCos * oneMinusCos

	white := core.NewVec3(1, 1, 1)
	return f0.Add(white.Subtract(f0).Multiply(pow5))
}

// EvaluateBRDF composes the microfacet terms:
// f_r = D(h)·G(wi,wo)·F(h,wo) / (4·(n·wi)·(n·wo))
func (ct *CookTorrance) EvaluateBRDF(lightDir, viewDir, normal core.Vec3) core.Vec3 {
	nDotL := normal.Dot(lightDir)
	nDotV := normal.Dot(viewDir)
	if nDotL <= 0 || nDotV <= 0 {
		return core.Vec3{}
	}

	halfVector := lightDir.Add(viewDir).Normalize()
	if halfVector.IsNearZero() {
		return core.Vec3{}
	}

	d := ct.DistributionGGX(normal, halfVector)
	g := ct.GeometrySmith(normal, lightDir, viewDir)
	f := ct.SchlickFresnel(viewDir, halfVector)

	denom := 4 * nDotL * nDotV
	if denom <= 0 {
		return core.Vec3{}
	}

	return f.Multiply(d * g / denom)
}

// ScatterLight returns BRDF * incident * cos(θ), the same rendering
// equation pattern as the lambertian material
func (ct *CookTorrance) ScatterLight(lightDir, viewDir, normal, incident core.Vec3) core.Vec3 {
	cosTheta := normal.Dot(lightDir)
	if cosTheta <= 0 {
		return core.Vec3{}
	}
	return ct.EvaluateBRDF(lightDir, viewDir, normal).MultiplyVec(incident).Multiply(cosTheta)
}

// ValidateEnergyConservation reports whether albedo channels and the
// scalar parameters are within physical range
func (ct *CookTorrance) ValidateEnergyConservation() bool {
	return ct.Albedo.X >= 0 && ct.Albedo.X <= 1 &&
		ct.Albedo.Y >= 0 && ct.Albedo.Y <= 1 &&
		ct.Albedo.Z >= 0 && ct.Albedo.Z <= 1 &&
		ct.Roughness >= minRoughness && ct.Roughness <= 1 &&
		ct.Metallic >= 0 && ct.Metallic <= 1 &&
		ct.Specular >= 0 && ct.Specular <= 1
}

// BaseColor returns the material's albedo
func (ct *CookTorrance) BaseColor() core.Vec3 {
	return ct.Albedo
}

package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/geometry"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/lights"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/material"
)

// ErrMaterialIndex indicates a sphere referencing a material index that
// has not been registered
var ErrMaterialIndex = errors.New("material index out of range")

// Scene owns the primitives, materials and lights used for rendering.
// It is populated before rendering and treated as read-only by the
// render loop. Intersection is a deliberate brute-force linear scan:
// no acceleration structure, so the first-primitive-wins tie-break on
// equal t stays stable by insertion order.
type Scene struct {
	Spheres    []geometry.Sphere
	Materials  []material.Material
	Lights     []lights.Light
	Background core.Vec3

	logger core.Logger
}

// NewScene creates an empty scene. The logger receives advisory
// warnings (energy-conservation violations); nil disables them.
func NewScene(logger core.Logger) *Scene {
	return &Scene{
		Background: core.NewVec3(0.1, 0.1, 0.15),
		logger:     logger,
	}
}

// AddMaterial registers a material and returns its index. Registration
// always succeeds; a failed energy-conservation check is logged as a
// warning, not rejected.
func (s *Scene) AddMaterial(m material.Material) int {
	if !m.ValidateEnergyConservation() && s.logger != nil {
		s.logger.Printf("warning: material %d violates energy conservation (base color %v)",
			len(s.Materials), m.BaseColor())
	}
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

// AddSphere validates and registers a sphere, returning its index.
// Invalid geometry or a material index outside the registered range is
// rejected without mutating the scene; the sentinel index is -1.
func (s *Scene) AddSphere(sphere geometry.Sphere) (int, error) {
	if err := sphere.ValidateGeometry(); err != nil {
		return -1, err
	}
	if sphere.MaterialIndex < 0 || sphere.MaterialIndex >= len(s.Materials) {
		return -1, fmt.Errorf("%w: %d with %d materials registered",
			ErrMaterialIndex, sphere.MaterialIndex, len(s.Materials))
	}
	s.Spheres = append(s.Spheres, sphere)
	return len(s.Spheres) - 1, nil
}

// AddLight registers a light and returns its index
func (s *Scene) AddLight(l lights.Light) int {
	s.Lights = append(s.Lights, l)
	return len(s.Lights) - 1
}

// Intersect performs the brute-force closest-hit search over all
// spheres. Hits at t <= ShadowBias are rejected; the strictly-less
// comparison keeps ties stable by insertion order. stats may be nil.
func (s *Scene) Intersect(ray core.Ray, stats *core.TraceStats) (core.Hit, bool) {
	if stats != nil {
		stats.RaysTraced++
		stats.IntersectionTests += int64(len(s.Spheres))
	}

	closest := core.Hit{T: math.Inf(1)}
	found := false

	for i, sphere := range s.Spheres {
		hit, ok := sphere.Intersect(ray)
		if !ok {
			continue
		}
		if hit.T > core.ShadowBias && hit.T < closest.T {
			closest = core.Hit{
				T:             hit.T,
				Point:         hit.Point,
				Normal:        hit.Normal,
				MaterialIndex: sphere.MaterialIndex,
				SphereIndex:   i,
			}
			found = true
		}
	}

	return closest, found
}

// ClosestHit implements lights.Occluder for shadow queries
func (s *Scene) ClosestHit(ray core.Ray) (float64, bool) {
	hit, ok := s.Intersect(ray, nil)
	return hit.T, ok
}

// MaterialAt returns the material registered at the given index
func (s *Scene) MaterialAt(index int) material.Material {
	return s.Materials[index]
}

// LightList returns the scene's lights
func (s *Scene) LightList() []lights.Light {
	return s.Lights
}

// BackgroundColor returns the color used for rays that miss all geometry
func (s *Scene) BackgroundColor() core.Vec3 {
	return s.Background
}

// PrimitiveCount returns the number of spheres in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.Spheres)
}

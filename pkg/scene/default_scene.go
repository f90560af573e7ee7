package scene

import (
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/geometry"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/lights"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/material"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/renderer"
)

// NewDefaultScene creates the default demo scene: three spheres with
// mixed materials on a large ground sphere, lit by a point light and a
// directional fill.
func NewDefaultScene(logger core.Logger) (*Scene, renderer.CameraConfig) {
	s := NewScene(logger)
	s.Background = core.NewVec3(0.5, 0.7, 1.0)

	ground := s.AddMaterial(material.NewLambert(core.NewVec3(0.5, 0.5, 0.5)))
	red := s.AddMaterial(material.NewLambert(core.NewVec3(0.7, 0.2, 0.2)))
	gold := s.AddMaterial(material.NewCookTorrance(core.NewVec3(1.0, 0.78, 0.34), 0.25, 1.0, 0.5))
	plastic := s.AddMaterial(material.NewCookTorrance(core.NewVec3(0.2, 0.4, 0.8), 0.6, 0.0, 0.5))

	// Large ground sphere stands in for an infinite plane
	mustAddSphere(s, geometry.NewSphere(core.NewVec3(0, -100.5, -3), 100, ground))
	mustAddSphere(s, geometry.NewSphere(core.NewVec3(-1.1, 0, -3), 0.5, red))
	mustAddSphere(s, geometry.NewSphere(core.NewVec3(0, 0, -3), 0.5, gold))
	mustAddSphere(s, geometry.NewSphere(core.NewVec3(1.1, 0, -3), 0.5, plastic))

	s.AddLight(lights.NewPointLight(core.NewVec3(2, 3, 0), core.NewVec3(1, 1, 1), 20))
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(-0.5, -1, -0.5), core.NewVec3(0.9, 0.9, 1.0), 0.5))

	camera := renderer.CameraConfig{
		Position:    core.NewVec3(0, 0.5, 1),
		Target:      core.NewVec3(0, 0, -3),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        45,
		AspectRatio: 16.0 / 9.0,
	}
	return s, camera
}

// mustAddSphere adds a preset sphere; preset geometry is known-valid,
// so a rejection here is a programming error
func mustAddSphere(s *Scene, sphere geometry.Sphere) {
	if _, err := s.AddSphere(sphere); err != nil {
		panic(err)
	}
}

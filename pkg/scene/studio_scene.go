package scene

import (
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/geometry"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/lights"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/material"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/renderer"
)

// NewStudioScene creates a dark scene lit by a single overhead area
// light, showcasing soft shadows from 1-sample area lighting. The
// per-pixel noise is expected: one shadow ray per pixel, no averaging.
func NewStudioScene(logger core.Logger) (*Scene, renderer.CameraConfig) {
	s := NewScene(logger)
	s.Background = core.NewVec3(0.02, 0.02, 0.03)

	floor := s.AddMaterial(material.NewLambert(core.NewVec3(0.6, 0.6, 0.6)))
	chrome := s.AddMaterial(material.NewCookTorrance(core.NewVec3(0.9, 0.9, 0.9), 0.1, 1.0, 0.8))
	matte := s.AddMaterial(material.NewLambert(core.NewVec3(0.8, 0.5, 0.3)))

	mustAddSphere(s, geometry.NewSphere(core.NewVec3(0, -100.5, -3), 100, floor))
	mustAddSphere(s, geometry.NewSphere(core.NewVec3(-0.6, 0, -3), 0.5, chrome))
	mustAddSphere(s, geometry.NewSphere(core.NewVec3(0.6, 0, -3), 0.5, matte))

	// Overhead rectangle facing down
	s.AddLight(lights.NewAreaLight(
		core.NewVec3(0, 2.5, -3),
		core.NewVec3(0, -1, 0),
		1.5, 1.5,
		core.NewVec3(1, 1, 0.95),
		4,
	))

	camera := renderer.CameraConfig{
		Position:    core.NewVec3(0, 0.8, 0.5),
		Target:      core.NewVec3(0, 0, -3),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 16.0 / 9.0,
	}
	return s, camera
}

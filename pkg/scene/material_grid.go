package scene

import (
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/geometry"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/lights"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/material"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/renderer"
)

const (
	gridRows = 5 // roughness steps, top to bottom
	gridCols = 5 // metallic steps, left to right
)

// NewMaterialGridScene creates a grid of spheres sweeping cook-torrance
// roughness down each column and metallic across each row, the usual
// PBR calibration layout.
func NewMaterialGridScene(logger core.Logger) (*Scene, renderer.CameraConfig) {
	s := NewScene(logger)
	s.Background = core.NewVec3(0.1, 0.1, 0.12)

	baseColor := core.NewVec3(0.9, 0.3, 0.2)
	spacing := 1.2

	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			roughness := 0.05 + 0.95*float64(row)/float64(gridRows-1)
			metallic := float64(col) / float64(gridCols-1)
			idx := s.AddMaterial(material.NewCookTorrance(baseColor, roughness, metallic, 0.5))

			center := core.NewVec3(
				(float64(col)-float64(gridCols-1)/2)*spacing,
				(float64(gridRows-1)/2-float64(row))*spacing,
				-6,
			)
			mustAddSphere(s, geometry.NewSphere(center, 0.5, idx))
		}
	}

	s.AddLight(lights.NewPointLight(core.NewVec3(3, 4, 0), core.NewVec3(1, 1, 1), 60))
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(0, 0, -1), core.NewVec3(1, 1, 1), 0.3))

	camera := renderer.CameraConfig{
		Position:    core.NewVec3(0, 0, 2),
		Target:      core.NewVec3(0, 0, -6),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        50,
		AspectRatio: 1.0,
	}
	return s, camera
}

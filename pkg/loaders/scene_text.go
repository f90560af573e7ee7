package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/geometry"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/lights"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/material"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/renderer"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/scene"
)

// LoadScene parses a line-oriented scene description file. Supported
// directives, one per line ('#' starts a comment):
//
//	background r g b
//	camera px py pz tx ty tz ux uy uz vfov
//	material lambert r g b
//	material cooktorrance r g b roughness metallic specular
//	sphere cx cy cz radius materialIndex
//	light point px py pz r g b intensity
//	light directional dx dy dz r g b intensity
//	light area cx cy cz nx ny nz width height r g b intensity
//
// Materials must be declared before the spheres that reference them.
// The camera aspect ratio is derived later from the output resolution.
func LoadScene(path string, logger core.Logger) (*scene.Scene, renderer.CameraConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, renderer.CameraConfig{}, fmt.Errorf("opening scene file: %w", err)
	}
	defer file.Close()

	s := scene.NewScene(logger)
	camera := renderer.CameraConfig{
		Position: core.NewVec3(0, 0, 1),
		Target:   core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     45,
	}

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "background":
			var c core.Vec3
			c, err = parseVec3(fields[1:])
			if err == nil {
				s.Background = c
			}
		case "camera":
			err = parseCamera(fields[1:], &camera)
		case "material":
			err = parseMaterial(fields[1:], s)
		case "sphere":
			err = parseSphere(fields[1:], s)
		case "light":
			err = parseLight(fields[1:], s)
		default:
			err = fmt.Errorf("unknown directive %q", fields[0])
		}
		if err != nil {
			return nil, renderer.CameraConfig{}, fmt.Errorf("%s line %d: %w", path, lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, renderer.CameraConfig{}, fmt.Errorf("reading scene file: %w", err)
	}

	return s, camera, nil
}

func parseFloats(fields []string, want int) ([]float64, error) {
	if len(fields) != want {
		return nil, fmt.Errorf("expected %d values, got %d", want, len(fields))
	}
	values := make([]float64, want)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", f)
		}
		values[i] = v
	}
	return values, nil
}

func parseVec3(fields []string) (core.Vec3, error) {
	v, err := parseFloats(fields, 3)
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

func parseCamera(fields []string, camera *renderer.CameraConfig) error {
	v, err := parseFloats(fields, 10)
	if err != nil {
		return err
	}
	camera.Position = core.NewVec3(v[0], v[1], v[2])
	camera.Target = core.NewVec3(v[3], v[4], v[5])
	camera.Up = core.NewVec3(v[6], v[7], v[8])
	camera.VFov = v[9]
	return nil
}

func parseMaterial(fields []string, s *scene.Scene) error {
	if len(fields) == 0 {
		return fmt.Errorf("missing material type")
	}
	switch fields[0] {
	case "lambert":
		v, err := parseFloats(fields[1:], 3)
		if err != nil {
			return err
		}
		s.AddMaterial(material.NewLambert(core.NewVec3(v[0], v[1], v[2])))
	case "cooktorrance":
		v, err := parseFloats(fields[1:], 6)
		if err != nil {
			return err
		}
		s.AddMaterial(material.NewCookTorrance(core.NewVec3(v[0], v[1], v[2]), v[3], v[4], v[5]))
	default:
		return fmt.Errorf("unknown material type %q", fields[0])
	}
	return nil
}

func parseSphere(fields []string, s *scene.Scene) error {
	v, err := parseFloats(fields, 5)
	if err != nil {
		return err
	}
	matIndex := int(v[4])
	if float64(matIndex) != v[4] {
		return fmt.Errorf("material index must be an integer, got %v", v[4])
	}
	sphere := geometry.NewSphere(core.NewVec3(v[0], v[1], v[2]), v[3], matIndex)
	if _, err := s.AddSphere(sphere); err != nil {
		return err
	}
	return nil
}

func parseLight(fields []string, s *scene.Scene) error {
	if len(fields) == 0 {
		return fmt.Errorf("missing light type")
	}
	switch fields[0] {
	case "point":
		v, err := parseFloats(fields[1:], 7)
		if err != nil {
			return err
		}
		s.AddLight(lights.NewPointLight(
			core.NewVec3(v[0], v[1], v[2]),
			core.NewVec3(v[3], v[4], v[5]),
			v[6],
		))
	case "directional":
		v, err := parseFloats(fields[1:], 7)
		if err != nil {
			return err
		}
		s.AddLight(lights.NewDirectionalLight(
			core.NewVec3(v[0], v[1], v[2]),
			core.NewVec3(v[3], v[4], v[5]),
			v[6],
		))
	case "area":
		v, err := parseFloats(fields[1:], 12)
		if err != nil {
			return err
		}
		s.AddLight(lights.NewAreaLight(
			core.NewVec3(v[0], v[1], v[2]),
			core.NewVec3(v[3], v[4], v[5]),
			v[6], v[7],
			core.NewVec3(v[8], v[9], v[10]),
			v[11],
		))
	default:
		return fmt.Errorf("unknown light type %q", fields[0])
	}
	return nil
}

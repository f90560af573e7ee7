package renderer

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/lights"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/material"
)

// Scene is the read-only scene contract the renderer consumes.
// Declared here so the renderer does not depend on the scene package.
type Scene interface {
	// Intersect returns the closest hit along the ray; stats may be nil
	Intersect(ray core.Ray, stats *core.TraceStats) (core.Hit, bool)

	// ClosestHit is the shadow-ray query used by lights
	ClosestHit(ray core.Ray) (float64, bool)

	// MaterialAt returns the material at a registry index
	MaterialAt(index int) material.Material

	// LightList returns the scene's lights
	LightList() []lights.Light

	// BackgroundColor is returned for rays that miss all geometry
	BackgroundColor() core.Vec3
}

// RenderConfig contains rendering configuration. One ray is traced per
// pixel; there is no multi-sampling or anti-aliasing.
type RenderConfig struct {
	Width   int
	Height  int
	Workers int   // number of row workers; <= 0 selects one per CPU
	Seed    int64 // base seed for area-light sampling; 0 seeds from the clock

	// FallbackLight is used when the scene has no lights at all, so an
	// unlit scene renders visibly instead of going silently dark. When
	// nil, a white point light at the camera position is substituted.
	FallbackLight lights.Light
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig(width, height int) RenderConfig {
	return RenderConfig{
		Width:  width,
		Height: height,
	}
}

// Raytracer renders a scene through a camera: one camera ray per
// pixel, closest-hit visibility, and direct lighting summed over all
// lights with per-light shadow tests. No indirect bounces.
type Raytracer struct {
	scene    Scene
	camera   *Camera
	config   RenderConfig
	logger   core.Logger
	fallback []lights.Light
}

// NewRaytracer creates a raytracer for the given scene and camera
func NewRaytracer(scene Scene, camera *Camera, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("invalid resolution %dx%d", config.Width, config.Height)
	}
	if err := camera.ValidateAspect(config.Width, config.Height); err != nil {
		return nil, err
	}

	fallbackLight := config.FallbackLight
	if fallbackLight == nil {
		fallbackLight = lights.NewPointLight(camera.Position(), core.NewVec3(1, 1, 1), 10.0)
	}

	return &Raytracer{
		scene:    scene,
		camera:   camera,
		config:   config,
		logger:   logger,
		fallback: []lights.Light{fallbackLight},
	}, nil
}

// ShadeRay returns the linear radiance carried back along a single
// camera ray: background on a miss, otherwise the sum of every light's
// unoccluded contribution through the hit material.
func (rt *Raytracer) ShadeRay(ray core.Ray, rng *rand.Rand, stats *core.TraceStats) core.Vec3 {
	hit, ok := rt.scene.Intersect(ray, stats)
	if !ok {
		return rt.scene.BackgroundColor()
	}

	mat := rt.scene.MaterialAt(hit.MaterialIndex)
	viewDir := ray.Direction.Normalize().Negate()

	sceneLights := rt.scene.LightList()
	if len(sceneLights) == 0 {
		sceneLights = rt.fallback
	}

	// Direct lighting only: independent sources sum linearly
	total := core.Vec3{}
	for _, light := range sceneLights {
		illum, ok := light.Illuminate(hit.Point, rng)
		if !ok {
			continue
		}
		if light.IsOccluded(hit.Point, illum, rt.scene) {
			continue
		}
		total = total.Add(mat.ScatterLight(illum.Direction, viewDir, hit.Normal, illum.Radiance))
	}

	return total
}

// renderRow shades every pixel of one image row into the framebuffer.
// Rows are independent, so concurrent calls on distinct rows are safe.
func (rt *Raytracer) renderRow(y int, fb *Framebuffer, rng *rand.Rand, stats *core.TraceStats) {
	for x := 0; x < rt.config.Width; x++ {
		ray := rt.camera.GenerateRay(x, y, rt.config.Width, rt.config.Height)
		fb.Set(x, y, rt.ShadeRay(ray, rng, stats))
	}
}

// Render renders the full image and returns the linear framebuffer
// along with render statistics. Rows are partitioned across workers;
// each worker owns its random generator and stats accumulator.
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	start := time.Now()

	seed := rt.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fb := NewFramebuffer(rt.config.Width, rt.config.Height)
	workers, stats := rt.renderRows(fb, seed)

	return fb, RenderStats{
		TotalPixels:       rt.config.Width * rt.config.Height,
		RaysTraced:        stats.RaysTraced,
		IntersectionTests: stats.IntersectionTests,
		Workers:           workers,
		Duration:          time.Since(start),
	}
}

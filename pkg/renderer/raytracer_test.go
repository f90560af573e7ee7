package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/geometry"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/lights"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/material"
)

// testScene is a minimal Scene implementation for renderer tests,
// mirroring the real scene's brute-force closest-hit contract
type testScene struct {
	spheres    []geometry.Sphere
	materials  []material.Material
	lights     []lights.Light
	background core.Vec3
}

func (ts *testScene) Intersect(ray core.Ray, stats *core.TraceStats) (core.Hit, bool) {
	if stats != nil {
		stats.RaysTraced++
		stats.IntersectionTests += int64(len(ts.spheres))
	}
	closest := core.Hit{T: math.Inf(1)}
	found := false
	for i, sphere := range ts.spheres {
		hit, ok := sphere.Intersect(ray)
		if ok && hit.T > core.ShadowBias && hit.T < closest.T {
			closest = core.Hit{
				T: hit.T, Point: hit.Point, Normal: hit.Normal,
				MaterialIndex: sphere.MaterialIndex, SphereIndex: i,
			}
			found = true
		}
	}
	return closest, found
}

func (ts *testScene) ClosestHit(ray core.Ray) (float64, bool) {
	hit, ok := ts.Intersect(ray, nil)
	return hit.T, ok
}

func (ts *testScene) MaterialAt(index int) material.Material { return ts.materials[index] }
func (ts *testScene) LightList() []lights.Light              { return ts.lights }
func (ts *testScene) BackgroundColor() core.Vec3             { return ts.background }

func singleSphereScene() *testScene {
	return &testScene{
		spheres:    []geometry.Sphere{geometry.NewSphere(core.NewVec3(0, 0, -5), 1, 0)},
		materials:  []material.Material{material.NewLambert(core.NewVec3(0.6, 0.6, 0.6))},
		lights:     []lights.Light{lights.NewPointLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), 16)},
		background: core.NewVec3(0.1, 0.2, 0.3),
	}
}

func newTestRaytracer(t *testing.T, ts *testScene, width, height int) *Raytracer {
	t.Helper()
	config := testCameraConfig()
	config.AspectRatio = float64(width) / float64(height)
	camera, err := NewCamera(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	rt, err := NewRaytracer(ts, camera, DefaultRenderConfig(width, height), nil)
	if err != nil {
		t.Fatal(err)
	}
	return rt
}

func TestRaytracer_ShadeRay_MissReturnsBackground(t *testing.T) {
	ts := singleSphereScene()
	rt := newTestRaytracer(t, ts, 100, 100)
	rng := rand.New(rand.NewSource(42))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	color := rt.ShadeRay(ray, rng, nil)
	if color.Subtract(ts.background).Length() > 1e-12 {
		t.Errorf("Expected background %v, got %v", ts.background, color)
	}
}

func TestRaytracer_ShadeRay_DirectLighting(t *testing.T) {
	ts := singleSphereScene()
	rt := newTestRaytracer(t, ts, 100, 100)
	rng := rand.New(rand.NewSource(42))

	// Ray down the axis hits (0,0,-4) with normal (0,0,1); the point
	// light at the origin is 4 away along the normal, unoccluded
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := rt.ShadeRay(ray, rng, nil)

	// Lambert: albedo/π · (I/d²) · cosθ with cosθ=1, d=4, I=16
	expected := core.NewVec3(0.6, 0.6, 0.6).Multiply(1.0 / math.Pi)
	if color.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, color)
	}
}

func TestRaytracer_ShadeRay_ShadowedLightContributesNothing(t *testing.T) {
	ts := singleSphereScene()
	// Light off-axis so the hit point (0,0,-4) sees it at a positive
	// cosine, with a blocker centered on the shadow segment and clear
	// of the primary ray
	ts.lights = []lights.Light{lights.NewPointLight(core.NewVec3(0, 3, -1), core.NewVec3(1, 1, 1), 16)}
	ts.spheres = append(ts.spheres, geometry.NewSphere(core.NewVec3(0, 1.5, -2.5), 0.3, 0))
	rt := newTestRaytracer(t, ts, 100, 100)
	rng := rand.New(rand.NewSource(42))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := rt.ShadeRay(ray, rng, nil)
	if color.Length() != 0 {
		t.Errorf("Expected zero radiance in full shadow, got %v", color)
	}
}

func TestRaytracer_ShadeRay_ZeroLightFallback(t *testing.T) {
	ts := singleSphereScene()
	ts.lights = nil
	rt := newTestRaytracer(t, ts, 100, 100)
	rng := rand.New(rand.NewSource(42))

	// The fallback headlight at the camera position keeps the scene lit
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := rt.ShadeRay(ray, rng, nil)
	if color.Length() == 0 {
		t.Error("Zero-light scene must fall back to the default light, not go dark")
	}
}

func TestRaytracer_Render_DeterministicAcrossWorkerCounts(t *testing.T) {
	// Scenes without area lights are fully deterministic, so worker
	// partitioning must not change a single pixel
	render := func(workers int) *Framebuffer {
		ts := singleSphereScene()
		config := testCameraConfig()
		camera, err := NewCamera(config, nil)
		if err != nil {
			t.Fatal(err)
		}
		rc := DefaultRenderConfig(40, 40)
		rc.Workers = workers
		rc.Seed = 7
		rt, err := NewRaytracer(ts, camera, rc, nil)
		if err != nil {
			t.Fatal(err)
		}
		fb, _ := rt.Render()
		return fb
	}

	sequential := render(1)
	parallel := render(4)

	for i := range sequential.Pixels {
		if sequential.Pixels[i] != parallel.Pixels[i] {
			t.Fatalf("Pixel %d differs between 1 and 4 workers: %v vs %v",
				i, sequential.Pixels[i], parallel.Pixels[i])
		}
	}
}

func TestRaytracer_Render_Stats(t *testing.T) {
	ts := singleSphereScene()
	rt := newTestRaytracer(t, ts, 20, 20)

	_, stats := rt.Render()

	if stats.TotalPixels != 400 {
		t.Errorf("Expected 400 pixels, got %d", stats.TotalPixels)
	}
	// One primary ray per pixel, no multi-sampling
	if stats.RaysTraced != 400 {
		t.Errorf("Expected 400 primary rays, got %d", stats.RaysTraced)
	}
	if stats.IntersectionTests < stats.RaysTraced {
		t.Errorf("Expected at least one test per ray, got %d", stats.IntersectionTests)
	}
	if stats.Workers < 1 {
		t.Errorf("Expected at least one worker, got %d", stats.Workers)
	}
}

func TestRaytracer_RejectsAspectMismatch(t *testing.T) {
	ts := singleSphereScene()
	config := testCameraConfig()
	config.AspectRatio = 1.0
	camera, err := NewCamera(config, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewRaytracer(ts, camera, DefaultRenderConfig(800, 450), nil); err == nil {
		t.Error("Aspect/resolution mismatch must be rejected before rendering")
	}
}

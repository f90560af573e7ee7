package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/loaders"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/renderer"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/scene"
)

func main() {
	sceneFlag := flag.String("scene", "default", "Scene preset ('default', 'studio', 'grid') or path to a .scene file")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	output := flag.String("out", "", "Output PNG path (default output/render_<timestamp>.png)")
	workers := flag.Int("workers", 0, "Render workers (0 = one per CPU)")
	seed := flag.Int64("seed", 0, "Area-light sampling seed (0 = seed from the clock)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Educational Ray Tracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available presets:")
		fmt.Println("  default - Three spheres with mixed materials, point + directional light")
		fmt.Println("  studio  - Area-light soft shadow showcase")
		fmt.Println("  grid    - Cook-Torrance roughness/metallic sweep")
		return
	}

	logger := log.New(os.Stderr, "", log.Ltime)

	sc, cameraConfig, err := buildScene(*sceneFlag, logger)
	if err != nil {
		log.Fatalf("Error loading scene: %v", err)
	}

	// The aspect ratio always follows the output resolution; a preset
	// or scene-file ratio that disagrees would distort the image
	cameraConfig.AspectRatio = float64(*width) / float64(*height)

	camera, err := renderer.NewCamera(cameraConfig, logger)
	if err != nil {
		log.Fatalf("Error building camera: %v", err)
	}

	config := renderer.DefaultRenderConfig(*width, *height)
	config.Workers = *workers
	config.Seed = *seed

	rt, err := renderer.NewRaytracer(sc, camera, config, logger)
	if err != nil {
		log.Fatalf("Error creating raytracer: %v", err)
	}

	fmt.Printf("Rendering %dx%d, %d spheres, %d lights...\n",
		*width, *height, sc.PrimitiveCount(), len(sc.Lights))

	fb, stats := rt.Render()

	fmt.Printf("Render completed in %v (%d workers)\n", stats.Duration.Round(time.Millisecond), stats.Workers)
	fmt.Printf("Traced %d rays, %d intersection tests (%.0f rays/sec)\n",
		stats.RaysTraced, stats.IntersectionTests, stats.RaysPerSecond())

	outPath := *output
	if outPath == "" {
		if err := os.MkdirAll("output", 0755); err != nil {
			log.Fatalf("Error creating output directory: %v", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		outPath = filepath.Join("output", fmt.Sprintf("render_%s.png", timestamp))
	}

	if err := loaders.WritePNG(outPath, fb, renderer.DefaultGamma); err != nil {
		log.Fatalf("Error writing image: %v", err)
	}

	fmt.Printf("Render saved as %s\n", outPath)
}

// buildScene resolves a preset name or scene file path
func buildScene(name string, logger core.Logger) (*scene.Scene, renderer.CameraConfig, error) {
	switch name {
	case "default":
		s, cam := scene.NewDefaultScene(logger)
		return s, cam, nil
	case "studio":
		s, cam := scene.NewStudioScene(logger)
		return s, cam, nil
	case "grid":
		s, cam := scene.NewMaterialGridScene(logger)
		return s, cam, nil
	}
	if strings.HasSuffix(name, ".scene") {
		return loaders.LoadScene(name, logger)
	}
	return nil, renderer.CameraConfig{}, fmt.Errorf("unknown scene %q (presets: default, studio, grid; or a .scene file)", name)
}

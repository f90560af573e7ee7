package loaders

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
	"github.com/nurusanwe/raytracingLearning-sub000/pkg/renderer"
)

func TestWritePNG_RoundTrip(t *testing.T) {
	fb := renderer.NewFramebuffer(8, 4)
	for i := range fb.Pixels {
		fb.Pixels[i] = core.NewVec3(0.5, 0.25, 1.0)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNG(path, fb, renderer.DefaultGamma); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Output is not valid PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 4 {
		t.Errorf("Expected 8x4 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestWritePNG_BadPath(t *testing.T) {
	fb := renderer.NewFramebuffer(2, 2)
	if err := WritePNG(filepath.Join(t.TempDir(), "missing", "out.png"), fb, 2.2); err == nil {
		t.Error("Expected error for unwritable path")
	}
}

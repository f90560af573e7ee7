package loaders

import (
	"fmt"
	"image/png"
	"os"

	"github.com/nurusanwe/raytracingLearning-sub000/pkg/renderer"
)

// WritePNG converts the linear framebuffer to 8-bit sRGB-ish output
// (clamp, gamma, quantize) and writes it as a PNG file
func WritePNG(path string, fb *renderer.Framebuffer, gamma float64) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, fb.ToImage(gamma)); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

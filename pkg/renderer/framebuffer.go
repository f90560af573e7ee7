package renderer

import (
	"image"
	"image/color"

	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
)

// DefaultGamma is the display gamma applied when converting linear
// radiance to 8-bit output
const DefaultGamma = 2.2

// Framebuffer holds linear-RGB radiance values per pixel. The renderer
// only ever produces linear values; clamping, gamma correction and
// quantization happen at image conversion time.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3 // row-major, row 0 at the top
}

// NewFramebuffer creates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the linear color at (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// Set stores a linear color at (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.Pixels[y*fb.Width+x] = c
}

// ToImage converts the linear framebuffer to an 8-bit RGBA image,
// applying clamping and gamma correction
func (fb *Framebuffer) ToImage(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y).Clamp(0.0, 1.0)
			if gamma > 0 {
				c = c.GammaCorrect(gamma)
			}
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}

	return img
}

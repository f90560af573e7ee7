package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
)

// Camera parameter limits. Out-of-range values are clamped with a
// logged adjustment rather than rejected.
const (
	minVFov        = 1.0
	maxVFov        = 179.0
	minAspectRatio = 0.1
	maxAspectRatio = 10.0

	// Up vectors within ~2.5 degrees of the viewing direction leave no
	// stable basis and are rejected
	maxUpForwardCosine = 0.999
)

// ErrDegenerateCamera indicates camera inputs that cannot produce an
// orthonormal basis
var ErrDegenerateCamera = errors.New("degenerate camera configuration")

// CameraConfig holds camera parameters
type CameraConfig struct {
	Position    core.Vec3
	Target      core.Vec3
	Up          core.Vec3
	VFov        float64 // vertical field of view in degrees
	AspectRatio float64 // width / height
}

// Camera maps pixel coordinates to world-space rays through a pinhole
// model. The vertical field of view is exact for any resolution; only
// the horizontal extent scales with the aspect ratio.
type Camera struct {
	position    core.Vec3
	forward     core.Vec3
	right       core.Vec3
	up          core.Vec3
	vfovDegrees float64
	aspectRatio float64
	fovScale    float64 // tan(vfov/2)
}

// NewCamera builds a camera with a right-handed orthonormal basis from
// position/target/up. Field of view and aspect ratio outside their
// valid ranges are clamped and reported through the logger. Degenerate
// inputs (position at target, up parallel to the view direction) are
// rejected.
func NewCamera(config CameraConfig, logger core.Logger) (*Camera, error) {
	toTarget := config.Target.Subtract(config.Position)
	if toTarget.IsNearZero() {
		return nil, fmt.Errorf("%w: position coincides with target %v", ErrDegenerateCamera, config.Position)
	}
	if config.Up.IsNearZero() {
		return nil, fmt.Errorf("%w: zero-length up vector", ErrDegenerateCamera)
	}

	forward := toTarget.Normalize()
	upWorld := config.Up.Normalize()
	if math.Abs(forward.Dot(upWorld)) > maxUpForwardCosine {
		return nil, fmt.Errorf("%w: up vector parallel to view direction", ErrDegenerateCamera)
	}

	vfov := config.VFov
	if vfov < minVFov || vfov > maxVFov {
		clamped := max(minVFov, min(maxVFov, vfov))
		if logger != nil {
			logger.Printf("camera: field of view %.1f out of range, clamped to %.1f", vfov, clamped)
		}
		vfov = clamped
	}

	aspect := config.AspectRatio
	if aspect < minAspectRatio || aspect > maxAspectRatio {
		clamped := max(minAspectRatio, min(maxAspectRatio, aspect))
		if logger != nil {
			logger.Printf("camera: aspect ratio %.3f out of range, clamped to %.3f", aspect, clamped)
		}
		aspect = clamped
	}

	right := forward.Cross(upWorld).Normalize()
	cameraUp := right.Cross(forward)

	return &Camera{
		position:    config.Position,
		forward:     forward,
		right:       right,
		up:          cameraUp,
		vfovDegrees: vfov,
		aspectRatio: aspect,
		fovScale:    math.Tan(vfov * math.Pi / 360.0),
	}, nil
}

// GenerateRay maps a pixel coordinate and image resolution to a
// world-space ray. Row 0 is the top of the image.
func (c *Camera) GenerateRay(pixelX, pixelY, imageWidth, imageHeight int) core.Ray {
	ndcX := 2.0*float64(pixelX)/float64(imageWidth) - 1.0
	ndcY := 1.0 - 2.0*float64(pixelY)/float64(imageHeight)

	// Camera-space direction: x right, y up, z forward
	camX := ndcX * c.aspectRatio * c.fovScale
	camY := ndcY * c.fovScale

	direction := c.right.Multiply(camX).
		Add(c.up.Multiply(camY)).
		Add(c.forward).
		Normalize()

	return core.NewRay(c.position, direction)
}

// ValidateAspect checks that the configured aspect ratio matches the
// output resolution. A mismatch produces geometric distortion, so the
// driver must derive the ratio from width/height before rendering.
func (c *Camera) ValidateAspect(imageWidth, imageHeight int) error {
	if imageWidth <= 0 || imageHeight <= 0 {
		return fmt.Errorf("invalid resolution %dx%d", imageWidth, imageHeight)
	}
	actual := float64(imageWidth) / float64(imageHeight)
	if math.Abs(actual-c.aspectRatio)/c.aspectRatio > 0.01 {
		return fmt.Errorf("aspect ratio %.4f does not match resolution %dx%d (%.4f)",
			c.aspectRatio, imageWidth, imageHeight, actual)
	}
	return nil
}

// Position returns the camera position
func (c *Camera) Position() core.Vec3 {
	return c.position
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.forward
}

// Right returns the unit basis vector pointing screen-right
func (c *Camera) Right() core.Vec3 {
	return c.right
}

// Up returns the unit basis vector pointing screen-up
func (c *Camera) Up() core.Vec3 {
	return c.up
}

// VFov returns the effective vertical field of view in degrees
func (c *Camera) VFov() float64 {
	return c.vfovDegrees
}

// AspectRatio returns the effective aspect ratio
func (c *Camera) AspectRatio() float64 {
	return c.aspectRatio
}

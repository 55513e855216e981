// Package tracer implements the spectral path tracer: camera ray
// generation, nearest-hit resolution and the recursive shading that
// accumulates radiance into a spectral distribution per pixel.
package tracer

import (
	"github.com/chewxy/math32"

	"github.com/happy737/spectral-raytracer/pkg/geometry"
	"github.com/happy737/spectral-raytracer/pkg/scene"
)

// Camera maps pixel coordinates to world-space rays through a pinhole
// model. The view basis is orthonormalized from the scene camera's forward
// and up hints, so the up vector only has to be roughly vertical.
type Camera struct {
	position geometry.Vec3
	forward  geometry.Vec3
	right    geometry.Vec3
	up       geometry.Vec3

	halfWidth  float32
	halfHeight float32
	width      float32
	height     float32
}

// NewCamera builds the ray-generation camera for an image of the given
// size. It fails when forward and up are linearly dependent; this is
// checked before any render work begins.
func NewCamera(spec scene.Camera, width, height int) (*Camera, error) {
	if geometry.LinearlyDependent(spec.Forward, spec.Up) {
		return nil, scene.ErrDependentCameraAxes
	}

	forward := spec.Forward.Normalize()
	right := forward.Cross(spec.Up).Normalize()
	up := right.Cross(forward)

	halfHeight := math32.Tan(spec.VerticalFOV / 2 * math32.Pi / 180)
	aspectRatio := float32(width) / float32(height)

	return &Camera{
		position:   spec.Position,
		forward:    forward,
		right:      right,
		up:         up,
		halfWidth:  halfHeight * aspectRatio,
		halfHeight: halfHeight,
		width:      float32(width),
		height:     float32(height),
	}, nil
}

// GenerateRay maps a pixel plus a sub-pixel jitter in [0,1)² to a ray
// through the pinhole. The vertical axis is flipped so pixel row 0 is the
// top of the image.
func (c *Camera) GenerateRay(pixelX, pixelY int, jitterX, jitterY float32) geometry.Ray {
	x := ((float32(pixelX)+jitterX)/c.width*2 - 1) * c.halfWidth
	y := -((float32(pixelY)+jitterY)/c.height*2 - 1) * c.halfHeight

	direction := c.forward.
		Add(c.right.Multiply(x)).
		Add(c.up.Multiply(y)).
		Normalize()

	return geometry.NewRay(c.position, direction)
}

// Package scene defines the immutable scene snapshot handed to a render:
// primitives, point lights, the camera and the template spectrum that all
// zero spectra of the render are derived from. A snapshot is built once per
// render request and shared read-only across every worker.
package scene

import (
	"errors"
	"fmt"

	"github.com/happy737/spectral-raytracer/pkg/geometry"
	"github.com/happy737/spectral-raytracer/pkg/spectral"
)

// ErrDependentCameraAxes is returned when the camera forward and up vectors
// point along the same line, which makes the view basis degenerate.
var ErrDependentCameraAxes = errors.New("scene: camera direction and up vector are linearly dependent")

// Primitive is one renderable object: a shape, the spectrum describing its
// reflectance (conventionally clamped to [0,1]) and a metallic flag that
// switches the surface from diffuse to mirror shading.
type Primitive struct {
	Name     string
	Shape    geometry.Shape
	Spectrum spectral.Distribution
	Metallic bool
}

// Light is a point light source with an emissive spectrum
type Light struct {
	Name     string
	Position geometry.Vec3
	Spectrum spectral.Distribution
}

// Camera describes a pinhole camera. Forward and Up need not be orthogonal
// or normalized but must not be linearly dependent.
type Camera struct {
	Position    geometry.Vec3
	Forward     geometry.Vec3
	Up          geometry.Vec3
	VerticalFOV float32 // degrees
}

// DefaultCamera returns the camera all preset scenes start from: at
// (0, 0, -2) looking down the positive z axis.
func DefaultCamera() Camera {
	return Camera{
		Position:    geometry.NewVec3(0, 0, -2),
		Forward:     geometry.NewVec3(0, 0, 1),
		Up:          geometry.NewVec3(0, 1, 0),
		VerticalFOV: 60,
	}
}

// Scene is the frozen scene description for one render
type Scene struct {
	Primitives []Primitive
	Lights     []Light
	Camera     Camera

	// Template supplies the sample count and wavelength bounds for every
	// zero and accumulator spectrum created during the render.
	Template spectral.Distribution
}

// Validate checks the preconditions the tracer relies on. It is called
// before any render work begins; a failure here is a caller error and the
// only recovery is a corrected render request.
func (s *Scene) Validate() error {
	if geometry.LinearlyDependent(s.Camera.Forward, s.Camera.Up) {
		return fmt.Errorf("%w: dir (%g, %g, %g), up (%g, %g, %g)", ErrDependentCameraAxes,
			s.Camera.Forward.X, s.Camera.Forward.Y, s.Camera.Forward.Z,
			s.Camera.Up.X, s.Camera.Up.Y, s.Camera.Up.Z)
	}

	wantN := s.Template.Samples()
	wantLower, wantUpper := s.Template.Bounds()
	check := func(kind, name string, d *spectral.Distribution) error {
		lower, upper := d.Bounds()
		if d.Samples() != wantN || lower != wantLower || upper != wantUpper {
			return fmt.Errorf("scene: %s %q spectrum (%d samples, [%g, %g] nm) does not match template (%d samples, [%g, %g] nm)",
				kind, name, d.Samples(), lower, upper, wantN, wantLower, wantUpper)
		}
		return nil
	}

	for i := range s.Primitives {
		if err := check("object", s.Primitives[i].Name, &s.Primitives[i].Spectrum); err != nil {
			return err
		}
	}
	for i := range s.Lights {
		if err := check("light", s.Lights[i].Name, &s.Lights[i].Spectrum); err != nil {
			return err
		}
	}
	return nil
}

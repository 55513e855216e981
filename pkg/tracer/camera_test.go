package tracer

import (
	"errors"
	"math"
	"testing"

	"github.com/happy737/spectral-raytracer/pkg/geometry"
	"github.com/happy737/spectral-raytracer/pkg/scene"
)

func TestNewCameraRejectsDependentAxes(t *testing.T) {
	spec := scene.Camera{
		Position:    geometry.NewVec3(0, 0, 0),
		Forward:     geometry.NewVec3(0, 0, 1),
		Up:          geometry.NewVec3(0, 0, -3),
		VerticalFOV: 60,
	}

	_, err := NewCamera(spec, 100, 100)
	if !errors.Is(err, scene.ErrDependentCameraAxes) {
		t.Errorf("Expected ErrDependentCameraAxes, got %v", err)
	}
}

func TestCenterRayPointsForward(t *testing.T) {
	camera, err := NewCamera(scene.DefaultCamera(), 100, 100)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := camera.GenerateRay(50, 50, 0, 0)
	if ray.Origin != geometry.NewVec3(0, 0, -2) {
		t.Errorf("Expected the ray to start at the camera position, got %+v", ray.Origin)
	}

	forward := geometry.NewVec3(0, 0, 1)
	if dot := ray.Direction.Dot(forward); math.Abs(float64(dot-1)) > 1e-5 {
		t.Errorf("Expected the center ray along the view direction, got %+v", ray.Direction)
	}
}

func TestTopRowLooksUp(t *testing.T) {
	camera, err := NewCamera(scene.DefaultCamera(), 100, 100)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Pixel row 0 is the top of the image, so its rays tilt toward +y
	top := camera.GenerateRay(50, 0, 0.5, 0.5)
	bottom := camera.GenerateRay(50, 99, 0.5, 0.5)

	if top.Direction.Y <= 0 {
		t.Errorf("Expected the top row ray to tilt up, got %+v", top.Direction)
	}
	if bottom.Direction.Y >= 0 {
		t.Errorf("Expected the bottom row ray to tilt down, got %+v", bottom.Direction)
	}
}

func TestFieldOfViewSpansImagePlane(t *testing.T) {
	spec := scene.DefaultCamera()
	spec.VerticalFOV = 90
	camera, err := NewCamera(spec, 100, 100)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// At 90 degrees vertical fov the very top of the image plane lies 45
	// degrees off the view axis.
	edge := camera.GenerateRay(50, 0, 0.5, 0)
	angle := math.Acos(float64(edge.Direction.Dot(geometry.NewVec3(0, 0, 1))))
	if math.Abs(angle-math.Pi/4) > 0.02 {
		t.Errorf("Expected the edge ray about 45 degrees off axis, got %g degrees", angle*180/math.Pi)
	}
}

func TestAspectRatioWidensHorizontalSpread(t *testing.T) {
	camera, err := NewCamera(scene.DefaultCamera(), 200, 100)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	left := camera.GenerateRay(0, 50, 0, 0.5)
	top := camera.GenerateRay(100, 0, 0.5, 0)

	if math.Abs(float64(left.Direction.X)) <= math.Abs(float64(top.Direction.Y)) {
		t.Error("Expected a 2:1 image to spread wider horizontally than vertically")
	}
}

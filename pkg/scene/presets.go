package scene

import (
	"github.com/happy737/spectral-raytracer/pkg/geometry"
	"github.com/happy737/spectral-raytracer/pkg/spectral"
)

// NewCornellScene builds the classic Cornell box: grey floor, ceiling and
// back wall, a red left wall, a green right wall, two rotated grey boxes
// and a single solar light just below the ceiling. The walls are thick
// boxes whose inner faces enclose a 2x2x2 room around the origin.
func NewCornellScene(samples int) *Scene {
	solar := spectral.NewSolar(spectral.VisibleLowerBound, spectral.VisibleUpperBound, samples, 0.0001)

	grey := spectral.NewFlat(spectral.VisibleLowerBound, spectral.VisibleUpperBound, samples, 0.7)
	red := spectral.NewBandRed(spectral.VisibleLowerBound, spectral.VisibleUpperBound, samples, 1.0)
	green := spectral.NewBandGreen(spectral.VisibleLowerBound, spectral.VisibleUpperBound, samples, 1.0)

	wall := geometry.NewVec3(2, 2, 2)
	return &Scene{
		Primitives: []Primitive{
			{Name: "central wall", Shape: geometry.NewBoxAt(geometry.NewVec3(0, 0, 2), wall), Spectrum: grey},
			{Name: "ceiling", Shape: geometry.NewBoxAt(geometry.NewVec3(0, 2, 0), wall), Spectrum: grey},
			{Name: "floor", Shape: geometry.NewBoxAt(geometry.NewVec3(0, -2, 0), wall), Spectrum: grey},
			{Name: "left wall", Shape: geometry.NewBoxAt(geometry.NewVec3(-2, 0, 0), wall), Spectrum: red},
			{Name: "right wall", Shape: geometry.NewBoxAt(geometry.NewVec3(2, 0, 0), wall), Spectrum: green},
			{
				Name:     "right front box",
				Shape:    geometry.NewRotatedBox(geometry.NewVec3(0.5, -0.75, -0.5), geometry.NewVec3(0.5, 0.5, 0.5), geometry.NewVec3(0, 1.0, 0)),
				Spectrum: grey,
			},
			{
				Name:     "left back box",
				Shape:    geometry.NewRotatedBox(geometry.NewVec3(-0.5, -0.4, 0.5), geometry.NewVec3(0.5, 1.2, 0.5), geometry.NewVec3(0, -0.5, 0)),
				Spectrum: grey,
			},
		},
		Lights: []Light{
			{Name: "top light", Position: geometry.NewVec3(0, 0.9, 0), Spectrum: solar},
		},
		Camera:   DefaultCamera(),
		Template: spectral.NewFlat(spectral.VisibleLowerBound, spectral.VisibleUpperBound, samples, 0),
	}
}

// NewDefaultScene builds a small open scene: a diffuse sphere and a
// metallic box over a grey floor, lit by a close light and a far away sun.
func NewDefaultScene(samples int) *Scene {
	closeLight := spectral.NewSolar(spectral.VisibleLowerBound, spectral.VisibleUpperBound, samples, 0.001)
	farSun := spectral.NewSolar(spectral.VisibleLowerBound, spectral.VisibleUpperBound, samples, 100.0)

	grey := spectral.NewFlat(spectral.VisibleLowerBound, spectral.VisibleUpperBound, samples, 0.7)
	blue := spectral.NewBandBlue(spectral.VisibleLowerBound, spectral.VisibleUpperBound, samples, 0.9)
	mirror := spectral.NewFlat(spectral.VisibleLowerBound, spectral.VisibleUpperBound, samples, 0.9)

	return &Scene{
		Primitives: []Primitive{
			{Name: "floor", Shape: geometry.NewBoxAt(geometry.NewVec3(0, -2, 0), geometry.NewVec3(20, 2, 20)), Spectrum: grey},
			{Name: "sphere", Shape: geometry.NewSphere(geometry.NewVec3(-0.6, -0.4, 0.5), 0.6), Spectrum: blue},
			{
				Name:     "mirror box",
				Shape:    geometry.NewRotatedBox(geometry.NewVec3(0.8, -0.5, 0.8), geometry.NewVec3(0.6, 1.0, 0.6), geometry.NewVec3(0, 0.6, 0)),
				Spectrum: mirror,
				Metallic: true,
			},
		},
		Lights: []Light{
			{Name: "close light", Position: geometry.NewVec3(0, 2, -1), Spectrum: closeLight},
			{Name: "far away sun", Position: geometry.NewVec3(0, 1000, 0), Spectrum: farSun},
		},
		Camera:   DefaultCamera(),
		Template: spectral.NewFlat(spectral.VisibleLowerBound, spectral.VisibleUpperBound, samples, 0),
	}
}

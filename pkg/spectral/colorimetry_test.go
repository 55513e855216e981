package spectral

import "testing"

func TestToRGBIsDeterministic(t *testing.T) {
	d := NewSolar(VisibleLowerBound, VisibleUpperBound, 40, 1e-3)

	r1, g1, b1 := d.ToRGB()
	r2, g2, b2 := d.ToRGB()
	if r1 != r2 || g1 != g2 || b1 != b2 {
		t.Errorf("Identical input produced different colors: (%g,%g,%g) vs (%g,%g,%g)", r1, g1, b1, r2, g2, b2)
	}
}

func TestBandSpectraProjectToTheirPrimary(t *testing.T) {
	// A reflective band spectrum lit uniformly should project with its own
	// primary as the dominant channel.
	tests := []struct {
		name     string
		dist     Distribution
		dominant int // 0 = r, 1 = g, 2 = b
	}{
		{"red band", NewBandRed(VisibleLowerBound, VisibleUpperBound, 128, 1.0), 0},
		{"green band", NewBandGreen(VisibleLowerBound, VisibleUpperBound, 128, 1.0), 1},
		{"blue band", NewBandBlue(VisibleLowerBound, VisibleUpperBound, 128, 1.0), 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b := tc.dist.ToRGB()
			channels := []float32{r, g, b}

			dominant := 0
			for i, c := range channels {
				if c > channels[dominant] {
					dominant = i
				}
			}
			if dominant != tc.dominant {
				t.Errorf("Expected channel %d dominant, got %d (rgb %g %g %g)", tc.dominant, dominant, r, g, b)
			}
		})
	}
}

func TestWavelengthOutsideVisibleRangeIsBlack(t *testing.T) {
	for _, wavelength := range []float32{100, 379.9, 780.1, 1000} {
		if c := wavelengthToXYZ(wavelength); c != (xyz{}) {
			t.Errorf("Wavelength %g nm: expected black, got %+v", wavelength, c)
		}
	}
}

func TestWavelengthLookupInterpolatesBetweenEntries(t *testing.T) {
	// Halfway between two table entries every component must land halfway
	// between the entry values.
	lower := wavelengthToXYZTable[24] // 500 nm
	upper := wavelengthToXYZTable[25] // 505 nm
	got := wavelengthToXYZ(502.5)

	want := xyz{
		x: (lower.x + upper.x) / 2,
		y: (lower.y + upper.y) / 2,
		z: (lower.z + upper.z) / 2,
	}
	const tolerance = 1e-6
	if diff := got.x - want.x; diff > tolerance || diff < -tolerance {
		t.Errorf("x: expected %g, got %g", want.x, got.x)
	}
	if diff := got.y - want.y; diff > tolerance || diff < -tolerance {
		t.Errorf("y: expected %g, got %g", want.y, got.y)
	}
	if diff := got.z - want.z; diff > tolerance || diff < -tolerance {
		t.Errorf("z: expected %g, got %g", want.z, got.z)
	}
}

func TestZeroSpectrumIsBlack(t *testing.T) {
	zero := NewFlat(VisibleLowerBound, VisibleUpperBound, 40, 0)
	if r, g, b := zero.ToRGB(); r != 0 || g != 0 || b != 0 {
		t.Errorf("Expected black, got (%g, %g, %g)", r, g, b)
	}
}

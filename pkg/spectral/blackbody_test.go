package spectral

import (
	"math"
	"testing"
)

func TestBlackBodyRadiationKnownValue(t *testing.T) {
	// B(500 nm, 5000 K) per Planck's law, in W / sr / m^2 / nm
	const want = 12107.19

	got := BlackBodyRadiation(500, 5000)
	if relErr := math.Abs(got-want) / want; relErr > 1e-4 {
		t.Errorf("Expected %.2f, got %.4f (relative error %g)", want, got, relErr)
	}
}

func TestBlackBodyRadiationMonotonicInTemperature(t *testing.T) {
	// At a fixed wavelength a hotter emitter always radiates more
	previous := 0.0
	for _, temperature := range []float64{1000, 3000, 5000, 6500, 10000} {
		radiance := BlackBodyRadiation(550, temperature)
		if radiance <= previous {
			t.Errorf("Radiance at %g K (%g) not above radiance at lower temperature (%g)", temperature, radiance, previous)
		}
		previous = radiance
	}
}

func TestBlackBodyRadiationRejectsNonPositiveInputs(t *testing.T) {
	tests := []struct {
		name         string
		wavelengthNM float64
		temperatureK float64
	}{
		{"zero wavelength", 0, 5000},
		{"negative wavelength", -500, 5000},
		{"zero temperature", 500, 0},
		{"negative temperature", 500, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Expected a panic for non-positive input")
				}
			}()
			BlackBodyRadiation(tc.wavelengthNM, tc.temperatureK)
		})
	}
}

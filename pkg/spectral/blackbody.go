package spectral

import (
	"fmt"
	"math"
)

// Physical constants in SI units
const (
	speedOfLight      = 299_792_458.0 // m/s
	planckConstant    = 6.62607015e-34
	boltzmannConstant = 1.380649e-23
)

// BlackBodyRadiation calculates the spectral radiance (W / sr / m^2 / nm)
// an idealized thermal emitter at the given temperature radiates at the
// given wavelength, according to Planck's law:
//
//	B(λ, T) = (2hc² / λ⁵) · 1 / (e^(hc / λkT) − 1)
//
// The wavelength is given in nanometers and the temperature in Kelvin; both
// must be positive or the function panics. The math runs in float64, the
// distribution constructors truncate to float32 afterwards.
func BlackBodyRadiation(wavelengthNM, temperatureK float64) float64 {
	if wavelengthNM <= 0 {
		panic(fmt.Sprintf("spectral: wavelengths must be physical, real, positive values, got %gnm", wavelengthNM))
	}
	if temperatureK <= 0 {
		panic(fmt.Sprintf("spectral: temperatures in Kelvin are real, positive values, got %gK", temperatureK))
	}

	lambda := wavelengthNM / 1e9 // nanometer to meter
	hc22 := 2.0 * planckConstant * speedOfLight * speedOfLight
	l5 := lambda * lambda * lambda * lambda * lambda
	hc := planckConstant * speedOfLight
	ltk := lambda * temperatureK * boltzmannConstant
	denominator := math.Exp(hc/ltk) - 1.0

	return (hc22 / l5) * (1.0 / denominator) * 1e-9 // *1e-9 = per nanometer
}

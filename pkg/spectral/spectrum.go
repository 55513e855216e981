// Package spectral implements the spectral power distribution used by the
// tracer in place of an RGB triplet: a fixed-capacity list of intensity
// samples spread equidistantly across a wavelength range, together with the
// colorimetric conversion down to displayable linear sRGB.
package spectral

import "fmt"

// Wavelength bounds of the visible range in nanometers. Scenes normally
// sample their spectra across exactly this range.
const (
	VisibleLowerBound float32 = 380.0
	VisibleUpperBound float32 = 780.0
)

// MaxSamples is the capacity of the sample buffer. The active sample count
// is tracked separately so the buffer keeps a fixed stride for bulk loops.
const MaxSamples = 128

// Distribution holds spectral radiance (or reflectance) sampled at
// equidistant wavelengths between a lower and upper bound. The sample count
// must be a multiple of 8 so bulk loops operate on full groups; all binary
// operations require both operands to agree on sample count and bounds and
// panic otherwise rather than silently producing wrong radiance.
type Distribution struct {
	n       int
	lower   float32
	upper   float32
	samples [MaxSamples]float32
}

// assertSampleCount panics unless n is a legal active sample count.
func assertSampleCount(n int) {
	if n < 2 || n > MaxSamples || n%8 != 0 {
		panic(fmt.Sprintf("spectral: sample count must be a multiple of 8 in [2, %d], got %d", MaxSamples, n))
	}
}

// mustMatch panics unless both distributions share sample count and bounds.
// A silent mismatch would corrupt radiance with no visible symptom beyond
// quietly wrong colors, so this is enforced on every binary operation.
func (d *Distribution) mustMatch(other *Distribution) {
	if d.n != other.n {
		panic(fmt.Sprintf("spectral: sample count mismatch: %d vs %d", d.n, other.n))
	}
	if d.lower != other.lower || d.upper != other.upper {
		panic(fmt.Sprintf("spectral: wavelength bounds mismatch: [%g, %g] vs [%g, %g]",
			d.lower, d.upper, other.lower, other.upper))
	}
}

// NewFlat creates a distribution whose samples all hold the given value.
// With value 0 this doubles as the zero element.
func NewFlat(lower, upper float32, n int, value float32) Distribution {
	assertSampleCount(n)
	d := Distribution{n: n, lower: lower, upper: upper}
	for i := 0; i < n; i++ {
		d.samples[i] = value
	}
	return d
}

// NewFromSamples creates a distribution from an explicit sample list
func NewFromSamples(lower, upper float32, samples []float32) Distribution {
	assertSampleCount(len(samples))
	d := Distribution{n: len(samples), lower: lower, upper: upper}
	copy(d.samples[:], samples)
	return d
}

// NewZeroLike creates an all-zero distribution with the same sample count
// and bounds as the template. Every intermediate accumulator during a
// render starts from this so all sums stay structurally compatible.
func NewZeroLike(template *Distribution) Distribution {
	return NewFlat(template.lower, template.upper, template.n, 0)
}

// NewBlackbody creates a distribution sampled from the blackbody radiation
// curve of the given temperature, each sample scaled by multiplier.
func NewBlackbody(lower, upper float32, temperatureK float32, n int, multiplier float32) Distribution {
	assertSampleCount(n)
	d := Distribution{n: n, lower: lower, upper: upper}
	step := (upper - lower) / float32(n-1)
	for i := 0; i < n; i++ {
		wavelength := lower + step*float32(i)
		d.samples[i] = float32(BlackBodyRadiation(float64(wavelength), float64(temperatureK))) * multiplier
	}
	return d
}

// NewSolar creates an approximation of the sunlight spectrum. Measured
// solar data is not wired up; a 6500 K blackbody curve stands in for it.
func NewSolar(lower, upper float32, n int, multiplier float32) Distribution {
	return NewBlackbody(lower, upper, 6500.0, n, multiplier)
}

// NewNormalizedWhite creates the solar spectrum scaled so that its largest
// RGB channel is exactly 1.
func NewNormalizedWhite(lower, upper float32, n int) Distribution {
	white := NewSolar(lower, upper, n, 1.0)
	return white.Normalize()
}

// NewBandRed creates a reflective spectrum that is factor above 550 nm and
// zero elsewhere, roughly the range where primarily red cones respond.
func NewBandRed(lower, upper float32, n int, factor float32) Distribution {
	return newBanded(lower, upper, n, factor, func(wavelength float32) bool {
		return wavelength > 550.0
	})
}

// NewBandGreen creates a reflective spectrum that is factor between 500 nm
// and 575 nm, roughly the range where primarily green cones respond.
func NewBandGreen(lower, upper float32, n int, factor float32) Distribution {
	return newBanded(lower, upper, n, factor, func(wavelength float32) bool {
		return wavelength > 500.0 && wavelength < 575.0
	})
}

// NewBandBlue creates a reflective spectrum that is factor below 475 nm,
// roughly the range where primarily blue cones respond.
func NewBandBlue(lower, upper float32, n int, factor float32) Distribution {
	return newBanded(lower, upper, n, factor, func(wavelength float32) bool {
		return wavelength < 475.0
	})
}

func newBanded(lower, upper float32, n int, factor float32, inBand func(float32) bool) Distribution {
	assertSampleCount(n)
	d := Distribution{n: n, lower: lower, upper: upper}
	step := (upper - lower) / float32(n-1)
	for i := 0; i < n; i++ {
		if inBand(lower + step*float32(i)) {
			d.samples[i] = factor
		}
	}
	return d
}

// Samples returns the active sample count
func (d *Distribution) Samples() int {
	return d.n
}

// Bounds returns the lower and upper wavelength bound in nanometers
func (d *Distribution) Bounds() (lower, upper float32) {
	return d.lower, d.upper
}

// Step returns the wavelength distance between adjacent samples
func (d *Distribution) Step() float32 {
	return (d.upper - d.lower) / float32(d.n-1)
}

// At returns the intensity of sample i
func (d *Distribution) At(i int) float32 {
	if i < 0 || i >= d.n {
		panic(fmt.Sprintf("spectral: sample index %d out of range for %d samples", i, d.n))
	}
	return d.samples[i]
}

// SetAt overwrites the intensity of sample i
func (d *Distribution) SetAt(i int, value float32) {
	if i < 0 || i >= d.n {
		panic(fmt.Sprintf("spectral: sample index %d out of range for %d samples", i, d.n))
	}
	d.samples[i] = value
}

// Values returns the active samples as a slice backed by the distribution
func (d *Distribution) Values() []float32 {
	return d.samples[:d.n]
}

// Wavelengths returns the wavelength of every active sample
func (d *Distribution) Wavelengths() []float32 {
	step := d.Step()
	wavelengths := make([]float32, d.n)
	for i := range wavelengths {
		wavelengths[i] = d.lower + step*float32(i)
	}
	return wavelengths
}

// Add adds the other distribution element-wise in place
func (d *Distribution) Add(other *Distribution) {
	d.mustMatch(other)
	for i := 0; i < d.n; i++ {
		d.samples[i] += other.samples[i]
	}
}

// Mul multiplies by the other distribution element-wise in place
func (d *Distribution) Mul(other *Distribution) {
	d.mustMatch(other)
	for i := 0; i < d.n; i++ {
		d.samples[i] *= other.samples[i]
	}
}

// Div divides by the other distribution element-wise in place
func (d *Distribution) Div(other *Distribution) {
	d.mustMatch(other)
	for i := 0; i < d.n; i++ {
		d.samples[i] /= other.samples[i]
	}
}

// Scale multiplies every sample by a scalar in place
func (d *Distribution) Scale(factor float32) {
	for i := 0; i < d.n; i++ {
		d.samples[i] *= factor
	}
}

// DivScalar divides every sample by a scalar in place
func (d *Distribution) DivScalar(divisor float32) {
	for i := 0; i < d.n; i++ {
		d.samples[i] /= divisor
	}
}

// Times returns the element-wise product as a new distribution
func (d Distribution) Times(other *Distribution) Distribution {
	d.Mul(other)
	return d
}

// Plus returns the element-wise sum as a new distribution
func (d Distribution) Plus(other *Distribution) Distribution {
	d.Add(other)
	return d
}

// Max0 clamps every sample to at least 0
func (d *Distribution) Max0() {
	for i := 0; i < d.n; i++ {
		if d.samples[i] < 0 {
			d.samples[i] = 0
		}
	}
}

// Min1 clamps every sample to at most 1. Reflective spectra pass through
// this so a surface can never amplify the light it receives.
func (d *Distribution) Min1() {
	for i := 0; i < d.n; i++ {
		if d.samples[i] > 1 {
			d.samples[i] = 1
		}
	}
}

// Radiance integrates the distribution over wavelength, the scalar
// brightness of the whole spectrum.
func (d *Distribution) Radiance() float32 {
	step := d.Step()
	var sum float32
	for i := 0; i < d.n; i++ {
		sum += d.samples[i] * step
	}
	return sum
}

// Normalize returns a copy scaled so that the largest RGB channel of the
// conversion result is 1, preserving the overall shape.
func (d *Distribution) Normalize() Distribution {
	r, g, b := d.ToRGB()
	out := *d
	out.DivScalar(max32(r, max32(g, b)))
	return out
}

// Resample changes the active sample count while approximately preserving
// the shape of the distribution. Downsampling repeatedly halves the list
// (each halving lerps across sets of samples, rounding the target up to the
// next multiple of 8) until within a factor of two of the goal, then lerps
// once to the exact goal; upsampling is a single lerp pass. A call with the
// current count is a no-op.
func (d *Distribution) Resample(newCount int) {
	assertSampleCount(d.n)
	assertSampleCount(newCount)

	if newCount == d.n {
		return
	}

	if newCount < d.n {
		working := append([]float32(nil), d.samples[:d.n]...)
		for len(working) > 2*newCount {
			working = collapseToHalf(working)
		}
		working = lerpDown(working, newCount)

		for i := range d.samples {
			d.samples[i] = 0
		}
		copy(d.samples[:], working)
		d.n = newCount
		return
	}

	var upsampled [MaxSamples]float32
	for i := 0; i < newCount; i++ {
		position := float32(i) / float32(newCount-1) * float32(d.n-1)
		index := int(position)
		frac := position - float32(index)

		if index+1 >= d.n {
			upsampled[i] = d.samples[d.n-1]
			continue
		}
		upsampled[i] = d.samples[index]*(1-frac) + d.samples[index+1]*frac
	}
	d.samples = upsampled
	d.n = newCount
}

// collapseToHalf halves the length of the list, rounding the new length up
// to the next multiple of 8, and lerps every value of the shorter list.
func collapseToHalf(values []float32) []float32 {
	halfLength := len(values) / 2
	if halfLength%8 != 0 {
		halfLength = (halfLength/8 + 1) * 8
	}
	return lerpDown(values, halfLength)
}

// lerpDown reduces the list to targetLength, which must be between half the
// original length and the original length, linearly interpolating each new
// value from its surrounding originals.
func lerpDown(values []float32, targetLength int) []float32 {
	factor := float32(len(values)) / float32(targetLength)
	result := make([]float32, targetLength)

	for i := range result {
		position := factor * float32(i)
		index := int(position)
		ratio := position - float32(index)

		if index+1 < len(values) {
			result[i] = values[index]*(1-ratio) + values[index+1]*ratio
		} else {
			result[i] = values[index]
		}
	}
	return result
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

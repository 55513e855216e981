// Package sampling provides the quasi-random machinery driving multi-frame
// noise reduction: the Hammersley sequence that jitters pixel sample
// positions across frames, a stateless integer hash for per-pixel
// randomness, and cosine-weighted hemisphere sampling for diffuse bounces.
package sampling

import "math/bits"

// RadicalInverse computes the base-2 radical inverse of n by reversing its
// bits and scaling the result into [0, 1).
func RadicalInverse(n uint32) float32 {
	return float32(bits.Reverse32(n)) / float32(1<<32)
}

// Hammersley returns the n-th point of the Hammersley set of the given
// size, a pair in [0, 1)². Successive frames of the same pixel sweep a
// low-discrepancy pattern instead of resampling a fixed point, which is
// what lets the progressive accumulator converge to an anti-aliased image.
func Hammersley(n, total uint32) (x, y float32) {
	x = (float32(n) + 0.5) / float32(total)
	y = RadicalInverse(n + 1)
	return x, y
}

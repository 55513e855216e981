package sampling

// pcg3d applies the three-dimensional PCG permutation to the state vector.
// It is a pure function, so identical inputs always produce identical
// outputs regardless of call order or thread.
func pcg3d(v [3]uint32) [3]uint32 {
	v[0] = v[0]*1664525 + 1013904223
	v[1] = v[1]*1664525 + 1013904223
	v[2] = v[2]*1664525 + 1013904223

	v[0] += v[1] * v[2]
	v[1] += v[2] * v[0]
	v[2] += v[0] * v[1]

	v[0] ^= v[0] >> 16
	v[1] ^= v[1] >> 16
	v[2] ^= v[2] >> 16

	v[0] += v[1] * v[2]
	v[1] += v[2] * v[0]
	v[2] += v[0] * v[1]

	return v
}

// toUnitFloat maps a 32-bit hash word into [0, 1)
func toUnitFloat(u uint32) float32 {
	// keep 24 bits so the float32 mantissa represents the value exactly
	return float32(u>>8) / float32(1<<24)
}

// Hash3 hashes (pixel x, pixel y, frame id) into three pseudo-random
// floats in [0, 1). Because the function carries no internal state, every
// frame reproduces the same per-pixel randomness sequence as the frame id
// increases, which keeps the radiance integral an unbiased Monte-Carlo
// estimator across frames.
func Hash3(x, y, frame uint32) (float32, float32, float32) {
	v := pcg3d([3]uint32{x, y, frame})
	return toUnitFloat(v[0]), toUnitFloat(v[1]), toUnitFloat(v[2])
}

// Sequence yields a deterministic stream of pseudo-random floats for one
// (pixel, frame) pair by iterating the pcg3d permutation on its state.
// Recursive bounces draw fresh numbers from the stream without the tracer
// having to thread extra counters through the recursion.
type Sequence struct {
	state [3]uint32
	next  int
}

// NewSequence seeds a sequence from the pixel coordinates and frame id
func NewSequence(x, y, frame uint32) *Sequence {
	return &Sequence{state: pcg3d([3]uint32{x, y, frame}), next: 0}
}

// Next returns the next float in [0, 1) from the stream
func (s *Sequence) Next() float32 {
	if s.next == len(s.state) {
		s.state = pcg3d(s.state)
		s.next = 0
	}
	value := toUnitFloat(s.state[s.next])
	s.next++
	return value
}

// Next2 returns the next two floats in [0, 1) from the stream
func (s *Sequence) Next2() (float32, float32) {
	return s.Next(), s.Next()
}

package sampling

import (
	"github.com/chewxy/math32"

	"github.com/happy737/spectral-raytracer/pkg/geometry"
)

// CosineHemisphere draws a cosine-weighted direction in the hemisphere
// around the normal from two uniform samples in [0, 1). The mapping is
// θ = asin(√u1), φ = 2π·u2, which importance-samples the cosine density
// directly, so the caller must not weight the result by another cosine
// term. The tangent frame is built from a fixed reference axis, switching
// axes when the normal is nearly parallel to it.
func CosineHemisphere(normal geometry.Vec3, u1, u2 float32) geometry.Vec3 {
	theta := math32.Asin(math32.Sqrt(u1))
	phi := 2 * math32.Pi * u2

	sinTheta, cosTheta := math32.Sincos(theta)
	sinPhi, cosPhi := math32.Sincos(phi)
	local := geometry.NewVec3(sinTheta*cosPhi, sinTheta*sinPhi, cosTheta)

	reference := geometry.NewVec3(1, 0, 0)
	if math32.Abs(normal.X) > 0.9 {
		reference = geometry.NewVec3(0, 1, 0)
	}
	tangent := reference.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)

	return tangent.Multiply(local.X).
		Add(bitangent.Multiply(local.Y)).
		Add(normal.Multiply(local.Z))
}

package geometry

import "github.com/chewxy/math32"

// Vec3 represents a 3D vector with float32 components
type Vec3 struct {
	X, Y, Z float32
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float32) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Component returns the component along the given axis (0=X, 1=Y, 2=Z)
func (v Vec3) Component(axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// RotateX rotates the vector around the X axis by the given angle in radians
func (v Vec3) RotateX(angle float32) Vec3 {
	sin, cos := math32.Sincos(angle)
	return Vec3{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

// RotateY rotates the vector around the Y axis by the given angle in radians
func (v Vec3) RotateY(angle float32) Vec3 {
	sin, cos := math32.Sincos(angle)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// RotateZ rotates the vector around the Z axis by the given angle in radians
func (v Vec3) RotateZ(angle float32) Vec3 {
	sin, cos := math32.Sincos(angle)
	return Vec3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// Rotate applies Euler rotations around the X, Y and Z axes in that order.
// Angles are in radians.
func (v Vec3) Rotate(angles Vec3) Vec3 {
	return v.RotateX(angles.X).RotateY(angles.Y).RotateZ(angles.Z)
}

// RotateInverse undoes a Rotate call with the same angles by applying the
// negated rotations in reverse order.
func (v Vec3) RotateInverse(angles Vec3) Vec3 {
	return v.RotateZ(-angles.Z).RotateY(-angles.Y).RotateX(-angles.X)
}

// LinearlyDependent reports whether two vectors point along the same line.
// The check computes the cross product and compares every component against
// a small epsilon, so near-parallel vectors are treated as dependent too.
func LinearlyDependent(a, b Vec3) bool {
	cross := a.Cross(b)
	return math32.Abs(cross.X) < Epsilon &&
		math32.Abs(cross.Y) < Epsilon &&
		math32.Abs(cross.Z) < Epsilon
}

package geometry

import "github.com/chewxy/math32"

// RotatedBox represents a box with arbitrary orientation, defined by its
// center, the half extent along each local axis and Euler rotation angles
// in radians (applied around X, then Y, then Z). Intersection transforms
// the ray into the box's unrotated local frame and delegates to the slab
// test there.
type RotatedBox struct {
	Center      Vec3
	HalfExtents Vec3
	Rotation    Vec3
	bbox        AABB
}

// NewRotatedBox creates a rotated box from its center, full extents along
// the local axes and Euler rotation angles in radians.
func NewRotatedBox(center, size, rotation Vec3) *RotatedBox {
	b := &RotatedBox{
		Center:      center,
		HalfExtents: size.Multiply(0.5),
		Rotation:    rotation,
	}
	b.bbox = b.computeBoundingBox()
	return b
}

// computeBoundingBox rotates the eight local corners into world space and
// bounds them.
func (b *RotatedBox) computeBoundingBox() AABB {
	h := b.HalfExtents
	corners := [8]Vec3{
		{-h.X, -h.Y, -h.Z},
		{h.X, -h.Y, -h.Z},
		{-h.X, h.Y, -h.Z},
		{h.X, h.Y, -h.Z},
		{-h.X, -h.Y, h.Z},
		{h.X, -h.Y, h.Z},
		{-h.X, h.Y, h.Z},
		{h.X, h.Y, h.Z},
	}
	for i := range corners {
		corners[i] = corners[i].Rotate(b.Rotation).Add(b.Center)
	}
	return NewAABBFromPoints(corners[:]...)
}

// toLocal transforms a world-space ray into the box's unrotated frame
func (b *RotatedBox) toLocal(ray Ray) Ray {
	return Ray{
		Origin:    ray.Origin.Subtract(b.Center).RotateInverse(b.Rotation),
		Direction: ray.Direction.RotateInverse(b.Rotation),
	}
}

// Intersect returns the nearest positive hit distance along the ray. The
// parametric distance is preserved by the rotation, so the local-frame t is
// valid in world space as long as the direction is not rescaled.
func (b *RotatedBox) Intersect(ray Ray) (float32, bool) {
	local := b.toLocal(ray)
	slab := AABB{Min: b.HalfExtents.Negate(), Max: b.HalfExtents}
	tMin, tMax, ok := slab.Intersect(local)
	if !ok {
		return 0, false
	}
	return firstPositive(tMin, tMax)
}

// NormalAt transforms the point into the local frame, selects the closest
// of the six local faces and rotates the axis normal back to world space.
func (b *RotatedBox) NormalAt(point Vec3) Vec3 {
	local := point.Subtract(b.Center).RotateInverse(b.Rotation)
	h := b.HalfExtents

	type face struct {
		distance float32
		normal   Vec3
	}
	faces := [6]face{
		{math32.Abs(local.X + h.X), NewVec3(-1, 0, 0)},
		{math32.Abs(local.X - h.X), NewVec3(1, 0, 0)},
		{math32.Abs(local.Y + h.Y), NewVec3(0, -1, 0)},
		{math32.Abs(local.Y - h.Y), NewVec3(0, 1, 0)},
		{math32.Abs(local.Z + h.Z), NewVec3(0, 0, -1)},
		{math32.Abs(local.Z - h.Z), NewVec3(0, 0, 1)},
	}

	best := faces[0]
	for _, f := range faces[1:] {
		if f.distance < best.distance {
			best = f
		}
	}
	return best.normal.Rotate(b.Rotation)
}

// BoundingBox returns the world-space AABB enclosing the rotated corners
func (b *RotatedBox) BoundingBox() AABB {
	return b.bbox
}

package geometry

import "github.com/chewxy/math32"

// Box represents an axis-aligned box defined by its minimum and maximum
// corner. Its bounding box is the box itself, so the intersection test is
// the plain slab test.
type Box struct {
	Min Vec3
	Max Vec3
}

// NewBox creates a new axis-aligned box from min and max corners
func NewBox(min, max Vec3) *Box {
	return &Box{Min: min, Max: max}
}

// NewBoxAt creates an axis-aligned box from a center point and full extents
// along each axis.
func NewBoxAt(center, size Vec3) *Box {
	half := size.Multiply(0.5)
	return &Box{
		Min: center.Subtract(half),
		Max: center.Add(half),
	}
}

// Intersect returns the nearest positive hit distance along the ray
func (b *Box) Intersect(ray Ray) (float32, bool) {
	tMin, tMax, ok := AABB{Min: b.Min, Max: b.Max}.Intersect(ray)
	if !ok {
		return 0, false
	}
	return firstPositive(tMin, tMax)
}

// NormalAt returns the outward normal of whichever face the point lies on,
// within a small epsilon. Points not on any face fall back to the face they
// are closest to, so slightly drifted hit points still classify.
func (b *Box) NormalAt(point Vec3) Vec3 {
	type face struct {
		distance float32
		normal   Vec3
	}
	faces := [6]face{
		{math32.Abs(point.X - b.Min.X), NewVec3(-1, 0, 0)},
		{math32.Abs(point.X - b.Max.X), NewVec3(1, 0, 0)},
		{math32.Abs(point.Y - b.Min.Y), NewVec3(0, -1, 0)},
		{math32.Abs(point.Y - b.Max.Y), NewVec3(0, 1, 0)},
		{math32.Abs(point.Z - b.Min.Z), NewVec3(0, 0, -1)},
		{math32.Abs(point.Z - b.Max.Z), NewVec3(0, 0, 1)},
	}

	best := faces[0]
	for _, f := range faces[1:] {
		if f.distance < best.distance {
			best = f
		}
	}
	return best.normal
}

// BoundingBox returns the box itself as an AABB
func (b *Box) BoundingBox() AABB {
	return AABB{Min: b.Min, Max: b.Max}
}

package geometry

import "github.com/chewxy/math32"

// AABB represents an axis-aligned bounding box defined by its minimum and
// maximum corner.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math32.Min(min.X, point.X)
		min.Y = math32.Min(min.Y, point.Y)
		min.Z = math32.Min(min.Z, point.Z)

		max.X = math32.Max(max.X, point.X)
		max.Y = math32.Max(max.Y, point.Y)
		max.Z = math32.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math32.Min(aabb.Min.X, other.Min.X),
			Y: math32.Min(aabb.Min.Y, other.Min.Y),
			Z: math32.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math32.Max(aabb.Max.X, other.Max.X),
			Y: math32.Max(aabb.Max.Y, other.Max.Y),
			Z: math32.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// Center returns the center point of the box
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Intersect tests the ray against the box using the slab method and returns
// the parametric interval the ray spends inside the box. A zero-length
// direction component produces an infinite inverse, which the interval
// arithmetic handles without a special case. The interval is rejected when
// it is empty or lies entirely behind the ray origin (tMax < 0); a ray that
// starts inside the box yields tMin < 0 <= tMax.
func (aabb AABB) Intersect(ray Ray) (tMin, tMax float32, ok bool) {
	tMin = math32.Inf(-1)
	tMax = math32.Inf(1)

	for axis := 0; axis < 3; axis++ {
		invDirection := 1.0 / ray.Direction.Component(axis)
		t1 := (aabb.Min.Component(axis) - ray.Origin.Component(axis)) * invDirection
		t2 := (aabb.Max.Component(axis) - ray.Origin.Component(axis)) * invDirection

		tNear, tFar := t1, t2
		if invDirection < 0 {
			tNear, tFar = t2, t1
		}

		tMin = math32.Max(tMin, tNear)
		tMax = math32.Min(tMax, tFar)

		if tMax <= tMin {
			return 0, 0, false
		}
	}

	if tMax < 0 {
		return 0, 0, false
	}

	return tMin, tMax, true
}

package geometry

// Shape is the closed set of surfaces the tracer understands: axis-aligned
// boxes, spheres and rotated boxes. Every shape answers a hit-distance query
// and a surface normal query, plus the bounding box used to prefilter rays
// before the shape-specific test runs.
type Shape interface {
	// Intersect returns the smallest positive hit distance along the ray,
	// or ok=false if the ray does not hit the shape in front of its origin.
	Intersect(ray Ray) (t float32, ok bool)

	// NormalAt returns the outward surface normal at a point on the shape.
	NormalAt(point Vec3) Vec3

	// BoundingBox returns the world-space AABB enclosing the shape.
	BoundingBox() AABB
}

// firstPositive picks the nearest hit distance in front of the ray origin
// from a slab-test interval.
func firstPositive(tMin, tMax float32) (float32, bool) {
	if tMin > 0 {
		return tMin, true
	}
	if tMax > 0 {
		return tMax, true
	}
	return 0, false
}

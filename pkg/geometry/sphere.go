package geometry

import "github.com/chewxy/math32"

// Sphere represents a sphere defined by its center and radius
type Sphere struct {
	Center Vec3
	Radius float32
}

// NewSphere creates a new sphere
func NewSphere(center Vec3, radius float32) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Intersect solves the quadratic of the implicit sphere equation and
// returns the nearest positive root. A non-negative discriminant yields one
// (tangent) or two roots; roots behind the ray origin are discarded.
func (s *Sphere) Intersect(ray Ray) (float32, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math32.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root <= 0 {
		root = (-halfB + sqrtD) / a
		if root <= 0 {
			return 0, false
		}
	}
	return root, true
}

// NormalAt returns the outward normal, pointing from the center through the
// given surface point.
func (s *Sphere) NormalAt(point Vec3) Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() AABB {
	radius := NewVec3(s.Radius, s.Radius, s.Radius)
	return AABB{
		Min: s.Center.Subtract(radius),
		Max: s.Center.Add(radius),
	}
}

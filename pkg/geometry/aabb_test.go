package geometry

import (
	"math"
	"testing"
)

func TestAABBIntersectFromOutside(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))

	tMin, tMax, ok := box.Intersect(ray)
	if !ok {
		t.Fatal("Expected the ray to hit the box")
	}
	if math.Abs(float64(tMin-4)) > 1e-5 {
		t.Errorf("Expected entry at t=4, got %g", tMin)
	}
	if math.Abs(float64(tMax-6)) > 1e-5 {
		t.Errorf("Expected exit at t=6, got %g", tMax)
	}
}

func TestAABBIntersectFromInside(t *testing.T) {
	// A ray starting inside the box reports a negative entry and positive
	// exit distance, which callers use to distinguish "inside" from "in
	// front of".
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 1))

	tMin, tMax, ok := box.Intersect(ray)
	if !ok {
		t.Fatal("Expected the ray to hit the box from inside")
	}
	if tMin >= 0 {
		t.Errorf("Expected negative entry distance, got %g", tMin)
	}
	if tMax < 0 {
		t.Errorf("Expected non-negative exit distance, got %g", tMax)
	}
}

func TestAABBIntersectMisses(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name string
		ray  Ray
	}{
		{"parallel offset ray", NewRay(NewVec3(0, 5, -5), NewVec3(0, 0, 1))},
		{"box behind origin", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1))},
		{"diagonal near miss", NewRay(NewVec3(-5, 2.5, 0), NewVec3(1, 0, 0))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, ok := box.Intersect(tc.ray); ok {
				t.Error("Expected the ray to miss the box")
			}
		})
	}
}

func TestAABBIntersectAxisParallelRay(t *testing.T) {
	// Zero direction components produce infinite slab distances; the
	// interval math must still give the right answer.
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0.5, 0.5, -3), NewVec3(0, 0, 1))

	tMin, _, ok := box.Intersect(ray)
	if !ok {
		t.Fatal("Expected the axis-parallel ray to hit the box")
	}
	if math.Abs(float64(tMin-2)) > 1e-5 {
		t.Errorf("Expected entry at t=2, got %g", tMin)
	}
}

func TestAABBUnionAndCenter(t *testing.T) {
	a := NewAABB(NewVec3(-1, 0, 0), NewVec3(1, 2, 1))
	b := NewAABB(NewVec3(0, -3, 0), NewVec3(4, 1, 1))

	union := a.Union(b)
	if union.Min != NewVec3(-1, -3, 0) || union.Max != NewVec3(4, 2, 1) {
		t.Errorf("Unexpected union %+v", union)
	}

	center := NewAABB(NewVec3(-2, -2, -2), NewVec3(4, 4, 4)).Center()
	if center != NewVec3(1, 1, 1) {
		t.Errorf("Expected center (1,1,1), got %+v", center)
	}
}

func TestAABBFromPoints(t *testing.T) {
	box := NewAABBFromPoints(
		NewVec3(1, -2, 3),
		NewVec3(-1, 5, 0),
		NewVec3(0, 0, -4),
	)

	if box.Min != NewVec3(-1, -2, -4) {
		t.Errorf("Unexpected min corner %+v", box.Min)
	}
	if box.Max != NewVec3(1, 5, 3) {
		t.Errorf("Unexpected max corner %+v", box.Max)
	}
}

package geometry

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Add(b); got != NewVec3(5, -3, 9) {
		t.Errorf("Add: got %+v", got)
	}
	if got := a.Subtract(b); got != NewVec3(-3, 7, -3) {
		t.Errorf("Subtract: got %+v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: got %+v", got)
	}
	if got := a.Negate(); got != NewVec3(-1, -2, -3) {
		t.Errorf("Negate: got %+v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: expected 12, got %g", got)
	}
}

func TestVec3CrossFollowsRightHandRule(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	z := NewVec3(0, 0, 1)

	if got := x.Cross(y); got != z {
		t.Errorf("x × y: expected %+v, got %+v", z, got)
	}
	if got := y.Cross(z); got != x {
		t.Errorf("y × z: expected %+v, got %+v", x, got)
	}
	if got := y.Cross(x); got != z.Negate() {
		t.Errorf("y × x: expected %+v, got %+v", z.Negate(), got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(float64(v.Length()-1)) > 1e-6 {
		t.Errorf("Expected unit length, got %g", v.Length())
	}
	if math.Abs(float64(v.X-0.6)) > 1e-6 || math.Abs(float64(v.Y-0.8)) > 1e-6 {
		t.Errorf("Expected (0.6, 0.8, 0), got %+v", v)
	}

	// The zero vector has no direction and must not produce NaNs
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Expected zero vector, got %+v", got)
	}
}

func TestVec3RotationRoundTrip(t *testing.T) {
	v := NewVec3(0.3, -1.2, 2.5)
	angles := NewVec3(0.4, 1.1, -0.7)

	roundTrip := v.Rotate(angles).RotateInverse(angles)
	if math.Abs(float64(roundTrip.X-v.X)) > 1e-5 ||
		math.Abs(float64(roundTrip.Y-v.Y)) > 1e-5 ||
		math.Abs(float64(roundTrip.Z-v.Z)) > 1e-5 {
		t.Errorf("Rotate/RotateInverse round trip drifted: %+v vs %+v", roundTrip, v)
	}
}

func TestVec3RotationPreservesLength(t *testing.T) {
	v := NewVec3(1, 2, 3)
	rotated := v.Rotate(NewVec3(0.5, -1.3, 2.1))

	if math.Abs(float64(rotated.Length()-v.Length())) > 1e-4 {
		t.Errorf("Rotation changed the length from %g to %g", v.Length(), rotated.Length())
	}
}

func TestLinearlyDependent(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want bool
	}{
		{"same direction", NewVec3(1, 2, 3), NewVec3(2, 4, 6), true},
		{"opposite direction", NewVec3(1, 0, 0), NewVec3(-3, 0, 0), true},
		{"orthogonal", NewVec3(1, 0, 0), NewVec3(0, 1, 0), false},
		{"skew", NewVec3(1, 2, 3), NewVec3(3, 2, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := LinearlyDependent(tc.a, tc.b); got != tc.want {
				t.Errorf("Expected %t, got %t", tc.want, got)
			}
		})
	}
}

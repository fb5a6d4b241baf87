package geom

import (
	"math"
	"testing"
)

func TestCrossOrts(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Cross() = %v, want %v", got, want)
	}
}

func TestCrossCollinear(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{2, 4, 6}
	got := a.Cross(b)
	if got != Zero {
		t.Errorf("Cross() = %v, want zero vector", got)
	}
}

func TestCross(t *testing.T) {
	a := Vec3{0.2, 0.3, 0.4}
	b := Vec3{0.5, 0.6, 0.7}
	want := Vec3{-0.03, 0.06, -0.03}
	got := a.Cross(b)
	if !got.ApproxEqual(want) {
		t.Errorf("Cross() = %v, want %v", got, want)
	}
}

func TestNormalize(t *testing.T) {
	a := Vec3{2, 10, 11}
	want := Vec3{2.0 / 15.0, 2.0 / 3.0, 11.0 / 15.0}
	got := a.Normalize()
	if !got.ApproxEqual(want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalizeZero(t *testing.T) {
	got := Zero.Normalize()
	if got != Zero {
		t.Errorf("Normalize() of zero vector = %v, want zero vector", got)
	}
}

func TestPerpXYOrts(t *testing.T) {
	a := Vec3{1, 0, 0}
	want := Vec3{0, 1, 0}
	got := a.PerpXY()
	if got != want {
		t.Errorf("PerpXY() = %v, want %v", got, want)
	}
}

func TestRightHandedOrts(t *testing.T) {
	if !RightHanded(Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}) {
		t.Error("RightHanded(x, y, z) = false, want true")
	}
	if RightHanded(Vec3{-1, 0, 0}, Vec3{0, -1, 0}, Vec3{0, 0, -1}) {
		t.Error("RightHanded(-x, -y, -z) = true, want false")
	}
}

func TestFaceNormal(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{1, 0, 0}
	c := Vec3{0, 1, 0}
	got := FaceNormal(a, b, c)
	if got != Up {
		t.Errorf("FaceNormal() = %v, want %v", got, Up)
	}
}

func TestFaceNormalUnitLength(t *testing.T) {
	a := Vec3{0.3, 1.1, -2.0}
	b := Vec3{4.2, 0.1, 0.5}
	c := Vec3{-1.0, 2.2, 3.3}
	l := FaceNormal(a, b, c).Length()
	if math.Abs(l-1) > 1e-12 {
		t.Errorf("FaceNormal().Length() = %v, want 1", l)
	}
}

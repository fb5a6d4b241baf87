// Package geom provides double-precision vector math for mesh generation.
package geom

import "math"

// Epsilon is the tolerance used for approximate vector comparison.
const Epsilon = 2.220446049250313e-16

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Axis-aligned unit vectors and the zero vector.
var (
	Up   = Vec3{0, 0, 1}
	Down = Vec3{0, 0, -1}
	Zero = Vec3{}
)

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// DotXY returns the dot product of the XY projections.
func (v Vec3) DotXY(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector, or the zero vector for zero input.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// PerpXY returns v rotated 90 degrees clockwise in the XY plane,
// leaving Z unchanged.
func (v Vec3) PerpXY() Vec3 {
	return Vec3{-v.Y, v.X, v.Z}
}

// ApproxEqual reports whether each component of v is within Epsilon
// of the corresponding component of other.
func (v Vec3) ApproxEqual(other Vec3) bool {
	return math.Abs(v.X-other.X) <= Epsilon &&
		math.Abs(v.Y-other.Y) <= Epsilon &&
		math.Abs(v.Z-other.Z) <= Epsilon
}

// FromPoints returns the vector pointing from origin to end.
func FromPoints(origin, end Vec3) Vec3 {
	return end.Sub(origin)
}

// RightHanded reports whether (a, b, c) form a right-handed triple,
// i.e. the determinant |a b c| is strictly positive.
func RightHanded(a, b, c Vec3) bool {
	det := a.X*b.Y*c.Z + a.Y*b.Z*c.X + a.Z*b.X*c.Y -
		a.Z*b.Y*c.X - a.Y*b.X*c.Z - a.X*b.Z*c.Y
	return det > 0
}

// FaceNormal returns the unit normal of the triangle (a, b, c) with
// right-handed winding, or the zero vector if the triangle is degenerate.
func FaceNormal(a, b, c Vec3) Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

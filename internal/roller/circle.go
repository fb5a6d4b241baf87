package roller

import (
	"math"

	"github.com/stbotman/pattern-roller-maker/pkg/geom"
)

// CircleSampler maps a point index and a radius to Cartesian
// coordinates on a circle. Angles are precomputed for n equally
// spaced points over a full turn; the table carries one extra entry
// duplicating point 0 so that index n closes the seam exactly.
// Valid indices are 0..n inclusive.
type CircleSampler struct {
	sin       []float64
	cos       []float64
	axisShift float64
	n         int
}

// NewCircleSampler precomputes the angle table for n points. The axis
// shift is added to both coordinates, placing the circle's center at
// (axisShift, axisShift).
func NewCircleSampler(n int, axisShift float64) *CircleSampler {
	c := &CircleSampler{
		sin:       make([]float64, n+1),
		cos:       make([]float64, n+1),
		axisShift: axisShift,
		n:         n,
	}
	step := 2 * math.Pi / float64(n)
	for k := 0; k < n; k++ {
		c.sin[k], c.cos[k] = math.Sincos(float64(k) * step)
	}
	c.sin[n], c.cos[n] = c.sin[0], c.cos[0]
	return c
}

// Points returns the number of distinct points per full turn.
func (c *CircleSampler) Points() int { return c.n }

// AxisShift returns the planar translation applied to every coordinate.
func (c *CircleSampler) AxisShift() float64 { return c.axisShift }

// XY returns the coordinates of point k at the given radius.
func (c *CircleSampler) XY(k int, rho float64) (x, y float64) {
	return rho*c.cos[k] + c.axisShift, rho*c.sin[k] + c.axisShift
}

// Point returns point k at the given radius and height.
func (c *CircleSampler) Point(k int, rho, z float64) geom.Vec3 {
	x, y := c.XY(k, rho)
	return geom.Vec3{X: x, Y: y, Z: z}
}

package roller

import (
	"math"
	"testing"
)

func TestCircleSamplerSeamClosed(t *testing.T) {
	for _, n := range []int{3, 4, 7, 100, 360} {
		c := NewCircleSampler(n, 0)
		x0, y0 := c.XY(0, 1)
		xn, yn := c.XY(n, 1)
		if x0 != xn || y0 != yn {
			t.Errorf("n=%d: point 0 = (%v, %v), point n = (%v, %v), want identical", n, x0, y0, xn, yn)
		}
	}
}

func TestCircleSamplerFirstPoint(t *testing.T) {
	c := NewCircleSampler(8, 2)
	x, y := c.XY(0, 1.5)
	if x != 3.5 || y != 2 {
		t.Errorf("XY(0, 1.5) = (%v, %v), want (3.5, 2)", x, y)
	}
}

func TestCircleSamplerQuarterTurn(t *testing.T) {
	c := NewCircleSampler(4, 0)
	x, y := c.XY(1, 1)
	if math.Abs(x) > 1e-15 || math.Abs(y-1) > 1e-15 {
		t.Errorf("XY(1, 1) = (%v, %v), want (0, 1)", x, y)
	}
}

func TestCircleSamplerPoint(t *testing.T) {
	c := NewCircleSampler(6, 1)
	p := c.Point(0, 2, 5)
	if p.X != 3 || p.Y != 1 || p.Z != 5 {
		t.Errorf("Point(0, 2, 5) = %v, want (3, 1, 5)", p)
	}
}

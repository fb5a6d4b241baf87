// Package roller generates the triangle mesh of a cylindrical pattern
// roller from a grid of surface radii and streams it into an STL writer.
package roller

import (
	"errors"
	"fmt"
)

// Grid errors.
var (
	ErrEmptyGrid    = errors.New("radius grid must not be empty")
	ErrGridMismatch = errors.New("radius grid size does not match dimensions")
)

// RadiusGrid is a read-only rectangular grid of surface radii, stored
// row-major. Columns wrap around (the grid maps onto a cylinder); rows
// do not, the first and last rows being the roller's end boundaries.
type RadiusGrid struct {
	width  int
	height int
	radii  []float64
}

// NewRadiusGrid wraps a row-major radii slice of length width*height.
func NewRadiusGrid(width, height int, radii []float64) (*RadiusGrid, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	if len(radii) != width*height {
		return nil, fmt.Errorf("%w: %d values for %dx%d", ErrGridMismatch, len(radii), width, height)
	}
	return &RadiusGrid{width: width, height: height, radii: radii}, nil
}

// Width returns the number of columns.
func (g *RadiusGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *RadiusGrid) Height() int { return g.height }

// At returns the radius at (col, row). Indices must be in range.
func (g *RadiusGrid) At(col, row int) float64 {
	return g.radii[row*g.width+col]
}

// AtWrapped returns the radius at (col, row) with both indices reduced
// by Euclidean remainder, so negative and overflowing probes land back
// on the grid. Column wrapping is the cylindrical seam; row wrapping
// only ever serves the one-cell lookahead of the diagonal selector.
func (g *RadiusGrid) AtWrapped(col, row int) float64 {
	return g.At(remEuclid(col, g.width), remEuclid(row, g.height))
}

// TopLine returns the first row of radii, the z=length end boundary.
func (g *RadiusGrid) TopLine() []float64 {
	return g.radii[:g.width]
}

// BotLine returns the last row of radii, the z=0 end boundary.
func (g *RadiusGrid) BotLine() []float64 {
	return g.radii[len(g.radii)-g.width:]
}

func remEuclid(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

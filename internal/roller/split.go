package roller

// splitQuadOptimal decides which diagonal of grid cell (i, j) the two
// body triangles should share, and returns the cell's corner radii for
// reuse. For each candidate diagonal, the four radii along it and its
// extensions into the neighbor cells are scored by how far they deviate
// from a straight line; the flatter diagonal wins. Aligning the split
// with local curvature avoids visible creasing on the roller surface.
//
// tlbr reports that the top-left to bottom-right diagonal was chosen;
// ties go to it as well.
func splitQuadOptimal(g *RadiusGrid, i, j int) (tlbr bool, rhoTL, rhoTR, rhoBL, rhoBR float64) {
	cornerTL := g.AtWrapped(i-1, j-1)
	cornerTR := g.AtWrapped(i-1, j+2)
	cornerBL := g.AtWrapped(i+2, j-1)
	cornerBR := g.AtWrapped(i+2, j+2)
	rhoTL = g.AtWrapped(i, j)
	rhoTR = g.AtWrapped(i+1, j)
	rhoBL = g.AtWrapped(i, j+1)
	rhoBR = g.AtWrapped(i+1, j+1)
	tlbrScore := llsSSE(cornerTL, rhoTL, rhoBR, cornerBR)
	trblScore := llsSSE(cornerTR, rhoTR, rhoBL, cornerBL)
	tlbr = tlbrScore <= trblScore
	return tlbr, rhoTL, rhoTR, rhoBL, rhoBR
}

// llsSSE returns the sum of squared errors of the best least-squares
// line through the points (0,y1), (1,y2), (2,y3), (3,y4). Zero for any
// exactly linear sequence.
func llsSSE(y1, y2, y3, y4 float64) float64 {
	ySum := y1 + y2 + y3 + y4
	xySum := y2 + 2*y3 + 3*y4
	ySquaredSum := y1*y1 + y2*y2 + y3*y3 + y4*y4
	ssYY := ySquaredSum - ySum*ySum*0.25
	ssXY := xySum - 1.5*ySum
	return ssYY - ssXY*ssXY*0.2
}

package roller

import (
	"github.com/stbotman/pattern-roller-maker/pkg/geom"
	"github.com/stbotman/pattern-roller-maker/pkg/stl"
)

// makeBody tessellates the lateral surface. Each grid cell becomes two
// triangles sharing the diagonal chosen by splitQuadOptimal, repeated
// around the circumference (horizontal stacking) and along the axis
// (vertical stacking). The very last cell row of the last vertical
// repeat is skipped: it would duplicate the z=0 boundary seam.
func makeBody(w *stl.Writer, opts Options, circle *CircleSampler) error {
	width := opts.Grid.Width()
	height := opts.Grid.Height()
	hstack := opts.StackHorizontal
	vstack := opts.StackVertical
	zMax := zTop(opts)
	zStep := opts.Length / float64(height*vstack-1)
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			tlbrSplit, rhoTL, rhoTR, rhoBL, rhoBR := splitQuadOptimal(opts.Grid, i, j)
			for p := 0; p < hstack; p++ {
				xTL, yTL := circle.XY(i+p*width, rhoTL)
				xTR, yTR := circle.XY(i+p*width+1, rhoTR)
				xBL, yBL := circle.XY(i+p*width, rhoBL)
				xBR, yBR := circle.XY(i+p*width+1, rhoBR)
				for q := 0; q < vstack; q++ {
					if j == height-1 && q == vstack-1 {
						continue
					}
					zT := zMax - float64(j+height*q)*zStep
					zB := zT - zStep
					pointTL := geom.Vec3{X: xTL, Y: yTL, Z: zT}
					pointTR := geom.Vec3{X: xTR, Y: yTR, Z: zT}
					pointBL := geom.Vec3{X: xBL, Y: yBL, Z: zB}
					pointBR := geom.Vec3{X: xBR, Y: yBR, Z: zB}
					if tlbrSplit {
						if err := w.WriteFaceAutoNormal(pointTL, pointBR, pointTR); err != nil {
							return err
						}
						if err := w.WriteFaceAutoNormal(pointBL, pointBR, pointTL); err != nil {
							return err
						}
					} else {
						if err := w.WriteFaceAutoNormal(pointBL, pointTR, pointTL); err != nil {
							return err
						}
						if err := w.WriteFaceAutoNormal(pointBL, pointBR, pointTR); err != nil {
							return err
						}
					}
				}
			}
		}
	}
	return nil
}

package roller

import (
	"fmt"
	"math"

	"github.com/stbotman/pattern-roller-maker/pkg/geom"
	"github.com/stbotman/pattern-roller-maker/pkg/stl"
)

// makeHoledLids fills the flat annulus between the inner ring (pin
// footprint or bore rim) and the outer body boundary on both lid
// planes. The rings generally have different point counts, so each
// inner segment maps to a run of outer points and the region between
// them is an irregular polygon, triangulated by ear trimming.
//
// The outer index range for inner segment i is [nStart, nEnd] with
// nEnd = round(i * nOuter/nInner); the final segment is forced to end
// exactly at nOuter so rounding drift cannot open a gap at the seam.
func makeHoledLids(w *stl.Writer, opts Options, outer, inner *CircleSampler, innerRadius, zShift float64) error {
	radiiTop := opts.Grid.TopLine()
	radiiBot := opts.Grid.BotLine()
	zTop := zShift + opts.Length
	zBot := zShift
	stepScale := float64(outer.Points()) / float64(inner.Points())
	capacity := int(math.Ceil(stepScale)) + 3
	xNew, yNew := inner.XY(0, innerRadius)
	nEnd := 0
	for i := 1; i <= inner.Points(); i++ {
		xOld, yOld := xNew, yNew
		xNew, yNew = inner.XY(i, innerRadius)
		nStart := nEnd
		if i != inner.Points() {
			nEnd = int(math.Round(float64(i) * stepScale))
		} else {
			nEnd = outer.Points()
		}

		topPolygon := make([]geom.Vec3, 0, capacity)
		topPolygon = append(topPolygon, geom.Vec3{X: xNew, Y: yNew, Z: zTop})
		for n := nEnd; n >= nStart; n-- {
			topPolygon = append(topPolygon, outer.Point(n, radiiTop[n%len(radiiTop)], zTop))
		}
		topPolygon = append(topPolygon, geom.Vec3{X: xOld, Y: yOld, Z: zTop})
		if err := fillPolygonByEarTrimming(w, topPolygon, true); err != nil {
			return err
		}

		botPolygon := make([]geom.Vec3, 0, capacity)
		botPolygon = append(botPolygon, geom.Vec3{X: xNew, Y: yNew, Z: zBot})
		for n := nEnd; n >= nStart; n-- {
			botPolygon = append(botPolygon, outer.Point(n, radiiBot[n%len(radiiBot)], zBot))
		}
		botPolygon = append(botPolygon, geom.Vec3{X: xOld, Y: yOld, Z: zBot})
		if err := fillPolygonByEarTrimming(w, botPolygon, false); err != nil {
			return err
		}
	}
	return nil
}

// fillPolygonByEarTrimming triangulates a planar polygon by repeatedly
// cutting off an ear: an interior vertex whose triangle with its two
// neighbors lies on the filled side of the polygon. Interior vertices
// are scanned in reverse; the first ear found is emitted with the lid's
// fixed normal and removed, and the scan restarts. normalUp selects the
// +Z winding for the top lid, -Z for the bottom.
//
// Failing to find an ear with three or more vertices left cannot happen
// for the annulus sectors this receives; it indicates a generation bug
// and panics rather than looping forever.
func fillPolygonByEarTrimming(w *stl.Writer, polygon []geom.Vec3, normalUp bool) error {
	normal := geom.Down
	if normalUp {
		normal = geom.Up
	}
outer:
	for len(polygon) >= 3 {
		for i := len(polygon) - 2; i >= 1; i-- {
			if !triangleIsEar(polygon[i-1], polygon[i], polygon[i+1]) {
				continue
			}
			var err error
			if normalUp {
				err = w.WriteFace(normal, polygon[i-1], polygon[i+1], polygon[i])
			} else {
				err = w.WriteFace(normal, polygon[i], polygon[i+1], polygon[i-1])
			}
			if err != nil {
				return err
			}
			polygon = append(polygon[:i], polygon[i+1:]...)
			continue outer
		}
		panic(fmt.Sprintf("failed to triangulate polygon iteratively: %d vertices left", len(polygon)))
	}
	return nil
}

// triangleIsEar reports whether middle pokes out to the filled side of
// the base edge (left, right): the in-plane perpendicular of the base
// must make a strictly positive dot product with the vector to middle.
func triangleIsEar(left, middle, right geom.Vec3) bool {
	baseNormal := right.Sub(left).PerpXY()
	tip := middle.Sub(left)
	return baseNormal.DotXY(tip) > 0
}

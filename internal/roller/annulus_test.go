package roller

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stbotman/pattern-roller-maker/pkg/geom"
	"github.com/stbotman/pattern-roller-maker/pkg/stl"
)

// clockwiseNgon returns the vertices of a regular k-gon of the given
// radius in clockwise order, the orientation the ear trimmer expects
// for an upward-facing polygon.
func clockwiseNgon(k int, radius, z float64) []geom.Vec3 {
	points := make([]geom.Vec3, k)
	for i := range points {
		phi := -2 * math.Pi * float64(i) / float64(k)
		points[i] = geom.Vec3{X: radius * math.Cos(phi), Y: radius * math.Sin(phi), Z: z}
	}
	return points
}

func TestEarTrimmingTriangleCount(t *testing.T) {
	for _, k := range []int{3, 4, 5, 8, 17} {
		// Declaring exactly k-2 faces with validation on proves both
		// the triangle count and that every emitted face is valid.
		w, err := stl.NewWriter(filepath.Join(t.TempDir(), "ngon.stl"), uint32(k-2), true)
		if err != nil {
			t.Fatalf("k=%d: NewWriter() error: %v", k, err)
		}
		if err := fillPolygonByEarTrimming(w, clockwiseNgon(k, 1, 0), true); err != nil {
			t.Fatalf("k=%d: fillPolygonByEarTrimming() error: %v", k, err)
		}
		if err := w.Close(); err != nil {
			t.Errorf("k=%d: Close() error: %v", k, err)
		}
	}
}

func TestEarTrimmingDownwardNormal(t *testing.T) {
	// A bottom lid reuses the same polygon orientation but emits faces
	// wound for the -Z normal.
	polygon := clockwiseNgon(4, 1, 0)
	w, err := stl.NewWriter(filepath.Join(t.TempDir(), "down.stl"), 2, true)
	if err != nil {
		t.Fatalf("NewWriter() error: %v", err)
	}
	if err := fillPolygonByEarTrimming(w, polygon, false); err != nil {
		t.Fatalf("fillPolygonByEarTrimming() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}

func TestTriangleIsEar(t *testing.T) {
	left := geom.Vec3{X: 0, Y: 0}
	right := geom.Vec3{X: 1, Y: 1}
	if !triangleIsEar(left, geom.Vec3{X: 0, Y: 1}, right) {
		t.Error("triangleIsEar() = false for vertex left of the base, want true")
	}
	if triangleIsEar(left, geom.Vec3{X: 1, Y: 0}, right) {
		t.Error("triangleIsEar() = true for vertex right of the base, want false")
	}
	if triangleIsEar(left, geom.Vec3{X: 0.5, Y: 0.5}, right) {
		t.Error("triangleIsEar() = true for collinear vertex, want false")
	}
}

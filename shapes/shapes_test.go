package shapes

import (
	"math"
	"testing"

	"github.com/automoto/stackdrop/silhouette"
)

func TestWorldPolygon(t *testing.T) {
	contour := silhouette.Contour{
		{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 40}, {X: 0, Y: 40},
	}
	e := &Entry{
		Shape:  NewPolygon(contour),
		Scale:  0.5,
		Anchor: contour.Centroid(),
	}

	world := e.WorldPolygon()
	if len(world) != len(contour) {
		t.Fatalf("WorldPolygon() has %d points, want %d", len(world), len(contour))
	}
	// Recentering on the anchor puts the centroid at the origin.
	c := world.Centroid()
	if math.Abs(c.X) > 1e-9 || math.Abs(c.Y) > 1e-9 {
		t.Errorf("world centroid = %v, want the origin", c)
	}
	// A 40x40 square at scale 0.5 spans 20 world units.
	min, max := world.Bounds()
	if got := max.X - min.X; math.Abs(got-20) > 1e-9 {
		t.Errorf("world width = %v, want 20", got)
	}
}

func TestWorldSize(t *testing.T) {
	e := &Entry{Shape: NewRectangle(64, 32), Scale: 1.875}
	w, h := e.WorldSize()
	if w != 120 || h != 60 {
		t.Errorf("WorldSize() = %vx%v, want 120x60", w, h)
	}
}

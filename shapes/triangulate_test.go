package shapes

import (
	"math"
	"testing"

	"github.com/automoto/stackdrop/silhouette"
)

func triangleArea(tr Triangle) float64 {
	return math.Abs(cross(tr[0], tr[1], tr[2])) / 2
}

func totalArea(tris []Triangle) float64 {
	var sum float64
	for _, tr := range tris {
		sum += triangleArea(tr)
	}
	return sum
}

func TestTriangulate(t *testing.T) {
	square := silhouette.Contour{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100},
	}
	lShape := silhouette.Contour{
		{X: 0, Y: 0}, {X: 60, Y: 0}, {X: 60, Y: 30},
		{X: 30, Y: 30}, {X: 30, Y: 90}, {X: 0, Y: 90},
	}
	// Four spikes around a small core, alternating radius.
	star := silhouette.Contour{
		{X: 0, Y: -50}, {X: 10, Y: -10}, {X: 50, Y: 0}, {X: 10, Y: 10},
		{X: 0, Y: 50}, {X: -10, Y: 10}, {X: -50, Y: 0}, {X: -10, Y: -10},
	}

	tests := []struct {
		name string
		in   silhouette.Contour
		area float64
	}{
		{"square", square, 10000},
		{"l shape", lShape, 3600},
		{"star", star, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tris, ok := Triangulate(tt.in)
			if !ok {
				t.Fatal("Triangulate() not ok")
			}
			if want := len(tt.in) - 2; len(tris) != want {
				t.Errorf("got %d triangles, want %d", len(tris), want)
			}
			if got := totalArea(tris); math.Abs(got-tt.area) > 1e-6 {
				t.Errorf("total area = %v, want %v", got, tt.area)
			}
			for i, tr := range tris {
				if triangleArea(tr) < triangulateEpsilon {
					t.Errorf("triangle %d is degenerate: %v", i, tr)
				}
			}
		})
	}
}

func TestTriangulateWindingInsensitive(t *testing.T) {
	c := silhouette.Contour{
		{X: 0, Y: 0}, {X: 60, Y: 0}, {X: 60, Y: 30},
		{X: 30, Y: 30}, {X: 30, Y: 90}, {X: 0, Y: 90},
	}
	reversed := make(silhouette.Contour, len(c))
	for i, p := range c {
		reversed[len(c)-1-i] = p
	}

	a, ok := Triangulate(c)
	if !ok {
		t.Fatal("forward winding not ok")
	}
	b, ok := Triangulate(reversed)
	if !ok {
		t.Fatal("reverse winding not ok")
	}
	if len(a) != len(b) {
		t.Errorf("triangle counts differ: %d vs %d", len(a), len(b))
	}
	if got, want := totalArea(a), totalArea(b); math.Abs(got-want) > 1e-6 {
		t.Errorf("areas differ: %v vs %v", got, want)
	}
}

func TestTriangulateDegenerate(t *testing.T) {
	tests := []struct {
		name string
		in   silhouette.Contour
	}{
		{"empty", nil},
		{"two points", silhouette.Contour{{X: 0, Y: 0}, {X: 10, Y: 0}}},
		{"collinear", silhouette.Contour{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Triangulate(tt.in); ok {
				t.Error("Triangulate() ok for degenerate input")
			}
		})
	}
}

func TestTriangulateTracedContour(t *testing.T) {
	// A traced outline of a plus sign, the shape class the game feeds
	// through here.
	plus := silhouette.Contour{
		{X: 40, Y: 0}, {X: 80, Y: 0}, {X: 80, Y: 40}, {X: 120, Y: 40},
		{X: 120, Y: 80}, {X: 80, Y: 80}, {X: 80, Y: 120}, {X: 40, Y: 120},
		{X: 40, Y: 80}, {X: 0, Y: 80}, {X: 0, Y: 40}, {X: 40, Y: 40},
	}
	tris, ok := Triangulate(plus)
	if !ok {
		t.Fatal("Triangulate() not ok")
	}
	// Five 40x40 cells make up a plus.
	if got := totalArea(tris); math.Abs(got-5*40*40) > 1e-6 {
		t.Errorf("total area = %v, want %v", got, 5*40*40)
	}
}

// Package shapes resolves sprite assets into collision outlines and
// memoizes the result, so silhouette extraction runs at most once per
// distinct asset no matter how many pieces share its artwork.
package shapes

import "github.com/automoto/stackdrop/silhouette"

// Kind tags which geometry a Shape carries.
type Kind int

const (
	// KindPolygon is a traced silhouette outline.
	KindPolygon Kind = iota
	// KindRectangle is the fallback box used when no outline exists.
	KindRectangle
)

// Shape is the geometry handed to the physics layer: a silhouette
// polygon when extraction succeeded, otherwise a rectangle. Geometry is
// in raster space; the owning Entry's Scale maps it into world units.
// The physics layer consumes shapes, it is never built here.
type Shape struct {
	Kind    Kind
	Polygon silhouette.Contour // KindPolygon
	W, H    float64            // KindRectangle
}

// NewPolygon wraps a traced contour.
func NewPolygon(c silhouette.Contour) Shape {
	return Shape{Kind: KindPolygon, Polygon: c}
}

// NewRectangle wraps a w-by-h fallback box.
func NewRectangle(w, h float64) Shape {
	return Shape{Kind: KindRectangle, W: w, H: h}
}

// Entry is the cached resolution of one asset. Entries are written once
// and never mutated; every caller that resolves the same asset observes
// the same Entry.
type Entry struct {
	AssetID string
	Shape   Shape
	// Scale is the uniform raster-to-world factor. It is attached to
	// both the collision geometry and the sprite so the drawn piece and
	// its physical extent always agree.
	Scale    float64
	NaturalW int
	NaturalH int
	// Anchor is the raster-space point that maps onto the body origin:
	// the contour centroid for polygons, the image center for
	// rectangles. Renderers translate by -Anchor before scaling.
	Anchor silhouette.Point
}

// WorldPolygon returns the contour scaled into world units and recentered
// on the anchor. Only meaningful for KindPolygon entries.
func (e *Entry) WorldPolygon() silhouette.Contour {
	out := make(silhouette.Contour, len(e.Shape.Polygon))
	for i, p := range e.Shape.Polygon {
		out[i] = p.Sub(e.Anchor).Mul(e.Scale)
	}
	return out
}

// WorldSize returns the fallback rectangle's world dimensions. Only
// meaningful for KindRectangle entries.
func (e *Entry) WorldSize() (w, h float64) {
	return e.Shape.W * e.Scale, e.Shape.H * e.Scale
}

package shapes

import "github.com/automoto/stackdrop/silhouette"

// Triangle is one convex cell of a decomposed contour.
type Triangle [3]silhouette.Point

// triangulateEpsilon guards the convexity and containment tests against
// near-collinear traced points.
const triangulateEpsilon = 1e-9

// Triangulate splits a simple polygon into triangles by ear clipping.
// Physics engines want convex shapes, and traced silhouettes rarely
// are; attaching one triangle shape per cell to a body preserves the
// concavities the trace worked for. Winding may be either direction.
// ok is false for degenerate input or when no ear can be found (which
// happens if simplification produced a self-intersecting ring); callers
// then fall back to a convex approximation.
func Triangulate(c silhouette.Contour) ([]Triangle, bool) {
	n := len(c)
	if n < 3 {
		return nil, false
	}

	verts := make([]silhouette.Point, n)
	copy(verts, c)
	if signedArea(verts) < 0 {
		reverse(verts)
	}

	tris := make([]Triangle, 0, n-2)
	for len(verts) > 3 {
		ear := findEar(verts)
		if ear < 0 {
			return nil, false
		}
		m := len(verts)
		tris = append(tris, Triangle{
			verts[(ear-1+m)%m],
			verts[ear],
			verts[(ear+1)%m],
		})
		verts = append(verts[:ear], verts[ear+1:]...)
	}
	if cross(verts[0], verts[1], verts[2]) <= triangulateEpsilon {
		return nil, false
	}
	tris = append(tris, Triangle{verts[0], verts[1], verts[2]})
	return tris, true
}

// findEar returns the index of a clippable vertex: convex, with no
// other polygon vertex inside its triangle. -1 if none exists.
func findEar(verts []silhouette.Point) int {
	n := len(verts)
	for i := 0; i < n; i++ {
		a := verts[(i-1+n)%n]
		b := verts[i]
		c := verts[(i+1)%n]
		if cross(a, b, c) <= triangulateEpsilon {
			continue
		}
		blocked := false
		for j := 0; j < n; j++ {
			if j == (i-1+n)%n || j == i || j == (i+1)%n {
				continue
			}
			if pointInTriangle(verts[j], a, b, c) {
				blocked = true
				break
			}
		}
		if !blocked {
			return i
		}
	}
	return -1
}

// cross is the z component of (b-a) x (c-a); positive when the turn
// a->b->c is counter-clockwise in the normalized winding.
func cross(a, b, c silhouette.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// pointInTriangle reports whether p lies in triangle abc, boundary
// included. abc must be counter-clockwise.
func pointInTriangle(p, a, b, c silhouette.Point) bool {
	return cross(a, b, p) >= -triangulateEpsilon &&
		cross(b, c, p) >= -triangulateEpsilon &&
		cross(c, a, p) >= -triangulateEpsilon
}

// signedArea is the shoelace sum; positive for counter-clockwise rings.
func signedArea(verts []silhouette.Point) float64 {
	var sum float64
	for i, p := range verts {
		q := verts[(i+1)%len(verts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func reverse(verts []silhouette.Point) {
	for i, j := 0, len(verts)-1; i < j; i, j = i+1, j-1 {
		verts[i], verts[j] = verts[j], verts[i]
	}
}

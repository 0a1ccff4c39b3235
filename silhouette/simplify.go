package silhouette

// simplify thins a traced path with a greedy distance filter: the first
// point is always kept, and each later point survives only if it sits
// more than minSegment away from the last kept point. Cheaper than a
// proper polyline simplifier and good enough for grid-aligned traces of
// small sprites. The closing edge back to the first point may end up
// shorter than minSegment; downstream consumers accept that.
func simplify(pts []Point, minSegment float64) []Point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Point, 1, len(pts))
	out[0] = pts[0]
	last := pts[0]
	for _, p := range pts[1:] {
		if p.Distance(last) > minSegment {
			out = append(out, p)
			last = p
		}
	}
	return out
}

package silhouette

// The tracer walks the outline of the opaque region on the sampling
// grid. Movement is 4-connected: east, south, west, north, in clockwise
// order so that turning right means advancing the direction index.
var traceDirs = [4]struct{ dx, dy int }{
	{1, 0},  // east
	{0, 1},  // south
	{-1, 0}, // west
	{0, -1}, // north
}

const dirSouth = 1

// findSeed returns the first solid sample in raster-scan order, visiting
// the grid at the given step rather than every pixel. A fully
// transparent image reports no seed; that is the caller's cue to fall
// back, not a failure.
func findSeed(m *mask, step int) (Point, bool) {
	for y := 0; y < m.h; y += step {
		for x := 0; x < m.w; x += step {
			if m.solid(x, y) {
				return Point{X: float64(x), Y: float64(y)}, true
			}
		}
	}
	return Point{}, false
}

// traceBoundary walks the solid region's boundary starting at seed,
// stepping by the sampling step. From the current heading it tries a
// right turn first, then straight, then left, then a full reverse,
// taking the first solid candidate. Trying the right turn first keeps
// the walk hugging the empty side of the boundary instead of cutting
// across the interior.
//
// The walk ends when it returns to the seed, when no neighbor is solid
// (an isolated sample), or when the step budget runs out. A budget exit
// leaves a partial path, which is still worth simplifying; regions with
// holes or sub-step pinch points never close under this movement model
// and the budget is what keeps them from spinning forever.
//
// The returned path starts at the seed and holds one point per accepted
// step. The closing return to the seed is not appended twice.
func traceBoundary(m *mask, seed Point, step, budget int) []Point {
	pts := make([]Point, 0, 64)
	pts = append(pts, seed)

	sx, sy := int(seed.X), int(seed.Y)
	x, y := sx, sy
	// The seed is the first solid sample in scan order, so everything
	// above it and to its left is empty. Heading south puts that empty
	// region on the walk's right-hand side from the first step.
	dir := dirSouth

	for i := 0; i < budget; i++ {
		moved := false
		for _, d := range [4]int{(dir + 1) % 4, dir, (dir + 3) % 4, (dir + 2) % 4} {
			nx := x + traceDirs[d].dx*step
			ny := y + traceDirs[d].dy*step
			if m.solid(nx, ny) {
				x, y, dir = nx, ny, d
				moved = true
				break
			}
		}
		if !moved {
			// Isolated sample: no solid neighbor at this step size.
			break
		}
		if x == sx && y == sy {
			break
		}
		pts = append(pts, Point{X: float64(x), Y: float64(y)})
	}
	return pts
}

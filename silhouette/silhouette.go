// Package silhouette turns a sprite's alpha channel into a simplified
// closed polygon suitable as a collision outline. Extraction samples the
// image on a coarse grid, walks the boundary of the opaque region, and
// thins the walk down to a handful of vertices. It is pure and keeps no
// state between calls; callers that want memoization layer it on top.
package silhouette

import (
	"image"
	"math"
)

// Defaults for Config fields. Exposed so tuning code can reference the
// baseline values instead of restating them.
const (
	DefaultAlphaThreshold       = 10
	DefaultSamplingStep         = 4
	DefaultMinSegmentLength     = 15
	DefaultTraceIterationBudget = 5000
)

// Config tunes the extraction pipeline.
type Config struct {
	// AlphaThreshold is the opacity cutoff: samples with alpha strictly
	// above it count as solid. Zero is valid and means any nonzero alpha.
	AlphaThreshold uint8
	// SamplingStep is the grid spacing, in pixels, at which the image is
	// sampled. Larger steps trace faster and produce coarser outlines.
	SamplingStep int
	// MinSegmentLength drops traced points closer than this distance to
	// the previously kept point. Larger values mean fewer vertices.
	MinSegmentLength float64
	// TraceIterationBudget bounds the boundary walk so that masks whose
	// boundary never closes under the movement model still terminate.
	TraceIterationBudget int
}

// DefaultConfig returns the tuning used by the game.
func DefaultConfig() Config {
	return Config{
		AlphaThreshold:       DefaultAlphaThreshold,
		SamplingStep:         DefaultSamplingStep,
		MinSegmentLength:     DefaultMinSegmentLength,
		TraceIterationBudget: DefaultTraceIterationBudget,
	}
}

// withDefaults replaces non-positive fields with their defaults. The
// threshold is left alone; zero is a meaningful cutoff there.
func (c Config) withDefaults() Config {
	if c.SamplingStep <= 0 {
		c.SamplingStep = DefaultSamplingStep
	}
	if c.MinSegmentLength <= 0 {
		c.MinSegmentLength = DefaultMinSegmentLength
	}
	if c.TraceIterationBudget <= 0 {
		c.TraceIterationBudget = DefaultTraceIterationBudget
	}
	return c
}

// Point is a position in raster space.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by f.
func (p Point) Mul(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Contour is an ordered closed polygon: at least three points, no two
// consecutive points coincident, winding consistent within one
// extraction. The closing edge from the last point back to the first is
// implied.
type Contour []Point

// Scale returns a copy of c with every point multiplied by f.
func (c Contour) Scale(f float64) Contour {
	out := make(Contour, len(c))
	for i, p := range c {
		out[i] = p.Mul(f)
	}
	return out
}

// Bounds returns the axis-aligned bounding box of c. A nil contour
// yields two zero points.
func (c Contour) Bounds() (min, max Point) {
	if len(c) == 0 {
		return Point{}, Point{}
	}
	min, max = c[0], c[0]
	for _, p := range c[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Centroid returns the area-weighted center of the polygon. When the
// polygon has no measurable area (collinear or near-degenerate traces)
// it falls back to the vertex mean so callers always get a point inside
// the contour's bounds.
func (c Contour) Centroid() Point {
	if len(c) == 0 {
		return Point{}
	}
	var area, cx, cy float64
	for i, p := range c {
		q := c[(i+1)%len(c)]
		cross := p.X*q.Y - q.X*p.Y
		area += cross
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	if math.Abs(area) < 1e-9 {
		var sum Point
		for _, p := range c {
			sum = sum.Add(p)
		}
		return sum.Mul(1 / float64(len(c)))
	}
	area *= 0.5
	return Point{X: cx / (6 * area), Y: cy / (6 * area)}
}

// Extract produces the simplified silhouette polygon of img's opaque
// region. The second return is false when no usable contour exists: a
// fully transparent image, or a trace that collapses below three points
// after simplification. That outcome is routine, not an error; callers
// fall back to a rectangular outline. Extract is deterministic for a
// given image and config.
func Extract(img image.Image, cfg Config) (Contour, bool) {
	cfg = cfg.withDefaults()
	m := newMask(img, cfg.AlphaThreshold)
	seed, ok := findSeed(m, cfg.SamplingStep)
	if !ok {
		return nil, false
	}
	path := traceBoundary(m, seed, cfg.SamplingStep, cfg.TraceIterationBudget)
	out := simplify(path, cfg.MinSegmentLength)
	if len(out) < 3 {
		return nil, false
	}
	return Contour(out), true
}

// FitScale returns the uniform factor that fits a w-by-h image inside a
// maxDim square without distorting its aspect ratio. Non-positive inputs
// yield 1 so degenerate dimensions never produce an infinite scale.
func FitScale(w, h int, maxDim float64) float64 {
	if w <= 0 || h <= 0 || maxDim <= 0 {
		return 1
	}
	return math.Min(maxDim/float64(w), maxDim/float64(h))
}

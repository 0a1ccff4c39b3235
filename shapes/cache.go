package shapes

import (
	"context"
	"image"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/automoto/stackdrop/silhouette"
)

// DecodeFunc turns an asset identifier into a decoded image. Decoding
// may be slow or fail; the cache treats failure as a cue for the
// rectangle fallback, never as a fatal condition.
type DecodeFunc func(ctx context.Context, id string) (image.Image, error)

// Config tunes shape resolution.
type Config struct {
	// Extract parameterizes the silhouette pipeline.
	Extract silhouette.Config
	// MaxDimension is the target maximum world dimension a piece is
	// scaled to fit, preserving aspect ratio.
	MaxDimension float64
	// FallbackSize is the raster edge length assumed for assets whose
	// image could not be decoded at all.
	FallbackSize int
}

const (
	defaultMaxDimension = 120
	defaultFallbackSize = 120
)

// Cache resolves asset identifiers to collision entries exactly once
// each. Concurrent resolutions of the same unseen asset share a single
// decode and extraction; later callers get the cached entry without
// recomputing. Entries live until explicitly invalidated.
type Cache struct {
	cfg    Config
	decode DecodeFunc

	mu      sync.RWMutex
	entries map[string]*Entry
	group   singleflight.Group
}

// NewCache builds a cache over the given decoder.
func NewCache(decode DecodeFunc, cfg Config) *Cache {
	if cfg.MaxDimension <= 0 {
		cfg.MaxDimension = defaultMaxDimension
	}
	if cfg.FallbackSize <= 0 {
		cfg.FallbackSize = defaultFallbackSize
	}
	return &Cache{
		cfg:     cfg,
		decode:  decode,
		entries: make(map[string]*Entry),
	}
}

// Lookup returns the cached entry for id, if one exists.
func (c *Cache) Lookup(id string) (*Entry, bool) {
	c.mu.RLock()
	e, ok := c.entries[id]
	c.mu.RUnlock()
	return e, ok
}

// Resolve returns the entry for id, computing and caching it on first
// use. Concurrent callers for the same unseen id are queued on one
// in-flight computation, whose context is the initiating caller's. A
// canceled context aborts the flight without caching anything, so a
// game that ends mid-load never commits stale work.
func (c *Cache) Resolve(ctx context.Context, id string) (*Entry, error) {
	if e, ok := c.Lookup(id); ok {
		return e, nil
	}
	v, err, _ := c.group.Do(id, func() (interface{}, error) {
		if e, ok := c.Lookup(id); ok {
			return e, nil
		}
		e := c.build(ctx, id)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[id] = e
		c.mu.Unlock()
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Entry), nil
}

// Invalidate drops the cached entry for id. The next Resolve recomputes
// it; used when a piece pack replaces artwork on disk.
func (c *Cache) Invalidate(id string) {
	c.mu.Lock()
	delete(c.entries, id)
	c.mu.Unlock()
}

// build produces an entry unconditionally; every failure mode degrades
// to a usable rectangle.
func (c *Cache) build(ctx context.Context, id string) *Entry {
	img, err := c.decode(ctx, id)
	if err != nil {
		log.Printf("Warning: decoding %s failed, falling back to a default box: %v", id, err)
		side := c.cfg.FallbackSize
		return c.rectangleEntry(id, side, side)
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	contour, ok := silhouette.Extract(img, c.cfg.Extract)
	if !ok {
		return c.rectangleEntry(id, w, h)
	}
	return &Entry{
		AssetID:  id,
		Shape:    NewPolygon(contour),
		Scale:    silhouette.FitScale(w, h, c.cfg.MaxDimension),
		NaturalW: w,
		NaturalH: h,
		Anchor:   contour.Centroid(),
	}
}

func (c *Cache) rectangleEntry(id string, w, h int) *Entry {
	return &Entry{
		AssetID:  id,
		Shape:    NewRectangle(float64(w), float64(h)),
		Scale:    silhouette.FitScale(w, h, c.cfg.MaxDimension),
		NaturalW: w,
		NaturalH: h,
		Anchor:   silhouette.Point{X: float64(w) / 2, Y: float64(h) / 2},
	}
}

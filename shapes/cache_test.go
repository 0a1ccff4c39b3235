package shapes

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/automoto/stackdrop/silhouette"
)

func opaqueBlob(w, h, x0, y0, x1, y1 int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 180, G: 90, B: 40, A: 255})
		}
	}
	return img
}

func TestResolveComputesOnce(t *testing.T) {
	var calls atomic.Int32
	cache := NewCache(func(ctx context.Context, id string) (image.Image, error) {
		calls.Add(1)
		time.Sleep(10 * time.Millisecond) // widen the race window
		return opaqueBlob(64, 64, 8, 8, 56, 56), nil
	}, Config{})

	const n = 16
	var wg sync.WaitGroup
	results := make([]*Entry, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = cache.Resolve(context.Background(), "crate")
		}(i)
	}
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("decode ran %d times for %d concurrent callers, want 1", got, n)
	}
	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("Resolve() caller %d returned error: %v", i, errs[i])
		}
		if results[i] != results[0] {
			t.Errorf("caller %d observed a different entry than caller 0", i)
		}
	}
}

func TestResolvePolygon(t *testing.T) {
	cache := NewCache(func(ctx context.Context, id string) (image.Image, error) {
		return opaqueBlob(64, 64, 8, 8, 56, 56), nil
	}, Config{MaxDimension: 120})

	e, err := cache.Resolve(context.Background(), "crate")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if e.Shape.Kind != KindPolygon {
		t.Fatalf("Shape.Kind = %v, want KindPolygon", e.Shape.Kind)
	}
	if len(e.Shape.Polygon) < 3 {
		t.Errorf("polygon has %d points, want >= 3", len(e.Shape.Polygon))
	}
	if want := silhouette.FitScale(64, 64, 120); e.Scale != want {
		t.Errorf("Scale = %v, want %v", e.Scale, want)
	}
	if e.NaturalW != 64 || e.NaturalH != 64 {
		t.Errorf("natural size = %dx%d, want 64x64", e.NaturalW, e.NaturalH)
	}

	cached, ok := cache.Lookup("crate")
	if !ok || cached != e {
		t.Error("Lookup() after Resolve() did not return the cached entry")
	}
}

func TestResolveDecodeFailure(t *testing.T) {
	var calls atomic.Int32
	cache := NewCache(func(ctx context.Context, id string) (image.Image, error) {
		calls.Add(1)
		return nil, errors.New("corrupt png")
	}, Config{MaxDimension: 120, FallbackSize: 96})

	e, err := cache.Resolve(context.Background(), "broken")
	if err != nil {
		t.Fatalf("Resolve() error: %v, want fallback entry", err)
	}
	if e.Shape.Kind != KindRectangle {
		t.Fatalf("Shape.Kind = %v, want KindRectangle", e.Shape.Kind)
	}
	if e.Shape.W != 96 || e.Shape.H != 96 {
		t.Errorf("fallback box = %vx%v, want 96x96", e.Shape.W, e.Shape.H)
	}

	// The fallback is cached like any other entry.
	if _, err := cache.Resolve(context.Background(), "broken"); err != nil {
		t.Fatalf("second Resolve() error: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("decode ran %d times, want the failure cached after 1", got)
	}
}

func TestResolveTransparentImage(t *testing.T) {
	cache := NewCache(func(ctx context.Context, id string) (image.Image, error) {
		return image.NewNRGBA(image.Rect(0, 0, 32, 32)), nil
	}, Config{MaxDimension: 120})

	e, err := cache.Resolve(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if e.Shape.Kind != KindRectangle {
		t.Fatalf("Shape.Kind = %v, want KindRectangle for a transparent image", e.Shape.Kind)
	}
	if e.Shape.W != 32 || e.Shape.H != 32 {
		t.Errorf("fallback box = %vx%v, want the 32x32 natural size", e.Shape.W, e.Shape.H)
	}
	if want := silhouette.FitScale(32, 32, 120); e.Scale != want {
		t.Errorf("Scale = %v, want %v", e.Scale, want)
	}
}

func TestResolveCanceledContext(t *testing.T) {
	var calls atomic.Int32
	cache := NewCache(func(ctx context.Context, id string) (image.Image, error) {
		calls.Add(1)
		return opaqueBlob(64, 64, 8, 8, 56, 56), nil
	}, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := cache.Resolve(ctx, "crate"); err == nil {
		t.Fatal("Resolve() with canceled context returned no error")
	}
	if _, ok := cache.Lookup("crate"); ok {
		t.Error("canceled resolution left an entry in the cache")
	}

	// A later resolution with a live context is unaffected.
	e, err := cache.Resolve(context.Background(), "crate")
	if err != nil {
		t.Fatalf("Resolve() after cancellation error: %v", err)
	}
	if e.Shape.Kind != KindPolygon {
		t.Errorf("Shape.Kind = %v, want KindPolygon", e.Shape.Kind)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("decode ran %d times, want 2 (canceled work discarded)", got)
	}
}

func TestInvalidate(t *testing.T) {
	var calls atomic.Int32
	cache := NewCache(func(ctx context.Context, id string) (image.Image, error) {
		calls.Add(1)
		return opaqueBlob(64, 64, 8, 8, 56, 56), nil
	}, Config{})

	if _, err := cache.Resolve(context.Background(), "crate"); err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	cache.Invalidate("crate")
	if _, ok := cache.Lookup("crate"); ok {
		t.Fatal("Lookup() after Invalidate() still hits")
	}
	if _, err := cache.Resolve(context.Background(), "crate"); err != nil {
		t.Fatalf("Resolve() after Invalidate() error: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("decode ran %d times, want 2 after invalidation", got)
	}
}

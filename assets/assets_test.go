package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sort"
	"testing"

	"github.com/automoto/stackdrop/silhouette"
)

func alphaAt(img image.Image, x, y int) uint8 {
	_, _, _, a := img.At(x, y).RGBA()
	return uint8(a >> 8)
}

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fillRect(img, 0, 0, w, h, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test sprite: %v", err)
	}
	return buf.Bytes()
}

func TestPieceIDsContainsBuiltins(t *testing.T) {
	ids := PieceIDs()
	if !sort.StringsAreSorted(ids) {
		t.Errorf("PieceIDs() = %v, want sorted", ids)
	}
	have := make(map[string]bool, len(ids))
	for _, id := range ids {
		have[id] = true
	}
	for _, b := range builtins {
		if !have[b.id] {
			t.Errorf("PieceIDs() missing builtin %q", b.id)
		}
	}
}

func TestDecodeBuiltins(t *testing.T) {
	for _, b := range builtins {
		t.Run(b.id, func(t *testing.T) {
			img, err := Decode(context.Background(), b.id)
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", b.id, err)
			}
			bounds := img.Bounds()
			if bounds.Dx() != b.w || bounds.Dy() != b.h {
				t.Errorf("Decode(%q) size = %dx%d, want %dx%d", b.id, bounds.Dx(), bounds.Dy(), b.w, b.h)
			}

			// Every painter leaves a transparent margin, so the corners
			// must be empty and the interior must have opaque paint.
			corners := [][2]int{{0, 0}, {b.w - 1, 0}, {0, b.h - 1}, {b.w - 1, b.h - 1}}
			for _, c := range corners {
				if a := alphaAt(img, c[0], c[1]); a > 10 {
					t.Errorf("corner (%d,%d) alpha = %d, want transparent", c[0], c[1], a)
				}
			}
			solid := false
			for y := 0; y < b.h && !solid; y++ {
				for x := 0; x < b.w; x++ {
					if alphaAt(img, x, y) > 10 {
						solid = true
						break
					}
				}
			}
			if !solid {
				t.Errorf("Decode(%q) produced a fully transparent sprite", b.id)
			}
		})
	}
}

// Every builtin must survive the outline pipeline as a real polygon;
// only broken or degenerate artwork falls back to a box.
func TestBuiltinOutlines(t *testing.T) {
	for _, b := range builtins {
		t.Run(b.id, func(t *testing.T) {
			img, err := Decode(context.Background(), b.id)
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", b.id, err)
			}
			contour, ok := silhouette.Extract(img, silhouette.DefaultConfig())
			if !ok {
				t.Fatalf("Extract(%q) found no contour", b.id)
			}
			if len(contour) < 3 {
				t.Fatalf("Extract(%q) = %d points, want at least 3", b.id, len(contour))
			}
			min, max := contour.Bounds()
			if min.X < 0 || min.Y < 0 || max.X >= float64(b.w) || max.Y >= float64(b.h) {
				t.Errorf("Extract(%q) bounds (%v, %v) outside %dx%d sprite", b.id, min, max, b.w, b.h)
			}
		})
	}
}

func TestDecodeUnknownPiece(t *testing.T) {
	if _, err := Decode(context.Background(), "no-such-piece"); err == nil {
		t.Error("Decode() of unknown piece returned nil error")
	}
}

func TestDecodeCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Decode(ctx, "crate")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Decode() error = %v, want context.Canceled", err)
	}
}

func TestRegisterReplaceUnregister(t *testing.T) {
	const id = "test/temp"
	defer Unregister(id)

	Register(id, encodeTestPNG(t, 8, 8))
	img, err := Decode(context.Background(), id)
	if err != nil {
		t.Fatalf("Decode() after Register error: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("Decode() width = %d, want 8", img.Bounds().Dx())
	}

	Register(id, []byte("not a png"))
	if _, err := Decode(context.Background(), id); err == nil {
		t.Error("Decode() of corrupt replacement returned nil error")
	}

	Unregister(id)
	if _, err := Decode(context.Background(), id); err == nil {
		t.Error("Decode() after Unregister returned nil error")
	}
}

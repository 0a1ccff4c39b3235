package silhouette

import (
	"image/color"
	"testing"
)

func TestFindSeed(t *testing.T) {
	t.Run("fully transparent image has no seed", func(t *testing.T) {
		m := newMask(newSprite(32, 32), 10)
		if p, ok := findSeed(m, 4); ok {
			t.Errorf("findSeed() = %v, want none", p)
		}
	})

	t.Run("topmost region wins regardless of x", func(t *testing.T) {
		img := newSprite(64, 64)
		fillRect(img, 40, 8, 56, 24, 255) // upper right
		fillRect(img, 4, 40, 20, 56, 255) // lower left
		m := newMask(img, 10)
		p, ok := findSeed(m, 4)
		if !ok {
			t.Fatal("findSeed() found nothing, want the upper blob")
		}
		if p != (Point{X: 40, Y: 8}) {
			t.Errorf("findSeed() = %v, want {40 8}", p)
		}
	})

	t.Run("leftmost sample wins within a row", func(t *testing.T) {
		img := newSprite(64, 64)
		fillRect(img, 32, 8, 40, 16, 255)
		fillRect(img, 8, 8, 16, 16, 255)
		m := newMask(img, 10)
		p, ok := findSeed(m, 4)
		if !ok {
			t.Fatal("findSeed() found nothing")
		}
		if p != (Point{X: 8, Y: 8}) {
			t.Errorf("findSeed() = %v, want {8 8}", p)
		}
	})

	t.Run("solid pixels between grid samples are invisible", func(t *testing.T) {
		img := newSprite(32, 32)
		fillRect(img, 9, 9, 11, 11, 255) // straddles no multiple of 4
		m := newMask(img, 10)
		if p, ok := findSeed(m, 4); ok {
			t.Errorf("findSeed() = %v, want none at step 4", p)
		}
	})
}

func TestTraceBoundaryRectangle(t *testing.T) {
	img := newSprite(64, 64)
	fillRect(img, 0, 0, 64, 64, 255)
	m := newMask(img, 10)
	seed := Point{X: 0, Y: 0}

	path := traceBoundary(m, seed, 4, 5000)

	if len(path) < 4 {
		t.Fatalf("traceBoundary() returned %d points, want a full ring", len(path))
	}
	if path[0] != seed {
		t.Errorf("path[0] = %v, want the seed %v", path[0], seed)
	}
	// Samples on a 0..60 grid ring: 16 per edge, corners shared.
	if want := 60; len(path) != want {
		t.Errorf("traceBoundary() returned %d points, want %d", len(path), want)
	}
	for i, p := range path {
		if !m.solid(int(p.X), int(p.Y)) {
			t.Errorf("path[%d] = %v is not solid", i, p)
		}
		if i > 0 {
			if d := p.Distance(path[i-1]); d != 4 {
				t.Errorf("path[%d] is %v from its predecessor, want single steps of 4", i, d)
			}
		}
	}
	// The ring closes: the dropped return step would land on the seed.
	if d := path[len(path)-1].Distance(seed); d != 4 {
		t.Errorf("last point is %v from the seed, want 4", d)
	}
}

func TestTraceBoundaryBudget(t *testing.T) {
	img := newSprite(256, 256)
	fillRect(img, 0, 0, 256, 256, 255)
	m := newMask(img, 10)

	path := traceBoundary(m, Point{}, 4, 5)

	// One point per accepted step plus the seed.
	if len(path) != 6 {
		t.Errorf("traceBoundary() with budget 5 returned %d points, want 6", len(path))
	}
}

func TestTraceBoundaryIsolatedSeed(t *testing.T) {
	img := newSprite(32, 32)
	img.SetNRGBA(8, 8, color.NRGBA{A: 255})
	m := newMask(img, 10)

	path := traceBoundary(m, Point{X: 8, Y: 8}, 4, 5000)

	if len(path) != 1 {
		t.Fatalf("traceBoundary() returned %d points, want just the seed", len(path))
	}
	if path[0] != (Point{X: 8, Y: 8}) {
		t.Errorf("path[0] = %v, want the seed", path[0])
	}
}

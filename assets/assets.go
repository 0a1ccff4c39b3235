package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"sort"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// The piece registry maps piece identifiers to PNG-encoded artwork.
// Builtin pieces are painted and registered at startup; piece packs add
// and remove entries while the game runs, so access is guarded for the
// pack watcher goroutine.
var (
	regMu    sync.RWMutex
	pieceArt = map[string][]byte{}
	images   = map[string]*ebiten.Image{}
)

// Register stores PNG artwork under id, replacing any previous artwork
// and dropping the stale GPU-side image.
func Register(id string, data []byte) {
	regMu.Lock()
	pieceArt[id] = data
	delete(images, id)
	regMu.Unlock()
}

// Unregister removes a piece from the registry entirely. Pieces already
// on the playfield keep the image handle they spawned with.
func Unregister(id string) {
	regMu.Lock()
	delete(pieceArt, id)
	delete(images, id)
	regMu.Unlock()
}

// PieceIDs returns the identifiers of every registered piece, sorted so
// spawn tables stay deterministic for a given registry state.
func PieceIDs() []string {
	regMu.RLock()
	ids := make([]string, 0, len(pieceArt))
	for id := range pieceArt {
		ids = append(ids, id)
	}
	regMu.RUnlock()
	sort.Strings(ids)
	return ids
}

// RandomPieceID picks a registered piece at random, avoiding an
// immediate repeat of exclude when more than one piece is registered.
// Returns "" only for an empty registry.
func RandomPieceID(r *rand.Rand, exclude string) string {
	ids := PieceIDs()
	if len(ids) == 0 {
		return ""
	}
	if len(ids) == 1 {
		return ids[0]
	}
	for {
		id := ids[r.Intn(len(ids))]
		if id != exclude {
			return id
		}
	}
}

// Decode returns the decoded artwork for a piece. The signature matches
// what the collision shape cache expects from its decoder, so this is
// the seam between artwork and physics.
func Decode(ctx context.Context, id string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	regMu.RLock()
	data, ok := pieceArt[id]
	regMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no artwork registered for piece %q", id)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding artwork for piece %q: %w", id, err)
	}
	return img, nil
}

// PieceImage returns the renderable image for a piece, building and
// caching it on first use. ok is false when the artwork is missing or
// cannot be decoded; callers draw FallbackTile stretched to the piece's
// collision box instead.
func PieceImage(id string) (*ebiten.Image, bool) {
	regMu.RLock()
	img, ok := images[id]
	regMu.RUnlock()
	if ok {
		return img, true
	}

	decoded, err := Decode(context.Background(), id)
	if err != nil {
		return nil, false
	}
	img = ebiten.NewImageFromImage(decoded)
	regMu.Lock()
	images[id] = img
	regMu.Unlock()
	return img, true
}

var (
	fallbackOnce sync.Once
	fallbackTile *ebiten.Image
)

// FallbackTile is the stand-in drawn over pieces whose artwork could
// not be decoded. Built once, lazily, so headless code paths never
// touch the GPU.
func FallbackTile() *ebiten.Image {
	fallbackOnce.Do(func() {
		img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
		paintFallback(img)
		fallbackTile = ebiten.NewImageFromImage(img)
	})
	return fallbackTile
}

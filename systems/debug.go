package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrop/components"
	cfg "github.com/automoto/stackdrop/config"
	"github.com/automoto/stackdrop/shapes"
	"github.com/automoto/stackdrop/silhouette"
	"github.com/automoto/stackdrop/tags"
)

// UpdateDebug toggles the collider overlay.
func UpdateDebug(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionToggleColliders).JustPressed {
		cfg.Debug.DrawColliders = !cfg.Debug.DrawColliders
	}
}

// DrawColliders strokes every piece's collision geometry over the
// world: traced polygons in green, fallback boxes in red. The overlay
// is the quickest way to check that a sprite and its shape agree.
func DrawColliders(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawColliders {
		return
	}
	offX, offY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}

	tags.Piece.Each(e.World, func(entry *donburi.Entry) {
		shapeEntry := components.Piece.Get(entry).Entry
		if shapeEntry == nil {
			return
		}
		body := components.Body.Get(entry).Body
		pos := body.Position()
		sin, cos := math.Sincos(body.Angle())

		switch shapeEntry.Shape.Kind {
		case shapes.KindPolygon:
			strokeRing(screen, shapeEntry.WorldPolygon(), sin, cos, pos.X+offX, pos.Y+offY, cfg.OutlineGreen)
		case shapes.KindRectangle:
			w, h := shapeEntry.WorldSize()
			corners := silhouette.Contour{
				{X: -w / 2, Y: -h / 2},
				{X: w / 2, Y: -h / 2},
				{X: w / 2, Y: h / 2},
				{X: -w / 2, Y: h / 2},
			}
			strokeRing(screen, corners, sin, cos, pos.X+offX, pos.Y+offY, cfg.OutlineRed)
		}
	})

	if pfEntry, ok := components.Playfield.First(e.World); ok {
		pf := components.Playfield.Get(pfEntry)
		vector.StrokeRect(
			screen,
			float32(pf.Floor.X+offX), float32(pf.Floor.Y+offY),
			float32(pf.Floor.W), float32(pf.Floor.H),
			1, cfg.OutlineGreen, false,
		)
	}
}

// strokeRing draws a closed polygon rotated by (sin, cos) and
// translated to screen position (px, py).
func strokeRing(screen *ebiten.Image, ring silhouette.Contour, sin, cos, px, py float64, clr color.Color) {
	n := len(ring)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]
		ax := cos*a.X - sin*a.Y + px
		ay := sin*a.X + cos*a.Y + py
		bx := cos*b.X - sin*b.Y + px
		by := sin*b.X + cos*b.Y + py
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 1, clr, false)
	}
}

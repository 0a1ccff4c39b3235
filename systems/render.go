package systems

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrop/assets"
	"github.com/automoto/stackdrop/components"
	cfg "github.com/automoto/stackdrop/config"
	"github.com/automoto/stackdrop/silhouette"
	"github.com/automoto/stackdrop/tags"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// backdropPalettes maps a stage's backdrop style to its sky gradient.
var backdropPalettes = map[string][2]color.RGBA{
	"night": {cfg.SkyTop, cfg.SkyBottom},
	"dawn":  {{R: 70, G: 40, B: 80, A: 255}, {R: 224, G: 130, B: 90, A: 255}},
}

var (
	gradientStyle string
	gradientImg   *ebiten.Image
)

// DrawBackground paints the sky gradient. The sky is fixed to the
// screen, not the world, so it ignores the camera.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	style := "night"
	if pfEntry, ok := components.Playfield.First(e.World); ok {
		if s := components.Playfield.Get(pfEntry).BackdropStyle; s != "" {
			style = s
		}
	}

	img := backdropGradient(style, screen.Bounds().Dy())
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(float64(screen.Bounds().Dx()), 1)
	screen.DrawImage(img, drawOp)
}

// backdropGradient builds and caches a 1px-wide vertical gradient strip
// for the given style.
func backdropGradient(style string, height int) *ebiten.Image {
	if gradientImg != nil && gradientStyle == style {
		return gradientImg
	}

	pal, ok := backdropPalettes[style]
	if !ok {
		pal = backdropPalettes["night"]
	}
	strip := image.NewNRGBA(image.Rect(0, 0, 1, height))
	for y := 0; y < height; y++ {
		t := float64(y) / float64(height-1)
		strip.SetNRGBA(0, y, color.NRGBA{
			R: lerpChannel(pal[0].R, pal[1].R, t),
			G: lerpChannel(pal[0].G, pal[1].G, t),
			B: lerpChannel(pal[0].B, pal[1].B, t),
			A: 255,
		})
	}
	gradientImg = ebiten.NewImageFromImage(strip)
	gradientStyle = style
	return gradientImg
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// cameraOffset returns the world-to-screen translation for the current
// camera position.
func cameraOffset(e *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

// DrawFloor renders the landing platform.
func DrawFloor(e *ecs.ECS, screen *ebiten.Image) {
	offX, offY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}
	pfEntry, ok := components.Playfield.First(e.World)
	if !ok {
		return
	}
	pf := components.Playfield.Get(pfEntry)

	vector.DrawFilledRect(
		screen,
		float32(pf.Floor.X+offX), float32(pf.Floor.Y+offY),
		float32(pf.Floor.W), float32(pf.Floor.H),
		cfg.FloorColor,
		false,
	)
	// Lighter lip along the landing surface.
	vector.DrawFilledRect(
		screen,
		float32(pf.Floor.X+offX), float32(pf.Floor.Y+offY),
		float32(pf.Floor.W), 4,
		color.RGBA{R: 86, G: 94, B: 110, A: 255},
		false,
	)
}

// DrawPieces renders every spawned piece at its body's position and
// angle. The sprite shares the shape entry's scale and anchor, so what
// the player sees is exactly what collides.
func DrawPieces(e *ecs.ECS, screen *ebiten.Image) {
	offX, offY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Culling pads by the largest piece diagonal.
	padding := 96.0

	tags.Piece.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry).Body
		pos := body.Position()
		sx, sy := pos.X+offX, pos.Y+offY

		// Viewport culling
		if sx < -padding || sx > float64(width)+padding || sy < -padding || sy > float64(height)+padding {
			return
		}

		sprite := components.Sprite.Get(entry)
		shapeEntry := components.Piece.Get(entry).Entry
		if sprite.Image == nil || shapeEntry == nil {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		if sprite.Fallback {
			// Stretch the stand-in tile over the collision box.
			w, h := shapeEntry.WorldSize()
			if w <= 0 || h <= 0 {
				w = float64(shapeEntry.NaturalW) * shapeEntry.Scale
				h = float64(shapeEntry.NaturalH) * shapeEntry.Scale
			}
			tileW := float64(sprite.Image.Bounds().Dx())
			tileH := float64(sprite.Image.Bounds().Dy())
			drawOp.GeoM.Translate(-tileW/2, -tileH/2)
			drawOp.GeoM.Scale(w/tileW, h/tileH)
		} else {
			drawOp.GeoM.Translate(-shapeEntry.Anchor.X, -shapeEntry.Anchor.Y)
			drawOp.GeoM.Scale(shapeEntry.Scale, shapeEntry.Scale)
		}
		drawOp.GeoM.Rotate(body.Angle())
		drawOp.GeoM.Translate(sx, sy)
		screen.DrawImage(sprite.Image, drawOp)
	})
}

// DrawHeldPiece renders the piece swinging at the spawn line, with a
// faint aim guide dropped beneath it.
func DrawHeldPiece(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)
	if session.State != components.SessionAwaitingDrop {
		return
	}
	spawnerEntry, ok := components.Spawner.First(e.World)
	if !ok {
		return
	}
	spawner := components.Spawner.Get(spawnerEntry)
	pfEntry, ok := components.Playfield.First(e.World)
	if !ok {
		return
	}
	pf := components.Playfield.Get(pfEntry)
	offX, offY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}

	x, y := spawner.X+offX, pf.SpawnY+offY

	vector.DrawFilledRect(
		screen,
		float32(x)-1, float32(y),
		2, float32(float64(screen.Bounds().Dy())-y),
		color.RGBA{R: 44, G: 44, B: 44, A: 44},
		false,
	)

	img, imgOK := assets.PieceImage(spawner.CurrentID)
	if !imgOK {
		img = assets.FallbackTile()
	}

	// The held piece is drawn about the image center with the same fit
	// scale its entry will carry; the anchor may shift to the centroid
	// once the outline resolves, which is imperceptible at the spawn
	// line.
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scale := silhouette.FitScale(w, h, cfg.Extractor.MaxPieceDimension)
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}

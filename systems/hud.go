package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrop/assets"
	"github.com/automoto/stackdrop/components"
	cfg "github.com/automoto/stackdrop/config"
	"github.com/automoto/stackdrop/fonts"
	"github.com/automoto/stackdrop/silhouette"
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// DrawHUD renders the score, the piece on deck and the control hint.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)

	width := float64(screen.Bounds().Dx())
	margin := cfg.HUD.Margin

	scoreFont := fonts.Score.Get()
	scoreText := fmt.Sprintf("SCORE %d", session.Score)
	text.Draw(screen, scoreText, scoreFont, int(margin)+2, int(margin)+26, cfg.HUD.ShadowColor)
	text.Draw(screen, scoreText, scoreFont, int(margin), int(margin)+24, cfg.HUD.TextColor)

	drawNextPreview(e, screen)

	hint := "Space/Click: Drop   Esc: Pause   R: Restart"
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 7
	text.Draw(screen, hint, hintFont, int((width-float64(hintWidth))/2), screen.Bounds().Dy()-12, cfg.HUD.TextColor)
}

// drawNextPreview boxes the on-deck piece in the top right corner.
func drawNextPreview(e *ecs.ECS, screen *ebiten.Image) {
	spawnerEntry, ok := components.Spawner.First(e.World)
	if !ok {
		return
	}
	spawner := components.Spawner.Get(spawnerEntry)

	width := float64(screen.Bounds().Dx())
	box := cfg.HUD.PreviewSize
	bx := width - cfg.HUD.Margin - box
	by := cfg.HUD.Margin + 14

	text.Draw(screen, "NEXT", fonts.Small.Get(), int(bx), int(by)-4, cfg.HUD.TextColor)
	vector.DrawFilledRect(
		screen,
		float32(bx), float32(by),
		float32(box), float32(box),
		color.RGBA{A: 90},
		false,
	)

	img, imgOK := assets.PieceImage(spawner.NextID)
	if !imgOK {
		img = assets.FallbackTile()
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scale := silhouette.FitScale(w, h, box-12)
	hudDrawOp.GeoM.Reset()
	hudDrawOp.ColorScale.Reset()
	hudDrawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	hudDrawOp.GeoM.Scale(scale, scale)
	hudDrawOp.GeoM.Translate(bx+box/2, by+box/2)
	hudDrawOp.ColorScale.ScaleAlpha(cfg.HUD.PreviewAlpha)
	screen.DrawImage(img, hudDrawOp)
}

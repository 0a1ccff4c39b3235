package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image *ebiten.Image
	// Fallback marks pieces whose artwork could not be decoded; the
	// renderer stretches the stand-in tile over the collision box.
	Fallback bool
}

var Sprite = donburi.NewComponentType[SpriteData]()

package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/stackdrop/assets"
)

// PlayfieldData carries the loaded stage geometry (singleton component).
type PlayfieldData struct {
	assets.Playfield
}

var Playfield = donburi.NewComponentType[PlayfieldData]()

package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"

	"github.com/automoto/stackdrop/assets"
	cfg "github.com/automoto/stackdrop/config"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context    *audio.Context
	Loader     *assets.AudioLoader
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()

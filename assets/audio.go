package assets

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/automoto/stackdrop/config"
)

// AudioLoader handles synthesis and caching of the game's sound
// effects. Clips are generated as raw PCM at startup instead of shipped
// as files, so there is nothing to embed and nothing that can fail to
// decode.
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte // Cache synthesized audio bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes a sound effect and caches it without creating
// a player. Call this at startup to avoid synthesis lag on first play.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	// Already cached
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	clip, err := synthClip(id, l.context.SampleRate())
	if err != nil {
		return err
	}
	l.sfxCache[id] = clip
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
// SFX are cached as PCM bytes for instant playback.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}

// synthClip builds the PCM for one logical sound.
func synthClip(id config.SoundID, sampleRate int) ([]byte, error) {
	switch id {
	case config.SoundDrop:
		return synthTone(sampleRate, toneSpec{dur: 0.09, startHz: 330, endHz: 200, vol: 0.7, decay: 28}), nil
	case config.SoundLand:
		return synthTone(sampleRate, toneSpec{dur: 0.14, startHz: 120, endHz: 70, vol: 0.9, noise: 0.35, decay: 22}), nil
	case config.SoundGameOver:
		return synthTone(sampleRate, toneSpec{dur: 0.7, startHz: 440, endHz: 96, vol: 0.8, decay: 4.5}), nil
	case config.SoundMenuNavigate:
		return synthTone(sampleRate, toneSpec{dur: 0.05, startHz: 880, endHz: 880, vol: 0.5, decay: 35}), nil
	case config.SoundMenuSelect:
		return appendClips(
			synthTone(sampleRate, toneSpec{dur: 0.07, startHz: 660, endHz: 660, vol: 0.6, decay: 20}),
			synthTone(sampleRate, toneSpec{dur: 0.1, startHz: 990, endHz: 990, vol: 0.6, decay: 18}),
		), nil
	}
	return nil, fmt.Errorf("no clip defined for sound %d", id)
}

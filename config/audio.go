package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Gameplay sounds
	SoundDrop
	SoundLand
	SoundGameOver
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig holds per-sound tuning. Clips are synthesized at startup,
// so there are no file paths here.
type SoundConfig struct {
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

// AllSounds lists every playable effect, for preloading at startup.
var AllSounds = []SoundID{
	SoundDrop,
	SoundLand,
	SoundGameOver,
	SoundMenuNavigate,
	SoundMenuSelect,
}

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}

	Sound = SoundConfig{
		VolumeMultipliers: map[SoundID]float64{
			SoundGameOver:     1.2,
			SoundMenuNavigate: 0.6,
		},
	}
}

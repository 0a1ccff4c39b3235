package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the optional tuning override file looked for in the
// working directory at startup.
const FileName = "stackdrop.yaml"

// fileOverrides mirrors the tunable subset of the configuration as
// optional fields. Absent values leave the compiled-in defaults alone.
type fileOverrides struct {
	Extractor struct {
		AlphaThreshold       *uint8   `yaml:"alpha_threshold"`
		SamplingStep         *int     `yaml:"sampling_step"`
		MinSegmentLength     *float64 `yaml:"min_segment_length"`
		TraceIterationBudget *int     `yaml:"trace_iteration_budget"`
		MaxPieceDimension    *float64 `yaml:"max_piece_dimension"`
	} `yaml:"extractor"`
	Piece struct {
		Mass       *float64 `yaml:"mass"`
		Friction   *float64 `yaml:"friction"`
		Elasticity *float64 `yaml:"elasticity"`
	} `yaml:"piece"`
	Physics struct {
		Gravity    *float64 `yaml:"gravity"`
		Iterations *uint    `yaml:"iterations"`
	} `yaml:"physics"`
	Spawner struct {
		SwingSeconds    *float32 `yaml:"swing_seconds"`
		LandDelayFrames *int     `yaml:"land_delay_frames"`
		PrefetchNext    *bool    `yaml:"prefetch_next"`
	} `yaml:"spawner"`
	Audio struct {
		SFXVolume *float64 `yaml:"sfx_volume"`
	} `yaml:"audio"`
	Debug struct {
		DrawColliders *bool `yaml:"draw_colliders"`
		SkipMenu      *bool `yaml:"skip_menu"`
	} `yaml:"debug"`
}

// LoadOverrides layers the YAML file at path over the defaults. A
// missing file is the normal case and is silent; a malformed file logs
// a warning and changes nothing.
func LoadOverrides(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: could not read %s: %v", path, err)
		}
		return
	}
	var o fileOverrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		log.Printf("Warning: ignoring malformed %s: %v", path, err)
		return
	}
	applyOverrides(&o)
	log.Printf("Applied tuning overrides from %s", path)
}

func applyOverrides(o *fileOverrides) {
	set(&Extractor.AlphaThreshold, o.Extractor.AlphaThreshold)
	set(&Extractor.SamplingStep, o.Extractor.SamplingStep)
	set(&Extractor.MinSegmentLength, o.Extractor.MinSegmentLength)
	set(&Extractor.TraceIterationBudget, o.Extractor.TraceIterationBudget)
	set(&Extractor.MaxPieceDimension, o.Extractor.MaxPieceDimension)

	set(&Piece.Mass, o.Piece.Mass)
	set(&Piece.Friction, o.Piece.Friction)
	set(&Piece.Elasticity, o.Piece.Elasticity)

	set(&Physics.Gravity, o.Physics.Gravity)
	set(&Physics.Iterations, o.Physics.Iterations)

	set(&Spawner.SwingSeconds, o.Spawner.SwingSeconds)
	set(&Spawner.LandDelayFrames, o.Spawner.LandDelayFrames)
	set(&Spawner.PrefetchNext, o.Spawner.PrefetchNext)

	set(&Audio.DefaultSFXVol, o.Audio.SFXVolume)

	set(&Debug.DrawColliders, o.Debug.DrawColliders)
	set(&Debug.SkipMenu, o.Debug.SkipMenu)
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

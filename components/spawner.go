package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SpawnerData holds the piece swinging overhead and the one on deck.
type SpawnerData struct {
	CurrentID string
	NextID    string

	// X is the held piece's current swing position, driven by Swing.
	X     float64
	Swing *gween.Sequence

	// DropTimer counts down the frames between a drop and the moment
	// the piece is considered landed and scored.
	DropTimer int
}

var Spawner = donburi.NewComponentType[SpawnerData]()

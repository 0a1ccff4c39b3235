package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/stackdrop/archetypes"
	"github.com/automoto/stackdrop/components"
	cfg "github.com/automoto/stackdrop/config"
)

// CreateCamera spawns the camera centered on the default framing.
func CreateCamera(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Camera.Spawn(e)
	components.Camera.SetValue(entry, components.CameraData{
		Position: math.Vec2{
			X: float64(cfg.C.Width) / 2,
			Y: float64(cfg.C.Height) / 2,
		},
	})
	return entry
}

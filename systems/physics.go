package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrop/components"
	cfg "github.com/automoto/stackdrop/config"
)

// UpdatePhysics advances the chipmunk space by one fixed step. Landing
// detection happens inside the step via the collision handlers the
// factory registered on the space.
func UpdatePhysics(e *ecs.ECS) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry).Space
	space.Step(cfg.Physics.TimeStep)
}

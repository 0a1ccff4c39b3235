package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrop/components"
	"github.com/automoto/stackdrop/config"
	"github.com/automoto/stackdrop/tags"
)

// UpdateCamera eases the view upward as the tower grows, keeping the
// highest settled piece a margin below the screen top. It never drops
// below the default framing, so the floor stays visible early on.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	screenHeight := float64(config.C.Height)

	targetY := screenHeight / 2
	if raised := towerTopY(e) - config.Camera.TopMargin + screenHeight/2; raised < targetY {
		targetY = raised
	}

	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// towerTopY returns the world y of the highest settled piece, or the
// floor top while nothing has landed. Falling pieces are ignored so a
// drop from the spawn line cannot yank the view.
func towerTopY(e *ecs.ECS) float64 {
	top := config.Playfield.FloorY
	if pfEntry, ok := components.Playfield.First(e.World); ok {
		top = components.Playfield.Get(pfEntry).Floor.Y
	}

	tags.Piece.Each(e.World, func(entry *donburi.Entry) {
		if !components.Piece.Get(entry).TouchedDown {
			return
		}
		if y := components.Body.Get(entry).Body.Position().Y; y < top {
			top = y
		}
	})
	return top
}

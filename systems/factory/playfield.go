package factory

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrop/archetypes"
	"github.com/automoto/stackdrop/assets"
	"github.com/automoto/stackdrop/components"
	cfg "github.com/automoto/stackdrop/config"
	"github.com/automoto/stackdrop/tags"
)

// CreatePlayfield loads the stage geometry and spawns its singleton.
func CreatePlayfield(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Playfield.Spawn(e)
	components.Playfield.SetValue(entry, components.PlayfieldData{
		Playfield: assets.LoadPlayfield(),
	})
	return entry
}

// CreateFloor adds the static floor box and the outer walls to the
// space. The walls end at the bottom of the stage, so the open gaps
// beside the floor are the route pieces take to the kill line.
func CreateFloor(e *ecs.ECS) *donburi.Entry {
	spaceEntry, _ := components.Space.First(e.World)
	space := components.Space.Get(spaceEntry).Space
	pfEntry, _ := components.Playfield.First(e.World)
	pf := components.Playfield.Get(pfEntry)

	static := space.StaticBody

	floorShape := space.AddShape(cp.NewBox2(static, cp.BB{
		L: pf.Floor.X,
		B: pf.Floor.Y,
		R: pf.Floor.X + pf.Floor.W,
		T: pf.Floor.Y + pf.Floor.H,
	}, 0))
	floorShape.SetFriction(cfg.Piece.Friction)
	floorShape.SetElasticity(0)
	floorShape.SetCollisionType(tags.CollisionFloor)

	for _, x := range []float64{0, pf.Width} {
		wall := space.AddShape(cp.NewSegment(static,
			cp.Vector{X: x, Y: -10 * pf.Height},
			cp.Vector{X: x, Y: pf.Height},
			1,
		))
		wall.SetFriction(0.1)
		wall.SetElasticity(0.2)
		wall.SetCollisionType(tags.CollisionWall)
	}

	entry := archetypes.Floor.Spawn(e)
	components.Body.SetValue(entry, components.BodyData{
		Body:   static,
		Shapes: []*cp.Shape{floorShape},
	})
	return entry
}

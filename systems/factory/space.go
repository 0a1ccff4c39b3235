package factory

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrop/archetypes"
	"github.com/automoto/stackdrop/components"
	cfg "github.com/automoto/stackdrop/config"
	"github.com/automoto/stackdrop/tags"
)

// CreateSpace builds the chipmunk space with gravity and the landing
// handlers wired. Handler user data carries the ECS so collisions can
// reach components and the sound queue.
func CreateSpace(e *ecs.ECS) *donburi.Entry {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Physics.Gravity})
	space.Iterations = cfg.Physics.Iterations
	space.SleepTimeThreshold = cfg.Physics.SleepTimeThreshold

	for _, pair := range [][2]cp.CollisionType{
		{tags.CollisionPiece, tags.CollisionFloor},
		{tags.CollisionPiece, tags.CollisionPiece},
	} {
		handler := space.NewCollisionHandler(pair[0], pair[1])
		handler.UserData = e
		handler.BeginFunc = pieceTouchdown
	}

	entry := archetypes.Space.Spawn(e)
	components.Space.SetValue(entry, components.SpaceData{Space: space})
	return entry
}

// pieceTouchdown marks colliding pieces as settled and queues the
// landing sound the first time each one touches down.
func pieceTouchdown(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
	e := userData.(*ecs.ECS)
	a, b := arb.Bodies()
	for _, body := range []*cp.Body{a, b} {
		entry, ok := body.UserData.(*donburi.Entry)
		if !ok || !entry.Valid() || !entry.HasComponent(components.Piece) {
			continue
		}
		piece := components.Piece.Get(entry)
		if piece.TouchedDown {
			continue
		}
		piece.TouchedDown = true
		queueSFX(e, cfg.SoundLand)
	}
	return true
}

// queueSFX appends straight to the audio singleton's queue; the systems
// package owns the flush.
func queueSFX(e *ecs.ECS, id cfg.SoundID) {
	audioEntry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(audioEntry)
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}

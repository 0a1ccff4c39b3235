package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrop/assets"
	"github.com/automoto/stackdrop/components"
	cfg "github.com/automoto/stackdrop/config"
	"github.com/automoto/stackdrop/systems/factory"
)

// UpdateSpawner advances the held piece's swing and turns a drop action
// into a live physics body.
func UpdateSpawner(e *ecs.ECS) {
	spawnerEntry, ok := components.Spawner.First(e.World)
	if !ok {
		return
	}
	spawner := components.Spawner.Get(spawnerEntry)
	session := GetOrCreateSession(e)

	switch session.State {
	case components.SessionAwaitingDrop:
		if spawner.Swing != nil {
			x, _, _ := spawner.Swing.Update(float32(cfg.Physics.TimeStep))
			spawner.X = float64(x)
		}
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionDrop).JustPressed {
			dropCurrentPiece(e, spawner, session)
		}

	case components.SessionDropping:
		spawner.DropTimer--
		if spawner.DropTimer <= 0 {
			session.Score++
			spawner.CurrentID = spawner.NextID
			spawner.NextID = assets.RandomPieceID(session.Rand, spawner.CurrentID)
			PrefetchShape(e, spawner.NextID)
			session.State = components.SessionAwaitingDrop
		}
	}
}

// dropCurrentPiece spawns the held asset as a dynamic body at the spawn
// line. Resolution is usually instant because the asset was prefetched
// when it went on deck; a drop that beats the prefetch joins the same
// in-flight computation instead of starting a second one.
func dropCurrentPiece(e *ecs.ECS, spawner *components.SpawnerData, session *components.SessionData) {
	shapesEntry, ok := components.Shapes.First(e.World)
	if !ok {
		return
	}
	cache := components.Shapes.Get(shapesEntry).Cache

	pfEntry, ok := components.Playfield.First(e.World)
	if !ok {
		return
	}
	pf := components.Playfield.Get(pfEntry)

	entry, err := cache.Resolve(session.Ctx, spawner.CurrentID)
	if err != nil {
		// Only a canceled session context errors here; the round is over.
		return
	}

	factory.CreatePiece(e, spawner.CurrentID, entry, spawner.X, pf.SpawnY)
	session.State = components.SessionDropping
	spawner.DropTimer = cfg.Spawner.LandDelayFrames
	PlaySFX(e, cfg.SoundDrop)
}

// PrefetchShape resolves an asset's collision entry in the background
// so it is already cached when the piece is dropped.
func PrefetchShape(e *ecs.ECS, id string) {
	if !cfg.Spawner.PrefetchNext || id == "" {
		return
	}
	shapesEntry, ok := components.Shapes.First(e.World)
	if !ok {
		return
	}
	cache := components.Shapes.Get(shapesEntry).Cache
	session := GetOrCreateSession(e)
	go func() {
		_, _ = cache.Resolve(session.Ctx, id)
	}()
}

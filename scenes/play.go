package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrop/components"
	cfg "github.com/automoto/stackdrop/config"
	"github.com/automoto/stackdrop/systems"
	"github.com/automoto/stackdrop/systems/factory"
)

// PlayScene runs one stacking round
type PlayScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewPlayScene creates a new play scene
func NewPlayScene(sc SceneChanger) *PlayScene {
	return &PlayScene{sceneChanger: sc}
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlayScene) configure() {
	// Preload SFX to avoid lag on the first drop (important for WASM)
	systems.PreloadAllSFX()

	e := ecs.NewECS(donburi.NewWorld())

	// Scene factories
	createPlayScene := func() interface{} {
		return NewPlayScene(ps.sceneChanger)
	}
	createGameOverScene := func(score int) interface{} {
		return NewGameOverScene(ps.sceneChanger, score)
	}

	// Audio system (runs first, even when paused for menu sounds)
	e.AddSystem(systems.UpdateAudio)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePack)
	e.AddSystem(systems.NewUpdateSession(ps.sceneChanger, createPlayScene, createGameOverScene))
	e.AddSystem(systems.UpdateDebug)

	// Game systems that stop while paused
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePieces))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawFloor)
	e.AddRenderer(cfg.Default, systems.DrawPieces)
	e.AddRenderer(cfg.Default, systems.DrawHeldPiece)
	e.AddRenderer(cfg.Default, systems.DrawColliders)
	e.AddRenderer(cfg.UI, systems.DrawHUD)
	e.AddRenderer(cfg.UI, systems.DrawSessionOverlay)

	ps.ecs = e

	// World setup. The playfield must exist before the floor and the
	// spawner take their geometry from it.
	factory.CreateSpace(ps.ecs)
	factory.CreatePlayfield(ps.ecs)
	factory.CreateFloor(ps.ecs)
	factory.CreateShapes(ps.ecs)
	sessionEntry := factory.CreateSession(ps.ecs)
	session := components.Session.Get(sessionEntry)
	factory.CreateSpawner(ps.ecs, session.Rand)
	factory.CreateCamera(ps.ecs)

	// Warm the outline cache so the first drop doesn't wait on it
	spawnerEntry, _ := components.Spawner.First(ps.ecs.World)
	spawner := components.Spawner.Get(spawnerEntry)
	systems.PrefetchShape(ps.ecs, spawner.CurrentID)
	systems.PrefetchShape(ps.ecs, spawner.NextID)
}

package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/stackdrop/config"
	"github.com/automoto/stackdrop/systems"
	"github.com/automoto/stackdrop/systems/factory"
	"github.com/automoto/stackdrop/ui"
)

// GameOverScene displays the results screen after a round
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	score        int
	nameEntryUI  *ui.GameOverUI
	once         sync.Once
}

// NewGameOverScene creates a game over scene showing the given score
func NewGameOverScene(sc SceneChanger, score int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, score: score}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	// The name entry form only runs while a qualifying score is unsaved
	if gs.nameEntryUI != nil && systems.GetOrCreateGameOver(gs.ecs).EnteringName {
		gs.nameEntryUI.Update()
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)

	if gs.nameEntryUI != nil && systems.GetOrCreateGameOver(gs.ecs).EnteringName {
		gs.nameEntryUI.UI.Draw(screen)
	}
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// Scene factories
	createPlayScene := func() interface{} {
		return NewPlayScene(gs.sceneChanger)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger)
	}

	// Audio system
	gs.ecs.AddSystem(systems.UpdateAudio)

	// Minimal systems for game over
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createPlayScene, createMenuScene))

	// Renderer
	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	table := systems.LoadRankings()
	factory.CreateRanking(gs.ecs, table)

	gameOver := systems.GetOrCreateGameOver(gs.ecs)
	gameOver.Score = gs.score
	gameOver.EnteringName = table.Qualifies(gs.score)

	if gameOver.EnteringName {
		gs.nameEntryUI = ui.NewGameOverUI(func(name string) {
			gameOver.Rank = table.Insert(name, gs.score)
			gameOver.Name = name
			gameOver.Saved = true
			gameOver.EnteringName = false
			_ = systems.SaveRankings(table)
		})
	}
}

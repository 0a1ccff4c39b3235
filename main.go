package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/stackdrop/config"
	"github.com/automoto/stackdrop/scenes"
	"github.com/automoto/stackdrop/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlayScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	colliders := flag.Bool("colliders", false, "Overlay collision outlines on every piece")
	skipMenu := flag.Bool("skipmenu", false, "Skip the menu and start a round immediately")
	packDir := flag.String("pack", "pieces", "Directory of custom piece PNGs to load and watch")
	configPath := flag.String("config", config.FileName, "Optional YAML tuning override file")
	flag.Parse()

	// File overrides apply first so command-line flags win
	config.LoadOverrides(*configPath)
	if *colliders {
		config.Debug.DrawColliders = true
	}
	if *skipMenu {
		config.Debug.SkipMenu = true
	}

	systems.StartPackWatcher(*packDir)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Stackdrop")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence for the high score table
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}

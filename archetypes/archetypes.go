package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrop/components"
	cfg "github.com/automoto/stackdrop/config"
	"github.com/automoto/stackdrop/tags"
)

var (
	Piece = newArchetype(
		tags.Piece,
		components.Piece,
		components.Body,
		components.Sprite,
	)
	Floor = newArchetype(
		tags.Floor,
		components.Body,
	)
	Space = newArchetype(
		components.Space,
	)
	Shapes = newArchetype(
		components.Shapes,
	)
	Session = newArchetype(
		components.Session,
	)
	Spawner = newArchetype(
		components.Spawner,
	)
	Playfield = newArchetype(
		components.Playfield,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Ranking = newArchetype(
		components.Ranking,
	)
	Menu = newArchetype(
		components.Menu,
	)
	GameOver = newArchetype(
		components.GameOver,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

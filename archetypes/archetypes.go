package archetypes

import (
	"github.com/automoto/engine2d/components"
	cfg "github.com/automoto/engine2d/config"
	"github.com/automoto/engine2d/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Body,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Body,
	)
	Level = newArchetype(
		components.Level,
	)
	Simulation = newArchetype(
		components.Simulation,
	)
	Camera = newArchetype(
		components.Camera,
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

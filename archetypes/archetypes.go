package archetypes

import (
	"github.com/automoto/windowwalker/components"
	cfg "github.com/automoto/windowwalker/config"
	"github.com/automoto/windowwalker/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Walker = newArchetype(
		tags.Walker,
		components.Walker,
	)
	Desktop = newArchetype(
		tags.Desktop,
		components.Desktop,
	)
	Sprites = newArchetype(
		components.Sprites,
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

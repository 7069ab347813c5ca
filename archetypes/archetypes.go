package archetypes

import (
	"github.com/automoto/pugtreats/components"
	"github.com/automoto/pugtreats/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Transform,
		components.Health,
		components.Animation,
	)
	Treat = newArchetype(
		tags.Treat,
		components.Pickup,
		components.Object,
		components.Transform,
	)
	Bush = newArchetype(
		tags.Bush,
		components.Obstacle,
		components.Object,
		components.Transform,
	)
	Session = newArchetype(
		components.Session,
		components.Pause,
		components.GameOver,
		components.Input,
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

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}

package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.State,
		components.Lives,
		components.Animation,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Physics,
		components.State,
		components.Animation,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Wall,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Trap = newArchetype(
		tags.Trap,
		components.Trap,
		components.Object,
	)
	Key = newArchetype(
		tags.Key,
		components.Key,
		components.Object,
	)
	Exit = newArchetype(
		tags.Exit,
		components.Exit,
		components.Object,
	)
	Entrance = newArchetype(
		tags.Entrance,
		components.Entrance,
		components.Object,
	)
	Portal = newArchetype(
		tags.Portal,
		components.Portal,
		components.Object,
		components.State,
		components.Animation,
		components.Tween,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Collectible,
		components.Object,
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

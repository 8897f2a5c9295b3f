package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/archetypes"
	"github.com/automoto/mazerunner/assets/animations"
	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/tags"
)

// CreatePlayer spawns the player centered on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := newCenteredObject(x, y, cfg.Player.HitboxWidth, cfg.Player.HitboxHeight, tags.ResolvPlayer)
	obj.AddTags("character")

	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: 0, Y: -1},
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		MaxSpeed: cfg.Player.Speed,
	})
	components.Lives.SetValue(player, components.LivesData{
		Lives:    cfg.Player.StartingLives,
		MaxLives: cfg.Player.MaxLives,
	})

	anim := components.AnimationData{Animations: animations.FromDefs(cfg.CharacterAnimations["player"])}
	anim.SetAnimation(cfg.Idle)
	components.Animation.SetValue(player, anim)

	// Flash is permanently attached to avoid archetype thrashing
	components.Flash.SetValue(player, components.FlashData{R: 1, G: 1, B: 1})

	addToSpace(ecs, player, obj)
	return player
}

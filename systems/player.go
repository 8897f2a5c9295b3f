package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/shared/tiletype"
	"github.com/automoto/mazerunner/tags"
)

// UpdatePlayer turns input into player velocity and advances the player's
// timers and state. Must run after input polling and before UpdatePhysics.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	if playerEntry.HasComponent(components.Death) {
		return
	}

	dt := step()
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	player.HurtTimer = max(0, player.HurtTimer-dt)
	if player.StaminaTimer > 0 {
		player.StaminaTimer = max(0, player.StaminaTimer-dt)
	}

	// Feet are the bottom center of the hitbox; any point of a walkway cell
	// counts, transparent or not.
	player.OnSpeedBoost = false
	if levelData, ok := currentLevel(ecs); ok {
		fx, fy := obj.X+obj.W/2, obj.Y
		if tile := levelData.CurrentLevel.TileAtPoint(fx, fy); tile != nil && tile.Type == tiletype.SpeedBoost {
			player.OnSpeedBoost = tile.IsPointInTile(fx, fy)
		}
	}

	input := getOrCreateInput(ecs)
	dx, dy := gamemath.NormalizeInput(input.Move())
	speed := physics.MaxSpeed * player.SpeedMultiplier(cfg.Player.BoostMultiplier)
	physics.SpeedX = dx * speed
	physics.SpeedY = dy * speed

	moving := dx != 0 || dy != 0
	if moving {
		player.Direction = components.Vector{X: dx, Y: dy}
	}

	switch {
	case player.HurtTimer > 0:
		state.Set(cfg.Hurt)
	case moving:
		state.Set(cfg.Walk)
	default:
		state.Set(cfg.Idle)
	}
	state.StateTimer += dt
}

// damagePlayer applies damage unless the player is still hurt from an
// earlier hit. It reports whether damage was dealt.
func damagePlayer(playerEntry *donburi.Entry, amount float64) bool {
	if playerEntry.HasComponent(components.Death) {
		return false
	}
	player := components.Player.Get(playerEntry)
	if player.HurtTimer > 0 {
		return false
	}
	lives := components.Lives.Get(playerEntry)
	lives.Add(-amount)
	player.HurtTimer = cfg.Player.HurtTime
	TriggerDamageFlash(playerEntry)

	if lives.Dead() {
		donburi.Add(playerEntry, components.Death, &components.DeathData{
			Timer: cfg.Player.DeathTime,
		})
		components.State.Get(playerEntry).Set(cfg.Die)
	}
	return true
}

// RespawnPlayer moves the player back to the entrance and returns the key.
func RespawnPlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	levelData, ok := currentLevel(ecs)
	if !ok {
		return
	}
	cell, _ := levelData.CurrentLevel.Entrance()
	x, y := cell.Center()
	components.Object.Get(playerEntry).SetCenter(x, y)

	physics := components.Physics.Get(playerEntry)
	physics.SpeedX, physics.SpeedY = 0, 0
	ReturnKey(ecs)
}

// UpdateRestart respawns the player at the entrance on request.
func UpdateRestart(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs), cfg.ActionRestart).JustPressed {
		RespawnPlayer(ecs)
	}
}

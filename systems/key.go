package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/components"
	"github.com/automoto/mazerunner/tags"
)

// UpdateKey picks the key up when the player's hitbox overlaps it.
func UpdateKey(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}
	keyEntry, ok := tags.Key.First(ecs.World)
	if !ok {
		return
	}
	key := components.Key.Get(keyEntry)
	if key.Collected {
		return
	}
	playerBox := components.Object.Get(playerEntry).Rect()
	if !components.Object.Get(keyEntry).Rect().Overlaps(playerBox) {
		return
	}

	key.Collected = true
	components.Player.Get(playerEntry).HasKey = true
	removeObject(ecs, keyEntry)
}

// ReturnKey takes the key from the player and puts it back where it spawned.
func ReturnKey(ecs *ecs.ECS) {
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		components.Player.Get(playerEntry).HasKey = false
	}
	keyEntry, ok := tags.Key.First(ecs.World)
	if !ok {
		return
	}
	key := components.Key.Get(keyEntry)
	if !key.Collected {
		return
	}
	key.Collected = false
	components.Object.Get(keyEntry).SetCenter(key.SpawnX, key.SpawnY)
	restoreObject(ecs, keyEntry)
}

// levelHasKey reports whether the exit is locked behind a key.
func levelHasKey(ecs *ecs.ECS) bool {
	_, ok := tags.Key.First(ecs.World)
	return ok
}

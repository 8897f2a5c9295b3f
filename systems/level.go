package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/components"
	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/tags"
)

// currentLevel returns the level entity's data, if a level is loaded.
func currentLevel(e *ecs.ECS) (*components.LevelData, bool) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return nil, false
	}
	levelData := components.Level.Get(levelEntry)
	return levelData, levelData.CurrentLevel != nil
}

// UpdateLevelTime advances the level clock.
func UpdateLevelTime(e *ecs.ECS) {
	if levelData, ok := currentLevel(e); ok {
		levelData.Elapsed += step()
	}
}

// entryOf returns the entity linked to a resolv object.
func entryOf(obj *resolv.Object) *donburi.Entry {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || entry == nil || !entry.Valid() {
		return nil
	}
	return entry
}

// playerPosition returns the player's hitbox center as a pixel position.
func playerPosition(e *ecs.ECS) (*gamemath.Position, bool) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return nil, false
	}
	x, y := components.Object.Get(playerEntry).Center()
	p := gamemath.NewPixelPosition(x, y)
	return &p, true
}

// removeObject takes an entity's object out of the space.
func removeObject(e *ecs.ECS, entry *donburi.Entry) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	components.Space.Get(spaceEntry).Remove(components.Object.Get(entry).Object)
}

// restoreObject puts an entity's object back into the space.
func restoreObject(e *ecs.ECS, entry *donburi.Entry) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	components.Space.Get(spaceEntry).Add(components.Object.Get(entry).Object)
}

package systems

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/tags"
)

// UpdateExit completes the level once the player's center is on an exit
// tile. Levels with a key only let a key holder out.
func UpdateExit(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}
	player := components.Player.Get(playerEntry)
	if levelHasKey(ecs) && !player.HasKey {
		return
	}
	px, py := components.Object.Get(playerEntry).Center()

	var reached *donburi.Entry
	components.Exit.Each(ecs.World, func(e *donburi.Entry) {
		if reached != nil {
			return
		}
		exit := components.Exit.Get(e)
		if exit.Tile != nil && exit.Tile.IsPointInTile(px, py) {
			reached = e
		}
	})
	if reached == nil {
		return
	}
	components.Exit.Get(reached).Activated = true
	completeLevel(ecs)
}

// completeLevel grades the run, shows the level complete overlay and
// records progress.
func completeLevel(ecs *ecs.ECS) {
	levelComplete := GetOrCreateLevelComplete(ecs)
	if levelComplete.IsComplete {
		return
	}

	missed := coinsLeft(ecs)
	if levelData, ok := currentLevel(ecs); ok {
		levelComplete.Time = levelData.Elapsed
		// Levels loaded from a file outside the catalog carry no index.
		if levelData.LevelIndex >= 0 {
			if err := RecordLevelComplete(levelData.LevelIndex, cfg.Grade(missed)); err != nil {
				log.Printf("Warning: Could not record progress: %v", err)
			}
		}
	}
	levelComplete.IsComplete = true
	levelComplete.CoinsMissed = missed
	levelComplete.Grade = cfg.Grade(missed)
}

// coinsLeft counts the coins still lying in the level.
func coinsLeft(ecs *ecs.ECS) int {
	n := 0
	components.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		if c := components.Collectible.Get(e); c.Kind == cfg.Coin && !c.Collected {
			n++
		}
	})
	return n
}

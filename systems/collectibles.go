package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/tags"
)

// UpdateCollectibles applies and removes every pickup the player overlaps.
func UpdateCollectibles(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}
	playerBox := components.Object.Get(playerEntry).Rect()

	var taken []*donburi.Entry
	components.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Collectible.Get(e)
		if c.Collected || !components.Object.Get(e).Rect().Overlaps(playerBox) {
			return
		}
		c.Collected = true
		applyCollectible(playerEntry, c.Kind)
		taken = append(taken, e)
	})

	for _, e := range taken {
		removeObject(ecs, e)
		ecs.World.Remove(e.Entity())
	}
}

func applyCollectible(playerEntry *donburi.Entry, kind cfg.CollectibleKind) {
	def := cfg.Collectible.Types[kind]
	player := components.Player.Get(playerEntry)
	if def.Lives != 0 {
		components.Lives.Get(playerEntry).Add(def.Lives)
	}
	player.Coins += def.Coins
	if def.Multiplier > 0 {
		player.Stamina = def.Multiplier
		player.StaminaTimer = def.Duration
	}
}

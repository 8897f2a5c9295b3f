package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/tags"
)

// UpdatePortals opens each portal for ActiveTime seconds of every Cycle and
// sends a player touching an open portal back to the entrance.
func UpdatePortals(ecs *ecs.ECS) {
	levelData, ok := currentLevel(ecs)
	if !ok {
		return
	}
	playerEntry, hasPlayer := tags.Player.First(ecs.World)
	if hasPlayer && playerEntry.HasComponent(components.Death) {
		hasPlayer = false
	}

	teleport := false
	components.Portal.Each(ecs.World, func(e *donburi.Entry) {
		portal := components.Portal.Get(e)
		portal.Timer = math.Mod(levelData.Elapsed+portal.Offset, cfg.Portal.Cycle)
		portal.Active = portal.Timer < cfg.Portal.ActiveTime

		state := components.State.Get(e)
		tw := components.Tween.Get(e)
		if portal.Active {
			state.Set(cfg.PortalOpen)
			v, _, done := tw.Update(float32(step()))
			if done {
				tw.Reset()
			}
			portal.Scale = float64(v)
		} else {
			state.Set(cfg.PortalClosed)
			tw.Reset()
			portal.Scale = 1
		}

		if !portal.Active || !hasPlayer || teleport {
			return
		}
		playerBox := components.Object.Get(playerEntry).Rect()
		if components.Object.Get(e).Rect().Overlaps(playerBox) {
			portal.Uses++
			teleport = true
		}
	})

	if teleport {
		cell, ok := levelData.CurrentLevel.Entrance()
		if !ok {
			return
		}
		x, y := cell.Center()
		components.Object.Get(playerEntry).SetCenter(x, y)
	}
}

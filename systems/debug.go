package systems

import (
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/mazerunner/config"
)

// UpdateDebug toggles the hitbox and path overlays.
func UpdateDebug(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs), cfg.ActionDebug).JustPressed {
		cfg.Debug.ShowHitboxes = !cfg.Debug.ShowHitboxes
		cfg.Debug.ShowPaths = cfg.Debug.ShowHitboxes
	}
}

package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
)

// NewUpdateLevelComplete creates a system that waits on the level complete
// overlay and calls advance once the player confirms.
func NewUpdateLevelComplete(advance func()) ecs.System {
	return func(e *ecs.ECS) {
		levelComplete := GetOrCreateLevelComplete(e)
		if !levelComplete.IsComplete || levelComplete.Advance {
			return
		}
		if GetAction(getOrCreateInput(e), cfg.ActionMenuSelect).JustPressed {
			levelComplete.Advance = true
			if advance != nil {
				advance()
			}
		}
	}
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	if _, ok := components.LevelComplete.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.LevelComplete))
	}

	ent, _ := components.LevelComplete.First(e.World)
	return components.LevelComplete.Get(ent)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	return GetOrCreateLevelComplete(e).IsComplete
}

// WithLevelCompleteCheck wraps a system to skip execution when level is complete
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelComplete(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused, after the
// level is complete or once the game is over.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithLevelCompleteCheck(WithGameOverCheck(system)))
}

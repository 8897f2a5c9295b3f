package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/components"
	"github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/tags"
)

// UpdateCamera eases the camera toward the player while keeping the view
// inside the level. A level smaller than the screen is centered.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	levelData, ok := currentLevel(e)
	if !ok {
		return
	}

	targetX, targetY := components.Object.Get(playerEntry).Center()

	zoom := camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	halfW := float64(config.C.Width) / zoom / 2
	halfH := float64(config.C.Height) / zoom / 2
	targetX = clampView(targetX, halfW, levelData.CurrentLevel.WorldWidth())
	targetY = clampView(targetY, halfH, levelData.CurrentLevel.WorldHeight())

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampView keeps a view of half-extent half inside [0, size].
func clampView(v, half, size float64) float64 {
	if size <= 2*half {
		return size / 2
	}
	return max(half, min(size-half, v))
}

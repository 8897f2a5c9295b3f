package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/mazerunner/archetypes"
	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.NewVec2(x, y),
		Zoom:     cfg.C.Zoom,
	})
	return camera
}

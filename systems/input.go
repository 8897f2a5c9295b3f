package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
)

// InputPoller fills the current frame of an input buffer from a device.
type InputPoller func(in *components.InputData)

// NewUpdateInput returns a system that rolls the input buffers over and
// polls the next frame. Must run BEFORE UpdatePlayer in the system order.
func NewUpdateInput(poll InputPoller) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		input.Swap()
		if poll != nil {
			poll(input)
		}
	}
}

// GetAction returns the temporal state of an action.
func GetAction(input *components.InputData, action cfg.ActionID) components.ActionState {
	return input.Action(action)
}

// getOrCreateInput returns the singleton Input component, creating if needed.
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Input))
	}

	ent, _ := components.Input.First(ecs.World)
	return components.Input.Get(ent)
}

package systems

import (
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/mazerunner/config"
)

// NewUpdateMenuSelect creates a system that calls onSelect when the select
// action is pressed. A press still held from the previous scene is ignored
// until it is released.
func NewUpdateMenuSelect(onSelect func()) ecs.System {
	armed := false
	return func(e *ecs.ECS) {
		state := GetAction(getOrCreateInput(e), cfg.ActionMenuSelect)
		if !state.Pressed {
			armed = true
			return
		}
		if armed && state.JustPressed && onSelect != nil {
			onSelect()
		}
	}
}

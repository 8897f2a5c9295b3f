package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/components"
)

// UpdateAnimations switches every animated entity to the animation of its
// state and advances it by one tick.
func UpdateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if e.HasComponent(components.State) {
			anim.SetAnimation(components.State.Get(e).CurrentState)
		}
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}

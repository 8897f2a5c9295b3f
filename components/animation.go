package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/mazerunner/assets/animations"
	"github.com/automoto/mazerunner/config"
)

// AnimationData selects the frame to draw. Sheets are resolved by the
// renderer from CurrentSheet.
type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	// Row selects the sheet row, used by enemy variants.
	Row        int
	Animations map[config.StateID]*animations.Animation
}

func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && (a.CurrentAnimation != nil || a.Animations[state] == nil) {
		return
	}

	anim, ok := a.Animations[state]
	if !ok {
		a.CurrentAnimation = nil
		a.CurrentSheet = state
		return
	}
	if a.CurrentAnimation != anim {
		a.CurrentAnimation = anim
		a.CurrentSheet = state
		a.CurrentAnimation.Restart()
	}
}

var Animation = donburi.NewComponentType[AnimationData]()

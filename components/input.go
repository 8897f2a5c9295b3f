package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/mazerunner/config"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions, plus the analog move vector. JustPressed/JustReleased are computed
// on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	// Analog holds the stick direction when one is deflected past the
	// deadzone, otherwise zero.
	Analog Vector
}

// Action returns the temporal state of an action.
func (in *InputData) Action(a cfg.ActionID) ActionState {
	cur, prev := in.Current[a], in.Previous[a]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

// Swap moves the current frame into the previous one and clears current.
func (in *InputData) Swap() {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	in.Analog = Vector{}
}

// Move returns the desired movement direction, preferring the analog stick.
// Up is +Y.
func (in *InputData) Move() (float64, float64) {
	if in.Analog.X != 0 || in.Analog.Y != 0 {
		return in.Analog.X, in.Analog.Y
	}
	var dx, dy float64
	if in.Current[cfg.ActionMoveLeft] {
		dx--
	}
	if in.Current[cfg.ActionMoveRight] {
		dx++
	}
	if in.Current[cfg.ActionMoveUp] {
		dy++
	}
	if in.Current[cfg.ActionMoveDown] {
		dy--
	}
	return dx, dy
}

var Input = donburi.NewComponentType[InputData]()

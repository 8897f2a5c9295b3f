package scenes

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every action to its keys and gamepad buttons.
var Bindings = map[cfg.ActionID]InputBinding{
	cfg.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionMoveUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	cfg.ActionMoveDown: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	cfg.ActionPause: {
		Keys:                   []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionMenuSelect: {
		Keys:                   []ebiten.Key{ebiten.KeyEnter},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionRestart: {
		Keys:                   []ebiten.Key{ebiten.KeyR},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
	cfg.ActionDebug: {
		Keys: []ebiten.Key{ebiten.KeyF3},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// pollInput reads the keyboard and every standard gamepad into in. The first
// stick pushed past the deadzone also drives the directional actions so
// menus can be navigated with it.
func pollInput(in *components.InputData) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					in.Current[actionID] = true
				}
			}
		}
	}

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		stick, ok := analogStick(x, y, cfg.Input.AnalogDeadzone)
		if !ok {
			continue
		}
		in.Analog = stick
		mergeStick(in, stick, cfg.Input.AnalogDeadzone)
		break
	}
}

// analogStick converts a raw stick reading to world direction. Stick down
// reads positive while world up is +Y. Readings inside the deadzone report
// false.
func analogStick(x, y, deadzone float64) (components.Vector, bool) {
	if math.Hypot(x, y) < deadzone {
		return components.Vector{}, false
	}
	return components.Vector{X: x, Y: -y}, true
}

func mergeStick(in *components.InputData, stick components.Vector, deadzone float64) {
	if stick.X < -deadzone {
		in.Current[cfg.ActionMoveLeft] = true
	}
	if stick.X > deadzone {
		in.Current[cfg.ActionMoveRight] = true
	}
	if stick.Y > deadzone {
		in.Current[cfg.ActionMoveUp] = true
	}
	if stick.Y < -deadzone {
		in.Current[cfg.ActionMoveDown] = true
	}
}

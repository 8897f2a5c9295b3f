package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionPause
	ActionMenuSelect
	ActionRestart
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds device independent input tuning. Key bindings live with
// the scene that polls the keyboard.
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input = InputConfig{
	AnalogDeadzone: 0.25,
}

package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/mazerunner/config"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // seconds in the current state
}

// Set switches state, resetting the timer on change.
func (s *StateData) Set(state config.StateID) {
	if s.CurrentState == state {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = state
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()

package animations

import "github.com/automoto/mazerunner/config"

// Animation steps through sheet frames First..Last. Speed is in logic ticks
// per frame.
type Animation struct {
	First        int
	Last         int
	Step         int
	SpeedInTps   float32
	frameCounter float32
	frame        int
	Looped       bool
	Paused       bool
}

// Update advances the animation by one logic tick.
func (a *Animation) Update() {
	if a.Paused {
		return
	}
	a.frameCounter--
	if a.frameCounter >= 0 {
		return
	}
	a.frameCounter = a.SpeedInTps
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		a.frame = a.First
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Restart rewinds to the first frame and clears Looped.
func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}

// FromDefs builds one animation per state of a character's definitions.
func FromDefs(defs map[config.StateID]config.AnimationDef) map[config.StateID]*Animation {
	out := make(map[config.StateID]*Animation, len(defs))
	for state, d := range defs {
		out[state] = NewAnimation(d.First, d.Last, d.Step, d.Speed)
	}
	return out
}

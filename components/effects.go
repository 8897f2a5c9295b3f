package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks sprite flash effect (damage flash)
type FlashData struct {
	Duration float64 // seconds remaining
	R, G, B  float32 // color multipliers (1,1,1 = white, 1,0.5,0.5 = red tint)
	// Fade eases G and B back to 1 over Duration.
	Fade *gween.Tween
}

var Flash = donburi.NewComponentType[FlashData]()

// DeathData marks a player that has run out of lives. Timer counts down in
// seconds before the game over menu opens.
type DeathData struct {
	Timer float64
}

var Death = donburi.NewComponentType[DeathData]()

// Tween drives a looping scalar, such as the pulse of an open portal.
var Tween = donburi.NewComponentType[gween.Sequence]()

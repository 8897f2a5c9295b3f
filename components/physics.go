package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData holds the velocity applied by UpdateObjects, in px/s.
type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	MaxSpeed float64
}

var Physics = donburi.NewComponentType[PhysicsData]()

package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/mazerunner/shared/collision"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's hitbox in world pixels.
func (o *ObjectData) Rect() collision.Rect {
	return collision.RectOf(o.Object)
}

// Center returns the hitbox center.
func (o *ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// SetCenter moves the hitbox so its center is at (x, y).
func (o *ObjectData) SetCenter(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the broad-phase collision space shared by all objects.
var Space = donburi.NewComponentType[resolv.Space]()

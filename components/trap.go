package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/shared/hitmask"
)

type TrapData struct {
	Cell   gamemath.Cell
	Code   int
	Damage float64
	Region hitmask.Region
	// Mask is the sprite's thin-rule mask used for pixel-perfect touches.
	Mask *hitmask.Mask
}

var Trap = donburi.NewComponentType[TrapData]()

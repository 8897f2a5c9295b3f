package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/shared/hitmask"
)

type ExitData struct {
	Cell gamemath.Cell
	Tile *hitmask.Tile
	// Activated is set when the player leaves through this exit.
	Activated bool
}

var Exit = donburi.NewComponentType[ExitData]()

type EntranceData struct {
	Cell gamemath.Cell
}

var Entrance = donburi.NewComponentType[EntranceData]()

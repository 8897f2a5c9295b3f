package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/mazerunner/shared/hitmask"
)

// WallData links a solid tile's broad-phase object to its hit-mask.
type WallData struct {
	Tile *hitmask.Tile
}

var Wall = donburi.NewComponentType[WallData]()

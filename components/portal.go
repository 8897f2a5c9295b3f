package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/mazerunner/shared/gamemath"
)

type PortalData struct {
	Cell   gamemath.Cell
	Active bool
	// Timer runs over one open/closed cycle; Offset staggers portals.
	Timer  float64
	Offset float64
	// Uses counts teleports through this portal.
	Uses int
	// Scale is the draw scale of the pulse while open.
	Scale float64
}

var Portal = donburi.NewComponentType[PortalData]()

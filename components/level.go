package components

import (
	"math/rand"

	"github.com/yohamta/donburi"

	"github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/shared/leveldata"
	"github.com/automoto/mazerunner/shared/navgrid"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	Entry        config.LevelEntry
	LevelIndex   int
	Nav          *navgrid.NavGrid
	// Rand drives placement of pickups and portals and enemy wander targets.
	Rand *rand.Rand
	// Elapsed is the play time of the level in seconds.
	Elapsed float64
}

var Level = donburi.NewComponentType[LevelData]()

package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/shared/gamemath"
)

type KeyData struct {
	Collected bool
	// Spawn is where ReturnKey puts the key back.
	SpawnX, SpawnY float64
}

var Key = donburi.NewComponentType[KeyData]()

type CollectibleData struct {
	Kind      config.CollectibleKind
	Cell      gamemath.Cell
	Collected bool
}

var Collectible = donburi.NewComponentType[CollectibleData]()

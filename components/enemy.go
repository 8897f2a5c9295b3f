package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/shared/hitmask"
	"github.com/automoto/mazerunner/shared/navgrid"
)

type EnemyData struct {
	Code  int // tile code the enemy was spawned from
	Index int // variant index, selects the sheet row
	// BFS enemies chase along grid paths; plain ones steer straight at the
	// player.
	BFS      bool
	Searcher *navgrid.Searcher
	Region   hitmask.Region

	Speed           float64
	DetectionRadius float64
	Direction       Vector

	// Wander state
	WanderTarget Vector
	WanderTimer  float64 // seconds until the next wander retarget

	// Combat
	DamageCooldown float64 // seconds until the enemy can hit again
	DamageCount    int     // hits since the last wander reset
	Chasing        bool

	// Path is the last grid path computed toward the player, kept for debug
	// drawing.
	Path []gamemath.Cell
}

// Exhausted reports whether the enemy has used up its hits and must wander
// until its next reset.
func (e *EnemyData) Exhausted(max int) bool {
	return e.DamageCount >= max
}

var Enemy = donburi.NewComponentType[EnemyData]()

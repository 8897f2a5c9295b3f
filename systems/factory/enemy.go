package factory

import (
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/archetypes"
	"github.com/automoto/mazerunner/assets/animations"
	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/shared/leveldata"
	"github.com/automoto/mazerunner/shared/navgrid"
	"github.com/automoto/mazerunner/tags"
)

// CreateEnemy spawns a chasing enemy at the center of its cell. BFS enemies
// get their own searcher whose neighbour order is shuffled from a seed
// derived from the spawn cell, so identical loads behave identically.
func CreateEnemy(ecs *ecs.ECS, spawn leveldata.EnemySpawn, nav *navgrid.NavGrid) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := newCenteredObject(spawn.X, spawn.Y, cfg.Enemy.HitboxWidth, cfg.Enemy.HitboxHeight, tags.ResolvEnemy)

	radius := cfg.Enemy.PlainDetectionRadius
	var searcher *navgrid.Searcher
	if spawn.BFS {
		radius = cfg.Enemy.BFSDetectionRadius
		if nav != nil {
			searcher = nav.NewSearcher(navgrid.ShuffledDirections(cellRand(spawn.Cell)))
		}
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		Code:            spawn.Code,
		Index:           spawn.Index,
		BFS:             spawn.BFS,
		Searcher:        searcher,
		Region:          spawn.Region,
		Speed:           cfg.Enemy.Speed,
		DetectionRadius: radius,
		WanderTarget:    components.Vector{X: spawn.X, Y: spawn.Y},
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.StateWander,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		MaxSpeed: cfg.Enemy.Speed,
	})

	anim := components.AnimationData{
		Animations: animations.FromDefs(cfg.CharacterAnimations["enemy"]),
		Row:        spawn.Index,
	}
	anim.SetAnimation(cfg.StateWander)
	components.Animation.SetValue(enemy, anim)

	obj.AddTags("character")
	addToSpace(ecs, enemy, obj)
	return enemy
}

func cellRand(c gamemath.Cell) *rand.Rand {
	return rand.New(rand.NewSource(int64(c.Col)*73856093 ^ int64(c.Row)*19349663))
}

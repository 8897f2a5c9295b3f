package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/archetypes"
	"github.com/automoto/mazerunner/components"
	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/shared/hitmask"
	"github.com/automoto/mazerunner/tags"
)

// CreateExit creates an exit covering its whole cell.
func CreateExit(ecs *ecs.ECS, cell gamemath.Cell, tile *hitmask.Tile) *donburi.Entry {
	exit := archetypes.Exit.Spawn(ecs)

	x, y := cell.Center()
	obj := newCenteredObject(x, y, gamemath.CellSize, gamemath.CellSize, tags.ResolvExit)
	components.Exit.SetValue(exit, components.ExitData{Cell: cell, Tile: tile})
	addToSpace(ecs, exit, obj)

	return exit
}

// CreateEntrance marks the player spawn cell.
func CreateEntrance(ecs *ecs.ECS, cell gamemath.Cell) *donburi.Entry {
	entrance := archetypes.Entrance.Spawn(ecs)

	x, y := cell.Center()
	obj := newCenteredObject(x, y, gamemath.CellSize, gamemath.CellSize)
	components.Entrance.SetValue(entrance, components.EntranceData{Cell: cell})
	addToSpace(ecs, entrance, obj)

	return entrance
}

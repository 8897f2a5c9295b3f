package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/archetypes"
	"github.com/automoto/mazerunner/components"
	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/shared/hitmask"
	"github.com/automoto/mazerunner/shared/tiletype"
	"github.com/automoto/mazerunner/tags"
)

// CreateWall adds a solid tile to the broad phase. Movement checks refine
// hits against the tile's mask, so walkways only block at their rails.
func CreateWall(ecs *ecs.ECS, tile *hitmask.Tile) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	x, y := tile.Origin()
	objTags := []string{tags.ResolvSolid}
	if tile.Type == tiletype.SpeedBoost {
		objTags = append(objTags, tags.ResolvSpeedBoost)
	}
	obj := resolv.NewObject(x, y, gamemath.CellSize, gamemath.CellSize, objTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, gamemath.CellSize, gamemath.CellSize))

	components.Wall.SetValue(wall, components.WallData{Tile: tile})
	addToSpace(ecs, wall, obj)

	return wall
}

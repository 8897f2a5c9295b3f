package leveldata

import (
	"image"

	"github.com/automoto/mazerunner/shared/hitmask"
	"github.com/automoto/mazerunner/shared/tiletype"
)

// Source pixel sizes of sheet regions.
const (
	TileSize  = 16
	TrapSize  = 32
	EnemySize = 16
)

// defaultColumns is the sheet width in tiles assumed when no tile sheet
// image is attached.
const defaultColumns = 16

// Tileset resolves tile codes to sheet regions. Terrain codes index the tile
// sheet row-major; trap and enemy codes index the obstacle sheet. Either
// image may be nil, in which case regions carry no pixels and their masks
// are solid.
type Tileset struct {
	TilesID     string
	Tiles       image.Image
	ObstaclesID string
	Obstacles   image.Image
}

func (ts *Tileset) columns() int {
	if ts == nil || ts.Tiles == nil {
		return defaultColumns
	}
	if c := ts.Tiles.Bounds().Dx() / TileSize; c > 0 {
		return c
	}
	return defaultColumns
}

// Region returns the sheet region drawn for code.
func (ts *Tileset) Region(code int) hitmask.Region {
	var r hitmask.Region
	switch tiletype.Classify(code) {
	case tiletype.Trap:
		x := TrapSize * tiletype.TrapIndex(code)
		r.Rect = image.Rect(x, 0, x+TrapSize, TrapSize)
		if ts != nil {
			r.ImageID, r.Image = ts.ObstaclesID, ts.Obstacles
		}
	case tiletype.Enemy:
		y := TrapSize + tiletype.EnemyIndex(code)*EnemySize
		r.Rect = image.Rect(0, y, EnemySize, y+EnemySize)
		if ts != nil {
			r.ImageID, r.Image = ts.ObstaclesID, ts.Obstacles
		}
	default:
		cols := ts.columns()
		x, y := (code%cols)*TileSize, (code/cols)*TileSize
		r.Rect = image.Rect(x, y, x+TileSize, y+TileSize)
		if ts != nil {
			r.ImageID, r.Image = ts.TilesID, ts.Tiles
		}
	}
	return r
}

package hitmask

import (
	"math"

	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/shared/tiletype"
)

// Tile is one placed terrain tile: a cell, its logical type, the sheet
// region it draws from and a lazily resolved hit-mask.
type Tile struct {
	Cell gamemath.Cell
	Type tiletype.Type
	// Code is the logical tile code; Visual is the sheet index drawn, which
	// differs for cosmetic ground variants.
	Code   int
	Visual int
	Region Region
	Rule   Rule

	cache *Cache
	mask  *Mask
}

// NewTile creates a tile whose mask is resolved through cache on first use.
func NewTile(cache *Cache, cell gamemath.Cell, typ tiletype.Type, code, visual int, region Region, rule Rule) *Tile {
	return &Tile{
		Cell:   cell,
		Type:   typ,
		Code:   code,
		Visual: visual,
		Region: region,
		Rule:   rule,
		cache:  cache,
	}
}

// RuleFor returns the mask rule for a tile type.
func RuleFor(t tiletype.Type) Rule {
	switch t {
	case tiletype.SpeedBoost:
		return Handrail
	case tiletype.Trap:
		return Thin
	default:
		return Opaque
	}
}

// Mask returns the tile's hit-mask, building or fetching it on first call.
func (t *Tile) Mask() *Mask {
	if t.mask == nil {
		if t.cache == nil {
			t.cache = NewCache()
		}
		t.mask = t.cache.Mask(t.Region, t.Rule)
	}
	return t.mask
}

// Origin returns the world coordinate of the tile's lower-left corner.
func (t *Tile) Origin() (x, y float64) {
	return t.Cell.Origin()
}

// IsCollidingPoint reports whether the world point hits a solid mask pixel.
// World y grows upward while mask row 0 is the image top, so rows are
// flipped. Points outside the footprint report false.
func (t *Tile) IsCollidingPoint(worldX, worldY float64) bool {
	m := t.Mask()
	if m.Width() == 0 || m.Height() == 0 {
		return false
	}
	ox, oy := t.Origin()
	scale := gamemath.CellSize / float64(m.Width())
	localX := int(math.Floor((worldX - ox) / scale))
	localY := m.Height() - int(math.Floor((worldY-oy)/scale)) - 1
	return m.At(localX, localY)
}

// IsPointInTile reports whether the point lies in the tile's square
// footprint, edges included, ignoring the mask.
func (t *Tile) IsPointInTile(worldX, worldY float64) bool {
	ox, oy := t.Origin()
	return worldX >= ox && worldX <= ox+gamemath.CellSize &&
		worldY >= oy && worldY <= oy+gamemath.CellSize
}

package leveldata

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/shared/hitmask"
	"github.com/automoto/mazerunner/shared/tiletype"
)

// ErrNoExits is returned by NearestExit on a level without exits.
var ErrNoExits = errors.New("leveldata: level has no exits")

// Level is a materialized level. It is owned by the scene that loaded it and
// discarded wholesale on level change.
type Level struct {
	Name       string
	Dimensions Dimensions
	Properties Properties
	Grid       *Grid
	Layers     []*Layer
	Masks      *hitmask.Cache
	// OutOfBounds counts cells dropped because they fell outside the grid.
	OutOfBounds int

	tiles    []*hitmask.Tile
	entrance *gamemath.Cell
	exits    []gamemath.Cell
	traps    []TrapSpawn
	enemies  []EnemySpawn
	keyCell  *gamemath.Cell
}

func (l *Level) Width() int  { return l.Dimensions.Width }
func (l *Level) Height() int { return l.Dimensions.Height }

// WorldWidth is the level width in world pixels.
func (l *Level) WorldWidth() float64 {
	return float64(l.Dimensions.Width) * gamemath.CellSize
}

// WorldHeight is the level height in world pixels.
func (l *Level) WorldHeight() float64 {
	return float64(l.Dimensions.Height) * gamemath.CellSize
}

// TileTypeAt returns the grid type of the cell.
func (l *Level) TileTypeAt(col, row int) (tiletype.Type, error) {
	return l.Grid.TileTypeAt(col, row)
}

// TileAt returns the topmost terrain tile of the cell, nil when the cell
// holds none.
func (l *Level) TileAt(col, row int) (*hitmask.Tile, error) {
	i, err := l.Grid.index(col, row)
	if err != nil {
		return nil, err
	}
	return l.tiles[i], nil
}

// TileAtPoint returns the terrain tile under a world point, nil when there
// is none or the point is off the grid.
func (l *Level) TileAtPoint(x, y float64) *hitmask.Tile {
	c := gamemath.CellOf(x, y)
	if !l.Dimensions.Contains(c) {
		return nil
	}
	return l.tiles[c.Row*l.Dimensions.Width+c.Col]
}

// EntrancePosition returns the pixel center of the entrance cell.
func (l *Level) EntrancePosition() (gamemath.Position, bool) {
	if l.entrance == nil {
		return gamemath.Position{}, false
	}
	return l.entrance.Position().Convert(gamemath.Pixel), true
}

// Entrance returns the entrance cell.
func (l *Level) Entrance() (gamemath.Cell, bool) {
	if l.entrance == nil {
		return gamemath.Cell{}, false
	}
	return *l.entrance, true
}

// Exits returns the exit cells in placement order.
func (l *Level) Exits() []gamemath.Cell {
	return append([]gamemath.Cell(nil), l.exits...)
}

// Traps returns the trap spawns in placement order.
func (l *Level) Traps() []TrapSpawn {
	return append([]TrapSpawn(nil), l.traps...)
}

// Enemies returns the enemy spawns in placement order.
func (l *Level) Enemies() []EnemySpawn {
	return append([]EnemySpawn(nil), l.enemies...)
}

// HasKey reports whether the level places a key by code or property.
func (l *Level) HasKey() bool {
	return l.keyCell != nil || l.Properties.Get(PropKeyPosition) != ""
}

// KeyPosition returns the key's pixel position: the key cell's center, else
// the keyPosition property in tile units, else the center of cell (0,0).
func (l *Level) KeyPosition() gamemath.Position {
	if l.keyCell != nil {
		return l.keyCell.Position().Convert(gamemath.Pixel)
	}
	if v := l.Properties.Get(PropKeyPosition); v != "" {
		p, err := parseTilePair(v)
		if err == nil {
			return p.Convert(gamemath.Pixel)
		}
		log.Printf("Warning: leveldata: %s: %v", PropKeyPosition, err)
	}
	return gamemath.NewTilePosition(0, 0).Convert(gamemath.Pixel)
}

// NearestExit returns the exit whose center is closest to the world point.
func (l *Level) NearestExit(x, y float64) (gamemath.Cell, error) {
	if len(l.exits) == 0 {
		return gamemath.Cell{}, ErrNoExits
	}
	best := l.exits[0]
	bestDist := math.Inf(1)
	for _, e := range l.exits {
		ex, ey := e.Center()
		if d := math.Hypot(ex-x, ey-y); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, nil
}

// EmptyCells returns the Ground cells that hold no key, in row-major order.
func (l *Level) EmptyCells() []gamemath.Cell {
	var cells []gamemath.Cell
	for row := 0; row < l.Dimensions.Height; row++ {
		for col := 0; col < l.Dimensions.Width; col++ {
			c := gamemath.Cell{Col: col, Row: row}
			if l.keyCell != nil && *l.keyCell == c {
				continue
			}
			if t, _ := l.Grid.TileTypeAt(col, row); t == tiletype.Ground {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// CameraAngled reports whether the level asks for a tilted camera.
func (l *Level) CameraAngled() bool {
	return l.Properties.Bool(PropAngled)
}

// Property returns a free-form property, "" when absent.
func (l *Level) Property(key string) string {
	return l.Properties.Get(key)
}

// BoolProperty reports whether a property is "true".
func (l *Level) BoolProperty(key string) bool {
	return l.Properties.Bool(key)
}

func parseTilePair(s string) (gamemath.Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return gamemath.Position{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return gamemath.Position{}, fmt.Errorf("parse x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return gamemath.Position{}, fmt.Errorf("parse y: %w", err)
	}
	return gamemath.NewTilePosition(x, y), nil
}

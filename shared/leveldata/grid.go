package leveldata

import (
	"errors"
	"fmt"

	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/shared/tiletype"
)

// ErrOutOfBounds is returned by grid queries outside the level dimensions.
var ErrOutOfBounds = errors.New("leveldata: cell out of bounds")

// Grid is the dense tile-type grid of a level. Cells never written hold
// Ground.
type Grid struct {
	dims  Dimensions
	types []tiletype.Type
}

func newGrid(d Dimensions) *Grid {
	g := &Grid{dims: d, types: make([]tiletype.Type, d.Width*d.Height)}
	for i := range g.types {
		g.types[i] = tiletype.Ground
	}
	return g
}

func (g *Grid) Width() int  { return g.dims.Width }
func (g *Grid) Height() int { return g.dims.Height }

func (g *Grid) index(col, row int) (int, error) {
	c := gamemath.Cell{Col: col, Row: row}
	if !g.dims.Contains(c) {
		return 0, fmt.Errorf("%w: %s in %dx%d", ErrOutOfBounds, c, g.dims.Width, g.dims.Height)
	}
	return row*g.dims.Width + col, nil
}

// TileTypeAt returns the type of the cell.
func (g *Grid) TileTypeAt(col, row int) (tiletype.Type, error) {
	i, err := g.index(col, row)
	if err != nil {
		return tiletype.Ground, err
	}
	return g.types[i], nil
}

// Walkable reports whether the cell is inside the grid and traversable.
func (g *Grid) Walkable(col, row int) bool {
	t, err := g.TileTypeAt(col, row)
	return err == nil && t.Walkable()
}

// tag writes t into the cell. Terrain never replaces a Trap or Enemy tag, so
// pathfinding keeps seeing dynamic hazards under decorations.
func (g *Grid) tag(c gamemath.Cell, t tiletype.Type) {
	i, err := g.index(c.Col, c.Row)
	if err != nil {
		return
	}
	cur := g.types[i]
	if (cur == tiletype.Trap || cur == tiletype.Enemy) && t != tiletype.Trap && t != tiletype.Enemy {
		return
	}
	g.types[i] = t
}

// Layer is one rendering layer: the sheet index drawn at each cell, or -1.
type Layer struct {
	Index int
	dims  Dimensions
	codes []int
}

func newLayer(index int, d Dimensions) *Layer {
	l := &Layer{Index: index, dims: d, codes: make([]int, d.Width*d.Height)}
	for i := range l.codes {
		l.codes[i] = -1
	}
	return l
}

// CodeAt returns the sheet index drawn at the cell.
func (l *Layer) CodeAt(col, row int) (int, bool) {
	c := gamemath.Cell{Col: col, Row: row}
	if !l.dims.Contains(c) {
		return -1, false
	}
	code := l.codes[row*l.dims.Width+col]
	return code, code >= 0
}

// Each calls fn for every occupied cell in row-major order.
func (l *Layer) Each(fn func(c gamemath.Cell, code int)) {
	for i, code := range l.codes {
		if code < 0 {
			continue
		}
		fn(gamemath.Cell{Col: i % l.dims.Width, Row: i / l.dims.Width}, code)
	}
}

func (l *Layer) set(c gamemath.Cell, code int) {
	if l.dims.Contains(c) {
		l.codes[c.Row*l.dims.Width+c.Col] = code
	}
}

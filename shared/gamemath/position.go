// Package gamemath holds the unit-aware coordinate types shared by the level
// loader, the pathfinder and the collision code. It has no dependencies on
// ebitengine or donburi.
package gamemath

import (
	"errors"
	"fmt"
	"math"
)

// CellSize is the edge length of one grid cell in world pixels.
const CellSize = 100.0

var (
	// ErrPixelUnit is returned when a tile accessor is used on a pixel position.
	ErrPixelUnit = errors.New("gamemath: tile accessor on pixel-unit position")
	// ErrTileUnit is returned when a pixel accessor is used on a tile position.
	ErrTileUnit = errors.New("gamemath: pixel accessor on tile-unit position")
)

// Unit tags a Position with the coordinate space it lives in.
type Unit int

const (
	Tile Unit = iota
	Pixel
)

func (u Unit) String() string {
	switch u {
	case Tile:
		return "tile"
	case Pixel:
		return "pixel"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Cell is the integer (column, row) identity of a grid cell.
type Cell struct {
	Col, Row int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Add returns the cell offset by (dc, dr).
func (c Cell) Add(dc, dr int) Cell {
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// Position returns the cell as a tile-unit position.
func (c Cell) Position() Position {
	return NewTilePosition(float64(c.Col), float64(c.Row))
}

// Center returns the world pixel coordinate of the cell's center.
func (c Cell) Center() (x, y float64) {
	return (float64(c.Col) + 0.5) * CellSize, (float64(c.Row) + 0.5) * CellSize
}

// Origin returns the world pixel coordinate of the cell's lower-left corner.
func (c Cell) Origin() (x, y float64) {
	return float64(c.Col) * CellSize, float64(c.Row) * CellSize
}

// CellOf returns the cell containing the world pixel (x, y).
func CellOf(x, y float64) Cell {
	return NewPixelPosition(x, y).Convert(Tile).MustCell()
}

// Position is an immutable coordinate pair tagged with its unit.
type Position struct {
	X, Y float64
	Unit Unit
}

func NewTilePosition(x, y float64) Position {
	return Position{X: x, Y: y, Unit: Tile}
}

func NewPixelPosition(x, y float64) Position {
	return Position{X: x, Y: y, Unit: Pixel}
}

// Convert returns the position expressed in the target unit. Tile to pixel
// maps onto the cell center; pixel to tile divides without rounding.
func (p Position) Convert(to Unit) Position {
	if p.Unit == to {
		return p
	}
	if to == Pixel {
		return NewPixelPosition((p.X+0.5)*CellSize, (p.Y+0.5)*CellSize)
	}
	return NewTilePosition(p.X/CellSize, p.Y/CellSize)
}

// TileX returns the integer column. Fractional tile coordinates are floored,
// so pixel positions left of the origin land in negative columns.
func (p Position) TileX() (int, error) {
	if p.Unit != Tile {
		return 0, ErrPixelUnit
	}
	return int(math.Floor(p.X)), nil
}

// TileY returns the integer row.
func (p Position) TileY() (int, error) {
	if p.Unit != Tile {
		return 0, ErrPixelUnit
	}
	return int(math.Floor(p.Y)), nil
}

// Cell returns the integer cell of a tile-unit position.
func (p Position) Cell() (Cell, error) {
	if p.Unit != Tile {
		return Cell{}, ErrPixelUnit
	}
	return Cell{Col: int(math.Floor(p.X)), Row: int(math.Floor(p.Y))}, nil
}

// MustTileX is TileX for callers where a pixel position is a sequencing bug.
func (p Position) MustTileX() int {
	x, err := p.TileX()
	if err != nil {
		panic(err)
	}
	return x
}

func (p Position) MustTileY() int {
	y, err := p.TileY()
	if err != nil {
		panic(err)
	}
	return y
}

func (p Position) MustCell() Cell {
	c, err := p.Cell()
	if err != nil {
		panic(err)
	}
	return c
}

// PixelX returns the x coordinate of a pixel-unit position.
func (p Position) PixelX() (float64, error) {
	if p.Unit != Pixel {
		return 0, ErrTileUnit
	}
	return p.X, nil
}

func (p Position) PixelY() (float64, error) {
	if p.Unit != Pixel {
		return 0, ErrTileUnit
	}
	return p.Y, nil
}

// Distance returns the Euclidean distance between two positions after
// converting both to pixels.
func (p Position) Distance(o Position) float64 {
	a := p.Convert(Pixel)
	b := o.Convert(Pixel)
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%g,%g %s)", p.X, p.Y, p.Unit)
}

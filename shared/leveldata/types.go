// Package leveldata parses maze level files and materializes them into a
// typed grid, rendering layers and entity spawn lists. It has no
// dependencies on ebitengine or donburi.
package leveldata

import (
	"sort"
	"strings"

	"github.com/automoto/mazerunner/shared/gamemath"
)

// Dimensions is the grid size in cells.
type Dimensions struct {
	Width, Height int
}

// Contains reports whether the cell lies inside the grid.
func (d Dimensions) Contains(c gamemath.Cell) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < d.Width && c.Row < d.Height
}

// SparseMap maps a cell to its stacked tile codes, bottom layer first.
type SparseMap map[gamemath.Cell][]int

// Cells returns the keys in row-major order.
func (m SparseMap) Cells() []gamemath.Cell {
	cells := make([]gamemath.Cell, 0, len(m))
	for c := range m {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}

// Properties holds free-form level settings.
type Properties map[string]string

// Get returns the value for key, or "" when absent.
func (p Properties) Get(key string) string {
	return p[key]
}

// Bool reports whether key is set to "true".
func (p Properties) Bool(key string) bool {
	return strings.TrimSpace(p[key]) == "true"
}

// Well-known property keys.
const (
	PropAngled           = "angled"
	PropKeyPosition      = "keyPosition"
	PropNonBFSEnemyTypes = "nonBFSEnemyTypes"
)

// MapData is the parser's output.
type MapData struct {
	Cells      SparseMap
	MaxLayers  int
	Dimensions Dimensions
	Properties Properties
	// Skipped counts malformed lines and tokens dropped while parsing.
	Skipped int
}

func newMapData() *MapData {
	return &MapData{
		Cells:      make(SparseMap),
		Properties: make(Properties),
	}
}

// add appends a code to a cell's stack and grows the bookkeeping.
func (d *MapData) add(c gamemath.Cell, code int) {
	d.Cells[c] = append(d.Cells[c], code)
	if n := len(d.Cells[c]); n > d.MaxLayers {
		d.MaxLayers = n
	}
	if c.Col+1 > d.Dimensions.Width {
		d.Dimensions.Width = c.Col + 1
	}
	if c.Row+1 > d.Dimensions.Height {
		d.Dimensions.Height = c.Row + 1
	}
}

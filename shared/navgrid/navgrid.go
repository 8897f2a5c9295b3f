// Package navgrid runs breadth-first searches over a level's walkability
// grid: shortest chase paths and graph-distance detection checks.
package navgrid

import (
	"math/rand"

	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/shared/tiletype"
)

// Terrain is the grid a NavGrid is built from.
type Terrain interface {
	Width() int
	Height() int
	TileTypeAt(col, row int) (tiletype.Type, error)
}

// NavGrid is the walkable area of a level.
type NavGrid struct {
	Width, Height int
	CellSize      float64
	Nodes         [][]*NavNode // Nodes[row][col]
}

// NavNode is a single cell of the navigation grid.
type NavNode struct {
	X, Y     int
	Walkable bool
}

// Dir is a 4-connected step.
type Dir struct {
	DX, DY int
}

// Cardinal is the default neighbour expansion order.
var Cardinal = []Dir{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// ShuffledDirections returns the cardinal directions in an order drawn from
// rng. Different orders break ties between equal-length paths differently.
func ShuffledDirections(rng *rand.Rand) []Dir {
	dirs := append([]Dir(nil), Cardinal...)
	rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	return dirs
}

// New builds a navigation grid from terrain. A cell is walkable unless it is
// a Wall or Trap.
func New(t Terrain) *NavGrid {
	w, h := t.Width(), t.Height()
	g := &NavGrid{
		Width:    w,
		Height:   h,
		CellSize: gamemath.CellSize,
		Nodes:    make([][]*NavNode, h),
	}
	for y := 0; y < h; y++ {
		g.Nodes[y] = make([]*NavNode, w)
		for x := 0; x < w; x++ {
			typ, err := t.TileTypeAt(x, y)
			g.Nodes[y][x] = &NavNode{X: x, Y: y, Walkable: err == nil && typ.Walkable()}
		}
	}
	return g
}

// InBounds reports whether the cell lies on the grid.
func (g *NavGrid) InBounds(c gamemath.Cell) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < g.Width && c.Row < g.Height
}

// Walkable reports whether the cell is on the grid and traversable.
func (g *NavGrid) Walkable(c gamemath.Cell) bool {
	return g.InBounds(c) && g.Nodes[c.Row][c.Col].Walkable
}

// GridToWorld converts grid coordinates to world coordinates (center of cell).
func (g *NavGrid) GridToWorld(gridX, gridY int) (float64, float64) {
	return float64(gridX)*g.CellSize + g.CellSize/2,
		float64(gridY)*g.CellSize + g.CellSize/2
}

// Searcher runs searches with a fixed neighbour order. Each chasing enemy
// owns one. Searches keep no state between calls apart from the expansion
// counter of the last search.
type Searcher struct {
	grid       *NavGrid
	order      []Dir
	expansions int
}

// NewSearcher returns a searcher over g. A nil order uses Cardinal.
func (g *NavGrid) NewSearcher(order []Dir) *Searcher {
	if len(order) == 0 {
		order = Cardinal
	}
	return &Searcher{grid: g, order: order}
}

// FindPath is a convenience search with the Cardinal order.
func (g *NavGrid) FindPath(start, goal gamemath.Cell) ([]gamemath.Cell, bool) {
	return g.NewSearcher(nil).FindPath(start, goal)
}

// Expansions returns how many cells the last search dequeued.
func (s *Searcher) Expansions() int {
	return s.expansions
}

func (s *Searcher) neighbors(c gamemath.Cell, buf []gamemath.Cell) []gamemath.Cell {
	buf = buf[:0]
	for _, d := range s.order {
		n := c.Add(d.DX, d.DY)
		if s.grid.Walkable(n) {
			buf = append(buf, n)
		}
	}
	return buf
}

// FindPath returns the shortest 4-connected path from start to goal, both
// endpoints included. The start cell is always expanded even when it is not
// walkable itself. A goal off the grid or unreachable yields false.
func (s *Searcher) FindPath(start, goal gamemath.Cell) ([]gamemath.Cell, bool) {
	s.expansions = 0
	if !s.grid.InBounds(start) || !s.grid.InBounds(goal) {
		return nil, false
	}

	cameFrom := map[gamemath.Cell]gamemath.Cell{}
	visited := map[gamemath.Cell]bool{start: true}
	queue := []gamemath.Cell{start}
	var buf []gamemath.Cell

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		s.expansions++

		if cur == goal {
			return reconstruct(cameFrom, start, goal), true
		}
		buf = s.neighbors(cur, buf)
		for _, n := range buf {
			if visited[n] {
				continue
			}
			visited[n] = true
			cameFrom[n] = cur
			queue = append(queue, n)
		}
	}
	return nil, false
}

func reconstruct(cameFrom map[gamemath.Cell]gamemath.Cell, start, goal gamemath.Cell) []gamemath.Cell {
	path := []gamemath.Cell{goal}
	for cur := goal; cur != start; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathToward searches from the enemy's cell to the player's. A nil player
// yields no path without searching.
func (s *Searcher) PathToward(enemy gamemath.Position, player *gamemath.Position) ([]gamemath.Cell, bool) {
	if player == nil {
		s.expansions = 0
		return nil, false
	}
	return s.FindPath(cellOf(enemy), cellOf(*player))
}

// IsWithinDetectionRadius reports whether the player is within radius pixels
// of the enemy measured along walkable cells. The radius becomes a cell
// threshold of floor(radius / CellSize). A walkable player cell beyond the
// threshold is not detected. Only an unreachable player, such as one standing
// inside wall geometry or off the grid, falls back to straight-line distance.
// A nil player is never detected.
func (s *Searcher) IsWithinDetectionRadius(enemy gamemath.Position, player *gamemath.Position, radius float64) bool {
	s.expansions = 0
	if player == nil {
		return false
	}
	threshold := int(radius / s.grid.CellSize)
	start, goal := cellOf(enemy), cellOf(*player)
	if !s.grid.InBounds(start) || !s.grid.InBounds(goal) {
		return euclidean(enemy, *player, radius)
	}

	dist := map[gamemath.Cell]int{start: 0}
	queue := []gamemath.Cell{start}
	var buf []gamemath.Cell

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[cur]
		if d > threshold {
			if s.grid.Walkable(goal) {
				return false
			}
			return euclidean(enemy, *player, radius)
		}
		s.expansions++

		if cur == goal {
			return d <= threshold
		}
		buf = s.neighbors(cur, buf)
		for _, n := range buf {
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = d + 1
			queue = append(queue, n)
		}
	}
	return euclidean(enemy, *player, radius)
}

func euclidean(a, b gamemath.Position, radius float64) bool {
	return a.Distance(b) <= radius
}

func cellOf(p gamemath.Position) gamemath.Cell {
	return p.Convert(gamemath.Tile).MustCell()
}

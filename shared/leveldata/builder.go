package leveldata

import (
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/shared/hitmask"
	"github.com/automoto/mazerunner/shared/tiletype"
)

// Ground variant jitter: a ground cell is drawn as one of four variant
// sheet indices starting at GroundVariantBase with GroundVariantChance.
const (
	GroundVariantChance = 0.02
	GroundVariantBase   = 7
)

// Trap defaults.
const (
	TrapHitboxScale = 0.8
	TrapDamage      = 1
)

// BuildOptions configures level materialization. The zero value is usable.
type BuildOptions struct {
	Name string
	// Rand drives cosmetic ground variants. Nil seeds from the clock.
	Rand *rand.Rand
	// Tileset resolves sheet regions. Nil yields pixel-less, solid regions.
	Tileset *Tileset
	// Masks caches hit-masks across tiles. Nil allocates one per level.
	Masks *hitmask.Cache
}

// TrapSpawn is a trap placed at the center of its cell.
type TrapSpawn struct {
	Cell   gamemath.Cell
	Code   int
	X, Y   float64
	Size   float64
	Damage int
	Region hitmask.Region
}

// EnemySpawn is a chasing enemy placed at the center of its cell.
type EnemySpawn struct {
	Cell  gamemath.Cell
	Code  int
	Index int
	// BFS selects the grid-pathfinding chaser over the straight-line one.
	BFS    bool
	X, Y   float64
	Region hitmask.Region
}

// Build materializes parsed map data. Cells outside data.Dimensions are
// logged, counted in Level.OutOfBounds and skipped.
func Build(data *MapData, opts BuildOptions) *Level {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	masks := opts.Masks
	if masks == nil {
		masks = hitmask.NewCache()
	}

	dims := data.Dimensions
	lvl := &Level{
		Name:       opts.Name,
		Dimensions: dims,
		Properties: data.Properties,
		Grid:       newGrid(dims),
		Masks:      masks,
		tiles:      make([]*hitmask.Tile, dims.Width*dims.Height),
	}
	if lvl.Properties == nil {
		lvl.Properties = make(Properties)
	}
	plain := parseIndexList(lvl.Properties.Get(PropNonBFSEnemyTypes))
	cells := data.Cells.Cells()

	for layer := 0; layer < data.MaxLayers; layer++ {
		lay := newLayer(layer, dims)
		for _, c := range cells {
			stack := data.Cells[c]
			if len(stack) <= layer {
				continue
			}
			code := stack[layer]
			if !dims.Contains(c) {
				log.Printf("Warning: leveldata: layer %d: cell %s outside %dx%d grid, skipped", layer, c, dims.Width, dims.Height)
				lvl.OutOfBounds++
				continue
			}
			lvl.place(lay, c, code, opts.Tileset, plain, rng)
		}
		lvl.Layers = append(lvl.Layers, lay)
	}
	return lvl
}

func (l *Level) place(lay *Layer, c gamemath.Cell, code int, ts *Tileset, plain map[int]bool, rng *rand.Rand) {
	typ := tiletype.Classify(code)
	cx, cy := c.Center()

	switch typ {
	case tiletype.Key:
		kc := c
		l.keyCell = &kc
		return
	case tiletype.Trap:
		l.traps = append(l.traps, TrapSpawn{
			Cell:   c,
			Code:   code,
			X:      cx,
			Y:      cy,
			Size:   gamemath.CellSize * TrapHitboxScale,
			Damage: TrapDamage,
			Region: ts.Region(code),
		})
		l.Grid.tag(c, typ)
		return
	case tiletype.Enemy:
		idx := tiletype.EnemyIndex(code)
		l.enemies = append(l.enemies, EnemySpawn{
			Cell:   c,
			Code:   code,
			Index:  idx,
			BFS:    !plain[idx+1],
			X:      cx,
			Y:      cy,
			Region: ts.Region(code),
		})
		l.Grid.tag(c, typ)
		return
	}

	visual := code
	if code == tiletype.GroundCode {
		if r := rng.Float64(); r < GroundVariantChance {
			visual = GroundVariantBase + int(r*200)
		}
	}
	lay.set(c, visual)
	l.tiles[c.Row*l.Dimensions.Width+c.Col] = hitmask.NewTile(l.Masks, c, typ, code, visual, ts.Region(visual), hitmask.RuleFor(typ))
	l.Grid.tag(c, typ)

	switch typ {
	case tiletype.Entrance:
		ec := c
		l.entrance = &ec
	case tiletype.Exit:
		l.exits = append(l.exits, c)
	}
}

// parseIndexList reads a comma-separated list of integers into a set.
func parseIndexList(s string) map[int]bool {
	set := make(map[int]bool)
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			log.Printf("Warning: leveldata: %s: invalid index %q", PropNonBFSEnemyTypes, tok)
			continue
		}
		set[n] = true
	}
	return set
}

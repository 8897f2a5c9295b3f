package factory

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/shared/leveldata"
	"github.com/automoto/mazerunner/shared/tiletype"
	"github.com/automoto/mazerunner/tags"
)

// room is a walled 10x8 level with every entity kind in it.
var room = []string{
	"##########",
	"#S.......#",
	"#..T...M.#",
	"#........#",
	"#...K..==#",
	"#.M......#",
	"#.......E#",
	"##########",
}

var roomCodes = map[rune]string{
	'#': "20", '.': "10", 'S': "1", 'E': "2",
	'T': "10,3", 'M': "10,4", 'K': "10,5", '=': "90",
}

func buildRoom(t *testing.T) *leveldata.Level {
	t.Helper()
	var b strings.Builder
	b.WriteString("nonBFSEnemyTypes=1\n")
	for i, line := range room {
		row := len(room) - 1 - i
		for col, ch := range line {
			fmt.Fprintf(&b, "%d,%d=%s\n", col, row, roomCodes[ch])
		}
	}
	return leveldata.Build(leveldata.ParseString(b.String()), leveldata.BuildOptions{
		Name: "room",
		Rand: rand.New(rand.NewSource(7)),
	})
}

func populate(t *testing.T, seed int64) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	levelEntry := CreateLevel(e, buildRoom(t), cfg.LevelEntry{Name: "room", File: "room.properties"}, 0, rand.New(rand.NewSource(seed)))
	return e, PopulateLevel(e, levelEntry)
}

func count(w donburi.World, c interface {
	Each(donburi.World, func(*donburi.Entry))
}) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestPopulateLevel(t *testing.T) {
	e, player := populate(t, 1)

	x, y := components.Object.Get(player).Center()
	assert.Equal(t, 150.0, x)
	assert.Equal(t, 650.0, y)
	assert.True(t, player.HasComponent(tags.Player))

	// 32 border walls plus two walkway tiles.
	assert.Equal(t, 34, count(e.World, components.Wall))
	assert.Equal(t, 1, count(e.World, components.Trap))
	assert.Equal(t, 2, count(e.World, components.Enemy))
	assert.Equal(t, 1, count(e.World, components.Key))
	assert.Equal(t, 1, count(e.World, components.Exit))
	assert.Equal(t, 1, count(e.World, components.Entrance))
	assert.Equal(t, cfg.Portal.Count, count(e.World, components.Portal))
	assert.Equal(t, 1, count(e.World, components.Camera))

	want := 0
	for kind := range cfg.Collectible.Types {
		want += cfg.LevelEntry{}.CollectibleCount(kind)
	}
	assert.Equal(t, want, count(e.World, components.Collectible))
}

func TestPopulateLevelEnemies(t *testing.T) {
	e, _ := populate(t, 1)

	var bfs, plain int
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if enemy.BFS {
			bfs++
			assert.NotNil(t, enemy.Searcher)
			assert.Equal(t, cfg.Enemy.BFSDetectionRadius, enemy.DetectionRadius)
		} else {
			plain++
			assert.Nil(t, enemy.Searcher)
			assert.Equal(t, cfg.Enemy.PlainDetectionRadius, enemy.DetectionRadius)
		}
		assert.Equal(t, cfg.StateWander, components.State.Get(entry).CurrentState)
	})
	// Both enemies use code 4, index 0, which the level marks as plain.
	assert.Zero(t, bfs)
	assert.Equal(t, 2, plain)
}

func TestPickupsUseDistinctEmptyCells(t *testing.T) {
	e, _ := populate(t, 3)
	levelEntry, ok := components.Level.First(e.World)
	require.True(t, ok)
	lvl := components.Level.Get(levelEntry).CurrentLevel

	seen := map[gamemath.Cell]bool{}
	check := func(c gamemath.Cell) {
		typ, err := lvl.TileTypeAt(c.Col, c.Row)
		require.NoError(t, err)
		assert.Equal(t, tiletype.Ground, typ, "cell %s", c)
		assert.False(t, seen[c], "cell %s used twice", c)
		seen[c] = true
	}
	components.Collectible.Each(e.World, func(entry *donburi.Entry) {
		check(components.Collectible.Get(entry).Cell)
	})
	components.Portal.Each(e.World, func(entry *donburi.Entry) {
		check(components.Portal.Get(entry).Cell)
	})
	assert.NotContains(t, seen, gamemath.Cell{Col: 4, Row: 3}, "key cell is not empty")
}

func TestPickupPlacementIsSeeded(t *testing.T) {
	cells := func(seed int64) []gamemath.Cell {
		e, _ := populate(t, seed)
		var out []gamemath.Cell
		components.Collectible.Each(e.World, func(entry *donburi.Entry) {
			out = append(out, components.Collectible.Get(entry).Cell)
		})
		return out
	}
	assert.ElementsMatch(t, cells(5), cells(5))
}

func TestCreateTrapUsesThinMask(t *testing.T) {
	e, _ := populate(t, 1)
	entry, ok := components.Trap.First(e.World)
	require.True(t, ok)
	trap := components.Trap.Get(entry)

	assert.Equal(t, gamemath.Cell{Col: 3, Row: 5}, trap.Cell)
	assert.Equal(t, cfg.Trap.Damage, trap.Damage)
	require.NotNil(t, trap.Mask)

	obj := components.Object.Get(entry)
	assert.Equal(t, gamemath.CellSize*leveldata.TrapHitboxScale, obj.W)
	cx, cy := obj.Center()
	assert.Equal(t, 350.0, cx)
	assert.Equal(t, 550.0, cy)
}

func TestWallTags(t *testing.T) {
	e, _ := populate(t, 1)

	var belts int
	components.Wall.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		assert.True(t, obj.HasTags(tags.ResolvSolid))
		if obj.HasTags(tags.ResolvSpeedBoost) {
			belts++
			assert.Equal(t, tiletype.SpeedBoost, components.Wall.Get(entry).Tile.Type)
		}
	})
	assert.Equal(t, 2, belts)
}

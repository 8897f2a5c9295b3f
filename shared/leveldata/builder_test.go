package leveldata

import (
	"image"
	"image/color"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/shared/hitmask"
	"github.com/automoto/mazerunner/shared/tiletype"
)

func build(t *testing.T, src string) *Level {
	t.Helper()
	return Build(ParseString(src), BuildOptions{Rand: rand.New(rand.NewSource(1))})
}

func TestBuildScenario(t *testing.T) {
	lvl := build(t, "0,0=1\n1,0=10\n2,0=2\n")

	assert.Equal(t, 3, lvl.Width())
	assert.Equal(t, 1, lvl.Height())

	entrance, ok := lvl.Entrance()
	require.True(t, ok)
	assert.Equal(t, gamemath.Cell{Col: 0, Row: 0}, entrance)

	pos, ok := lvl.EntrancePosition()
	require.True(t, ok)
	assert.Equal(t, gamemath.NewPixelPosition(50, 50), pos)

	assert.Equal(t, []gamemath.Cell{{Col: 2, Row: 0}}, lvl.Exits())

	for col, want := range []tiletype.Type{tiletype.Entrance, tiletype.Ground, tiletype.Exit} {
		got, err := lvl.TileTypeAt(col, 0)
		require.NoError(t, err)
		assert.Equal(t, want, got, "col %d", col)
	}
}

func TestBuildOutOfBoundsQueries(t *testing.T) {
	lvl := build(t, "0,0=1\n1,0=2\n")

	_, err := lvl.TileTypeAt(2, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = lvl.TileAt(-1, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Nil(t, lvl.TileAtPoint(-10, 50))
}

func TestBuildSkipsOutOfBoundsCells(t *testing.T) {
	data := ParseString("0,0=1\n1,0=2\n3,0=20\n")
	data.Dimensions = Dimensions{Width: 2, Height: 1}

	lvl := Build(data, BuildOptions{Rand: rand.New(rand.NewSource(1))})

	assert.Equal(t, 1, lvl.OutOfBounds)
	assert.Equal(t, 2, lvl.Width())
	_, ok := lvl.Entrance()
	assert.True(t, ok)
	assert.Len(t, lvl.Exits(), 1)
}

func TestBuildTrapsAndEnemies(t *testing.T) {
	src := "0,0=10,3\n1,0=10,150\n2,0=10,4\n3,0=81\nnonBFSEnemyTypes=2\n"
	lvl := build(t, src)

	// Layer 0 is placed before layer 1, so the bare trap at (3,0) comes first.
	traps := lvl.Traps()
	require.Len(t, traps, 2)
	assert.Equal(t, gamemath.Cell{Col: 3, Row: 0}, traps[0].Cell)
	assert.Equal(t, image.Rect(64, 0, 96, 32), traps[0].Region.Rect)
	assert.Equal(t, gamemath.Cell{Col: 0, Row: 0}, traps[1].Cell)
	assert.Equal(t, 50.0, traps[1].X)
	assert.Equal(t, 50.0, traps[1].Y)
	assert.Equal(t, 80.0, traps[1].Size)
	assert.Equal(t, 1, traps[1].Damage)
	assert.Equal(t, image.Rect(0, 0, 32, 32), traps[1].Region.Rect)

	enemies := lvl.Enemies()
	require.Len(t, enemies, 2)
	assert.Equal(t, 1, enemies[0].Index)
	assert.False(t, enemies[0].BFS, "index 1 is listed as plain")
	assert.Equal(t, 0, enemies[1].Index)
	assert.True(t, enemies[1].BFS)
	assert.Equal(t, image.Rect(0, 48, 16, 64), enemies[0].Region.Rect)

	for col, want := range []tiletype.Type{tiletype.Trap, tiletype.Enemy, tiletype.Enemy, tiletype.Trap} {
		got, err := lvl.TileTypeAt(col, 0)
		require.NoError(t, err)
		assert.Equal(t, want, got, "col %d", col)
	}

	// The ground under a trap is still the cell's terrain tile.
	tile, err := lvl.TileAt(0, 0)
	require.NoError(t, err)
	require.NotNil(t, tile)
	assert.Equal(t, tiletype.Ground, tile.Type)

	// Traps and enemies are not drawn into layers.
	_, ok := lvl.Layers[1].CodeAt(0, 0)
	assert.False(t, ok)
}

func TestTrapTagSurvivesTerrainAbove(t *testing.T) {
	lvl := build(t, "0,0=3,10\n")

	got, err := lvl.TileTypeAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, tiletype.Trap, got)
	assert.False(t, lvl.Grid.Walkable(0, 0))
}

func TestBuildKeyPosition(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want gamemath.Position
		has  bool
	}{
		{"key cell", "0,0=10\n2,1=10,5\n", gamemath.NewPixelPosition(250, 150), true},
		{"property", "0,0=10\nkeyPosition=1.5,2\n", gamemath.NewPixelPosition(200, 250), true},
		{"bad property falls back", "0,0=10\nkeyPosition=nope\n", gamemath.NewPixelPosition(50, 50), true},
		{"default", "0,0=10\n", gamemath.NewPixelPosition(50, 50), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := build(t, tt.src)
			assert.Equal(t, tt.want, lvl.KeyPosition())
			assert.Equal(t, tt.has, lvl.HasKey())
		})
	}
}

func TestKeyCellIsNotTerrain(t *testing.T) {
	lvl := build(t, "0,0=5\n1,0=10\n")

	tile, err := lvl.TileAt(0, 0)
	require.NoError(t, err)
	assert.Nil(t, tile)
	assert.Equal(t, []gamemath.Cell{{Col: 1, Row: 0}}, lvl.EmptyCells())
}

func TestGroundVariantsAreCosmetic(t *testing.T) {
	src := ""
	for col := 0; col < 50; col++ {
		for row := 0; row < 50; row++ {
			src += strconv.Itoa(col) + "," + strconv.Itoa(row) + "=10\n"
		}
	}
	lvl := Build(ParseString(src), BuildOptions{Rand: rand.New(rand.NewSource(7))})

	variants := 0
	lvl.Layers[0].Each(func(c gamemath.Cell, code int) {
		typ, err := lvl.TileTypeAt(c.Col, c.Row)
		require.NoError(t, err)
		require.Equal(t, tiletype.Ground, typ)
		tile, _ := lvl.TileAt(c.Col, c.Row)
		require.Equal(t, tiletype.GroundCode, tile.Code)
		if code != tiletype.GroundCode {
			variants++
			require.GreaterOrEqual(t, code, GroundVariantBase)
			require.LessOrEqual(t, code, GroundVariantBase+3)
			require.Equal(t, code, tile.Visual)
		}
	})
	assert.Greater(t, variants, 0)
	assert.Less(t, variants, 250)
}

func TestBuildIsDeterministicWithSeed(t *testing.T) {
	src := ""
	for col := 0; col < 30; col++ {
		src += strconv.Itoa(col) + ",0=10\n"
	}
	a := Build(ParseString(src), BuildOptions{Rand: rand.New(rand.NewSource(42))})
	b := Build(ParseString(src), BuildOptions{Rand: rand.New(rand.NewSource(42))})
	for col := 0; col < 30; col++ {
		ca, _ := a.Layers[0].CodeAt(col, 0)
		cb, _ := b.Layers[0].CodeAt(col, 0)
		assert.Equal(t, ca, cb)
	}
}

func TestNearestExit(t *testing.T) {
	lvl := build(t, "0,0=2\n5,0=13\n9,9=10\n")

	c, err := lvl.NearestExit(480, 60)
	require.NoError(t, err)
	assert.Equal(t, gamemath.Cell{Col: 5, Row: 0}, c)

	c, err = lvl.NearestExit(10, 10)
	require.NoError(t, err)
	assert.Equal(t, gamemath.Cell{Col: 0, Row: 0}, c)

	_, err = build(t, "0,0=10\n").NearestExit(0, 0)
	assert.ErrorIs(t, err, ErrNoExits)
}

func TestLevelProperties(t *testing.T) {
	lvl := build(t, "angled=true\ncustom=abc\n0,0=10\n1,1=10\n")

	assert.True(t, lvl.CameraAngled())
	assert.Equal(t, "abc", lvl.Property("custom"))
	assert.False(t, lvl.BoolProperty("custom"))
	assert.Equal(t, 200.0, lvl.WorldWidth())
	assert.Equal(t, 200.0, lvl.WorldHeight())
	assert.False(t, build(t, "0,0=10\n").CameraAngled())
}

func TestTilesUseSheetMasks(t *testing.T) {
	// 16-column sheet; code 20 is row 1, col 4. Make that region opaque only.
	img := image.NewNRGBA(image.Rect(0, 0, 256, 256))
	for y := 16; y < 32; y++ {
		for x := 64; x < 80; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}
	cache := hitmask.NewCache()
	lvl := Build(ParseString("0,0=20\n1,0=21\n2,0=20\n"), BuildOptions{
		Rand:    rand.New(rand.NewSource(1)),
		Tileset: &Tileset{TilesID: "tiles", Tiles: img},
		Masks:   cache,
	})

	wall := lvl.TileAtPoint(50, 50)
	require.NotNil(t, wall)
	assert.True(t, wall.IsCollidingPoint(50, 50))

	bare := lvl.TileAtPoint(150, 50)
	require.NotNil(t, bare)
	assert.False(t, bare.IsCollidingPoint(150, 50))

	lvl.TileAtPoint(250, 50).Mask()
	assert.Equal(t, 2, cache.Builds())
}

package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/shared/hitmask"
	"github.com/automoto/mazerunner/shared/leveldata"
	"github.com/automoto/mazerunner/shared/navgrid"
)

func TestGeneratedSheetSizes(t *testing.T) {
	ts := DefaultTileset()
	assert.Equal(t, image.Rect(0, 0, 256, 256), ts.Tiles.Bounds())
	assert.Equal(t, image.Rect(0, 0, 352, 208), ts.Obstacles.Bounds())
}

func TestGeneratedSheetMasks(t *testing.T) {
	ts := DefaultTileset()
	cache := hitmask.NewCache()

	wall := cache.Mask(ts.Region(0), hitmask.Opaque)
	assert.Equal(t, 16*16, wall.Count())

	ground := cache.Mask(ts.Region(10), hitmask.Opaque)
	assert.Equal(t, 16*16, ground.Count())

	// Only the two rails at each edge of a walkway count.
	belt := cache.Mask(ts.Region(90), hitmask.Handrail)
	assert.Equal(t, 4*16, belt.Count())
	assert.True(t, belt.At(8, 0))
	assert.False(t, belt.At(8, 8))

	spikes := cache.Mask(ts.Region(81), hitmask.Thin)
	assert.True(t, spikes.At(16, 16))
	assert.False(t, spikes.At(2, 16), "faint glow is below the thin threshold")
	assert.False(t, spikes.At(0, 0))
}

func encode(t *testing.T, enc func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 32, 16))
	img.SetNRGBA(3, 4, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	var buf bytes.Buffer
	require.NoError(t, enc(&buf, img))
	return buf.Bytes()
}

func TestLoadSheet(t *testing.T) {
	fsys := fstest.MapFS{
		"sheets/tiles.png": {Data: encode(t, func(b *bytes.Buffer, i image.Image) error { return png.Encode(b, i) })},
		"sheets/tiles.bmp": {Data: encode(t, func(b *bytes.Buffer, i image.Image) error { return bmp.Encode(b, i) })},
		"sheets/bad.png":   {Data: []byte("not an image")},
	}

	for _, p := range []string{"sheets/tiles.png", "sheets/tiles.bmp"} {
		t.Run(p, func(t *testing.T) {
			img, err := LoadSheet(fsys, p)
			require.NoError(t, err)
			assert.Equal(t, 32, img.Bounds().Dx())
			_, _, _, a := img.At(3, 4).RGBA()
			assert.Equal(t, uint32(0xffff), a)
		})
	}

	_, err := LoadSheet(fsys, "sheets/bad.png")
	assert.Error(t, err)
	_, err = LoadSheet(fsys, "sheets/missing.png")
	assert.Error(t, err)

	ts, err := LoadTileset(fsys, "sheets/tiles.png", "sheets/tiles.bmp")
	require.NoError(t, err)
	assert.Equal(t, "sheets/tiles.png", ts.TilesID)
	assert.Equal(t, "sheets/tiles.bmp", ts.ObstaclesID)

	_, err = LoadTileset(fsys, "sheets/tiles.png", "sheets/missing.png")
	assert.Error(t, err)
}

func TestEmbeddedLevelsAreClean(t *testing.T) {
	for _, entry := range config.Levels {
		t.Run(entry.Name, func(t *testing.T) {
			data, err := leveldata.ParseFile(Maps(), entry.File)
			require.NoError(t, err)
			assert.Zero(t, data.Skipped)
		})
	}
}

func TestEmbeddedLevelsAreSolvable(t *testing.T) {
	loader := NewLevelLoader(Maps(), DefaultTileset(), rand.New(rand.NewSource(1)))
	for _, entry := range config.Levels {
		t.Run(entry.Name, func(t *testing.T) {
			lvl, err := loader.Load(entry)
			require.NoError(t, err)
			assert.Zero(t, lvl.OutOfBounds)

			start, ok := lvl.Entrance()
			require.True(t, ok, "level needs an entrance")
			require.NotEmpty(t, lvl.Exits())
			require.NotEmpty(t, lvl.EmptyCells())

			nav := navgrid.New(lvl)
			_, ok = nav.FindPath(start, lvl.Exits()[0])
			assert.True(t, ok, "exit unreachable from entrance")

			key := lvl.KeyPosition().Convert(gamemath.Tile).MustCell()
			_, ok = nav.FindPath(start, key)
			assert.True(t, ok, "key unreachable from entrance")
		})
	}
}

func TestLoadUnknownLevel(t *testing.T) {
	loader := NewLevelLoader(Maps(), nil, nil)
	_, err := loader.Load(config.LevelEntry{Name: "nowhere", File: "maps/nowhere.properties"})
	assert.Error(t, err)
	assert.Panics(t, func() {
		loader.MustLoad(config.LevelEntry{Name: "nowhere", File: "maps/nowhere.properties"})
	})
}

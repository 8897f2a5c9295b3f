package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"math/rand"

	"github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/shared/hitmask"
	"github.com/automoto/mazerunner/shared/leveldata"
)

//go:embed all:maps
var mapFS embed.FS

// Maps returns the embedded level files. Catalog paths are relative to it.
func Maps() fs.FS {
	return mapFS
}

// LevelLoader builds catalog levels against one tileset and mask cache, so
// masks decoded for one level are reused by the next.
type LevelLoader struct {
	fsys    fs.FS
	tileset *leveldata.Tileset
	masks   *hitmask.Cache
	rng     *rand.Rand
}

// NewLevelLoader creates a loader reading maps from fsys. A nil rng seeds
// ground variants from the clock.
func NewLevelLoader(fsys fs.FS, tileset *leveldata.Tileset, rng *rand.Rand) *LevelLoader {
	return &LevelLoader{
		fsys:    fsys,
		tileset: tileset,
		masks:   hitmask.NewCache(),
		rng:     rng,
	}
}

// Tileset returns the sheets levels are built against.
func (l *LevelLoader) Tileset() *leveldata.Tileset {
	return l.tileset
}

// Masks returns the shared mask cache.
func (l *LevelLoader) Masks() *hitmask.Cache {
	return l.masks
}

// Load builds the catalog entry.
func (l *LevelLoader) Load(entry config.LevelEntry) (*leveldata.Level, error) {
	lvl, err := leveldata.LoadFile(l.fsys, entry.File, leveldata.BuildOptions{
		Name:    entry.Name,
		Rand:    l.rng,
		Tileset: l.tileset,
		Masks:   l.masks,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load level %q: %w", entry.Name, err)
	}
	return lvl, nil
}

// MustLoad is Load for the game loop, where a broken embedded level is fatal.
func (l *LevelLoader) MustLoad(entry config.LevelEntry) *leveldata.Level {
	lvl, err := l.Load(entry)
	if err != nil {
		panic(err)
	}
	return lvl
}

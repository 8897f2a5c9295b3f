package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/mazerunner/shared/gamemath"
)

// tmxProperties are the map-level Tiled properties carried into a level.
var tmxProperties = []string{PropAngled, PropKeyPosition, PropNonBFSEnemyTypes}

// LoadTMX converts a Tiled map into map data. Tile layers stack in file
// order; each non-empty tile contributes its global id minus one as the tile
// code. Tiled row 0 is the top of the map, so rows are flipped to keep row 0
// at the bottom of the world.
func LoadTMX(fsys fs.FS, tmxPath string) (*MapData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := newMapData()
	for _, layer := range levelMap.Layers {
		if len(layer.Tiles) < levelMap.Width*levelMap.Height {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile == nil || tile.IsNil() || tile.Tileset == nil {
					continue
				}
				gid := int(tile.Tileset.FirstGID) + int(tile.ID)
				data.add(gamemath.Cell{Col: x, Row: levelMap.Height - 1 - y}, gid-1)
			}
		}
	}

	if levelMap.Properties != nil {
		for _, key := range tmxProperties {
			if v := levelMap.Properties.GetString(key); v != "" {
				data.Properties[key] = v
			}
		}
	}
	return data, nil
}

// LoadFile reads a level from fsys, choosing the TMX importer for .tmx files
// and the text parser otherwise, and builds it.
func LoadFile(fsys fs.FS, levelPath string, opts BuildOptions) (*Level, error) {
	var (
		data *MapData
		err  error
	)
	if strings.EqualFold(path.Ext(levelPath), ".tmx") {
		data, err = LoadTMX(fsys, levelPath)
	} else {
		data, err = ParseFile(fsys, levelPath)
	}
	if err != nil {
		return nil, err
	}
	if opts.Name == "" {
		opts.Name = strings.TrimSuffix(path.Base(levelPath), path.Ext(levelPath))
	}
	return Build(data, opts), nil
}

// ListLevels returns the level files (.properties and .tmx) in dir, sorted.
func ListLevels(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read levels dir %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(path.Ext(e.Name())) {
		case ".properties", ".tmx":
			names = append(names, path.Join(dir, e.Name()))
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no level files found in %s", dir)
	}
	sort.Strings(names)
	return names, nil
}

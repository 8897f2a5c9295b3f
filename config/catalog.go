package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var levelsYAML []byte

// LevelEntry describes one playable level in order of progression.
type LevelEntry struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
	// Portals and Coins override the global counts when non-zero.
	Portals int `yaml:"portals"`
	Coins   int `yaml:"coins"`
}

type catalogFile struct {
	Levels []LevelEntry `yaml:"levels"`
}

// Levels is the embedded level catalog, decoded in init.
var Levels []LevelEntry

func init() {
	levels, err := LoadCatalog(levelsYAML)
	if err != nil {
		panic(err)
	}
	Levels = levels
}

// LoadCatalog decodes a level catalog document.
func LoadCatalog(data []byte) ([]LevelEntry, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode level catalog: %w", err)
	}
	if len(f.Levels) == 0 {
		return nil, fmt.Errorf("level catalog is empty")
	}
	for i, l := range f.Levels {
		if l.File == "" {
			return nil, fmt.Errorf("level %d (%q) has no file", i, l.Name)
		}
	}
	return f.Levels, nil
}

// PortalCount returns the number of portals to place for the level.
func (l LevelEntry) PortalCount() int {
	if l.Portals > 0 {
		return l.Portals
	}
	return Portal.Count
}

// CollectibleCount returns how many pickups of kind k to place for the level.
func (l LevelEntry) CollectibleCount(k CollectibleKind) int {
	if k == Coin && l.Coins > 0 {
		return l.Coins
	}
	return Collectible.Types[k].Count
}

package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/archetypes"
	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/tags"
)

// CreateKey places the level key centered on (x, y).
func CreateKey(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	key := archetypes.Key.Spawn(ecs)

	obj := newCenteredObject(x, y, cfg.Key.Size, cfg.Key.Size, tags.ResolvKey)
	components.Key.SetValue(key, components.KeyData{SpawnX: x, SpawnY: y})
	addToSpace(ecs, key, obj)

	return key
}

// CreateCollectible places a pickup at the center of cell.
func CreateCollectible(ecs *ecs.ECS, kind cfg.CollectibleKind, cell gamemath.Cell) *donburi.Entry {
	c := archetypes.Collectible.Spawn(ecs)

	x, y := cell.Center()
	obj := newCenteredObject(x, y, cfg.Collectible.Size, cfg.Collectible.Size, tags.ResolvCollectible)
	components.Collectible.SetValue(c, components.CollectibleData{Kind: kind, Cell: cell})
	addToSpace(ecs, c, obj)

	return c
}

package factory

import (
	"log"
	"math/rand"
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/archetypes"
	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/shared/leveldata"
	"github.com/automoto/mazerunner/shared/navgrid"
)

// CreateLevel stores a built level and its navigation grid on a new level
// entity. A nil rng seeds from the clock.
func CreateLevel(ecs *ecs.ECS, lvl *leveldata.Level, entry cfg.LevelEntry, levelIndex int, rng *rand.Rand) *donburi.Entry {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		CurrentLevel: lvl,
		Entry:        entry,
		LevelIndex:   levelIndex,
		Nav:          navgrid.New(lvl),
		Rand:         rng,
	})
	return level
}

// PopulateLevel creates the collision space and every entity of the level
// held by levelEntry, and returns the player.
func PopulateLevel(ecs *ecs.ECS, levelEntry *donburi.Entry) *donburi.Entry {
	levelData := components.Level.Get(levelEntry)
	lvl := levelData.CurrentLevel

	CreateSpace(ecs,
		int(lvl.WorldWidth()),
		int(lvl.WorldHeight()),
		SpaceCellSize, SpaceCellSize,
	)

	// Solid terrain: walls block everywhere, walkways at their rails.
	for row := 0; row < lvl.Height(); row++ {
		for col := 0; col < lvl.Width(); col++ {
			tile, err := lvl.TileAt(col, row)
			if err != nil || tile == nil {
				continue
			}
			if tile.Type.Solid() {
				CreateWall(ecs, tile)
			}
		}
	}

	for _, t := range lvl.Traps() {
		CreateTrap(ecs, t, lvl.Masks)
	}
	for _, e := range lvl.Enemies() {
		CreateEnemy(ecs, e, levelData.Nav)
	}

	if lvl.HasKey() {
		p := lvl.KeyPosition()
		CreateKey(ecs, p.X, p.Y)
	}

	for _, c := range lvl.Exits() {
		tile, _ := lvl.TileAt(c.Col, c.Row)
		CreateExit(ecs, c, tile)
	}

	spawn, ok := lvl.Entrance()
	if ok {
		CreateEntrance(ecs, spawn)
	} else {
		log.Printf("Warning: level %s has no entrance, spawning at %s", lvl.Name, spawn)
	}

	placePickups(ecs, levelData)

	x, y := spawn.Center()
	CreateCamera(ecs, x, y)
	return CreatePlayer(ecs, x, y)
}

// placePickups scatters portals and collectibles over distinct empty cells.
func placePickups(ecs *ecs.ECS, levelData *components.LevelData) {
	free := levelData.CurrentLevel.EmptyCells()
	levelData.Rand.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	next := func() (gamemath.Cell, bool) {
		if len(free) == 0 {
			return gamemath.Cell{}, false
		}
		c := free[0]
		free = free[1:]
		return c, true
	}

	portals := levelData.Entry.PortalCount()
	for i := 0; i < portals; i++ {
		c, ok := next()
		if !ok {
			log.Printf("Warning: level %s: no empty cell for portal %d", levelData.CurrentLevel.Name, i)
			return
		}
		offset := cfg.Portal.Cycle * float64(i) / float64(portals)
		CreatePortal(ecs, c, offset)
	}

	for _, kind := range collectibleOrder {
		for i := 0; i < levelData.Entry.CollectibleCount(kind); i++ {
			c, ok := next()
			if !ok {
				log.Printf("Warning: level %s: no empty cell for %s", levelData.CurrentLevel.Name, kind)
				return
			}
			CreateCollectible(ecs, kind, c)
		}
	}
}

// collectibleOrder is the placement order of pickup kinds.
var collectibleOrder = []cfg.CollectibleKind{
	cfg.Coin,
	cfg.Heart,
	cfg.Pretzel,
	cfg.Gesundheitskarte,
	cfg.Stamina,
}

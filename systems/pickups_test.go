package systems

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/systems/factory"
)

func TestTrapDamageRespectsHurtTimer(t *testing.T) {
	e, player := newTestGame(t, nil,
		"#######",
		"#S.T.E#",
		"#######",
	)
	lives := components.Lives.Get(player)

	UpdateTraps(e)
	assert.Equal(t, cfg.Player.StartingLives, lives.Lives, "no trap at the entrance")

	moveTo(player, 350, 150)
	UpdateTraps(e)
	assert.Equal(t, cfg.Player.StartingLives-1, lives.Lives)
	assert.Equal(t, cfg.Hurt, func() cfg.StateID {
		UpdatePlayer(e)
		return components.State.Get(player).CurrentState
	}())

	UpdateTraps(e)
	assert.Equal(t, cfg.Player.StartingLives-1, lives.Lives, "still hurt")

	components.Player.Get(player).HurtTimer = 0
	UpdateTraps(e)
	assert.Equal(t, cfg.Player.StartingLives-2, lives.Lives)
}

func TestTrapEdgeDoesNotTouchOutsideHitbox(t *testing.T) {
	e, player := newTestGame(t, nil,
		"#######",
		"#S.T.E#",
		"#######",
	)

	// Trap hitbox spans 310..390; the player's right edge stops just short.
	moveTo(player, 310-cfg.Player.HitboxWidth/2-1, 150)
	UpdateTraps(e)
	assert.Equal(t, cfg.Player.StartingLives, components.Lives.Get(player).Lives)
}

func TestExitNeedsKey(t *testing.T) {
	e, player := newTestGame(t, nil,
		"#######",
		"#S.K.E#",
		"#######",
	)

	moveTo(player, 550, 150)
	UpdateExit(e)
	assert.False(t, IsLevelComplete(e), "locked without the key")

	kx, ky := centerOf(mustFirst(t, e.World, components.Key))
	moveTo(player, kx, ky)
	UpdateKey(e)
	require.True(t, components.Player.Get(player).HasKey)

	moveTo(player, 550, 150)
	UpdateExit(e)
	complete := GetOrCreateLevelComplete(e)
	assert.True(t, complete.IsComplete)
	assert.Equal(t, "A", complete.Grade)
	assert.Zero(t, complete.CoinsMissed)

	exit := components.Exit.Get(mustFirst(t, e.World, components.Exit))
	assert.True(t, exit.Activated)
}

func TestExitWithoutKeyInLevel(t *testing.T) {
	e, player := newTestGame(t, nil, corridor...)

	moveTo(player, 550, 150)
	UpdateExit(e)
	assert.True(t, IsLevelComplete(e))
}

func TestExitGradesMissedCoinsAndSavesProgress(t *testing.T) {
	e, player := newTestGame(t, nil, corridor...)
	store := newMemStore()
	SetProgressStore(store)

	factory.CreateCollectible(e, cfg.Coin, gamemath.Cell{Col: 2, Row: 1})
	factory.CreateCollectible(e, cfg.Coin, gamemath.Cell{Col: 3, Row: 1})
	factory.CreateCollectible(e, cfg.Coin, gamemath.Cell{Col: 4, Row: 1})

	moveTo(player, 250, 150)
	UpdateCollectibles(e)
	assert.Equal(t, 1, components.Player.Get(player).Coins)

	levelData, ok := currentLevel(e)
	require.True(t, ok)
	levelData.Elapsed = 12.5

	// The exit cell is reached by the center only.
	moveTo(player, 510, 150)
	UpdateExit(e)
	require.True(t, IsLevelComplete(e))

	complete := GetOrCreateLevelComplete(e)
	assert.Equal(t, 2, complete.CoinsMissed)
	assert.Equal(t, cfg.Grade(2), complete.Grade)
	assert.Equal(t, 12.5, complete.Time)

	var saved SavedProgress
	require.NoError(t, json.Unmarshal(store.items[progressKey], &saved))
	assert.Equal(t, 1, saved.UnlockedLevel)
	assert.Equal(t, map[int]string{0: cfg.Grade(2)}, saved.BestGrades)
}

func TestExitOutsideCatalogSavesNothing(t *testing.T) {
	e, player := newTestGame(t, nil, corridor...)
	store := newMemStore()
	SetProgressStore(store)

	levelData, ok := currentLevel(e)
	require.True(t, ok)
	levelData.LevelIndex = -1

	moveTo(player, 550, 150)
	UpdateExit(e)
	require.True(t, IsLevelComplete(e))
	assert.Empty(t, store.items)
}

func TestCollectibles(t *testing.T) {
	tests := []struct {
		name  string
		kind  cfg.CollectibleKind
		check func(t *testing.T, player *donburi.Entry)
	}{
		{"heart", cfg.Heart, func(t *testing.T, player *donburi.Entry) {
			assert.Equal(t, cfg.Player.StartingLives+1, components.Lives.Get(player).Lives)
		}},
		{"pretzel", cfg.Pretzel, func(t *testing.T, player *donburi.Entry) {
			assert.Equal(t, cfg.Player.StartingLives+1.25, components.Lives.Get(player).Lives)
		}},
		{"gesundheitskarte", cfg.Gesundheitskarte, func(t *testing.T, player *donburi.Entry) {
			assert.Equal(t, cfg.Player.StartingLives+1.5, components.Lives.Get(player).Lives)
		}},
		{"coin", cfg.Coin, func(t *testing.T, player *donburi.Entry) {
			assert.Equal(t, 1, components.Player.Get(player).Coins)
		}},
		{"stamina", cfg.Stamina, func(t *testing.T, player *donburi.Entry) {
			p := components.Player.Get(player)
			assert.Equal(t, 2.0, p.Stamina)
			assert.Equal(t, 5.0, p.StaminaTimer)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, player := newTestGame(t, nil, corridor...)
			factory.CreateCollectible(e, tt.kind, gamemath.Cell{Col: 2, Row: 1})

			UpdateCollectibles(e)
			_, ok := components.Collectible.First(e.World)
			require.True(t, ok, "out of reach")

			moveTo(player, 250, 150)
			UpdateCollectibles(e)
			tt.check(t, player)

			_, ok = components.Collectible.First(e.World)
			assert.False(t, ok, "collected pickups leave the world")
		})
	}
}

func TestLivesCapAtMaximum(t *testing.T) {
	e, player := newTestGame(t, nil, corridor...)
	components.Lives.Get(player).Lives = cfg.Player.MaxLives - 0.5
	factory.CreateCollectible(e, cfg.Heart, gamemath.Cell{Col: 1, Row: 1})

	UpdateCollectibles(e)
	assert.Equal(t, cfg.Player.MaxLives, components.Lives.Get(player).Lives)
}

func TestPortalOpensAndTeleports(t *testing.T) {
	e, player := newTestGame(t, nil, corridor...)
	portal := factory.CreatePortal(e, gamemath.Cell{Col: 3, Row: 1}, 0)
	data := components.Portal.Get(portal)
	levelData, _ := currentLevel(e)

	moveTo(player, 350, 150)
	levelData.Elapsed = cfg.Portal.ActiveTime + 1
	UpdatePortals(e)
	assert.False(t, data.Active)
	assert.Equal(t, cfg.PortalClosed, components.State.Get(portal).CurrentState)
	x, _ := centerOf(player)
	assert.Equal(t, 350.0, x, "closed portals do nothing")

	levelData.Elapsed = cfg.Portal.Cycle + 1
	UpdatePortals(e)
	assert.True(t, data.Active)
	assert.Equal(t, cfg.PortalOpen, components.State.Get(portal).CurrentState)
	assert.Equal(t, 1, data.Uses)
	x, y := centerOf(player)
	assert.Equal(t, 150.0, x)
	assert.Equal(t, 150.0, y)
}

func TestPortalOffsetsStagger(t *testing.T) {
	e, _ := newTestGame(t, nil, corridor...)
	a := components.Portal.Get(factory.CreatePortal(e, gamemath.Cell{Col: 2, Row: 1}, 0))
	b := components.Portal.Get(factory.CreatePortal(e, gamemath.Cell{Col: 4, Row: 1}, cfg.Portal.Cycle/2))
	levelData, _ := currentLevel(e)

	levelData.Elapsed = 1
	UpdatePortals(e)
	assert.True(t, a.Active)
	assert.False(t, b.Active)

	levelData.Elapsed = cfg.Portal.Cycle/2 + 1
	UpdatePortals(e)
	assert.False(t, a.Active)
	assert.True(t, b.Active)
}

func mustFirst(t *testing.T, w donburi.World, c interface {
	First(donburi.World) (*donburi.Entry, bool)
}) *donburi.Entry {
	t.Helper()
	entry, ok := c.First(w)
	require.True(t, ok)
	return entry
}

func TestOpenPortalPulses(t *testing.T) {
	e, _ := newTestGame(t, nil, corridor...)
	portal := factory.CreatePortal(e, gamemath.Cell{Col: 3, Row: 1}, 0)
	data := components.Portal.Get(portal)
	levelData, _ := currentLevel(e)

	levelData.Elapsed = 1
	tick(e, 10, UpdatePortals)
	assert.Greater(t, data.Scale, 1.0)
	assert.LessOrEqual(t, data.Scale, 1.15+1e-6)

	levelData.Elapsed = cfg.Portal.ActiveTime + 1
	UpdatePortals(e)
	assert.Equal(t, 1.0, data.Scale)
}

package systems

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/shared/leveldata"
	"github.com/automoto/mazerunner/systems/factory"
)

// layoutCodes maps layout characters to the tile codes stacked on a cell.
var layoutCodes = map[rune]string{
	'#': "20",
	'.': "10",
	'S': "1",
	'E': "2",
	'T': "10,3",
	'M': "10,4",
	'K': "10,5",
	'=': "90",
}

// layout turns rows drawn top to bottom into level text. Row 0 of the level
// is the last row given.
func layout(props []string, rows ...string) string {
	var b strings.Builder
	for _, p := range props {
		b.WriteString(p + "\n")
	}
	for i, line := range rows {
		row := len(rows) - 1 - i
		for col, ch := range line {
			fmt.Fprintf(&b, "%d,%d=%s\n", col, row, layoutCodes[ch])
		}
	}
	return b.String()
}

type memStore struct {
	items map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	m.items[key] = data
	return nil
}

// newTestGame builds a level with no random pickups, populates it and
// returns the world and the player.
func newTestGame(t *testing.T, props []string, rows ...string) (*ecs.ECS, *donburi.Entry) {
	t.Helper()

	portals, types := cfg.Portal.Count, cfg.Collectible.Types
	cfg.Portal.Count = 0
	cfg.Collectible.Types = map[cfg.CollectibleKind]cfg.CollectibleTypeConfig{}
	for k, v := range types {
		v.Count = 0
		cfg.Collectible.Types[k] = v
	}
	store := newMemStore()
	SetProgressStore(store)
	t.Cleanup(func() {
		cfg.Portal.Count, cfg.Collectible.Types = portals, types
		SetProgressStore(nil)
	})

	data := leveldata.ParseString(layout(props, rows...))
	require.Zero(t, data.Skipped)
	lvl := leveldata.Build(data, leveldata.BuildOptions{Name: "test", Rand: rand.New(rand.NewSource(1))})

	e := ecs.NewECS(donburi.NewWorld())
	levelEntry := factory.CreateLevel(e, lvl, cfg.LevelEntry{Name: "test", File: "test.properties"}, 0, rand.New(rand.NewSource(1)))
	player := factory.PopulateLevel(e, levelEntry)
	return e, player
}

// press runs one input frame with the given actions held.
func press(e *ecs.ECS, actions ...cfg.ActionID) {
	NewUpdateInput(func(in *components.InputData) {
		for _, a := range actions {
			in.Current[a] = true
		}
	})(e)
}

func tick(e *ecs.ECS, n int, systems ...ecs.System) {
	for i := 0; i < n; i++ {
		for _, s := range systems {
			s(e)
		}
	}
}

func centerOf(entry *donburi.Entry) (float64, float64) {
	return components.Object.Get(entry).Center()
}

func moveTo(entry *donburi.Entry, x, y float64) {
	components.Object.Get(entry).SetCenter(x, y)
}

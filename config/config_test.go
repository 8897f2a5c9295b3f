package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalog(t *testing.T) {
	require.NotEmpty(t, Levels)
	for _, l := range Levels {
		assert.NotEmpty(t, l.Name)
		assert.NotEmpty(t, l.File)
	}
}

func TestLoadCatalog(t *testing.T) {
	levels, err := LoadCatalog([]byte(`
levels:
  - name: one
    file: maps/a.properties
  - name: two
    file: maps/b.tmx
    portals: 3
    coins: 9
`))
	require.NoError(t, err)
	require.Len(t, levels, 2)

	assert.Equal(t, Portal.Count, levels[0].PortalCount())
	assert.Equal(t, Collectible.Types[Coin].Count, levels[0].CollectibleCount(Coin))
	assert.Equal(t, 3, levels[1].PortalCount())
	assert.Equal(t, 9, levels[1].CollectibleCount(Coin))
	assert.Equal(t, Collectible.Types[Heart].Count, levels[1].CollectibleCount(Heart))
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "levels: [\n"},
		{"empty", "levels: []\n"},
		{"missing file", "levels:\n  - name: x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		missed int
		want   string
	}{
		{-1, "A"},
		{0, "A"},
		{1, "B"},
		{3, "D"},
		{4, "F"},
		{10, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Grade(tt.missed), "missed=%d", tt.missed)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "chase", StateChase.String())
	assert.Equal(t, "unknown", StateNone.String())
}

func TestStep(t *testing.T) {
	c := &Config{TPS: 50}
	assert.InDelta(t, 0.02, c.Step(), 1e-12)
}

package tiletype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangesAreDisjoint(t *testing.T) {
	for code := 0; code <= 255; code++ {
		var owners []Type
		for _, typ := range All() {
			if typ.Contains(code) {
				owners = append(owners, typ)
			}
		}
		require.LessOrEqual(t, len(owners), 1, "code %d claimed by %v", code, owners)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		code int
		want Type
	}{
		{0, Wall},
		{1, Entrance},
		{2, Exit},
		{3, Trap},
		{4, Enemy},
		{5, Key},
		{6, Ground},
		{10, Ground},
		{13, Exit},
		{20, Wall},
		{79, Wall},
		{80, Trap},
		{89, Trap},
		{90, SpeedBoost},
		{99, SpeedBoost},
		{100, Wall},
		{149, Wall},
		{150, Enemy},
		{159, Enemy},
		{160, Ground},
		{219, Ground},
		{220, Extra},
		{240, Extra},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.code), "code %d", tt.code)
	}
}

func TestLookupReportsUnclaimedCodes(t *testing.T) {
	_, ok := Lookup(6)
	assert.False(t, ok)

	typ, ok := Lookup(95)
	assert.True(t, ok)
	assert.Equal(t, SpeedBoost, typ)
}

func TestWalkable(t *testing.T) {
	for _, typ := range All() {
		want := typ != Wall && typ != Trap
		assert.Equal(t, want, typ.Walkable(), typ.String())
	}
}

func TestVariantIndices(t *testing.T) {
	assert.Equal(t, 0, EnemyIndex(4))
	assert.Equal(t, 1, EnemyIndex(150))
	assert.Equal(t, 3, EnemyIndex(152))

	assert.Equal(t, 0, TrapIndex(3))
	assert.Equal(t, 1, TrapIndex(80))
	assert.Equal(t, 5, TrapIndex(84))
}

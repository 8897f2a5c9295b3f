package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTileToPixelUsesCellCenter(t *testing.T) {
	p := NewTilePosition(2, 3).Convert(Pixel)

	assert.Equal(t, Pixel, p.Unit)
	assert.Equal(t, 250.0, p.X)
	assert.Equal(t, 350.0, p.Y)
}

func TestConvertPixelToTileDoesNotRound(t *testing.T) {
	p := NewPixelPosition(250, 399).Convert(Tile)

	assert.Equal(t, Tile, p.Unit)
	assert.InDelta(t, 2.5, p.X, 1e-9)
	assert.InDelta(t, 3.99, p.Y, 1e-9)
	assert.Equal(t, 3, p.MustTileY())
}

func TestConvertSameUnitReturnsEqualCopy(t *testing.T) {
	p := NewPixelPosition(12.5, 7)
	assert.Equal(t, p, p.Convert(Pixel))

	q := NewTilePosition(1, 2)
	assert.Equal(t, q, q.Convert(Tile))
}

func TestTileRoundTrip(t *testing.T) {
	for c := -20; c <= 20; c++ {
		for r := -20; r <= 20; r++ {
			cell := Cell{Col: c, Row: r}
			got := cell.Position().Convert(Pixel).Convert(Tile).MustCell()
			require.Equal(t, cell, got, "round trip of %v", cell)
		}
	}
}

func TestTileAccessorsRejectPixelUnit(t *testing.T) {
	p := NewPixelPosition(150, 150)

	_, err := p.TileX()
	assert.ErrorIs(t, err, ErrPixelUnit)
	_, err = p.TileY()
	assert.ErrorIs(t, err, ErrPixelUnit)
	_, err = p.Cell()
	assert.ErrorIs(t, err, ErrPixelUnit)

	assert.Panics(t, func() { p.MustTileX() })
	assert.Panics(t, func() { p.MustCell() })
}

func TestPixelAccessorsRejectTileUnit(t *testing.T) {
	p := NewTilePosition(1, 1)

	_, err := p.PixelX()
	assert.ErrorIs(t, err, ErrTileUnit)
	_, err = p.PixelY()
	assert.ErrorIs(t, err, ErrTileUnit)

	x, err := p.Convert(Pixel).PixelX()
	require.NoError(t, err)
	assert.Equal(t, 150.0, x)
}

func TestCellOf(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want Cell
	}{
		{"origin", 0, 0, Cell{0, 0}},
		{"inside first cell", 99.9, 0.1, Cell{0, 0}},
		{"boundary belongs to next cell", 100, 200, Cell{1, 2}},
		{"negative", -0.5, -150, Cell{-1, -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CellOf(tt.x, tt.y))
		})
	}
}

func TestDistanceConvertsUnits(t *testing.T) {
	a := NewTilePosition(0, 0)
	b := NewPixelPosition(50+300, 50+400)
	assert.InDelta(t, 500, a.Distance(b), 1e-9)
}

func TestSteerVelocity(t *testing.T) {
	vx, vy := SteerVelocity(0, 0, 10, 0, 180)
	assert.InDelta(t, math.Tanh(1)*180, vx, 1e-9)
	assert.Equal(t, 0.0, vy)

	vx, vy = SteerVelocity(5, 5, 5, 5, 180)
	assert.Equal(t, 0.0, vx)
	assert.Equal(t, 0.0, vy)
}

func TestNormalizeInput(t *testing.T) {
	x, y := NormalizeInput(1, 1)
	assert.InDelta(t, 1, math.Hypot(x, y), 1e-9)

	x, y = NormalizeInput(1, 0)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 0.0, y)
}

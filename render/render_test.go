package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/mazerunner/shared/collision"
	"github.com/automoto/mazerunner/shared/hitmask"
)

func TestViewFlipsWorldY(t *testing.T) {
	v := view{camX: 500, camY: 300, zoom: 1, squash: 1, w: 1280, h: 720}

	x, y := v.toScreen(500, 300)
	assert.Equal(t, 640.0, x)
	assert.Equal(t, 360.0, y)

	// Higher world y is further up the screen.
	_, above := v.toScreen(500, 400)
	assert.Equal(t, 260.0, above)

	sx, sy, w, h := v.screenRect(collision.Rect{X: 500, Y: 300, W: 40, H: 56})
	assert.Equal(t, 640.0, sx)
	assert.Equal(t, 304.0, sy, "top edge of the rect")
	assert.Equal(t, 40.0, w)
	assert.Equal(t, 56.0, h)
}

func TestViewZoomAndSquash(t *testing.T) {
	v := view{zoom: 2, squash: angledSquash, w: 100, h: 100}

	_, _, w, h := v.screenRect(collision.Rect{W: 10, H: 10})
	assert.Equal(t, 20.0, w)
	assert.InDelta(t, 16.0, h, 1e-9)
}

func TestViewVisible(t *testing.T) {
	v := view{zoom: 1, squash: 1, w: 200, h: 200}

	assert.True(t, v.visible(collision.Rect{X: 0, Y: 0, W: 10, H: 10}))
	assert.True(t, v.visible(collision.Rect{X: 120, Y: 0, W: 10, H: 10}), "inside the padding")
	assert.False(t, v.visible(collision.Rect{X: 1000, Y: 0, W: 10, H: 10}))
	assert.False(t, v.visible(collision.Rect{X: 0, Y: -1000, W: 10, H: 10}))
}

func TestRegionImageWithoutSheet(t *testing.T) {
	region := hitmask.Region{ImageID: "missing", Rect: image.Rect(0, 0, 16, 16)}
	assert.Nil(t, regionImage(region))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "0:05.50", formatTime(5.5))
	assert.Equal(t, "2:03.25", formatTime(123.25))
}

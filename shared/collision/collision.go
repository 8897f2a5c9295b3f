// Package collision provides the rectangle and pixel-mask queries used by
// entity update logic.
package collision

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/automoto/mazerunner/shared/hitmask"
)

// Rect is an axis-aligned box with its origin at the lower-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectAt returns a w×h rect centered on (cx, cy).
func RectAt(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// RectOf returns the bounds of a resolv object.
func RectOf(obj *resolv.Object) Rect {
	return Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether the interiors of r and o intersect.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Contains reports whether the point lies in r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Intersection returns the overlapping region of r and o.
func (r Rect) Intersection(o Rect) (Rect, bool) {
	if !r.Overlaps(o) {
		return Rect{}, false
	}
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.X+r.W, o.X+o.W)
	y1 := math.Min(r.Y+r.H, o.Y+o.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Sprite is a hitbox with a mask stretched over it.
type Sprite struct {
	Box  Rect
	Mask *hitmask.Mask
}

// PixelPerfectTouch reports whether b touches a solid pixel of a. The coarse
// overlap test runs first; then the intersection is sampled in one world
// pixel steps from its own corner, each sample mapped into a's mask space
// (row flipped), until a solid bit is found.
func PixelPerfectTouch(a Sprite, b Rect) bool {
	ix, ok := a.Box.Intersection(b)
	if !ok || a.Mask == nil || a.Mask.Width() == 0 {
		return false
	}
	scale := a.Box.W / float64(a.Mask.Width())
	h := a.Mask.Height()
	for x := ix.X; x < ix.X+ix.W; x++ {
		localX := int(math.Floor((x - a.Box.X) / scale))
		for y := ix.Y; y < ix.Y+ix.H; y++ {
			localY := h - int(math.Floor((y-a.Box.Y)/scale)) - 1
			if a.Mask.At(localX, localY) {
				return true
			}
		}
	}
	return false
}

// PointInOpaquePixel reports whether the world point hits a solid pixel of
// the tile.
func PointInOpaquePixel(t *hitmask.Tile, worldX, worldY float64) bool {
	if t == nil {
		return false
	}
	return t.IsCollidingPoint(worldX, worldY)
}

// EdgeSamples returns points spaced along the four edges of r, n intervals
// per edge, corners included.
func EdgeSamples(r Rect, n int) [][2]float64 {
	if n < 1 {
		n = 1
	}
	pts := make([][2]float64, 0, 4*(n+1))
	for i := 0; i <= n; i++ {
		fx := r.X + r.W*float64(i)/float64(n)
		pts = append(pts, [2]float64{fx, r.Y}, [2]float64{fx, r.Y + r.H})
	}
	for i := 1; i < n; i++ {
		fy := r.Y + r.H*float64(i)/float64(n)
		pts = append(pts, [2]float64{r.X, fy}, [2]float64{r.X + r.W, fy})
	}
	return pts
}

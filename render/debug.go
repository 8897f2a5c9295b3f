package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/shared/collision"
	"github.com/automoto/mazerunner/tags"
)

var (
	hitboxColor = color.RGBA{R: 0, G: 255, B: 0, A: 200}
	pathColor   = color.RGBA{R: 255, G: 80, B: 200, A: 220}
	radiusColor = color.RGBA{R: 255, G: 255, B: 0, A: 60}
)

// DrawDebug outlines every object's hitbox and the enemies' last chase
// paths when the debug overlays are on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes && !cfg.Debug.ShowPaths {
		return
	}
	v, ok := viewOf(e, screen)
	if !ok {
		return
	}

	if cfg.Debug.ShowHitboxes {
		components.Object.Each(e.World, func(entry *donburi.Entry) {
			if entry.HasComponent(tags.Wall) {
				return
			}
			r := components.Object.Get(entry).Rect()
			if !v.visible(r) {
				return
			}
			strokeWorldRect(screen, v, r, hitboxColor)
		})
	}

	if cfg.Debug.ShowPaths {
		components.Enemy.Each(e.World, func(entry *donburi.Entry) {
			enemy := components.Enemy.Get(entry)
			cx, cy := components.Object.Get(entry).Center()
			sx, sy := v.toScreen(cx, cy)
			vector.StrokeCircle(screen, float32(sx), float32(sy), float32(enemy.DetectionRadius*v.zoom), 1, radiusColor, true)
			if !enemy.Chasing {
				return
			}
			for i := 1; i < len(enemy.Path); i++ {
				ax, ay := enemy.Path[i-1].Center()
				bx, by := enemy.Path[i].Center()
				x0, y0 := v.toScreen(ax, ay)
				x1, y1 := v.toScreen(bx, by)
				vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, pathColor, true)
			}
		})
	}
}

func strokeWorldRect(screen *ebiten.Image, v view, r collision.Rect, clr color.Color) {
	x, y, w, h := v.screenRect(r)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, clr, false)
}

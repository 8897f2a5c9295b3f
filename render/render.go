// Package render draws a maze scene's world and overlays. World y grows
// upward; the screen's grows downward, so every world rect is flipped about
// the camera on its way to the screen.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/shared/collision"
	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/shared/hitmask"
	"github.com/automoto/mazerunner/shared/leveldata"
	"github.com/automoto/mazerunner/tags"
)

const (
	// cullPadding keeps sprites from popping at the screen edges.
	cullPadding = 64.0
	// angledSquash is the vertical scale of levels drawn with a tilted camera.
	angledSquash = 0.8
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	tileset *leveldata.Tileset
	sheets  = map[string]*ebiten.Image{}
	regions = map[regionKey]*ebiten.Image{}
)

type regionKey struct {
	imageID string
	rect    image.Rectangle
}

// Init uploads the tileset's sheets. Calling it again with the same tileset
// keeps the uploaded images.
func Init(ts *leveldata.Tileset) {
	if ts == tileset && ts != nil {
		return
	}
	tileset = ts
	sheets = map[string]*ebiten.Image{}
	regions = map[regionKey]*ebiten.Image{}
	if ts == nil {
		return
	}
	if ts.Tiles != nil {
		sheets[ts.TilesID] = ebiten.NewImageFromImage(ts.Tiles)
	}
	if ts.Obstacles != nil {
		sheets[ts.ObstaclesID] = ebiten.NewImageFromImage(ts.Obstacles)
	}
}

// regionImage returns the sub-image for a sheet region, or nil when the
// region's sheet was never uploaded.
func regionImage(r hitmask.Region) *ebiten.Image {
	k := regionKey{imageID: r.ImageID, rect: r.Rect}
	if img, ok := regions[k]; ok {
		return img
	}
	sheet := sheets[r.ImageID]
	if sheet == nil || r.Rect.Empty() {
		return nil
	}
	img := sheet.SubImage(r.Rect).(*ebiten.Image)
	regions[k] = img
	return img
}

// view maps world coordinates to the screen around the camera.
type view struct {
	camX, camY float64
	zoom       float64
	squash     float64
	w, h       float64
}

func viewOf(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	v := view{
		camX:   camera.Position.X,
		camY:   camera.Position.Y,
		zoom:   camera.Zoom,
		squash: 1,
		w:      float64(screen.Bounds().Dx()),
		h:      float64(screen.Bounds().Dy()),
	}
	if v.zoom <= 0 {
		v.zoom = 1
	}
	if lvl := levelOf(e); lvl != nil && lvl.CameraAngled() {
		v.squash = angledSquash
	}
	return v, true
}

func (v view) toScreen(x, y float64) (float64, float64) {
	return v.w/2 + (x-v.camX)*v.zoom, v.h/2 - (y-v.camY)*v.zoom*v.squash
}

// screenRect returns the screen rect of a world rect; y is its top edge.
func (v view) screenRect(r collision.Rect) (x, y, w, h float64) {
	x, y = v.toScreen(r.X, r.Y+r.H)
	return x, y, r.W * v.zoom, r.H * v.zoom * v.squash
}

func (v view) visible(r collision.Rect) bool {
	x, y, w, h := v.screenRect(r)
	return x+w >= -cullPadding && x <= v.w+cullPadding &&
		y+h >= -cullPadding && y <= v.h+cullPadding
}

// place sets op to stretch an iw×ih image over the world rect.
func (v view) place(op *ebiten.DrawImageOptions, r collision.Rect, iw, ih int, flip bool) {
	x, y, w, h := v.screenRect(r)
	op.GeoM.Reset()
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(iw), 0)
	}
	op.GeoM.Scale(w/float64(iw), h/float64(ih))
	op.GeoM.Translate(x, y)
}

func levelOf(e *ecs.ECS) *leveldata.Level {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(levelEntry).CurrentLevel
}

func cellRect(c gamemath.Cell) collision.Rect {
	x, y := c.Origin()
	return collision.Rect{X: x, Y: y, W: gamemath.CellSize, H: gamemath.CellSize}
}

func drawRegion(screen *ebiten.Image, v view, region hitmask.Region, r collision.Rect, flip bool) bool {
	img := regionImage(region)
	if img == nil {
		return false
	}
	b := img.Bounds()
	v.place(drawOp, r, b.Dx(), b.Dy(), flip)
	screen.DrawImage(img, drawOp)
	return true
}

// DrawLevel draws the terrain layers bottom to top.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(e, screen)
	lvl := levelOf(e)
	if !ok || lvl == nil {
		return
	}
	drawOp.ColorScale.Reset()
	for _, layer := range lvl.Layers {
		layer.Each(func(c gamemath.Cell, code int) {
			r := cellRect(c)
			if !v.visible(r) {
				return
			}
			if !drawRegion(screen, v, tileset.Region(code), r, false) {
				x, y, w, h := v.screenRect(r)
				vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), fallbackTileColor, false)
			}
		})
	}
}

var fallbackTileColor = color.RGBA{R: 60, G: 60, B: 60, A: 255}

// DrawTraps draws each trap's sprite over its cell.
func DrawTraps(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(e, screen)
	if !ok {
		return
	}
	drawOp.ColorScale.Reset()
	components.Trap.Each(e.World, func(entry *donburi.Entry) {
		trap := components.Trap.Get(entry)
		r := cellRect(trap.Cell)
		if !v.visible(r) {
			return
		}
		if !drawRegion(screen, v, trap.Region, r, false) {
			fillWorldCircle(screen, v, r, r.W/3, cfg.Red)
		}
	})
}

// DrawPickups draws the key, portals and uncollected collectibles.
func DrawPickups(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(e, screen)
	if !ok {
		return
	}

	components.Portal.Each(e.World, func(entry *donburi.Entry) {
		portal := components.Portal.Get(entry)
		r := components.Object.Get(entry).Rect()
		if !v.visible(r) {
			return
		}
		clr := portalClosedColor
		if portal.Active {
			clr = cfg.Purple
		}
		scale := portal.Scale
		if scale <= 0 {
			scale = 1
		}
		fillWorldCircle(screen, v, r, r.W/2*scale, clr)
	})

	if keyEntry, ok := components.Key.First(e.World); ok && !components.Key.Get(keyEntry).Collected {
		r := components.Object.Get(keyEntry).Rect()
		if v.visible(r) {
			fillWorldCircle(screen, v, r, r.W/2, cfg.Yellow)
			fillWorldCircle(screen, v, r, r.W/5, keyHoleColor)
		}
	}

	components.Collectible.Each(e.World, func(entry *donburi.Entry) {
		c := components.Collectible.Get(entry)
		if c.Collected {
			return
		}
		r := components.Object.Get(entry).Rect()
		if !v.visible(r) {
			return
		}
		clr := collectibleColors[c.Kind]
		if c.Kind == cfg.Gesundheitskarte {
			x, y, w, h := v.screenRect(r)
			vector.FillRect(screen, float32(x), float32(y+h/4), float32(w), float32(h/2), clr, false)
			return
		}
		fillWorldCircle(screen, v, r, r.W/2, clr)
	})
}

var (
	portalClosedColor = color.RGBA{R: 70, G: 40, B: 90, A: 120}
	keyHoleColor      = color.RGBA{R: 90, G: 70, B: 0, A: 255}
	collectibleColors = map[cfg.CollectibleKind]color.RGBA{
		cfg.Heart:            cfg.Red,
		cfg.Pretzel:          cfg.Orange,
		cfg.Gesundheitskarte: cfg.Green,
		cfg.Coin:             cfg.Yellow,
		cfg.Stamina:          cfg.Blue,
	}
)

func fillWorldCircle(screen *ebiten.Image, v view, r collision.Rect, radius float64, clr color.Color) {
	cx, cy := r.Center()
	sx, sy := v.toScreen(cx, cy)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(radius*v.zoom), clr, true)
}

// DrawEnemies draws each enemy's current walk frame, facing its direction.
func DrawEnemies(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(e, screen)
	if !ok {
		return
	}
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		r := components.Object.Get(entry).Rect()
		if !v.visible(r) {
			return
		}
		region := enemy.Region
		if anim := components.Animation.Get(entry); anim.CurrentAnimation != nil {
			region.Rect = region.Rect.Add(image.Pt(anim.CurrentAnimation.Frame()*leveldata.EnemySize, 0))
		}
		drawOp.ColorScale.Reset()
		if enemy.Chasing {
			drawOp.ColorScale.Scale(1, 0.7, 0.7, 1)
		}
		if !drawRegion(screen, v, region, r, enemy.Direction.X < 0) {
			x, y, w, h := v.screenRect(r)
			vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.Purple, false)
		}
	})
	drawOp.ColorScale.Reset()
}

// DrawPlayer draws the player's body, tinted by the damage flash and
// blinking while invulnerable.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(e, screen)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	r := components.Object.Get(playerEntry).Rect()

	if player.HurtTimer > 0 && !playerEntry.HasComponent(components.Death) && int(player.HurtTimer*10)%2 == 1 {
		return
	}

	clr := playerColor(playerEntry)
	x, y, w, h := v.screenRect(r)
	// Walk frames bob the body by a pixel.
	if anim := components.Animation.Get(playerEntry); anim.CurrentAnimation != nil && anim.CurrentAnimation.Frame()%2 == 1 {
		y--
	}
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)

	// Facing marker
	cx, cy := r.Center()
	sx, sy := v.toScreen(cx+player.Direction.X*r.W/3, cy+player.Direction.Y*r.H/3)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(4*v.zoom), cfg.White, true)
	if player.HasKey {
		kx, ky := v.toScreen(r.X+r.W, r.Y+r.H)
		vector.DrawFilledCircle(screen, float32(kx), float32(ky), float32(6*v.zoom), cfg.Yellow, true)
	}
}

func playerColor(playerEntry *donburi.Entry) color.RGBA {
	clr := cfg.Blue
	if playerEntry.HasComponent(components.Death) {
		death := components.Death.Get(playerEntry)
		fade := 0.0
		if cfg.Player.DeathTime > 0 {
			fade = math.Max(0, math.Min(1, death.Timer/cfg.Player.DeathTime))
		}
		clr.A = uint8(255 * fade)
		return clr
	}
	if playerEntry.HasComponent(components.Flash) {
		flash := components.Flash.Get(playerEntry)
		if flash.Duration > 0 {
			// Lift the body toward white before tinting so the flash shows.
			clr = color.RGBA{
				R: uint8(255 * flash.R),
				G: uint8((float32(clr.G) + 100) * flash.G),
				B: uint8(float32(clr.B) * flash.B),
				A: 255,
			}
		}
	}
	return clr
}

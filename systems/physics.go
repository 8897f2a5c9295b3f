package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/shared/collision"
	"github.com/automoto/mazerunner/tags"
)

// maxMoveSteps bounds how often a blocked move is halved before giving up.
const maxMoveSteps = 6

// UpdatePhysics moves characters by their velocity one axis at a time.
// Moves into opaque wall or walkway-rail pixels are shortened until they fit.
// Enemies additionally treat traps as solid.
func UpdatePhysics(e *ecs.ECS) {
	dt := step()
	var bounds collision.Rect
	if levelData, ok := currentLevel(e); ok {
		lvl := levelData.CurrentLevel
		bounds = collision.Rect{W: lvl.WorldWidth(), H: lvl.WorldHeight()}
	}

	components.Physics.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Death) {
			return
		}
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)
		avoidTraps := entry.HasComponent(tags.Enemy)

		moveAxis(obj, physics.SpeedX*dt, 0, bounds, avoidTraps)
		moveAxis(obj, 0, physics.SpeedY*dt, bounds, avoidTraps)
	})
}

func moveAxis(obj *components.ObjectData, dx, dy float64, bounds collision.Rect, avoidTraps bool) {
	if dx == 0 && dy == 0 {
		return
	}
	for i := 0; i < maxMoveSteps; i++ {
		if !moveBlocked(obj, dx, dy, bounds, avoidTraps) {
			obj.X += dx
			obj.Y += dy
			obj.Update()
			return
		}
		dx /= 2
		dy /= 2
	}
}

// moveBlocked reports whether translating obj by (dx, dy) would push it into
// something it was not already inside.
func moveBlocked(obj *components.ObjectData, dx, dy float64, bounds collision.Rect, avoidTraps bool) bool {
	current := obj.Rect()
	target := current.Translate(dx, dy)
	if bounds.W > 0 && !(bounds.Contains(target.X, target.Y) && bounds.Contains(target.X+target.W, target.Y+target.H)) {
		return true
	}

	checkTags := []string{tags.ResolvSolid}
	if avoidTraps {
		checkTags = append(checkTags, tags.ResolvTrap)
	}
	check := obj.Check(dx, dy, checkTags...)
	if check == nil {
		return false
	}

	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if hitsWallMask(o, target) && !hitsWallMask(o, current) {
			return true
		}
	}
	if avoidTraps {
		for _, o := range check.ObjectsByTags(tags.ResolvTrap) {
			box := collision.RectOf(o)
			if target.Overlaps(box) && !current.Overlaps(box) {
				return true
			}
		}
	}
	return false
}

// hitsWallMask samples the edges of r against the mask of a wall object.
func hitsWallMask(o *resolv.Object, r collision.Rect) bool {
	if !r.Overlaps(collision.RectOf(o)) {
		return false
	}
	entry := entryOf(o)
	if entry == nil || !entry.HasComponent(components.Wall) {
		return true
	}
	tile := components.Wall.Get(entry).Tile
	for _, p := range collision.EdgeSamples(r, cfg.Mask.EdgeSamples) {
		if collision.PointInOpaquePixel(tile, p[0], p[1]) {
			return true
		}
	}
	return false
}

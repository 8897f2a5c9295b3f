package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/components"
	"github.com/automoto/mazerunner/shared/collision"
	"github.com/automoto/mazerunner/tags"
)

// UpdateTraps damages the player when their hitbox touches an opaque pixel
// of a trap sprite. The space query only narrows the candidates; the touch
// itself is decided on exact rectangles and the trap mask.
func UpdateTraps(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}
	obj := components.Object.Get(playerEntry)
	box := obj.Rect()

	check := obj.Check(0, 0, tags.ResolvTrap)
	if check == nil {
		return
	}
	for _, o := range check.ObjectsByTags(tags.ResolvTrap) {
		entry := entryOf(o)
		if entry == nil || !entry.HasComponent(components.Trap) {
			continue
		}
		trap := components.Trap.Get(entry)
		sprite := collision.Sprite{Box: collision.RectOf(o), Mask: trap.Mask}
		if !collision.PixelPerfectTouch(sprite, box) {
			continue
		}
		damagePlayer(playerEntry, trap.Damage)
		return
	}
}

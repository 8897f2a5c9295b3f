package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/components"
)

const (
	damageFlashDuration = 0.15
	damageFlashTint     = 0.4
)

// TriggerDamageFlash tints an entity red and fades it back.
func TriggerDamageFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Duration = damageFlashDuration
	flash.R, flash.G, flash.B = 1, damageFlashTint, damageFlashTint
	flash.Fade = gween.New(damageFlashTint, 1, damageFlashDuration, ease.OutQuad)
}

// UpdateEffects advances flashes and restores the normal tint when done.
func UpdateEffects(ecs *ecs.ECS) {
	dt := step()
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Fade == nil {
			return
		}
		v, done := flash.Fade.Update(float32(dt))
		flash.G, flash.B = v, v
		flash.Duration -= dt
		if done || flash.Duration <= 0 {
			flash.Duration = 0
			flash.R, flash.G, flash.B = 1, 1, 1
			flash.Fade = nil
		}
	})
}

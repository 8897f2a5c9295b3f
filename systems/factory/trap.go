package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/archetypes"
	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/shared/hitmask"
	"github.com/automoto/mazerunner/shared/leveldata"
	"github.com/automoto/mazerunner/tags"
)

// CreateTrap creates a static trap centered on its cell. Its sprite mask is
// resolved through masks so traps sharing a sprite share one mask.
func CreateTrap(ecs *ecs.ECS, spawn leveldata.TrapSpawn, masks *hitmask.Cache) *donburi.Entry {
	trap := archetypes.Trap.Spawn(ecs)

	obj := newCenteredObject(spawn.X, spawn.Y, spawn.Size, spawn.Size, tags.ResolvTrap)

	damage := float64(spawn.Damage)
	if damage == 0 {
		damage = cfg.Trap.Damage
	}
	components.Trap.SetValue(trap, components.TrapData{
		Cell:   spawn.Cell,
		Code:   spawn.Code,
		Damage: damage,
		Region: spawn.Region,
		Mask:   masks.Mask(spawn.Region, hitmask.Thin),
	})
	addToSpace(ecs, trap, obj)

	return trap
}

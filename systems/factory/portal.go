package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/archetypes"
	"github.com/automoto/mazerunner/assets/animations"
	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/tags"
)

const (
	portalPulse     = 1.15
	portalPulseTime = 0.5
)

// CreatePortal places a closed portal at the center of cell. offset shifts
// the portal's open window within the cycle, in seconds.
func CreatePortal(ecs *ecs.ECS, cell gamemath.Cell, offset float64) *donburi.Entry {
	portal := archetypes.Portal.Spawn(ecs)

	x, y := cell.Center()
	obj := newCenteredObject(x, y, cfg.Portal.Size, cfg.Portal.Size, tags.ResolvPortal)
	components.Portal.SetValue(portal, components.PortalData{Cell: cell, Offset: offset, Scale: 1})
	components.State.SetValue(portal, components.StateData{
		CurrentState:  cfg.PortalClosed,
		PreviousState: cfg.StateNone,
	})

	anim := components.AnimationData{Animations: animations.FromDefs(cfg.CharacterAnimations["portal"])}
	anim.SetAnimation(cfg.PortalClosed)
	components.Animation.SetValue(portal, anim)

	// An open portal pulses using a *gween.Sequence that swells and shrinks.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(1, portalPulse, portalPulseTime, ease.InOutQuad),
		gween.New(portalPulse, 1, portalPulseTime, ease.InOutQuad),
	)
	components.Tween.Set(portal, tw)

	addToSpace(ecs, portal, obj)
	return portal
}

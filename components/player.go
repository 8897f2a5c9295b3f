package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction Vector
	HurtTimer float64 // seconds of invulnerability left
	HasKey    bool
	Coins     int
	// Stamina speed multiplier and seconds it has left.
	Stamina      float64
	StaminaTimer float64
	// OnSpeedBoost is set while the player's feet are on a walkway cell.
	OnSpeedBoost bool
}

// SpeedMultiplier returns the combined walkway and stamina multiplier.
func (p *PlayerData) SpeedMultiplier(boost float64) float64 {
	m := 1.0
	if p.OnSpeedBoost {
		m *= boost
	}
	if p.StaminaTimer > 0 && p.Stamina > 0 {
		m *= p.Stamina
	}
	return m
}

var Player = donburi.NewComponentType[PlayerData]()

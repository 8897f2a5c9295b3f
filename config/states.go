package config

// StateID identifies an entity state for animation and logic.
type StateID int

const (
	StateNone StateID = -1

	// Player states
	Idle StateID = iota
	Walk
	Hurt
	Die

	// Enemy states
	StateWander
	StateChase

	// Portal states
	PortalClosed
	PortalOpen
)

// StateToFileName maps StateID to the corresponding sprite name prefix.
var StateToFileName = map[StateID]string{
	Idle:         "idle",
	Walk:         "walk",
	Hurt:         "hurt",
	Die:          "die",
	StateWander:  "wander",
	StateChase:   "chase",
	PortalClosed: "portal_closed",
	PortalOpen:   "portal_open",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "unknown"
}

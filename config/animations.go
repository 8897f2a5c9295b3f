package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle: {First: 0, Last: 0, Step: 1, Speed: 10},
		Walk: {First: 0, Last: 3, Step: 1, Speed: 8},
		Hurt: {First: 0, Last: 1, Step: 1, Speed: 4},
		Die:  {First: 0, Last: 3, Step: 1, Speed: 6},
	},
	// Enemy frames are 16x16 regions on the obstacle sheet, one row per variant.
	"enemy": {
		StateWander: {First: 0, Last: 3, Step: 1, Speed: 10},
		StateChase:  {First: 0, Last: 3, Step: 1, Speed: 5},
	},
	"portal": {
		PortalClosed: {First: 0, Last: 0, Step: 1, Speed: 10},
		PortalOpen:   {First: 0, Last: 3, Step: 1, Speed: 6},
	},
}

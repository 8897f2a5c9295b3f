package components

import "github.com/yohamta/donburi"

// LevelCompleteData stores the state of the level complete overlay
type LevelCompleteData struct {
	IsComplete  bool
	Grade       string
	CoinsMissed int
	Time        float64 // seconds the level took
	// Advance is set once the player confirms and the scene should load
	// the next level.
	Advance bool
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()

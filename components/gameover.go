package components

import "github.com/yohamta/donburi"

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverQuit
)

// GameOverData stores the current state of the game over menu
type GameOverData struct {
	IsGameOver     bool
	SelectedOption GameOverOption
	// Confirmed is set when the player picks an option.
	Confirmed bool
}

// GameOver is the component type for game over menu state
var GameOver = donburi.NewComponentType[GameOverData]()

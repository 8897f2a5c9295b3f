package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
)

// UpdateDeaths counts down the death animation of a player out of lives and
// then opens the game over menu.
func UpdateDeaths(ecs *ecs.ECS) {
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if death.Timer <= 0 {
			return
		}
		death.Timer -= step()
		if death.Timer <= 0 {
			gameOver := GetOrCreateGameOver(ecs)
			gameOver.IsGameOver = true
			gameOver.SelectedOption = components.GameOverRetry
		}
	})
}

// NewUpdateGameOver creates an UpdateGameOver system that runs the retry/quit
// menu and calls the handler of the confirmed option.
func NewUpdateGameOver(retry, quit func()) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		if !gameOver.IsGameOver || gameOver.Confirmed {
			return
		}
		input := getOrCreateInput(e)

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.GameOverQuit) + 1
		if GetAction(input, cfg.ActionMoveUp).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMoveDown).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
		}

		if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
			return
		}
		gameOver.Confirmed = true
		switch gameOver.SelectedOption {
		case components.GameOverRetry:
			if retry != nil {
				retry()
			}
		case components.GameOverQuit:
			if quit != nil {
				quit()
			}
		}
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.GameOver))
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}

// WithGameOverCheck wraps a system to skip execution once the game is over.
func WithGameOverCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreateGameOver(e).IsGameOver {
			return
		}
		system(e)
	}
}

package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"

	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/fonts"
	"github.com/automoto/mazerunner/systems"
	"github.com/automoto/mazerunner/tags"
)

const (
	hudMargin     = 10
	hudLineHeight = 22
	heartSize     = 14
	heartGap      = 4
)

var (
	hudPanelColor = color.RGBA{R: 20, G: 20, B: 30, A: 180}
	heartEmpty    = color.RGBA{R: 70, G: 30, B: 30, A: 255}
	menuDimColor  = color.RGBA{R: 160, G: 160, B: 160, A: 255}
)

// DrawHUD renders lives, coins, the key and the level clock in the top-left
// corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	lives := components.Lives.Get(playerEntry)

	vector.FillRect(screen, hudMargin/2, hudMargin/2, 220, 4*hudLineHeight+hudMargin, hudPanelColor, false)
	drawHearts(screen, lives)

	face := fonts.Regular.Get()
	y := hudMargin + hudLineHeight + heartSize
	text.Draw(screen, fmt.Sprintf("Lives %.2f / %.0f", lives.Lives, lives.MaxLives), face, hudMargin, y, cfg.White)
	y += hudLineHeight
	text.Draw(screen, fmt.Sprintf("Coins %d", player.Coins), face, hudMargin, y, cfg.Yellow)
	if player.HasKey {
		text.Draw(screen, "KEY", face, hudMargin+120, y, cfg.Yellow)
	}
	if player.StaminaTimer > 0 {
		y += hudLineHeight
		text.Draw(screen, fmt.Sprintf("Stamina x%.1f  %.1fs", player.Stamina, player.StaminaTimer), face, hudMargin, y, cfg.Blue)
	}

	if levelEntry, ok := components.Level.First(e.World); ok {
		levelData := components.Level.Get(levelEntry)
		label := fmt.Sprintf("%s  %s", levelData.Entry.Name, formatTime(levelData.Elapsed))
		small := fonts.Small.Get()
		width := float64(screen.Bounds().Dx())
		text.Draw(screen, label, small, int(width)-textWidth(label, small)-hudMargin, hudMargin+hudLineHeight/2, cfg.White)
	}
}

// drawHearts draws one heart per whole life and a partly filled one for the
// fraction.
func drawHearts(screen *ebiten.Image, lives *components.LivesData) {
	for i := 0; i < int(lives.MaxLives); i++ {
		x := float32(hudMargin + i*(heartSize+heartGap))
		y := float32(hudMargin)
		vector.FillRect(screen, x, y, heartSize, heartSize, heartEmpty, false)
		fill := lives.Lives - float64(i)
		if fill <= 0 {
			continue
		}
		if fill > 1 {
			fill = 1
		}
		vector.FillRect(screen, x, y, heartSize*float32(fill), heartSize, cfg.Red, false)
	}
}

func formatTime(seconds float64) string {
	m := int(seconds) / 60
	s := seconds - float64(m*60)
	return fmt.Sprintf("%d:%05.2f", m, s)
}

// DrawPause renders the pause overlay.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	if !systems.GetOrCreatePause(e).IsPaused {
		return
	}
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	title := fonts.Title.Get()
	drawCentered(screen, "PAUSED", title, width, int(height/2), cfg.White)
	drawCentered(screen, "Esc: Resume   R: Restart", fonts.Small.Get(), width, int(height)-12, menuDimColor)
}

var gameOverOptions = []string{"Retry", "Quit"}

// DrawGameOver renders the game over menu once the death timer runs out.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := systems.GetOrCreateGameOver(e)
	if !gameOver.IsGameOver {
		return
	}
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	drawCentered(screen, "GAME OVER", fonts.Title.Get(), width, int(height/3), cfg.Red)
	face := fonts.Bold.Get()
	for i, option := range gameOverOptions {
		clr := color.Color(menuDimColor)
		if components.GameOverOption(i) == gameOver.SelectedOption {
			clr = cfg.Yellow
			option = "> " + option + " <"
		}
		drawCentered(screen, option, face, width, int(height/2)+i*40, clr)
	}
	drawCentered(screen, "Up/Down: Navigate   Enter: Select", fonts.Small.Get(), width, int(height)-12, menuDimColor)
}

// DrawLevelComplete renders the level complete overlay with the grade.
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	levelComplete := systems.GetOrCreateLevelComplete(e)
	if !levelComplete.IsComplete {
		return
	}
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.LevelComplete.OverlayColor, false)

	drawCentered(screen, cfg.LevelComplete.Title, fonts.Title.Get(), width, int(height/3), cfg.LevelComplete.TitleColor)

	face := fonts.Bold.Get()
	y := int(height / 2)
	drawCentered(screen, "Grade "+levelComplete.Grade, face, width, y, cfg.LevelComplete.TitleColor)
	drawCentered(screen, "Time "+formatTime(levelComplete.Time), face, width, y+32, cfg.LevelComplete.TextColor)
	drawCentered(screen, fmt.Sprintf("Coins missed %d", levelComplete.CoinsMissed), face, width, y+64, cfg.LevelComplete.TextColor)

	drawCentered(screen, cfg.LevelComplete.ContinueHint, fonts.Small.Get(), width, int(height)-24, cfg.LevelComplete.TextColor)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, screenWidth float64, y int, clr color.Color) {
	text.Draw(screen, s, face, centerTextX(s, face, screenWidth), y, clr)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	return int((screenWidth - float64(textWidth(s, face))) / 2)
}

func textWidth(s string, face font.Face) int {
	return text.BoundString(face, s).Dx() //nolint:staticcheck // TODO: migrate to text/v2
}

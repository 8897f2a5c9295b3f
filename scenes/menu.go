package scenes

import (
	"image/color"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/systems"
	"github.com/automoto/mazerunner/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the level select menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.LevelSelectUI
	progress     *systems.SavedProgress
	once         sync.Once
	next         interface{}
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.Update()

	if ms.next != nil {
		next := ms.next
		ms.next = nil
		ms.sceneChanger.ChangeScene(next)
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	progress, err := systems.LoadProgress()
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
	}
	ms.progress = progress

	ms.menuUI = ui.NewLevelSelectUI(cfg.Levels, progress,
		func(levelIndex int) { ms.next = NewMazeScene(ms.sceneChanger, levelIndex) },
		func(path string) { ms.next = NewMazeSceneFromFile(ms.sceneChanger, path) },
		func() { os.Exit(0) },
	)

	// Enter starts the furthest unlocked level without reaching for the mouse.
	ms.ecs.AddSystem(systems.NewUpdateInput(pollInput))
	ms.ecs.AddSystem(systems.NewUpdateMenuSelect(func() {
		ms.next = NewMazeScene(ms.sceneChanger, ms.furthestLevel())
	}))
}

// furthestLevel returns the highest unlocked catalog index.
func (ms *MenuScene) furthestLevel() int {
	idx := 0
	for i := range cfg.Levels {
		if ms.progress.IsUnlocked(i) {
			idx = i
		}
	}
	return idx
}

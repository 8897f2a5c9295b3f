package scenes

import (
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/assets"
	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/render"
	"github.com/automoto/mazerunner/shared/leveldata"
	"github.com/automoto/mazerunner/systems"
	"github.com/automoto/mazerunner/systems/factory"
)

// defaultTileset generates the sheets once; every maze scene draws from the
// same uploaded images.
var defaultTileset = sync.OnceValue(assets.DefaultTileset)

// MazeScene plays one level, either a catalog entry or a file from disk.
type MazeScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	levelFile    string
	once         sync.Once
	next         interface{}
}

// NewMazeScene creates a scene playing the catalog level at levelIndex.
func NewMazeScene(sc SceneChanger, levelIndex int) *MazeScene {
	return &MazeScene{sceneChanger: sc, levelIndex: levelIndex}
}

// NewMazeSceneFromFile creates a scene playing a level file outside the
// catalog. Its completion is not recorded in saved progress.
func NewMazeSceneFromFile(sc SceneChanger, path string) *MazeScene {
	return &MazeScene{sceneChanger: sc, levelIndex: -1, levelFile: path}
}

func (ms *MazeScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()

	if ms.next != nil {
		next := ms.next
		ms.next = nil
		ms.sceneChanger.ChangeScene(next)
	}
}

func (ms *MazeScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MazeScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	tileset := defaultTileset()
	lvl, entry, err := ms.loadLevel(tileset)
	if err != nil {
		log.Printf("Warning: %v", err)
		ms.next = NewMenuScene(ms.sceneChanger)
		return
	}
	render.Init(tileset)

	e := ms.ecs

	// Systems that always run
	e.AddSystem(systems.NewUpdateInput(pollInput))
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateDebug)

	// Game systems wrapped with pause, level complete and game over checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateLevelTime))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateRestart))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateTraps))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateKey))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollectibles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePortals))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateExit))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateAnimations))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// The death timer keeps running until the game over menu opens.
	e.AddSystem(systems.WithPauseCheck(systems.WithLevelCompleteCheck(systems.UpdateDeaths)))
	e.AddSystem(systems.NewUpdateGameOver(ms.retry, ms.quit))
	e.AddSystem(systems.NewUpdateLevelComplete(ms.advance))

	// Add renderers
	e.AddRenderer(cfg.Default, render.DrawLevel)
	e.AddRenderer(cfg.Default, render.DrawTraps)
	e.AddRenderer(cfg.Default, render.DrawPickups)
	e.AddRenderer(cfg.Default, render.DrawEnemies)
	e.AddRenderer(cfg.Default, render.DrawPlayer)
	e.AddRenderer(cfg.Default, render.DrawDebug)
	e.AddRenderer(cfg.Default, render.DrawHUD)
	e.AddRenderer(cfg.Default, render.DrawPause)
	e.AddRenderer(cfg.Default, render.DrawLevelComplete)
	e.AddRenderer(cfg.Default, render.DrawGameOver)

	level := factory.CreateLevel(e, lvl, entry, ms.levelIndex, nil)
	factory.PopulateLevel(e, level)
}

// loadLevel builds the scene's level against tileset.
func (ms *MazeScene) loadLevel(tileset *leveldata.Tileset) (*leveldata.Level, cfg.LevelEntry, error) {
	if ms.levelFile != "" {
		fsys, file := levelFileFS(ms.levelFile)
		entry := cfg.LevelEntry{
			Name: strings.TrimSuffix(file, filepath.Ext(file)),
			File: file,
		}
		lvl, err := assets.NewLevelLoader(fsys, tileset, nil).Load(entry)
		return lvl, entry, err
	}

	if ms.levelIndex < 0 || ms.levelIndex >= len(cfg.Levels) {
		return nil, cfg.LevelEntry{}, fmt.Errorf("level index %d outside catalog of %d", ms.levelIndex, len(cfg.Levels))
	}
	entry := cfg.Levels[ms.levelIndex]
	lvl, err := assets.NewLevelLoader(assets.Maps(), tileset, nil).Load(entry)
	return lvl, entry, err
}

// levelFileFS roots a file system at the level's directory, so TMX maps can
// reach tilesets next to them.
func levelFileFS(path string) (fs.FS, string) {
	dir, file := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	return os.DirFS(dir), file
}

func (ms *MazeScene) retry() {
	if ms.levelFile != "" {
		ms.next = NewMazeSceneFromFile(ms.sceneChanger, ms.levelFile)
		return
	}
	ms.next = NewMazeScene(ms.sceneChanger, ms.levelIndex)
}

func (ms *MazeScene) quit() {
	ms.next = NewMenuScene(ms.sceneChanger)
}

// advance moves on to the next catalog level, or back to the menu after the
// last one.
func (ms *MazeScene) advance() {
	if next := ms.levelIndex + 1; ms.levelFile == "" && next < len(cfg.Levels) {
		ms.next = NewMazeScene(ms.sceneChanger, next)
		return
	}
	ms.next = NewMenuScene(ms.sceneChanger)
}

package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
)

func TestAnalogStick(t *testing.T) {
	_, ok := analogStick(0.1, 0.1, 0.25)
	assert.False(t, ok)

	v, ok := analogStick(0, 0.8, 0.25)
	require.True(t, ok)
	assert.Equal(t, components.Vector{X: 0, Y: -0.8}, v, "stick down is world down")
}

func TestMergeStick(t *testing.T) {
	var in components.InputData
	mergeStick(&in, components.Vector{X: -0.9, Y: 0.5}, 0.25)

	assert.True(t, in.Current[cfg.ActionMoveLeft])
	assert.True(t, in.Current[cfg.ActionMoveUp])
	assert.False(t, in.Current[cfg.ActionMoveRight])
	assert.False(t, in.Current[cfg.ActionMoveDown])
}

func TestBindingsCoverEveryAction(t *testing.T) {
	for a := cfg.ActionMoveLeft; a < cfg.ActionCount; a++ {
		assert.NotEmpty(t, Bindings[a].Keys, "action %d", a)
	}
}

func TestLevelFileFS(t *testing.T) {
	_, file := levelFileFS("maps/custom.tmx")
	assert.Equal(t, "custom.tmx", file)

	_, file = levelFileFS("level.properties")
	assert.Equal(t, "level.properties", file)
}

type recordingChanger struct {
	scenes []interface{}
}

func (r *recordingChanger) ChangeScene(scene interface{}) {
	r.scenes = append(r.scenes, scene)
}

func TestMazeSceneAdvance(t *testing.T) {
	sc := &recordingChanger{}

	ms := NewMazeScene(sc, 0)
	ms.advance()
	if len(cfg.Levels) > 1 {
		next, ok := ms.next.(*MazeScene)
		require.True(t, ok)
		assert.Equal(t, 1, next.levelIndex)
	}

	last := NewMazeScene(sc, len(cfg.Levels)-1)
	last.advance()
	assert.IsType(t, &MenuScene{}, last.next)

	file := NewMazeSceneFromFile(sc, "custom.properties")
	file.advance()
	assert.IsType(t, &MenuScene{}, file.next)
	file.retry()
	retry, ok := file.next.(*MazeScene)
	require.True(t, ok)
	assert.Equal(t, "custom.properties", retry.levelFile)
	assert.Equal(t, -1, retry.levelIndex)
}

func TestMazeSceneLoadsCatalogLevels(t *testing.T) {
	for i := range cfg.Levels {
		ms := NewMazeScene(&recordingChanger{}, i)
		lvl, entry, err := ms.loadLevel(nil)
		require.NoError(t, err, cfg.Levels[i].Name)
		assert.Equal(t, cfg.Levels[i], entry)
		assert.NotZero(t, lvl.Width())
	}

	_, _, err := NewMazeScene(&recordingChanger{}, len(cfg.Levels)).loadLevel(nil)
	assert.Error(t, err)
}

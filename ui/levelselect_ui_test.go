package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/systems"
)

func TestLevelLabel(t *testing.T) {
	progress := &systems.SavedProgress{UnlockedLevel: 1, BestGrades: map[int]string{0: "B"}}

	tests := []struct {
		name     string
		index    int
		entry    cfg.LevelEntry
		progress *systems.SavedProgress
		want     string
		unlocked bool
	}{
		{"graded", 0, cfg.LevelEntry{Name: "Cellar"}, progress, "1. Cellar  [B]", true},
		{"open without grade", 1, cfg.LevelEntry{Name: "Hall"}, progress, "2. Hall  [-]", true},
		{"locked", 2, cfg.LevelEntry{Name: "Roof"}, progress, "3. Roof  (locked)", false},
		{"no progress", 0, cfg.LevelEntry{File: "maps/level1.properties"}, nil, "1. maps/level1.properties  [-]", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, unlocked := LevelLabel(tt.index, tt.entry, tt.progress)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.unlocked, unlocked)
		})
	}
}

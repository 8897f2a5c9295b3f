package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

// ProgressStore is the key/value storage progress is kept in. *gdata.Manager
// satisfies it.
type ProgressStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SavedProgress represents the level progress stored on disk
type SavedProgress struct {
	// UnlockedLevel is the highest catalog index the player may start.
	UnlockedLevel int `json:"unlockedLevel"`
	// BestGrades maps a catalog index to the best grade achieved there.
	BestGrades map[int]string `json:"bestGrades"`
}

var progressStore ProgressStore

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "mazerunner",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	progressStore = m
	return nil
}

// SetProgressStore replaces the storage backend. A nil store disables
// persistence.
func SetProgressStore(s ProgressStore) {
	progressStore = s
}

// LoadProgress loads progress from disk. Missing or unreadable progress
// yields nil without an error so the game starts fresh.
func LoadProgress() (*SavedProgress, error) {
	if progressStore == nil {
		return nil, nil
	}

	data, err := progressStore.LoadItem(progressKey)
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return nil, err
	}
	return &progress, nil
}

// SaveProgress saves progress to disk
func SaveProgress(p *SavedProgress) error {
	if progressStore == nil || p == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return err
	}

	if err := progressStore.SaveItem(progressKey, data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
		return err
	}
	return nil
}

// RecordLevelComplete unlocks the level after levelIndex and keeps grade if
// it beats the stored one.
func RecordLevelComplete(levelIndex int, grade string) error {
	if progressStore == nil {
		return nil
	}
	progress, err := LoadProgress()
	if err != nil || progress == nil {
		progress = &SavedProgress{}
	}
	if progress.BestGrades == nil {
		progress.BestGrades = map[int]string{}
	}

	progress.UnlockedLevel = max(progress.UnlockedLevel, levelIndex+1)
	if best, ok := progress.BestGrades[levelIndex]; !ok || grade < best {
		progress.BestGrades[levelIndex] = grade
	}
	return SaveProgress(progress)
}

// IsUnlocked reports whether the catalog level may be started. The first
// level is always open.
func (p *SavedProgress) IsUnlocked(levelIndex int) bool {
	if levelIndex == 0 {
		return true
	}
	return p != nil && levelIndex <= p.UnlockedLevel
}

// BestGrade returns the best grade recorded for the level, or "" if it was
// never completed.
func (p *SavedProgress) BestGrade(levelIndex int) string {
	if p == nil {
		return ""
	}
	return p.BestGrades[levelIndex]
}

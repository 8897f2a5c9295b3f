package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/shared/hitmask"
	"github.com/automoto/mazerunner/shared/leveldata"
)

// Default is the ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int // logic ticks per second
	Title  string
	// Zoom is the world-to-screen scale of the camera.
	Zoom float64
}

// Step returns the fixed logic time step in seconds.
func (c *Config) Step() float64 {
	return 1 / float64(c.TPS)
}

// TileConfig describes grid and sheet geometry
type TileConfig struct {
	CellSize  float64 // world pixels per grid cell
	TileSize  int     // source pixels of a tile-sheet region
	TrapSize  int     // source pixels of a trap region on the obstacle sheet
	EnemySize int     // source pixels of an enemy region on the obstacle sheet
}

// MaskConfig contains hit-mask thresholds
type MaskConfig struct {
	OpaqueThreshold int
	ThinThreshold   int
	EdgeSamples     int // points sampled per hitbox edge against wall masks
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed           float64 // px/s
	BoostMultiplier float64 // applied on speed-boost cells

	// Lives
	StartingLives float64
	MaxLives      float64
	HurtTime      float64 // seconds of invulnerability after a hit
	DeathTime     float64 // seconds before the game over menu opens

	// Dimensions (world pixels)
	HitboxWidth  float64
	HitboxHeight float64
}

// EnemyConfig contains chasing enemy configuration
type EnemyConfig struct {
	Speed                float64 // px/s
	PlainDetectionRadius float64
	BFSDetectionRadius   float64
	RandomMoveTime       float64 // seconds between wander retargets
	DamageCooldown       float64 // seconds between hits
	WanderDistance       float64 // px, how far a wander target may lie
	MaxDamageTimes       int     // hits before the enemy stops chasing until its next wander reset
	Damage               float64

	// Dimensions (world pixels)
	HitboxWidth  float64
	HitboxHeight float64
	// SeparationPush scales the push away from an overlapping enemy.
	SeparationPush float64
}

// TrapConfig contains static trap configuration
type TrapConfig struct {
	HitboxScale float64 // fraction of a cell
	Damage      float64
}

// PortalConfig contains teleport portal configuration
type PortalConfig struct {
	Count      int
	Cycle      float64 // seconds per on/off cycle
	ActiveTime float64 // seconds of each cycle the portal is open
	Size       float64
}

// CollectibleKind identifies a pickup
type CollectibleKind int

const (
	Heart CollectibleKind = iota
	Pretzel
	Gesundheitskarte
	Coin
	Stamina
)

func (k CollectibleKind) String() string {
	switch k {
	case Heart:
		return "heart"
	case Pretzel:
		return "pretzel"
	case Gesundheitskarte:
		return "gesundheitskarte"
	case Coin:
		return "coin"
	case Stamina:
		return "stamina"
	}
	return "unknown"
}

// CollectibleTypeConfig configures one pickup kind
type CollectibleTypeConfig struct {
	Count      int
	Lives      float64 // lives restored
	Coins      int
	Multiplier float64 // stamina speed multiplier, 0 when unused
	Duration   float64 // seconds the multiplier lasts
}

// CollectibleConfig contains all pickup configuration
type CollectibleConfig struct {
	Types map[CollectibleKind]CollectibleTypeConfig
	Size  float64
}

// KeyConfig contains key pickup configuration
type KeyConfig struct {
	Size float64
}

// LevelCompleteConfig contains level complete overlay configuration
type LevelCompleteConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	Title        string
	ContinueHint string
	// Grades by number of coins missed; more misses than listed earn FailGrade.
	Grades    []string
	FailGrade string
}

// CameraConfig contains camera follow settings
type CameraConfig struct {
	FollowSmoothing float64 // fraction of the distance closed per tick
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	ShowHitboxes bool
	ShowPaths    bool
	LevelFile    string // load this file instead of the catalog
}

// Global configuration instances
var C *Config
var Tile TileConfig
var Mask MaskConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Trap TrapConfig
var Portal PortalConfig
var Collectible CollectibleConfig
var Key KeyConfig
var LevelComplete LevelCompleteConfig
var Camera CameraConfig
var Debug DebugConfig

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
		Title:  "Maze Runner",
		Zoom:   1,
	}

	Tile = TileConfig{
		CellSize:  gamemath.CellSize,
		TileSize:  leveldata.TileSize,
		TrapSize:  leveldata.TrapSize,
		EnemySize: leveldata.EnemySize,
	}

	Mask = MaskConfig{
		OpaqueThreshold: hitmask.OpaqueThreshold,
		ThinThreshold:   hitmask.ThinThreshold,
		EdgeSamples:     20,
	}

	Player = PlayerConfig{
		Speed:           200,
		BoostMultiplier: 2,

		StartingLives: 3,
		MaxLives:      5,
		HurtTime:      0.8,
		DeathTime:     1,

		HitboxWidth:  40,
		HitboxHeight: 56,
	}

	Enemy = EnemyConfig{
		Speed:                180,
		PlainDetectionRadius: 400,
		BFSDetectionRadius:   600,
		RandomMoveTime:       6,
		DamageCooldown:       2,
		WanderDistance:       200,
		MaxDamageTimes:       3,
		Damage:               1,

		// 10x16 source hitbox drawn at 64x64 from a 16x16 frame.
		HitboxWidth:    40,
		HitboxHeight:   64,
		SeparationPush: 5000,
	}

	Trap = TrapConfig{
		HitboxScale: leveldata.TrapHitboxScale,
		Damage:      leveldata.TrapDamage,
	}

	Portal = PortalConfig{
		Count:      1,
		Cycle:      20,
		ActiveTime: 5,
		Size:       80,
	}

	Collectible = CollectibleConfig{
		Size: 50,
		Types: map[CollectibleKind]CollectibleTypeConfig{
			Heart:            {Count: 3, Lives: 1},
			Pretzel:          {Count: 3, Lives: 1.25},
			Gesundheitskarte: {Count: 1, Lives: 1.5},
			Coin:             {Count: 5, Coins: 1},
			Stamina:          {Count: 1, Multiplier: 2, Duration: 5},
		},
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	Key = KeyConfig{
		Size: 50,
	}

	LevelComplete = LevelCompleteConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   Yellow,
		TextColor:    White,
		Title:        "LEVEL COMPLETE",
		ContinueHint: "Press Enter to continue",
		Grades:       []string{"A", "B", "C", "D"},
		FailGrade:    "F",
	}
}

// Grade returns the letter grade for a level finished with missed coins
// left uncollected.
func Grade(missed int) string {
	if missed < 0 {
		missed = 0
	}
	if missed < len(LevelComplete.Grades) {
		return LevelComplete.Grades[missed]
	}
	return LevelComplete.FailGrade
}

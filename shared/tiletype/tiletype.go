// Package tiletype classifies tile-sheet codes into the closed set of terrain
// and entity roles a level cell can have.
package tiletype

import "fmt"

// Type is the role of a tile-sheet code.
type Type int

const (
	Wall Type = iota
	Entrance
	Exit
	Trap
	Enemy
	Key
	SpeedBoost
	Ground
	Extra
)

// ExtraThreshold separates unclassified codes: below it they are Ground,
// at or above it Extra.
const ExtraThreshold = 220

// Base codes that name a type directly in level files.
const (
	WallCode       = 0
	EntranceCode   = 1
	ExitCode       = 2
	TrapCode       = 3
	EnemyCode      = 4
	KeyCode        = 5
	GroundCode     = 10
	ExtraCode      = 220
	trapSecondCode = 80
	enemySecond    = 150
)

// Range is an inclusive span of tile codes.
type Range struct {
	Lo, Hi int
}

func (r Range) Contains(code int) bool {
	return code >= r.Lo && code <= r.Hi
}

var ranges = map[Type][]Range{
	Wall:       {{0, 0}, {20, 79}, {100, 149}},
	Entrance:   {{1, 1}},
	Exit:       {{2, 2}, {12, 14}},
	Trap:       {{3, 3}, {80, 89}},
	Enemy:      {{4, 4}, {150, 159}},
	Key:        {{5, 5}},
	SpeedBoost: {{90, 99}},
	Ground:     {{10, 10}},
	Extra:      {{220, 220}},
}

var names = [...]string{
	Wall:       "Wall",
	Entrance:   "Entrance",
	Exit:       "Exit",
	Trap:       "Trap",
	Enemy:      "Enemy",
	Key:        "Key",
	SpeedBoost: "SpeedBoost",
	Ground:     "Ground",
	Extra:      "Extra",
}

// All lists every type in declaration order.
func All() []Type {
	return []Type{Wall, Entrance, Exit, Trap, Enemy, Key, SpeedBoost, Ground, Extra}
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Ranges returns the code ranges owned by t. The slice must not be modified.
func (t Type) Ranges() []Range {
	return ranges[t]
}

// Contains reports whether code falls in one of t's explicit ranges.
func (t Type) Contains(code int) bool {
	for _, r := range ranges[t] {
		if r.Contains(code) {
			return true
		}
	}
	return false
}

// Walkable reports whether pathfinding may traverse a cell of this type.
func (t Type) Walkable() bool {
	return t != Wall && t != Trap
}

// Solid reports whether the type blocks player movement through its mask.
func (t Type) Solid() bool {
	return t == Wall || t == SpeedBoost
}

// Lookup returns the type whose explicit ranges contain code.
func Lookup(code int) (Type, bool) {
	for _, t := range All() {
		if t.Contains(code) {
			return t, true
		}
	}
	return Ground, false
}

// Classify resolves any code to a type, falling back to Ground or Extra by
// ExtraThreshold for codes no range claims.
func Classify(code int) Type {
	if t, ok := Lookup(code); ok {
		return t
	}
	if code >= ExtraThreshold {
		return Extra
	}
	return Ground
}

// EnemyIndex returns the zero-based enemy variant of an Enemy code.
func EnemyIndex(code int) int {
	if code == EnemyCode {
		return 0
	}
	return code - enemySecond + 1
}

// TrapIndex returns the zero-based trap variant of a Trap code.
func TrapIndex(code int) int {
	if code == TrapCode {
		return 0
	}
	return code - trapSecondCode + 1
}

package components

import "github.com/yohamta/donburi"

// LivesData holds fractional lives; some pickups restore part of a life.
type LivesData struct {
	Lives    float64
	MaxLives float64
}

// Add changes lives by delta, clamped to [0, MaxLives].
func (l *LivesData) Add(delta float64) {
	l.Lives += delta
	if l.Lives > l.MaxLives {
		l.Lives = l.MaxLives
	}
	if l.Lives < 0 {
		l.Lives = 0
	}
}

func (l *LivesData) Dead() bool {
	return l.Lives <= 0
}

var Lives = donburi.NewComponentType[LivesData]()

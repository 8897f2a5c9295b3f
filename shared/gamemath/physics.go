package gamemath

import "math"

// Clamp bounds v to [lo, hi]. When the range is inverted lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// HomingVelocity returns velocity components to home toward a target at a
// constant speed. A zero-length direction yields zero velocity.
func HomingVelocity(fromX, fromY, targetX, targetY, speed float64) (velX, velY float64) {
	dirX := targetX - fromX
	dirY := targetY - fromY
	dist := math.Sqrt(dirX*dirX + dirY*dirY)
	if dist > 0 {
		velX = (dirX / dist) * speed
		velY = (dirY / dist) * speed
	}
	return velX, velY
}

// SteerVelocity is HomingVelocity with each unit-direction component passed
// through tanh, which damps diagonal motion relative to axis-aligned motion.
func SteerVelocity(fromX, fromY, targetX, targetY, speed float64) (velX, velY float64) {
	dirX := targetX - fromX
	dirY := targetY - fromY
	dist := math.Sqrt(dirX*dirX + dirY*dirY)
	if dist == 0 {
		return 0, 0
	}
	return math.Tanh(dirX/dist) * speed, math.Tanh(dirY/dist) * speed
}

// NormalizeInput scales a direction input so diagonals are not faster than
// straight moves.
func NormalizeInput(dx, dy float64) (float64, float64) {
	l := math.Hypot(dx, dy)
	if l <= 1 {
		return dx, dy
	}
	return dx / l, dy / l
}

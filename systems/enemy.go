package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/mazerunner/components"
	cfg "github.com/automoto/mazerunner/config"
	"github.com/automoto/mazerunner/shared/gamemath"
	"github.com/automoto/mazerunner/tags"
)

// playerRing is tried in order when no path reaches the player's own cell.
var playerRing = [][2]int{
	{0, 1}, {1, 0}, {0, -1}, {-1, 0},
	{1, 1}, {1, -1}, {-1, -1}, {-1, 1},
}

// UpdateEnemies runs the wander/chase state machine of every enemy and lets
// enemies that touch the player deal damage.
func UpdateEnemies(ecs *ecs.ECS) {
	levelData, ok := currentLevel(ecs)
	if !ok {
		return
	}
	playerEntry, hasPlayer := tags.Player.First(ecs.World)
	var player *gamemath.Position
	if hasPlayer && !playerEntry.HasComponent(components.Death) {
		player, _ = playerPosition(ecs)
	}
	dt := step()

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		obj := components.Object.Get(e)
		physics := components.Physics.Get(e)
		state := components.State.Get(e)

		enemy.DamageCooldown = max(0, enemy.DamageCooldown-dt)
		enemy.WanderTimer -= dt
		if enemy.WanderTimer <= 0 {
			retargetWander(levelData, enemy, obj)
		}

		ex, ey := obj.Center()
		here := gamemath.NewPixelPosition(ex, ey)

		enemy.Chasing = player != nil &&
			!enemy.Exhausted(cfg.Enemy.MaxDamageTimes) &&
			detects(enemy, here, player)

		var vx, vy float64
		if enemy.Chasing {
			state.Set(cfg.StateChase)
			vx, vy = chaseVelocity(enemy, here, *player, dt)
		} else {
			state.Set(cfg.StateWander)
			enemy.Path = nil
			vx, vy = approach(ex, ey, enemy.WanderTarget.X, enemy.WanderTarget.Y, enemy.Speed, dt)
		}
		physics.SpeedX, physics.SpeedY = vx, vy
		if vx != 0 || vy != 0 {
			enemy.Direction = components.Vector{X: math.Copysign(1, vx), Y: math.Copysign(1, vy)}
		}
		state.StateTimer += dt

		if hasPlayer {
			attackPlayer(enemy, obj, playerEntry)
		}
	})

	separateEnemies(ecs, dt)
}

// retargetWander picks a new point within WanderDistance of the enemy and
// forgives earlier hits.
func retargetWander(levelData *components.LevelData, enemy *components.EnemyData, obj *components.ObjectData) {
	enemy.WanderTimer = cfg.Enemy.RandomMoveTime
	enemy.DamageCount = 0

	ex, ey := obj.Center()
	r := cfg.Enemy.WanderDistance
	tx := ex + (levelData.Rand.Float64()*2-1)*r
	ty := ey + (levelData.Rand.Float64()*2-1)*r

	lvl := levelData.CurrentLevel
	tx = gamemath.Clamp(tx, obj.W/2, lvl.WorldWidth()-obj.W/2)
	ty = gamemath.Clamp(ty, obj.H/2, lvl.WorldHeight()-obj.H/2)
	enemy.WanderTarget = components.Vector{X: tx, Y: ty}
}

// detects reports whether the enemy notices the player. BFS enemies measure
// along the grid, plain ones in a straight line.
func detects(enemy *components.EnemyData, here gamemath.Position, player *gamemath.Position) bool {
	if enemy.BFS && enemy.Searcher != nil {
		return enemy.Searcher.IsWithinDetectionRadius(here, player, enemy.DetectionRadius)
	}
	return here.Distance(*player) <= enemy.DetectionRadius
}

// chaseVelocity steers plain enemies straight at the player. BFS enemies head
// for the second cell of the shortest path, or a reachable neighbour of the
// player's cell when the cell itself cannot be reached.
func chaseVelocity(enemy *components.EnemyData, here, player gamemath.Position, dt float64) (float64, float64) {
	px, _ := player.PixelX()
	py, _ := player.PixelY()
	hx, _ := here.PixelX()
	hy, _ := here.PixelY()

	if !enemy.BFS || enemy.Searcher == nil {
		return gamemath.SteerVelocity(hx, hy, px, py, enemy.Speed)
	}

	path, ok := enemy.Searcher.PathToward(here, &player)
	if !ok {
		goal := player.Convert(gamemath.Tile).MustCell()
		start := here.Convert(gamemath.Tile).MustCell()
		for _, d := range playerRing {
			if path, ok = enemy.Searcher.FindPath(start, goal.Add(d[0], d[1])); ok {
				break
			}
		}
	}
	if !ok {
		enemy.Path = nil
		return approach(hx, hy, px, py, enemy.Speed, dt)
	}

	enemy.Path = path
	if len(path) < 2 {
		return approach(hx, hy, px, py, enemy.Speed, dt)
	}
	tx, ty := path[1].Center()
	return approach(hx, hy, tx, ty, enemy.Speed, dt)
}

// approach homes toward a target without overshooting it in one step.
func approach(fromX, fromY, toX, toY, speed, dt float64) (float64, float64) {
	dist := math.Hypot(toX-fromX, toY-fromY)
	if dist == 0 {
		return 0, 0
	}
	if dt > 0 && dist < speed*dt {
		speed = dist / dt
	}
	return gamemath.HomingVelocity(fromX, fromY, toX, toY, speed)
}

func attackPlayer(enemy *components.EnemyData, obj *components.ObjectData, playerEntry *donburi.Entry) {
	if enemy.DamageCooldown > 0 || enemy.Exhausted(cfg.Enemy.MaxDamageTimes) {
		return
	}
	playerObj := components.Object.Get(playerEntry)
	if !obj.Rect().Overlaps(playerObj.Rect()) {
		return
	}
	if damagePlayer(playerEntry, cfg.Enemy.Damage) {
		enemy.DamageCooldown = cfg.Enemy.DamageCooldown
		enemy.DamageCount++
	}
}

// separateEnemies pushes overlapping enemies apart so they do not stack.
func separateEnemies(ecs *ecs.ECS, dt float64) {
	var enemies []*donburi.Entry
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})
	for i := 0; i < len(enemies); i++ {
		a := components.Object.Get(enemies[i])
		for j := i + 1; j < len(enemies); j++ {
			b := components.Object.Get(enemies[j])
			if !a.Rect().Overlaps(b.Rect()) {
				continue
			}
			ax, ay := a.Center()
			bx, by := b.Center()
			dx, dy := ax-bx, ay-by
			if dx == 0 && dy == 0 {
				dx = 1
			}
			px, py := gamemath.HomingVelocity(0, 0, dx, dy, cfg.Enemy.SeparationPush*dt)
			pa := components.Physics.Get(enemies[i])
			pb := components.Physics.Get(enemies[j])
			pa.SpeedX += px
			pa.SpeedY += py
			pb.SpeedX -= px
			pb.SpeedY -= py
		}
	}
}

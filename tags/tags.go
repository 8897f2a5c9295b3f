package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Wall        = donburi.NewTag().SetName("Wall")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Trap        = donburi.NewTag().SetName("Trap")
	Key         = donburi.NewTag().SetName("Key")
	Exit        = donburi.NewTag().SetName("Exit")
	Entrance    = donburi.NewTag().SetName("Entrance")
	Portal      = donburi.NewTag().SetName("Portal")
	Collectible = donburi.NewTag().SetName("Collectible")
)

// Resolv tags for broad-phase collision
const (
	ResolvSolid       = "solid"
	ResolvSpeedBoost  = "speedboost"
	ResolvPlayer      = "Player"
	ResolvEnemy       = "Enemy"
	ResolvTrap        = "trap"
	ResolvKey         = "key"
	ResolvExit        = "exit"
	ResolvPortal      = "portal"
	ResolvCollectible = "collectible"
)

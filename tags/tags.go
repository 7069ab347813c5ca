package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Treat  = donburi.NewTag().SetName("Treat")
	Bush   = donburi.NewTag().SetName("Bush")
)

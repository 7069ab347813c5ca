package components

import "github.com/yohamta/donburi"

type ObstacleData struct {
	Damage float64
}

var Obstacle = donburi.NewComponentType[ObstacleData]()

package components

import (
	"github.com/automoto/pugtreats/control"
	"github.com/automoto/pugtreats/physics"
	"github.com/yohamta/donburi"
)

// PlayerData ties the pug entity to its motion intent and physics adapter.
type PlayerData struct {
	Intent  *control.Store
	Adapter physics.Adapter
}

var Player = donburi.NewComponentType[PlayerData]()

package components

import "github.com/yohamta/donburi"

// PickupData is what a treat grants when the pug touches it.
type PickupData struct {
	Time   float64
	Health float64
}

var Pickup = donburi.NewComponentType[PickupData]()

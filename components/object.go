package components

import (
	"github.com/automoto/pugtreats/physics"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its rigid body.
type ObjectData struct {
	*physics.Body
}

var Object = donburi.NewComponentType[ObjectData]()

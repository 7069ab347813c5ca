package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is the visual pose, copied from the body every tick.
type TransformData struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Scale       float64
}

var Transform = donburi.NewComponentType[TransformData]()

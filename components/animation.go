package components

import (
	"github.com/automoto/pugtreats/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData is the pug's clip state: the mixer holding an action per clip
// and the name of the one active clip.
type AnimationData struct {
	Mixer   *animations.Mixer
	Current string
}

// Active returns the action of the current clip, or nil before the first selection.
func (a *AnimationData) Active() *animations.Action {
	if a.Current == "" {
		return nil
	}
	action, err := a.Mixer.Action(a.Current)
	if err != nil {
		return nil
	}
	return action
}

var Animation = donburi.NewComponentType[AnimationData]()

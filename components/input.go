package components

import (
	cfg "github.com/automoto/pugtreats/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

func (i *InputData) JustReleased(a cfg.ActionID) bool {
	return !i.Current[a] && i.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()

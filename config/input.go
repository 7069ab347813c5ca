package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionForward
	ActionBackward
	ActionTurnLeft
	ActionTurnRight
	ActionJump
	ActionPause
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:      "none",
	ActionForward:   "forward",
	ActionBackward:  "backward",
	ActionTurnLeft:  "turn_left",
	ActionTurnRight: "turn_right",
	ActionJump:      "jump",
	ActionPause:     "pause",
	ActionRestart:   "restart",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputBinding lists the key names bound to an action. Names follow
// ebiten.Key text form ("W", "ArrowUp", "Space").
type InputBinding struct {
	Keys []string `yaml:"keys"`
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding `yaml:"-"`

	// Turn value produced by the turn-left action; turn-right produces the opposite.
	TurnLeftSign int `yaml:"turn_left_sign"`
}

// Input is the global input configuration
var Input InputConfig

func resetInput() {
	Input = InputConfig{
		TurnLeftSign: -1,
		Bindings: map[ActionID]InputBinding{
			ActionForward:   {Keys: []string{"W", "ArrowUp"}},
			ActionBackward:  {Keys: []string{"S", "ArrowDown"}},
			ActionTurnLeft:  {Keys: []string{"A", "ArrowLeft"}},
			ActionTurnRight: {Keys: []string{"D", "ArrowRight"}},
			ActionJump:      {Keys: []string{"Space"}},
			ActionPause:     {Keys: []string{"Escape", "P"}},
			ActionRestart:   {Keys: []string{"Enter"}},
		},
	}
}

// ActionByName resolves a binding section name from a config file.
func ActionByName(name string) (ActionID, bool) {
	for i, n := range actionNames {
		if n == name && ActionID(i) != ActionNone {
			return ActionID(i), true
		}
	}
	return ActionNone, false
}

package control

import "github.com/automoto/pugtreats/config"

// Mapper applies key edges to a Store. Each press or release re-derives the
// three axes from the current intent and changes only the axis its action owns.
type Mapper struct {
	store *Store
}

// NewMapper returns a mapper writing to store.
func NewMapper(store *Store) *Mapper {
	return &Mapper{store: store}
}

// KeyDown applies a press. It reports whether the action is a movement action.
func (m *Mapper) KeyDown(action config.ActionID, now float64) bool {
	forward, turn, jump := m.axes()
	switch action {
	case config.ActionForward:
		forward = 1
	case config.ActionBackward:
		forward = -1
	case config.ActionTurnLeft:
		turn = config.Input.TurnLeftSign
	case config.ActionTurnRight:
		turn = -config.Input.TurnLeftSign
	case config.ActionJump:
		jump = true
	default:
		return false
	}
	m.store.SetIntent(forward, turn, jump, now)
	return true
}

// KeyUp applies a release. Releasing jump leaves the request pending; it is
// consumed by the game loop or by landing.
func (m *Mapper) KeyUp(action config.ActionID, now float64) bool {
	forward, turn, jump := m.axes()
	switch action {
	case config.ActionForward, config.ActionBackward:
		forward = 0
	case config.ActionTurnLeft, config.ActionTurnRight:
		turn = 0
	case config.ActionJump:
	default:
		return false
	}
	m.store.SetIntent(forward, turn, jump, now)
	return true
}

func (m *Mapper) axes() (forward, turn int, jump bool) {
	if in := m.store.Intent(); in != nil {
		return in.Forward, in.Turn, in.Jump
	}
	return 0, 0, false
}

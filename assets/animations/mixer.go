package animations

import "fmt"

// Mixer owns one action per clip of a character.
type Mixer struct {
	actions map[string]*Action
	order   []string
}

// NewMixer creates an action for every clip.
func NewMixer(clips ...*Clip) *Mixer {
	m := &Mixer{actions: make(map[string]*Action, len(clips))}
	for _, c := range clips {
		if _, dup := m.actions[c.Name]; !dup {
			m.order = append(m.order, c.Name)
		}
		m.actions[c.Name] = NewAction(c)
	}
	return m
}

// Action returns the action for a clip name.
func (m *Mixer) Action(name string) (*Action, error) {
	a, ok := m.actions[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownClip)
	}
	return a, nil
}

// StopAllAction stops every action.
func (m *Mixer) StopAllAction() {
	for _, a := range m.actions {
		a.Stop()
	}
}

// Update advances every running action.
func (m *Mixer) Update(dt float64) {
	for _, name := range m.order {
		m.actions[name].Update(dt)
	}
}

// Running returns the names of running actions in clip order.
func (m *Mixer) Running() []string {
	var out []string
	for _, name := range m.order {
		if m.actions[name].IsRunning() {
			out = append(out, name)
		}
	}
	return out
}

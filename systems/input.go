package systems

import (
	"fmt"

	"github.com/automoto/pugtreats/components"
	cfg "github.com/automoto/pugtreats/config"
	"github.com/automoto/pugtreats/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// orbitSensitivity converts mouse drag pixels to radians.
const orbitSensitivity = 0.005

// KeyBindings maps each action to the ebiten keys that trigger it.
type KeyBindings map[cfg.ActionID][]ebiten.Key

// ResolveBindings turns the configured key names into ebiten keys.
func ResolveBindings() (KeyBindings, error) {
	out := make(KeyBindings, len(cfg.Input.Bindings))
	for action, binding := range cfg.Input.Bindings {
		for _, name := range binding.Keys {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("binding %s: key %q: %w", action, name, err)
			}
			out[action] = append(out[action], k)
		}
	}
	return out, nil
}

// NewUpdateInput polls the keyboard into the Input component and forwards
// press and release edges to the session. Must run BEFORE the session tick.
func NewUpdateInput(s *game.Session, bindings KeyBindings) ecs.System {
	var dragging bool
	var lastX, lastY int

	return func(e *ecs.ECS) {
		input := components.Input.Get(s.SessionEntry())

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		for action, keys := range bindings {
			for _, key := range keys {
				if ebiten.IsKeyPressed(key) {
					input.Current[action] = true
				}
			}
		}

		for a := cfg.ActionNone + 1; a < cfg.ActionCount; a++ {
			switch {
			case input.JustPressed(a):
				s.KeyDown(a)
			case input.JustReleased(a):
				s.KeyUp(a)
			}
		}

		// Left drag orbits the camera
		x, y := ebiten.CursorPosition()
		switch {
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
			dragging = true
		case dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
			s.Orbit(-float64(x-lastX)*orbitSensitivity, -float64(y-lastY)*orbitSensitivity)
		default:
			dragging = false
		}
		lastX, lastY = x, y
	}
}

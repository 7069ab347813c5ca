package systems

import (
	"github.com/automoto/pugtreats/components"
	cfg "github.com/automoto/pugtreats/config"
	"github.com/automoto/pugtreats/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateSession advances the round by one ebiten tick.
func NewUpdateSession(s *game.Session) ecs.System {
	return func(e *ecs.ECS) {
		s.Tick(1 / float64(ebiten.TPS()))
	}
}

// NewUpdateGameOver calls restart when the restart action is pressed on a
// finished round.
func NewUpdateGameOver(s *game.Session, restart func()) ecs.System {
	return func(e *ecs.ECS) {
		if !s.State().GameOver {
			return
		}
		if components.Input.Get(s.SessionEntry()).JustPressed(cfg.ActionRestart) {
			restart()
		}
	}
}

package game

import (
	"math"

	"github.com/automoto/pugtreats/components"
	"github.com/automoto/pugtreats/physics"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// handleContact interprets the pug's contacts. Landing clears the jump state;
// treats and bushes change the round only while it is running.
func (s *Session) handleContact(c physics.Contact) {
	if c.Phase != physics.PhaseStart {
		return
	}

	if c.Other == physics.GroundID {
		components.Player.Get(s.player).Intent.ClearJump(s.clock)
		s.reselect()
		return
	}

	if s.State().GameOver {
		return
	}
	entity, ok := s.bodies[c.Other]
	if !ok || !s.World.Valid(entity) {
		return
	}
	e := s.World.Entry(entity)

	switch {
	case e.HasComponent(components.Pickup):
		s.collect(e)
	case e.HasComponent(components.Obstacle):
		s.hit(e)
	}
}

// collect applies a treat and removes exactly that treat and its body.
func (s *Session) collect(e *donburi.Entry) {
	pickup := components.Pickup.Get(e)
	body := components.Object.Get(e).Body
	st := s.State()
	h := components.Health.Get(s.player)

	st.TimeRemaining += pickup.Time
	h.Current = math.Min(h.Max, h.Current+pickup.Health)

	if err := s.Physics.Remove(body.ID); err != nil {
		s.log.Warn("treat body already gone", zap.Error(err))
	}
	delete(s.bodies, body.ID)
	s.World.Remove(e.Entity())

	st.RemainingPickups--
	st.Collected++
	s.log.Debug("treat collected",
		zap.Int("remaining", st.RemainingPickups),
		zap.Float64("time", st.TimeRemaining),
		zap.Float64("health", h.Current),
	)
	s.checkTerminal()
}

func (s *Session) hit(e *donburi.Entry) {
	damage := components.Obstacle.Get(e).Damage
	h := components.Health.Get(s.player)
	st := s.State()

	h.Current -= damage
	st.ObstacleHits++
	s.log.Info("bush hit", zap.Float64("damage", damage), zap.Float64("health", h.Current))
	s.checkTerminal()
}

// checkTerminal ends the round the first time the clock or health runs out.
func (s *Session) checkTerminal() {
	st := s.State()
	if st.GameOver {
		return
	}
	h := components.Health.Get(s.player)

	switch {
	case h.Current <= 0:
		st.Reason = components.ReasonHealth
	case st.TimeRemaining <= 0:
		st.Reason = components.ReasonTime
		st.TimeRemaining = 0
	default:
		return
	}
	st.GameOver = true
	components.Pause.Get(s.session).IsPaused = false

	s.log.Info("game over",
		zap.String("reason", st.Reason),
		zap.Int("collected", st.Collected),
		zap.Float64("survived", st.Elapsed),
	)
	for _, fn := range s.onGameOver {
		fn(*st)
	}
}

// Package game runs one round: it owns the ECS world and the physics world
// and advances them in a fixed per-tick order.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/automoto/pugtreats/archetypes"
	"github.com/automoto/pugtreats/assets"
	"github.com/automoto/pugtreats/components"
	"github.com/automoto/pugtreats/config"
	"github.com/automoto/pugtreats/control"
	"github.com/automoto/pugtreats/logger"
	"github.com/automoto/pugtreats/physics"
	"github.com/automoto/pugtreats/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Options configures a new Session.
type Options struct {
	Level       *assets.Level
	PhysicsMode string // Defaults to config.Physics.Mode
	Seed        int64  // Zero defaults to config.Session.Seed, then the clock
	Logger      *zap.Logger
}

// Session is the context object of one round. Everything the loop touches
// hangs off it; there is no package state.
type Session struct {
	World   donburi.World
	Physics *physics.World
	Level   *assets.Level

	log    *zap.Logger
	rng    *rand.Rand
	clock  float64
	mapper *control.Mapper

	player  *donburi.Entry
	session *donburi.Entry
	camera  *donburi.Entry
	bodies  map[physics.BodyID]donburi.Entity

	onGameOver []func(components.SessionData)
}

// New builds the world for opts.Level: session state, camera, pug, bushes
// and treats.
func New(opts Options) (*Session, error) {
	if opts.Level == nil {
		return nil, fmt.Errorf("new session: no level")
	}
	mode := opts.PhysicsMode
	if mode == "" {
		mode = config.Physics.Mode
	}
	seed := opts.Seed
	if seed == 0 {
		seed = config.Session.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Named("session")
	}

	s := &Session{
		World:   donburi.NewWorld(),
		Physics: physics.NewWorld(),
		Level:   opts.Level,
		log:     log,
		rng:     rand.New(rand.NewSource(seed)),
		bodies:  map[physics.BodyID]donburi.Entity{},
	}

	s.session = archetypes.Session.Spawn(s.World)
	treats := opts.Level.TreatCount()
	components.Session.SetValue(s.session, components.SessionData{
		TimeRemaining:    config.Session.StartTime,
		TotalPickups:     treats,
		RemainingPickups: treats,
	})

	s.camera = archetypes.Camera.Spawn(s.World)
	components.Camera.SetValue(s.camera, components.CameraData{
		FOV:    config.Camera.FOV,
		Near:   config.Camera.Near,
		Far:    config.Camera.Far,
		Width:  config.C.Width,
		Height: config.C.Height,
	})

	if err := s.spawnPlayer(mode); err != nil {
		return nil, err
	}
	for _, b := range opts.Level.Bushes {
		s.spawnBush(b)
	}
	for _, a := range opts.Level.TreatAreas {
		for i := 0; i < a.Count; i++ {
			s.spawnTreat(a)
		}
	}

	s.syncTransforms()
	s.updateCamera()

	s.log.Info("session started",
		zap.String("level", opts.Level.Name),
		zap.String("physics", mode),
		zap.Int("treats", treats),
		zap.Int("bushes", len(opts.Level.Bushes)),
		zap.Int64("seed", seed),
	)
	return s, nil
}

// Tick advances the round by dt seconds: mixers, player motion and physics
// (contacts dispatch here), visual transforms, clip selection, camera, clock
// and terminal check, in that order.
func (s *Session) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	if s.Paused() {
		s.reselect()
		s.updateCamera()
		return
	}
	s.clock += dt

	components.Animation.Each(s.World, func(e *donburi.Entry) {
		components.Animation.Get(e).Mixer.Update(dt)
	})

	s.drivePlayer(dt)
	s.Physics.Step(dt)
	s.syncTransforms()
	s.reselect()
	s.updateCamera()

	st := s.State()
	if !st.GameOver {
		st.TimeRemaining -= dt
		st.Elapsed += dt
	}
	s.checkTerminal()
}

func (s *Session) drivePlayer(dt float64) {
	p := components.Player.Get(s.player)
	p.Intent.Ramp()

	if in := p.Intent.Intent(); in != nil && in.Jump && !p.Adapter.Airborne() {
		p.Intent.ConsumeJump(s.clock)
		if p.Adapter.ApplyImpulseUp() {
			s.log.Debug("jump", zap.Float64("clock", s.clock))
		}
	}

	p.Adapter.ApplyMotion(p.Intent.Intent(), dt)
}

func (s *Session) syncTransforms() {
	components.Transform.Each(s.World, func(e *donburi.Entry) {
		body := components.Object.Get(e).Body
		tr := components.Transform.Get(e)
		tr.Position = body.Position
		tr.Orientation = body.Orientation
	})
}

// KeyDown applies a pressed action. Movement actions re-select the clip
// right away.
func (s *Session) KeyDown(action config.ActionID) {
	if action == config.ActionPause {
		s.TogglePause()
		return
	}
	if s.mapper.KeyDown(action, s.clock) {
		s.reselect()
	}
}

// KeyUp applies a released action.
func (s *Session) KeyUp(action config.ActionID) {
	if s.mapper.KeyUp(action, s.clock) {
		s.reselect()
	}
}

// TogglePause flips the pause state. A finished round cannot be paused.
func (s *Session) TogglePause() {
	p := components.Pause.Get(s.session)
	if s.State().GameOver {
		p.IsPaused = false
		return
	}
	p.IsPaused = !p.IsPaused
	s.log.Debug("pause", zap.Bool("paused", p.IsPaused))
}

// Paused reports whether the round is paused.
func (s *Session) Paused() bool {
	return components.Pause.Get(s.session).IsPaused
}

// Resize updates the output size and camera aspect.
func (s *Session) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	cam := components.Camera.Get(s.camera)
	cam.Width = width
	cam.Height = height
}

// OnGameOver registers fn to run once when the round ends.
func (s *Session) OnGameOver(fn func(components.SessionData)) {
	s.onGameOver = append(s.onGameOver, fn)
}

// State returns the session singleton.
func (s *Session) State() *components.SessionData {
	return components.Session.Get(s.session)
}

// SessionEntry returns the entity holding the session singletons.
func (s *Session) SessionEntry() *donburi.Entry {
	return s.session
}

// Player returns the pug entity.
func (s *Session) Player() *donburi.Entry {
	return s.player
}

// Camera returns the camera state.
func (s *Session) Camera() *components.CameraData {
	return components.Camera.Get(s.camera)
}

// Clock returns seconds of unpaused play.
func (s *Session) Clock() float64 {
	return s.clock
}

// Treats returns the treat entities still in the world.
func (s *Session) Treats() []*donburi.Entry {
	var out []*donburi.Entry
	tags.Treat.Each(s.World, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

// HUDState is what the HUD shows.
type HUDState struct {
	TimeRemaining    float64
	Health           float64
	MaxHealth        float64
	HealthFraction   float64
	RemainingPickups int
	TotalPickups     int
	Collected        int
	GameOver         bool
	Paused           bool
	Clip             string
	Speed            float64
}

// HUD snapshots the values the HUD draws.
func (s *Session) HUD() HUDState {
	st := s.State()
	h := components.Health.Get(s.player)
	hud := HUDState{
		TimeRemaining:    st.TimeRemaining,
		Health:           h.Current,
		MaxHealth:        h.Max,
		HealthFraction:   h.Fraction(),
		RemainingPickups: st.RemainingPickups,
		TotalPickups:     st.TotalPickups,
		Collected:        st.Collected,
		GameOver:         st.GameOver,
		Paused:           s.Paused(),
		Clip:             components.Animation.Get(s.player).Current,
	}
	if in := components.Player.Get(s.player).Intent.Intent(); in != nil {
		hud.Speed = in.Speed
	}
	return hud
}

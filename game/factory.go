package game

import (
	"fmt"
	"math"

	"github.com/automoto/pugtreats/archetypes"
	"github.com/automoto/pugtreats/assets"
	"github.com/automoto/pugtreats/assets/animations"
	"github.com/automoto/pugtreats/components"
	"github.com/automoto/pugtreats/config"
	"github.com/automoto/pugtreats/control"
	"github.com/automoto/pugtreats/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// Treat body size and look.
const (
	treatHalfExtent = 0.5
	treatScale      = 0.05
)

// NewPugMixer cuts every configured clip out of the pug track.
func NewPugMixer() (*animations.Mixer, error) {
	track := animations.Track{
		Name:   config.Animation.TrackName,
		Frames: config.Animation.TrackFrames,
		FPS:    config.Animation.FPS,
	}
	clips := make([]*animations.Clip, 0, len(config.PugClips))
	for _, def := range config.PugClips {
		c, err := animations.Subclip(track, def.Name, def.StartFrame, def.EndFrame)
		if err != nil {
			return nil, err
		}
		clips = append(clips, c)
	}
	return animations.NewMixer(clips...), nil
}

func (s *Session) spawnPlayer(mode string) error {
	spawn := s.Level.Spawn
	half := mgl64.Vec3{config.Player.HalfExtentX, config.Player.HalfExtentY, config.Player.HalfExtentZ}
	body := s.Physics.Add(physics.BodyDef{
		Name:          "pug",
		Position:      mgl64.Vec3{spawn.X, half.Y() + spawn.Height, spawn.Z},
		Yaw:           spawn.Yaw,
		HalfExtents:   half,
		Mass:          config.Player.Mass,
		Material:      physics.Material{Friction: config.Physics.Friction, Restitution: config.Physics.Restitution},
		AngularFactor: mgl64.Vec3{0, 1, 0},

		LinearDamping:  config.Physics.LinearDamping,
		AngularDamping: config.Physics.AngularDamping,
	})

	adapter, err := physics.NewAdapter(mode, s.Physics, body.ID)
	if err != nil {
		return fmt.Errorf("spawn pug: %w", err)
	}

	mixer, err := NewPugMixer()
	if err != nil {
		return fmt.Errorf("spawn pug: %w", err)
	}
	idle, err := mixer.Action(config.ClipIdle)
	if err != nil {
		return fmt.Errorf("spawn pug: %w", err)
	}
	idle.Play()

	store := &control.Store{}
	s.mapper = control.NewMapper(store)

	e := archetypes.Player.Spawn(s.World)
	components.Player.SetValue(e, components.PlayerData{Intent: store, Adapter: adapter})
	components.Object.SetValue(e, components.ObjectData{Body: body})
	components.Transform.SetValue(e, components.TransformData{Scale: 1})
	components.Health.SetValue(e, components.HealthData{
		Current: config.Session.StartHealth,
		Max:     config.Session.MaxHealth,
	})
	components.Animation.SetValue(e, components.AnimationData{Mixer: mixer, Current: config.ClipIdle})

	s.player = e
	s.bodies[body.ID] = e.Entity()

	return adapter.OnCollision(s.handleContact)
}

func (s *Session) spawnBush(b assets.Bush) {
	body := s.Physics.Add(physics.BodyDef{
		Name:        "bush",
		Position:    mgl64.Vec3{b.X, b.Y, b.Z},
		HalfExtents: mgl64.Vec3{b.Radius, b.Radius, b.Radius},
		Material:    physics.Material{Friction: config.Physics.Friction},
	})

	damage := b.Damage
	if damage == 0 {
		damage = config.Session.ObstacleDamage
	}

	e := archetypes.Bush.Spawn(s.World)
	components.Obstacle.SetValue(e, components.ObstacleData{Damage: damage})
	components.Object.SetValue(e, components.ObjectData{Body: body})
	components.Transform.SetValue(e, components.TransformData{Scale: b.Radius})
	s.bodies[body.ID] = e.Entity()
}

func (s *Session) spawnTreat(a assets.TreatArea) {
	x := a.MinX + s.rng.Float64()*(a.MaxX-a.MinX)
	z := a.MinZ + s.rng.Float64()*(a.MaxZ-a.MinZ)
	y := treatHalfExtent + s.rng.Float64()*a.MaxHeight
	yaw := s.rng.Float64() * 2 * math.Pi

	body := s.Physics.Add(physics.BodyDef{
		Name:        "treat",
		Position:    mgl64.Vec3{x, y, z},
		Yaw:         yaw,
		HalfExtents: mgl64.Vec3{treatHalfExtent, treatHalfExtent, treatHalfExtent},
		Mass:        0.1,
		Sensor:      true,
		Material:    physics.Material{Friction: config.Physics.Friction},
	})

	e := archetypes.Treat.Spawn(s.World)
	components.Pickup.SetValue(e, components.PickupData{
		Time:   config.Session.TreatTime,
		Health: config.Session.TreatHealth,
	})
	components.Object.SetValue(e, components.ObjectData{Body: body})
	components.Transform.SetValue(e, components.TransformData{Scale: treatScale})
	s.bodies[body.ID] = e.Entity()
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// file mirrors the globals for YAML overrides. Sections left out of the
// file keep their current values.
type file struct {
	Window    Config                  `yaml:"window"`
	Player    PlayerConfig            `yaml:"player"`
	Physics   PhysicsConfig           `yaml:"physics"`
	Animation AnimationConfig         `yaml:"animation"`
	Session   SessionConfig           `yaml:"session"`
	Camera    CameraConfig            `yaml:"camera"`
	HUD       HUDConfig               `yaml:"hud"`
	Debug     DebugConfig             `yaml:"debug"`
	Logging   LoggingConfig           `yaml:"logging"`
	Input     InputConfig             `yaml:"input"`
	Bindings  map[string]InputBinding `yaml:"bindings"`
	Clips     []ClipDef               `yaml:"clips"`
}

// Load applies overrides with priority: defaults < file < flags.
func Load() error {
	if path := ConfigPath(); path != "" {
		if err := LoadFile(path); err != nil {
			return fmt.Errorf("loading config from %s: %w", path, err)
		}
	}
	applyFlags()
	return Validate()
}

// LoadFile merges a YAML file over the current globals.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	f := file{
		Window:    *C,
		Player:    Player,
		Physics:   Physics,
		Animation: Animation,
		Session:   Session,
		Camera:    Camera,
		HUD:       HUD,
		Debug:     Debug,
		Logging:   Logging,
		Input:     Input,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}

	for name, b := range f.Bindings {
		id, ok := ActionByName(name)
		if !ok {
			return fmt.Errorf("unknown action %q in bindings", name)
		}
		Input.Bindings[id] = b
	}

	window := f.Window
	C = &window
	Player = f.Player
	Physics = f.Physics
	Animation = f.Animation
	Session = f.Session
	Camera = f.Camera
	HUD = f.HUD
	Debug = f.Debug
	Logging = f.Logging
	Input.TurnLeftSign = f.Input.TurnLeftSign
	if len(f.Clips) > 0 {
		PugClips = f.Clips
	}
	return nil
}

// Validate rejects values the game cannot run with.
func Validate() error {
	switch Physics.Mode {
	case PhysicsVelocity, PhysicsImpulse:
	default:
		return fmt.Errorf("physics mode %q: want %q or %q", Physics.Mode, PhysicsVelocity, PhysicsImpulse)
	}
	if Input.TurnLeftSign != -1 && Input.TurnLeftSign != 1 {
		return fmt.Errorf("turn_left_sign %d: want -1 or 1", Input.TurnLeftSign)
	}
	if Player.Mass <= 0 {
		return fmt.Errorf("player mass %v must be positive", Player.Mass)
	}
	if Animation.FPS <= 0 {
		return fmt.Errorf("animation fps %v must be positive", Animation.FPS)
	}
	if Session.MaxHealth <= 0 {
		return fmt.Errorf("max health %v must be positive", Session.MaxHealth)
	}
	if Physics.CellSize <= 0 {
		return fmt.Errorf("cell size %d must be positive", Physics.CellSize)
	}
	return nil
}

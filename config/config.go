package config

import (
	"image/color"
	"math"
)

// PlayerConfig contains all pug-related configuration values
type PlayerConfig struct {
	// Movement
	BaseSpeed   float64 `yaml:"base_speed"`   // Speed a fresh intent starts at
	MaxSpeed    float64 `yaml:"max_speed"`    // Ramp cap
	SpeedRamp   float64 `yaml:"speed_ramp"`   // Added per tick while moving forward
	TurnRate    float64 `yaml:"turn_rate"`    // Yaw rate in rad/s for a full turn input
	JumpImpulse float64 `yaml:"jump_impulse"` // Upward impulse applied once per jump

	// Body
	Mass        float64 `yaml:"mass"`
	HalfExtentX float64 `yaml:"half_extent_x"`
	HalfExtentY float64 `yaml:"half_extent_y"`
	HalfExtentZ float64 `yaml:"half_extent_z"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	// Mode selects the adapter realization: "velocity" or "impulse"
	Mode string `yaml:"mode"`

	Gravity        float64 `yaml:"gravity"`
	LinearDamping  float64 `yaml:"linear_damping"`
	AngularDamping float64 `yaml:"angular_damping"`
	Friction       float64 `yaml:"friction"`
	Restitution    float64 `yaml:"restitution"`
	ContactSlop    float64 `yaml:"contact_slop"` // Gap still counted as touching

	// Impulse realization
	DriveScale     float64 `yaml:"drive_scale"`     // Impulse per unit of speed per second
	DriveOffset    float64 `yaml:"drive_offset"`    // Rear offset of the drive point
	SteerForce     float64 `yaml:"steer_force"`     // Lateral force of each steering pair member
	SteerOffset    float64 `yaml:"steer_offset"`    // Distance of the steering pair from the center
	ImpulseDamping float64 `yaml:"impulse_damping"` // Linear damping used by the impulse realization

	// Broadphase
	WorldExtent float64 `yaml:"world_extent"` // Half-size of the simulated XZ area
	CellSize    int     `yaml:"cell_size"`
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	TrackName        string  `yaml:"track_name"`
	TrackFrames      int     `yaml:"track_frames"`
	FPS              float64 `yaml:"fps"`
	CrossfadeSeconds float64 `yaml:"crossfade_seconds"`

	// Speed tiers, checked from the top
	SprintAbove float64 `yaml:"sprint_above"`
	RunAbove    float64 `yaml:"run_above"`
}

// SessionConfig contains game session rules
type SessionConfig struct {
	StartTime      float64 `yaml:"start_time"` // Seconds on the clock at start
	StartHealth    float64 `yaml:"start_health"`
	MaxHealth      float64 `yaml:"max_health"`
	TreatTime      float64 `yaml:"treat_time"`   // Seconds granted per treat
	TreatHealth    float64 `yaml:"treat_health"` // Health granted per treat
	ObstacleDamage float64 `yaml:"obstacle_damage"`
	Seed           int64   `yaml:"seed"` // 0 picks a time based seed
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	OffsetX      float64 `yaml:"offset_x"` // Character local offset of the eye
	OffsetY      float64 `yaml:"offset_y"`
	OffsetZ      float64 `yaml:"offset_z"`
	TargetHeight float64 `yaml:"target_height"` // Look-at point above the character
	FOV          float64 `yaml:"fov"`           // Vertical field of view in degrees
	Near         float64 `yaml:"near"`
	Far          float64 `yaml:"far"`
	MinPolar     float64 `yaml:"min_polar"` // Radians from straight up
	MaxPolar     float64 `yaml:"max_polar"`
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	HealthBarWidth  float64 `yaml:"health_bar_width"`
	HealthBarHeight float64 `yaml:"health_bar_height"`
	Margin          float64 `yaml:"margin"`
	FontSize        float64 `yaml:"font_size"`
	TitleFontSize   float64 `yaml:"title_font_size"`

	HealthBarBgColor color.RGBA `yaml:"-"`
	HealthBarFgColor color.RGBA `yaml:"-"`
	TextColor        color.RGBA `yaml:"-"`
}

// GameOverConfig contains game over overlay configuration values
type GameOverConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	TitleY       float64
	MessageY     float64
	HintY        float64
	Title        string
	RestartHint  string
}

// SceneConfig contains world rendering colors
type SceneConfig struct {
	SkyColor      color.RGBA
	GroundColor   color.RGBA
	GridColor     color.RGBA
	PugColor      color.RGBA
	PugNoseColor  color.RGBA
	TreatColor    color.RGBA
	BushColor     color.RGBA
	ShadowColor   color.RGBA
	GridSpacing   float64
	GridHalfWidth float64
}

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	Level  string `yaml:"level"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Animation AnimationConfig
var Session SessionConfig
var Camera CameraConfig
var HUD HUDConfig
var GameOver GameOverConfig
var Scene SceneConfig
var Debug DebugConfig
var Logging LoggingConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool `yaml:"overlay"` // Draw clip, speed and FPS
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Physics realizations
const (
	PhysicsVelocity = "velocity"
	PhysicsImpulse  = "impulse"
)

func init() {
	Reset()
}

// Reset restores every global to its built-in default.
func Reset() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Pug Treats",
		Level:  "levels/meadow.tmx",
	}

	Player = PlayerConfig{
		BaseSpeed:   23,
		MaxSpeed:    60,
		SpeedRamp:   1,
		TurnRate:    1,
		JumpImpulse: 6,

		Mass:        1,
		HalfExtentX: 1.5,
		HalfExtentY: 1.5,
		HalfExtentZ: 2.5,
	}

	Physics = PhysicsConfig{
		Mode:           PhysicsVelocity,
		Gravity:        -9.82,
		LinearDamping:  0,
		AngularDamping: 0,
		Friction:       0.5,
		Restitution:    0,
		ContactSlop:    0.05,

		DriveScale:     2,
		DriveOffset:    1.5,
		SteerForce:     1.6,
		SteerOffset:    2,
		ImpulseDamping: 0.9,

		WorldExtent: 400,
		CellSize:    8,
	}

	Animation = AnimationConfig{
		TrackName:        "animations[8]",
		TrackFrames:      2760,
		FPS:              30,
		CrossfadeSeconds: 0.5,
		SprintAbove:      40,
		RunAbove:         30,
	}

	Session = SessionConfig{
		StartTime:      30,
		StartHealth:    100,
		MaxHealth:      100,
		TreatTime:      0.5,
		TreatHealth:    0.5,
		ObstacleDamage: 10,
	}

	Camera = CameraConfig{
		OffsetX:      0,
		OffsetY:      5,
		OffsetZ:      -50,
		TargetHeight: 5,
		FOV:          20,
		Near:         0.1,
		Far:          1000,
		MinPolar:     0,
		MaxPolar:     math.Pi * 0.45,
	}

	HUD = HUDConfig{
		HealthBarWidth:   200,
		HealthBarHeight:  14,
		Margin:           12,
		FontSize:         16,
		TitleFontSize:    36,
		HealthBarBgColor: color.RGBA{R: 40, G: 40, B: 40, A: 200},
		HealthBarFgColor: BrightGreen,
		TextColor:        White,
	}

	GameOver = GameOverConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   Red,
		TextColor:    White,
		TitleY:       0.35,
		MessageY:     0.5,
		HintY:        0.65,
		Title:        "GAME OVER",
		RestartHint:  "Press ENTER to play again",
	}

	Scene = SceneConfig{
		SkyColor:      color.RGBA{R: 126, G: 192, B: 238, A: 255},
		GroundColor:   color.RGBA{R: 86, G: 140, B: 70, A: 255},
		GridColor:     color.RGBA{R: 70, G: 118, B: 58, A: 255},
		PugColor:      color.RGBA{R: 214, G: 178, B: 128, A: 255},
		PugNoseColor:  color.RGBA{R: 40, G: 30, B: 24, A: 255},
		TreatColor:    color.RGBA{R: 168, G: 96, B: 40, A: 255},
		BushColor:     color.RGBA{R: 34, G: 96, B: 40, A: 255},
		ShadowColor:   color.RGBA{R: 0, G: 0, B: 0, A: 60},
		GridSpacing:   10,
		GridHalfWidth: 100,
	}

	Debug = DebugConfig{}

	Logging = LoggingConfig{
		Level: "info",
	}

	resetInput()
	resetClips()
}

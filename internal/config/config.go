// Package config loads and validates the yaml configuration for the demo
// binary. Absent keys keep their defaults, so partial files are fine.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jasonthepenguin/boarscape/common"
	"github.com/jasonthepenguin/boarscape/engine/player"
	"github.com/jasonthepenguin/boarscape/internal/logger"
)

// ErrInvalid marks configuration values the demo cannot run with.
var ErrInvalid = errors.New("config: invalid")

// WindowConfig sizes the demo window.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	TargetFPS int32  `yaml:"target_fps"` // 0 = uncapped
}

// WorldConfig drives procedural world generation.
type WorldConfig struct {
	Seed          uint64  `yaml:"seed"`
	HalfSize      float32 `yaml:"half_size"`
	GroundY       float32 `yaml:"ground_y"`
	TreeCount     int     `yaml:"tree_count"`
	RockCount     int     `yaml:"rock_count"`
	CloudCount    int     `yaml:"cloud_count"`
	SpawnClearing float32 `yaml:"spawn_clearing"`
	Margin        float32 `yaml:"margin"`
	Workers       int     `yaml:"workers"` // 0 = one per spare CPU
	WindX         float32 `yaml:"wind_x"`
	WindZ         float32 `yaml:"wind_z"`
}

// PlayerConfig tunes boar movement. Zero fields fall back to the package
// defaults when mapped.
type PlayerConfig struct {
	TargetHeight  float32 `yaml:"target_height"`
	Radius        float32 `yaml:"radius"`
	WalkSpeed     float32 `yaml:"walk_speed"`
	RunSpeed      float32 `yaml:"run_speed"`
	JumpSpeed     float32 `yaml:"jump_speed"`
	Gravity       float32 `yaml:"gravity"`
	RotationSpeed float32 `yaml:"rotation_speed"`
	Accelerate    float32 `yaml:"accelerate"`
	Decelerate    float32 `yaml:"decelerate"`
	BoundsMargin  float32 `yaml:"bounds_margin"`
}

// CameraConfig tunes the orbit rig.
type CameraConfig struct {
	MinDistance       float32 `yaml:"min_distance"`
	MaxDistance       float32 `yaml:"max_distance"`
	DefaultDistance   float32 `yaml:"default_distance"`
	MinPhi            float32 `yaml:"min_phi"`
	MaxPhi            float32 `yaml:"max_phi"`
	DefaultPhi        float32 `yaml:"default_phi"`
	DefaultYaw        float32 `yaml:"default_yaw"`
	Smoothing         float32 `yaml:"smoothing"`
	RotateSensitivity float32 `yaml:"rotate_sensitivity"`
	ZoomStep          float32 `yaml:"zoom_step"`
}

// NPCConfig sizes and tunes the piglet herd.
type NPCConfig struct {
	Count        int      `yaml:"count"`
	FollowStart  float32  `yaml:"follow_start"`
	KeepDistance float32  `yaml:"keep_distance"`
	FollowSpeed  float32  `yaml:"follow_speed"`
	GrazeSpeed   float32  `yaml:"graze_speed"`
	WanderRadius float32  `yaml:"wander_radius"`
	Names        []string `yaml:"names"`
}

// Config is the root of the demo configuration file.
type Config struct {
	Window  WindowConfig        `yaml:"window"`
	Logging logger.LoggerConfig `yaml:"logging"`
	World   WorldConfig         `yaml:"world"`
	Player  PlayerConfig        `yaml:"player"`
	Camera  CameraConfig        `yaml:"camera"`
	NPC     NPCConfig           `yaml:"npc"`
}

// Default returns the configuration the demo runs with when no file is
// given. Player and camera values mirror the player package defaults.
func Default() Config {
	p := player.DefaultConfig()
	return Config{
		Window: WindowConfig{
			Title:     "boarscape",
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
		},
		Logging: logger.DevelopmentConfig(),
		World: WorldConfig{
			Seed:          1,
			HalfSize:      60,
			GroundY:       0,
			TreeCount:     160,
			RockCount:     60,
			CloudCount:    24,
			SpawnClearing: 10,
			Margin:        2,
			Workers:       0,
			WindX:         1,
			WindZ:         0.2,
		},
		Player: PlayerConfig{
			TargetHeight:  p.TargetHeight,
			Radius:        p.PlayerRadius,
			WalkSpeed:     p.WalkSpeed,
			RunSpeed:      p.RunSpeed,
			JumpSpeed:     p.JumpSpeed,
			Gravity:       p.Gravity,
			RotationSpeed: p.RotationSpeed,
			Accelerate:    p.Accelerate,
			Decelerate:    p.Decelerate,
			BoundsMargin:  p.BoundsMargin,
		},
		Camera: CameraConfig{
			MinDistance:       p.MinDistance,
			MaxDistance:       p.MaxDistance,
			DefaultDistance:   p.DefaultDistance,
			MinPhi:            p.MinPhi,
			MaxPhi:            p.MaxPhi,
			DefaultPhi:        p.DefaultPhi,
			DefaultYaw:        p.DefaultYaw,
			Smoothing:         p.CameraSmoothing,
			RotateSensitivity: p.RotateSensitivity,
			ZoomStep:          p.ZoomStep,
		},
		NPC: NPCConfig{
			Count:        4,
			FollowStart:  7,
			KeepDistance: 3,
			FollowSpeed:  5.2,
			GrazeSpeed:   1.6,
			WanderRadius: 4,
		},
	}
}

// Load reads the yaml file at path over the defaults and validates the
// result. An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the structural sections and then the mapped player
// configuration. Structural failures wrap ErrInvalid; movement value
// failures pass through player.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS < 0 {
		return fmt.Errorf("%w: target_fps %d", ErrInvalid, c.Window.TargetFPS)
	}
	if c.World.HalfSize <= 0 {
		return fmt.Errorf("%w: world half_size %v", ErrInvalid, c.World.HalfSize)
	}
	if c.World.TreeCount < 0 || c.World.RockCount < 0 || c.World.CloudCount < 0 {
		return fmt.Errorf("%w: negative world feature count", ErrInvalid)
	}
	if c.World.SpawnClearing < 0 || c.World.Margin < 0 {
		return fmt.Errorf("%w: negative world spacing", ErrInvalid)
	}
	if c.World.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.World.Workers)
	}
	if c.NPC.Count < 0 {
		return fmt.Errorf("%w: npc count %d", ErrInvalid, c.NPC.Count)
	}
	if c.NPC.FollowStart < 0 || c.NPC.KeepDistance < 0 ||
		c.NPC.FollowSpeed < 0 || c.NPC.GrazeSpeed < 0 || c.NPC.WanderRadius < 0 {
		return fmt.Errorf("%w: negative npc tuning value", ErrInvalid)
	}
	if c.NPC.FollowStart > 0 && c.NPC.KeepDistance > 0 && c.NPC.FollowStart < c.NPC.KeepDistance {
		return fmt.Errorf("%w: npc follow_start %v below keep_distance %v",
			ErrInvalid, c.NPC.FollowStart, c.NPC.KeepDistance)
	}
	return c.ToPlayerConfig().Validate()
}

// ToPlayerConfig maps the player and camera sections onto a player.Config.
// Zero fields take the corresponding package default, so a zero-value Config
// still maps to something runnable.
func (c *Config) ToPlayerConfig() player.Config {
	d := player.DefaultConfig()
	return player.Config{
		TargetHeight:      common.Coalesce(c.Player.TargetHeight, d.TargetHeight),
		PlayerRadius:      common.Coalesce(c.Player.Radius, d.PlayerRadius),
		WalkSpeed:         common.Coalesce(c.Player.WalkSpeed, d.WalkSpeed),
		RunSpeed:          common.Coalesce(c.Player.RunSpeed, d.RunSpeed),
		JumpSpeed:         common.Coalesce(c.Player.JumpSpeed, d.JumpSpeed),
		Gravity:           common.Coalesce(c.Player.Gravity, d.Gravity),
		RotationSpeed:     common.Coalesce(c.Player.RotationSpeed, d.RotationSpeed),
		Accelerate:        common.Coalesce(c.Player.Accelerate, d.Accelerate),
		Decelerate:        common.Coalesce(c.Player.Decelerate, d.Decelerate),
		BoundsMargin:      common.Coalesce(c.Player.BoundsMargin, d.BoundsMargin),
		MinDistance:       common.Coalesce(c.Camera.MinDistance, d.MinDistance),
		MaxDistance:       common.Coalesce(c.Camera.MaxDistance, d.MaxDistance),
		DefaultDistance:   common.Coalesce(c.Camera.DefaultDistance, d.DefaultDistance),
		MinPhi:            common.Coalesce(c.Camera.MinPhi, d.MinPhi),
		MaxPhi:            common.Coalesce(c.Camera.MaxPhi, d.MaxPhi),
		DefaultPhi:        common.Coalesce(c.Camera.DefaultPhi, d.DefaultPhi),
		DefaultYaw:        common.Coalesce(c.Camera.DefaultYaw, d.DefaultYaw),
		CameraSmoothing:   common.Coalesce(c.Camera.Smoothing, d.CameraSmoothing),
		RotateSensitivity: common.Coalesce(c.Camera.RotateSensitivity, d.RotateSensitivity),
		ZoomStep:          common.Coalesce(c.Camera.ZoomStep, d.ZoomStep),
	}
}

// Package player provides the third-person character controller: input
// intents drive camera-relative locomotion with damping, gravity, jumping,
// collision resolution, and bounds clamping, while the orbit rig follows.
package player

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("player: invalid configuration")

// Config holds the immutable tuning for one controller instance. Validate
// rejects malformed values at construction so a bad config fails fast
// instead of producing silently wrong movement.
type Config struct {
	// TargetHeight lifts the camera aim point above the target's position.
	TargetHeight float32

	// PlayerRadius is the character's horizontal collision radius.
	PlayerRadius float32

	// WalkSpeed and RunSpeed are the horizontal speeds in units/sec.
	WalkSpeed float32
	RunSpeed  float32

	// JumpSpeed is the vertical launch velocity; Gravity the downward
	// acceleration while airborne.
	JumpSpeed float32
	Gravity   float32

	// RotationSpeed is the facing damping rate toward the move direction.
	RotationSpeed float32

	// Accelerate damps velocity toward the desired speed while there is
	// move intent; Decelerate applies while coasting to rest. Accelerate
	// must not be lower, so starting to move stays snappier than stopping.
	Accelerate float32
	Decelerate float32

	// Camera orbit distance bounds and starting value.
	MinDistance     float32
	MaxDistance     float32
	DefaultDistance float32

	// Camera polar angle bounds and starting values.
	MinPhi     float32
	MaxPhi     float32
	DefaultPhi float32
	DefaultYaw float32

	// CameraSmoothing is the rig's positional damping rate.
	CameraSmoothing float32

	// RotateSensitivity converts drag pixels to radians; ZoomStep is the
	// distance change per scroll tick.
	RotateSensitivity float32
	ZoomStep          float32

	// BoundsMargin keeps the character this far inside the world edge.
	BoundsMargin float32
}

// DefaultConfig returns the tuning the demo ships with.
//
// Returns:
//   - Config: a valid default configuration
func DefaultConfig() Config {
	return Config{
		TargetHeight: 1.1,
		PlayerRadius: 0.55,

		WalkSpeed: 4.6,
		RunSpeed:  8.0,
		JumpSpeed: 7.2,
		Gravity:   18.5,

		RotationSpeed: 12.0,
		Accelerate:    10.0,
		Decelerate:    6.0,

		MinDistance:     2.5,
		MaxDistance:     14.0,
		DefaultDistance: 6.5,

		MinPhi:     0.25,
		MaxPhi:     1.45,
		DefaultPhi: 1.05,
		DefaultYaw: 0.0,

		CameraSmoothing:   6.0,
		RotateSensitivity: 0.005,
		ZoomStep:          0.9,

		BoundsMargin: 1.5,
	}
}

// Validate reports the first malformed field, wrapped in ErrInvalidConfig.
//
// Returns:
//   - error: nil if the configuration is usable
func (c Config) Validate() error {
	if c.TargetHeight < 0 {
		return fmt.Errorf("%w: target height must not be negative, got %v", ErrInvalidConfig, c.TargetHeight)
	}
	if c.PlayerRadius <= 0 {
		return fmt.Errorf("%w: player radius must be positive, got %v", ErrInvalidConfig, c.PlayerRadius)
	}
	if c.WalkSpeed <= 0 {
		return fmt.Errorf("%w: walk speed must be positive, got %v", ErrInvalidConfig, c.WalkSpeed)
	}
	if c.RunSpeed < c.WalkSpeed {
		return fmt.Errorf("%w: run speed %v below walk speed %v", ErrInvalidConfig, c.RunSpeed, c.WalkSpeed)
	}
	if c.JumpSpeed <= 0 {
		return fmt.Errorf("%w: jump speed must be positive, got %v", ErrInvalidConfig, c.JumpSpeed)
	}
	if c.Gravity <= 0 {
		return fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalidConfig, c.Gravity)
	}
	if c.RotationSpeed <= 0 {
		return fmt.Errorf("%w: rotation speed must be positive, got %v", ErrInvalidConfig, c.RotationSpeed)
	}
	if c.Accelerate <= 0 || c.Decelerate <= 0 {
		return fmt.Errorf("%w: acceleration rates must be positive, got %v and %v", ErrInvalidConfig, c.Accelerate, c.Decelerate)
	}
	if c.Accelerate < c.Decelerate {
		return fmt.Errorf("%w: accelerate %v below decelerate %v", ErrInvalidConfig, c.Accelerate, c.Decelerate)
	}
	if c.MinDistance <= 0 || c.MinDistance > c.MaxDistance {
		return fmt.Errorf("%w: distance bounds [%v, %v]", ErrInvalidConfig, c.MinDistance, c.MaxDistance)
	}
	if c.DefaultDistance < c.MinDistance || c.DefaultDistance > c.MaxDistance {
		return fmt.Errorf("%w: default distance %v outside [%v, %v]", ErrInvalidConfig, c.DefaultDistance, c.MinDistance, c.MaxDistance)
	}
	if c.MinPhi <= 0 || c.MinPhi > c.MaxPhi || c.MaxPhi >= float32(math.Pi) {
		return fmt.Errorf("%w: phi bounds [%v, %v]", ErrInvalidConfig, c.MinPhi, c.MaxPhi)
	}
	if c.DefaultPhi < c.MinPhi || c.DefaultPhi > c.MaxPhi {
		return fmt.Errorf("%w: default phi %v outside [%v, %v]", ErrInvalidConfig, c.DefaultPhi, c.MinPhi, c.MaxPhi)
	}
	if c.CameraSmoothing <= 0 {
		return fmt.Errorf("%w: camera smoothing must be positive, got %v", ErrInvalidConfig, c.CameraSmoothing)
	}
	if c.RotateSensitivity <= 0 {
		return fmt.Errorf("%w: rotate sensitivity must be positive, got %v", ErrInvalidConfig, c.RotateSensitivity)
	}
	if c.ZoomStep <= 0 {
		return fmt.Errorf("%w: zoom step must be positive, got %v", ErrInvalidConfig, c.ZoomStep)
	}
	if c.BoundsMargin < 0 {
		return fmt.Errorf("%w: bounds margin must not be negative, got %v", ErrInvalidConfig, c.BoundsMargin)
	}
	return nil
}

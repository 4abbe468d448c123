// Package common contains small shared primitives used across the simulation
// packages: frame-rate independent damping, guarded vector normalization,
// angle helpers, and a deterministic random stream for world generation.
package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the squared-length threshold below which a vector is treated as
// degenerate for normalization purposes.
const Epsilon = 1e-8

// Damp moves current toward target by a frame-rate independent exponential
// factor. Repeated application converges monotonically without overshoot for
// any lambda > 0, regardless of the dt used per step.
//
// Parameters:
//   - current: the value being smoothed
//   - target: the value being approached
//   - lambda: convergence rate (higher is snappier)
//   - dt: elapsed time in seconds
//
// Returns:
//   - float32: the smoothed value
func Damp(current, target, lambda, dt float32) float32 {
	return current + (target-current)*DampFactor(lambda, dt)
}

// DampFactor returns the time-based blend factor 1 - e^(-lambda*dt) used by
// Damp. Exposed separately so angular interpolation can reuse the same
// frame-rate independent factor.
//
// Parameters:
//   - lambda: convergence rate
//   - dt: elapsed time in seconds
//
// Returns:
//   - float32: blend factor in [0, 1)
func DampFactor(lambda, dt float32) float32 {
	return 1.0 - float32(math.Exp(float64(-lambda*dt)))
}

// Damp3 applies Damp componentwise to a vector.
//
// Parameters:
//   - current: the vector being smoothed
//   - target: the vector being approached
//   - lambda: convergence rate
//   - dt: elapsed time in seconds
//
// Returns:
//   - mgl32.Vec3: the smoothed vector
func Damp3(current, target mgl32.Vec3, lambda, dt float32) mgl32.Vec3 {
	t := DampFactor(lambda, dt)
	return mgl32.Vec3{
		current[0] + (target[0]-current[0])*t,
		current[1] + (target[1]-current[1])*t,
		current[2] + (target[2]-current[2])*t,
	}
}

// SafeNormalize returns v normalized, or fallback when v is too short to
// normalize without dividing by a near-zero length.
//
// Parameters:
//   - v: the vector to normalize
//   - fallback: substitute direction for degenerate input
//
// Returns:
//   - mgl32.Vec3: a unit vector
func SafeNormalize(v, fallback mgl32.Vec3) mgl32.Vec3 {
	if v.LenSqr() < Epsilon {
		return fallback
	}
	return v.Normalize()
}

// SafeNormalize2 is the planar form of SafeNormalize.
//
// Parameters:
//   - v: the vector to normalize
//   - fallback: substitute direction for degenerate input
//
// Returns:
//   - mgl32.Vec2: a unit vector
func SafeNormalize2(v, fallback mgl32.Vec2) mgl32.Vec2 {
	if v.LenSqr() < Epsilon {
		return fallback
	}
	return v.Normalize()
}

// AngDiff returns the smallest signed angle that rotates a onto b, in
// (-pi, pi].
//
// Parameters:
//   - a: angle in radians
//   - b: angle in radians
//
// Returns:
//   - float32: shortest signed delta from a to b
func AngDiff(a, b float32) float32 {
	d := math.Mod(float64(b-a)+math.Pi, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return float32(d - math.Pi)
}

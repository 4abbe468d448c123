package camera

import "github.com/go-gl/mathgl/mgl32"

// Rig defines the third-person orbit camera. The rig owns the orbital
// parameters (yaw, phi, distance) and drives a Handle from them: each update
// recomputes the desired position from the aim point and smooths the camera
// toward it, while orientation snaps to the aim point exactly.
//
// Phi is the polar angle measured from the vertical axis, so phi near zero
// places the camera almost directly overhead and phi near pi/2 places it at
// ground level. The clamped range keeps the camera between a low angle and
// near-overhead.
type Rig interface {
	// Update advances the rig by one frame. The desired position is the aim
	// point plus the spherical offset; the camera position is damped toward
	// it at the configured smoothing rate, and the camera is pointed at the
	// aim point exactly.
	//
	// Parameters:
	//   - aim: world-space point to orbit and look at
	//   - dt: frame delta time in seconds
	Update(aim mgl32.Vec3, dt float32)

	// Snap places the camera at the desired orbit position immediately,
	// skipping the smoothing. Use it when the target teleports or at setup.
	//
	// Parameters:
	//   - aim: world-space point to orbit and look at
	Snap(aim mgl32.Vec3)

	// Drag applies a pointer-drag delta in device pixels. Horizontal motion
	// is inverted into yaw; vertical motion adjusts phi, clamped to the phi
	// bounds. Both axes are scaled by the rotate sensitivity.
	//
	// Parameters:
	//   - dx: horizontal drag delta in pixels
	//   - dy: vertical drag delta in pixels
	Drag(dx, dy float32)

	// Zoom adjusts the orbit distance by a fixed step per scroll tick,
	// clamped to the distance bounds. Positive delta zooms in.
	//
	// Parameters:
	//   - delta: scroll ticks, sign gives direction
	Zoom(delta float32)

	// Orbit rotates the rig by raw angle deltas, bypassing the drag
	// sensitivity. Phi stays clamped to its bounds.
	//
	// Parameters:
	//   - dYaw: yaw delta in radians
	//   - dPhi: phi delta in radians
	Orbit(dYaw, dPhi float32)

	// Yaw returns the horizontal orbit angle around the Y axis.
	//
	// Returns:
	//   - float32: yaw in radians
	Yaw() float32

	// SetYaw sets the horizontal orbit angle directly.
	//
	// Parameters:
	//   - yaw: new angle in radians
	SetYaw(yaw float32)

	// Phi returns the polar angle from the vertical axis.
	//
	// Returns:
	//   - float32: phi in radians
	Phi() float32

	// SetPhi sets the polar angle directly, clamped to the phi bounds.
	//
	// Parameters:
	//   - phi: new angle in radians
	SetPhi(phi float32)

	// Distance returns the current orbit distance from the aim point.
	//
	// Returns:
	//   - float32: distance in world units
	Distance() float32

	// SetDistance sets the orbit distance directly, clamped to the distance
	// bounds.
	//
	// Parameters:
	//   - distance: new distance in world units
	SetDistance(distance float32)
}

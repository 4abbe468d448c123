// Package camera provides the third-person orbit rig and the handle
// abstraction over the render camera it drives.
package camera

import "github.com/go-gl/mathgl/mgl32"

// Handle is the rig's view of the render camera. Implementations adapt a
// concrete backend camera (raylib, a test double) so the rig never depends
// on the render layer directly.
type Handle interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// SetPosition moves the camera to a world-space position.
	//
	// Parameters:
	//   - position: world-space coordinates
	SetPosition(position mgl32.Vec3)

	// LookAt orients the camera toward a world-space point.
	//
	// Parameters:
	//   - point: world-space coordinates to aim at
	LookAt(point mgl32.Vec3)
}

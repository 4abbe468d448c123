package actor

import "github.com/go-gl/mathgl/mgl32"

// ActorOption is a functional option for configuring an Actor during construction.
type ActorOption func(*actorImpl)

// WithName sets the actor's display name.
//
// Parameters:
//   - name: the display name
//
// Returns:
//   - ActorOption: functional option to set the name
func WithName(name string) ActorOption {
	return func(a *actorImpl) {
		a.name = name
	}
}

// WithPosition sets the actor's initial world-space position.
//
// Parameters:
//   - position: world-space coordinates
//
// Returns:
//   - ActorOption: functional option to set the position
func WithPosition(position mgl32.Vec3) ActorOption {
	return func(a *actorImpl) {
		a.position = position
	}
}

// WithOrientation sets the actor's initial rotation.
//
// Parameters:
//   - orientation: the orientation quaternion
//
// Returns:
//   - ActorOption: functional option to set the orientation
func WithOrientation(orientation mgl32.Quat) ActorOption {
	return func(a *actorImpl) {
		a.orientation = orientation
	}
}

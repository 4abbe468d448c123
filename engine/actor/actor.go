// Package actor provides the transform entities the controller drives and
// the render loop reads back.
package actor

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
)

// nextID hands out unique actor identifiers.
var nextID atomic.Uint64

type actorImpl struct {
	id          uint64
	name        string
	position    mgl32.Vec3
	orientation mgl32.Quat
}

// Actor defines a world entity with a position and an orientation.
// Locomotion and presentation code share actors through this interface:
// writers move them, readers place geometry from them.
type Actor interface {
	// ID returns the actor's unique identifier.
	//
	// Returns:
	//   - uint64: the actor ID
	ID() uint64

	// Name returns the actor's display name.
	//
	// Returns:
	//   - string: the display name, may be empty
	Name() string

	// Position returns the actor's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space position
	Position() mgl32.Vec3

	// SetPosition moves the actor to a world-space position.
	//
	// Parameters:
	//   - position: world-space coordinates
	SetPosition(position mgl32.Vec3)

	// Orientation returns the actor's rotation.
	//
	// Returns:
	//   - mgl32.Quat: the orientation quaternion
	Orientation() mgl32.Quat

	// SetOrientation replaces the actor's rotation.
	//
	// Parameters:
	//   - orientation: the new orientation quaternion
	SetOrientation(orientation mgl32.Quat)
}

var _ Actor = &actorImpl{}

// NewActor creates a new Actor configured with the given options. Each actor
// receives a process-unique ID.
//
// Parameters:
//   - options: functional options to configure the actor
//
// Returns:
//   - Actor: the newly created actor
func NewActor(options ...ActorOption) Actor {
	a := &actorImpl{
		id:          nextID.Add(1),
		orientation: mgl32.QuatIdent(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *actorImpl) ID() uint64 {
	return a.id
}

func (a *actorImpl) Name() string {
	return a.name
}

func (a *actorImpl) Position() mgl32.Vec3 {
	return a.position
}

func (a *actorImpl) SetPosition(position mgl32.Vec3) {
	a.position = position
}

func (a *actorImpl) Orientation() mgl32.Quat {
	return a.orientation
}

func (a *actorImpl) SetOrientation(orientation mgl32.Quat) {
	a.orientation = orientation
}

package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jasonthepenguin/boarscape/common"
	"github.com/jasonthepenguin/boarscape/engine/actor"
	"github.com/jasonthepenguin/boarscape/engine/world"
)

// GroundState is the locomotion contact state.
type GroundState int

const (
	// Grounded means the character's feet rest at ground height.
	Grounded GroundState = iota
	// Airborne means the character is under gravity.
	Airborne
)

// String returns the state name.
//
// Returns:
//   - string: "grounded" or "airborne"
func (s GroundState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	default:
		return "unknown"
	}
}

// defaultForward is the fallback move basis when the camera looks straight
// up or down and its flattened direction degenerates.
var defaultForward = mgl32.Vec3{0, 0, 1}

// StepInput is one frame of consumed intents plus the camera position the
// move basis derives from.
type StepInput struct {
	// MoveX and MoveZ are the normalized intent axes: +X strafes camera
	// right, +Z moves camera forward.
	MoveX float32
	MoveZ float32

	// Running selects run speed over walk speed.
	Running bool

	// Jump requests a jump this frame. The request is evaluated once and
	// discarded whether or not it fires, so a press while airborne does
	// not queue a jump for landing.
	Jump bool

	// CameraPos is the camera's current world-space position.
	CameraPos mgl32.Vec3
}

// StepResult reports the frame's observable transitions.
type StepResult struct {
	// Jumped is true when this step launched the character.
	Jumped bool

	// Moving is true when there was horizontal move intent this frame.
	Moving bool
}

// Locomotion integrates one character against an environment: velocity
// damping, gravity, jumping, ground clamp, bounds clamp, and collider
// resolution, in a fixed step order. It owns the velocity and contact
// state and mutates the target actor's position and orientation.
type Locomotion struct {
	cfg    Config
	target actor.Actor
	env    world.Environment

	velocity mgl32.Vec3
	state    GroundState
}

// NewLocomotion creates locomotion bound to a target and environment.
// A nil environment falls back to flat defaults (ground at 0, a large
// half-extent, no colliders) rather than failing.
//
// Parameters:
//   - cfg: validated configuration
//   - target: the actor to move, must be non-nil
//   - env: environment queries, may be nil
//
// Returns:
//   - *Locomotion: the newly created locomotion
func NewLocomotion(cfg Config, target actor.Actor, env world.Environment) *Locomotion {
	if target == nil {
		panic("player: NewLocomotion requires a non-nil Actor")
	}
	l := &Locomotion{
		cfg:    cfg,
		target: target,
		env:    env,
	}
	if target.Position().Y() > l.groundY() {
		l.state = Airborne
	}
	return l
}

// Velocity returns the current world-space velocity.
//
// Returns:
//   - mgl32.Vec3: velocity in units/sec
func (l *Locomotion) Velocity() mgl32.Vec3 {
	return l.velocity
}

// State returns the current contact state.
//
// Returns:
//   - GroundState: Grounded or Airborne
func (l *Locomotion) State() GroundState {
	return l.state
}

func (l *Locomotion) groundY() float32 {
	if l.env == nil {
		return world.DefaultGroundY
	}
	return l.env.GroundY()
}

func (l *Locomotion) boundsHalfSize() float32 {
	if l.env == nil {
		return world.DefaultBoundsHalfSize
	}
	return l.env.BoundsHalfSize()
}

func (l *Locomotion) colliders() []world.Collider {
	if l.env == nil {
		return nil
	}
	return l.env.Colliders()
}

// Step advances the character by dt seconds. The step order is fixed:
// move basis, desired velocity, damping, jump, gravity, integration,
// ground clamp, bounds clamp, collider resolution, facing. Callers clamp
// dt to a sane maximum before calling; large steps tunnel.
//
// Parameters:
//   - in: the frame's intents and camera position
//   - dt: frame delta time in seconds
//
// Returns:
//   - StepResult: transitions observable by collaborators
func (l *Locomotion) Step(in StepInput, dt float32) StepResult {
	var res StepResult
	pos := l.target.Position()

	// Camera-relative move basis, flattened to the horizontal plane.
	look := l.aimPoint(pos).Sub(in.CameraPos)
	forward := common.SafeNormalize(mgl32.Vec3{look.X(), 0, look.Z()}, defaultForward)
	right := mgl32.Vec3{-forward.Z(), 0, forward.X()}

	moveDir := forward.Mul(in.MoveZ).Add(right.Mul(in.MoveX))
	moving := moveDir.LenSqr() > common.Epsilon
	if moving {
		moveDir = moveDir.Normalize()
	}
	res.Moving = moving

	// Desired horizontal velocity, with asymmetric damping rates so the
	// start is snappier than the stop.
	speed := l.cfg.WalkSpeed
	if in.Running {
		speed = l.cfg.RunSpeed
	}
	var desired mgl32.Vec3
	rate := l.cfg.Decelerate
	if moving {
		desired = moveDir.Mul(speed)
		rate = l.cfg.Accelerate
	}
	l.velocity[0] = common.Damp(l.velocity.X(), desired.X(), rate, dt)
	l.velocity[2] = common.Damp(l.velocity.Z(), desired.Z(), rate, dt)

	// Jump launches only from the ground. The request does not survive
	// this step either way.
	if l.state == Grounded && in.Jump {
		l.velocity[1] = l.cfg.JumpSpeed
		l.state = Airborne
		res.Jumped = true
	}

	if l.state == Airborne {
		l.velocity[1] -= l.cfg.Gravity * dt
	}

	pos = pos.Add(l.velocity.Mul(dt))

	// Ground clamp: no bounce, no persisting penetration.
	if ground := l.groundY(); pos.Y() <= ground {
		pos[1] = ground
		l.velocity[1] = 0
		l.state = Grounded
	}

	// Bounds clamp is a hard stop; velocity is untouched so the character
	// can keep pushing against the edge.
	limit := l.boundsHalfSize() - l.cfg.BoundsMargin
	pos[0] = mgl32.Clamp(pos.X(), -limit, limit)
	pos[2] = mgl32.Clamp(pos.Z(), -limit, limit)

	// Collider resolution reads the environment fresh every frame; the
	// owner may rebuild the list between frames.
	for _, c := range l.colliders() {
		nx, nz, depth, ok := world.PushOut(pos.X(), pos.Z(), l.cfg.PlayerRadius, c)
		if !ok {
			continue
		}
		pos[0] += nx * depth
		pos[2] += nz * depth

		// Remove only the inward velocity component so sliding along the
		// surface is preserved.
		vn := l.velocity.X()*nx + l.velocity.Z()*nz
		if vn < 0 {
			l.velocity[0] -= vn * nx
			l.velocity[2] -= vn * nz
		}
	}

	l.target.SetPosition(pos)

	// Facing turns toward the move direction; idle keeps the last facing,
	// even mid-air.
	if moving {
		desiredYaw := float32(math.Atan2(float64(moveDir.X()), float64(moveDir.Z())))
		currentFwd := l.target.Orientation().Rotate(mgl32.Vec3{0, 0, 1})
		currentYaw := float32(math.Atan2(float64(currentFwd.X()), float64(currentFwd.Z())))

		yaw := currentYaw + common.AngDiff(currentYaw, desiredYaw)*common.DampFactor(l.cfg.RotationSpeed, dt)
		l.target.SetOrientation(mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0}))
	}

	return res
}

// aimPoint is the camera aim: the target position lifted by the configured
// height.
func (l *Locomotion) aimPoint(pos mgl32.Vec3) mgl32.Vec3 {
	return pos.Add(mgl32.Vec3{0, l.cfg.TargetHeight, 0})
}

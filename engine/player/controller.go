package player

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jasonthepenguin/boarscape/engine/actor"
	"github.com/jasonthepenguin/boarscape/engine/camera"
	"github.com/jasonthepenguin/boarscape/engine/input"
	"github.com/jasonthepenguin/boarscape/engine/world"
)

// Controller wires the input tracker, orbit rig, and locomotion into one
// per-frame update. Construction attaches input listeners; Dispose removes
// them again.
type Controller interface {
	// Update advances the controller by dt seconds: consume buffered
	// intents, apply drag and zoom to the rig, smooth the camera, step
	// locomotion, and fire any transition callbacks. Callers clamp dt to a
	// sane maximum (the frame stepper does this). No-op after Dispose.
	//
	// Parameters:
	//   - dt: frame delta time in seconds
	Update(dt float32)

	// Dispose unregisters all input listeners. Idempotent, and safe to
	// call at any point after construction.
	Dispose()

	// SetJumpCallback registers a callback fired when a jump launches.
	// Pass nil to clear.
	//
	// Parameters:
	//   - cb: invoked synchronously from Update
	SetJumpCallback(cb func())

	// SetMovementChangeCallback registers a callback fired on the
	// moving/idle transition edge, not every frame. Pass nil to clear.
	//
	// Parameters:
	//   - cb: invoked synchronously from Update with the new state
	SetMovementChangeCallback(cb func(moving bool))

	// Moving reports whether the character had move intent last frame.
	//
	// Returns:
	//   - bool: true while moving
	Moving() bool

	// Rig returns the orbit rig for direct camera adjustments.
	//
	// Returns:
	//   - camera.Rig: the controller's rig
	Rig() camera.Rig

	// Locomotion returns the locomotion state for reads (velocity,
	// ground state).
	//
	// Returns:
	//   - *Locomotion: the controller's locomotion
	Locomotion() *Locomotion
}

type controllerImpl struct {
	cfg    Config
	target actor.Actor
	cam    camera.Handle

	tracker    input.Tracker
	rig        camera.Rig
	locomotion *Locomotion

	onJump           func()
	onMovementChange func(moving bool)

	moving   bool
	disposed bool
}

// Compile-time interface compliance check
var _ Controller = &controllerImpl{}

// New creates a controller bound to a target actor, camera, environment,
// and input source. It validates the configuration, attaches input
// listeners, and snaps the camera onto its orbit.
//
// Parameters:
//   - target: the character's root transform, must be non-nil
//   - cam: the camera to drive, must be non-nil
//   - env: environment queries, may be nil for flat defaults
//   - source: the input event source, must be non-nil
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
//   - error: non-nil if a required collaborator is missing or the
//     configuration is invalid
func New(target actor.Actor, cam camera.Handle, env world.Environment, source input.Source, options ...Option) (Controller, error) {
	if target == nil {
		return nil, errors.New("player: New requires a non-nil target Actor")
	}
	if cam == nil {
		return nil, errors.New("player: New requires a non-nil camera Handle")
	}
	if source == nil {
		return nil, errors.New("player: New requires a non-nil input Source")
	}

	c := &controllerImpl{
		cfg:    DefaultConfig(),
		target: target,
		cam:    cam,
	}
	for _, option := range options {
		option(c)
	}

	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}

	c.tracker = input.NewTracker(source)
	c.rig = camera.NewRig(cam,
		camera.WithYaw(c.cfg.DefaultYaw),
		camera.WithPhi(c.cfg.DefaultPhi),
		camera.WithDistance(c.cfg.DefaultDistance),
		camera.WithPhiBounds(c.cfg.MinPhi, c.cfg.MaxPhi),
		camera.WithDistanceBounds(c.cfg.MinDistance, c.cfg.MaxDistance),
		camera.WithSmoothing(c.cfg.CameraSmoothing),
		camera.WithRotateSensitivity(c.cfg.RotateSensitivity),
		camera.WithZoomStep(c.cfg.ZoomStep),
	)
	c.locomotion = NewLocomotion(c.cfg, target, env)

	c.rig.Snap(c.aim())
	return c, nil
}

func (c *controllerImpl) aim() mgl32.Vec3 {
	return c.target.Position().Add(mgl32.Vec3{0, c.cfg.TargetHeight, 0})
}

func (c *controllerImpl) Update(dt float32) {
	if c.disposed {
		return
	}

	// One consistent read of everything buffered since last frame.
	in := c.tracker.Consume()

	if in.DragX != 0 || in.DragY != 0 {
		c.rig.Drag(in.DragX, in.DragY)
	}
	if in.Zoom != 0 {
		c.rig.Zoom(in.Zoom)
	}
	c.rig.Update(c.aim(), dt)

	res := c.locomotion.Step(StepInput{
		MoveX:     in.MoveX,
		MoveZ:     in.MoveZ,
		Running:   in.Running,
		Jump:      in.Jump,
		CameraPos: c.cam.Position(),
	}, dt)

	if res.Jumped && c.onJump != nil {
		c.onJump()
	}
	if res.Moving != c.moving {
		c.moving = res.Moving
		if c.onMovementChange != nil {
			c.onMovementChange(c.moving)
		}
	}
}

func (c *controllerImpl) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.tracker.Detach()
}

func (c *controllerImpl) SetJumpCallback(cb func()) {
	c.onJump = cb
}

func (c *controllerImpl) SetMovementChangeCallback(cb func(moving bool)) {
	c.onMovementChange = cb
}

func (c *controllerImpl) Moving() bool {
	return c.moving
}

func (c *controllerImpl) Rig() camera.Rig {
	return c.rig
}

func (c *controllerImpl) Locomotion() *Locomotion {
	return c.locomotion
}

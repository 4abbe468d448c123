// Package npc drives the piglet herd: ambient companions that graze around
// a home anchor and trot after the player once left too far behind.
package npc

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jasonthepenguin/boarscape/common"
	"github.com/jasonthepenguin/boarscape/engine/actor"
	"github.com/jasonthepenguin/boarscape/engine/world"
)

// State is the behavior state of a single NPC.
type State int

const (
	// StateGrazing wanders between targets near the home anchor with idle
	// pauses in between.
	StateGrazing State = iota
	// StateFollowing heads straight for the player until back within the
	// keep distance.
	StateFollowing
)

// String returns a readable name for the state.
//
// Returns:
//   - string: "grazing" or "following"
func (s State) String() string {
	switch s {
	case StateGrazing:
		return "grazing"
	case StateFollowing:
		return "following"
	default:
		return "unknown"
	}
}

const (
	// arriveRadius is how close a piglet must get to its wander target
	// before it counts as arrived.
	arriveRadius float32 = 0.3
	// slowRadius is the distance at which a piglet eases off while
	// approaching a stop.
	slowRadius float32 = 1.0
	// wanderGiveUp abandons a wander leg that an obstacle keeps the piglet
	// from ever finishing.
	wanderGiveUp float32 = 6.0
	// phasePerMeter converts distance traveled into walk-bob phase.
	phasePerMeter float32 = 5.5
)

var defaultNames = []string{
	"Truffle", "Button", "Hamlet", "Biscuit", "Clover", "Pip", "Maple", "Nugget",
}

// NPC is one piglet. The exported fields are what rendering consumes;
// behavior bookkeeping stays unexported.
type NPC struct {
	Name     string
	Position mgl32.Vec3
	// Facing is the yaw around +Y in radians, zero looking down +Z.
	Facing float32
	State  State
	// Phase accumulates with distance traveled and drives the walk bob.
	Phase float32

	anchor       mgl32.Vec2
	wanderTarget mgl32.Vec2
	pauseTimer   float32
	wanderTimer  float32
	speedScale   float32
}

// System owns the piglets as a flat value slice. It is intended for
// single-owner use: one goroutine calls Update and reads NPCs.
type System struct {
	env    world.Environment
	target actor.Actor
	rng    *common.Rand

	followStart  float32
	keepDistance float32
	followSpeed  float32
	grazeSpeed   float32
	wanderRadius float32
	bodyRadius   float32
	turnSpeed    float32
	names        []string

	npcs []NPC
}

// NewSystem creates a piglet herd scattered around the target's current
// position. Placement, naming, and behavior timing are deterministic for a
// given seed. A nil env falls back to the world defaults.
//
// Parameters:
//   - env: environment queried for ground height, bounds, and colliders
//   - target: the player actor the herd follows, must be non-nil
//   - count: number of piglets, negative counts spawn none
//   - seed: seed for placement and behavior timing
//   - options: optional overrides applied before the herd is spawned
//
// Returns:
//   - *System: the initialized herd
func NewSystem(env world.Environment, target actor.Actor, count int, seed uint64, options ...SystemOption) *System {
	if target == nil {
		panic("npc: NewSystem requires a non-nil Actor")
	}
	if count < 0 {
		count = 0
	}

	s := &System{
		env:          env,
		target:       target,
		rng:          common.NewRand(seed),
		followStart:  7.0,
		keepDistance: 3.0,
		followSpeed:  5.2,
		grazeSpeed:   1.6,
		wanderRadius: 4.0,
		bodyRadius:   0.35,
		turnSpeed:    9.0,
		names:        defaultNames,
	}

	for _, option := range options {
		option(s)
	}
	if s.followStart < s.keepDistance {
		s.followStart = s.keepDistance
	}

	home := target.Position()
	groundY := s.groundY()
	s.npcs = make([]NPC, count)
	for i := range s.npcs {
		ang := s.rng.Angle()
		radius := s.rng.RangeF(s.keepDistance*0.5, s.keepDistance+0.5)
		x := home.X() + float32(math.Cos(float64(ang)))*radius
		z := home.Z() + float32(math.Sin(float64(ang)))*radius

		s.npcs[i] = NPC{
			Name:         s.names[i%len(s.names)],
			Position:     mgl32.Vec3{x, groundY, z},
			Facing:       s.rng.Angle(),
			State:        StateGrazing,
			Phase:        s.rng.RangeF(0, 2*math.Pi),
			anchor:       mgl32.Vec2{x, z},
			wanderTarget: mgl32.Vec2{x, z},
			pauseTimer:   s.rng.RangeF(0, 1.5),
			speedScale:   s.rng.RangeF(0.85, 1.15),
		}
	}
	return s
}

// NPCs returns the herd for rendering.
//
// Returns:
//   - []NPC: borrowed view, do not mutate
func (s *System) NPCs() []NPC {
	return s.npcs
}

// Update advances every piglet by one frame: state selection against the
// player distance, movement toward the active target, ground and bounds
// clamping, tree push-out, and damped facing toward the travel direction.
//
// Parameters:
//   - dt: frame delta time in seconds
func (s *System) Update(dt float32) {
	if dt <= 0 {
		return
	}

	playerPos := s.target.Position()
	groundY := s.groundY()
	limit := s.boundsHalfSize() - s.bodyRadius
	colliders := s.colliders()

	for i := range s.npcs {
		n := &s.npcs[i]

		dx := playerPos.X() - n.Position.X()
		dz := playerPos.Z() - n.Position.Z()
		distSqr := dx*dx + dz*dz

		switch n.State {
		case StateGrazing:
			if distSqr > s.followStart*s.followStart {
				n.State = StateFollowing
			}
		case StateFollowing:
			if distSqr <= s.keepDistance*s.keepDistance {
				// Caught up: settle down and graze where the player stopped.
				n.State = StateGrazing
				n.anchor = mgl32.Vec2{n.Position.X(), n.Position.Z()}
				n.wanderTarget = n.anchor
				n.wanderTimer = 0
				n.pauseTimer = s.rng.RangeF(0.4, 1.6)
			}
		}

		var moveX, moveZ, speed float32
		switch n.State {
		case StateFollowing:
			dist := float32(math.Sqrt(float64(distSqr)))
			if dist > s.keepDistance {
				moveX = dx / dist
				moveZ = dz / dist
				speed = s.followSpeed * n.speedScale
				if dist < s.keepDistance+slowRadius {
					speed *= 0.6
				}
			}
		case StateGrazing:
			if n.pauseTimer > 0 {
				n.pauseTimer -= dt
				break
			}
			wx := n.wanderTarget.X() - n.Position.X()
			wz := n.wanderTarget.Y() - n.Position.Z()
			wd := float32(math.Sqrt(float64(wx*wx + wz*wz)))
			if wd < arriveRadius || n.wanderTimer > wanderGiveUp {
				n.wanderTimer = 0
				n.pauseTimer = s.rng.RangeF(0.8, 2.5)
				ang := s.rng.Angle()
				radius := s.rng.RangeF(0.5, s.wanderRadius)
				n.wanderTarget = mgl32.Vec2{
					n.anchor.X() + float32(math.Cos(float64(ang)))*radius,
					n.anchor.Y() + float32(math.Sin(float64(ang)))*radius,
				}
				break
			}
			n.wanderTimer += dt
			moveX = wx / wd
			moveZ = wz / wd
			speed = s.grazeSpeed * n.speedScale
			if wd < slowRadius {
				speed *= 0.55
			}
		}

		if speed > 0 {
			step := speed * dt
			n.Position[0] += moveX * step
			n.Position[2] += moveZ * step
			n.Phase += step * phasePerMeter
		}

		n.Position[1] = groundY
		n.Position[0] = mgl32.Clamp(n.Position.X(), -limit, limit)
		n.Position[2] = mgl32.Clamp(n.Position.Z(), -limit, limit)

		for _, c := range colliders {
			if nx, nz, depth, ok := world.PushOut(n.Position.X(), n.Position.Z(), s.bodyRadius, c); ok {
				n.Position[0] += nx * depth
				n.Position[2] += nz * depth
			}
		}

		if speed > 0 {
			want := float32(math.Atan2(float64(moveX), float64(moveZ)))
			n.Facing += common.AngDiff(n.Facing, want) * common.DampFactor(s.turnSpeed, dt)
		}
	}
}

func (s *System) groundY() float32 {
	if s.env == nil {
		return world.DefaultGroundY
	}
	return s.env.GroundY()
}

func (s *System) boundsHalfSize() float32 {
	if s.env == nil {
		return world.DefaultBoundsHalfSize
	}
	return s.env.BoundsHalfSize()
}

func (s *System) colliders() []world.Collider {
	if s.env == nil {
		return nil
	}
	return s.env.Colliders()
}

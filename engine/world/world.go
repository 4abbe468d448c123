// Package world provides the procedurally generated outdoor environment:
// trees, rocks, drifting clouds, and the circular colliders locomotion and
// NPC movement resolve against.
package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jasonthepenguin/boarscape/common"
)

// Defaults substituted when environment data is absent.
const (
	DefaultGroundY        float32 = 0.0
	DefaultBoundsHalfSize float32 = 5000.0
)

// Collider is a static circular obstacle in the horizontal plane.
// Position holds world (x, z).
type Collider struct {
	Position mgl32.Vec2
	Radius   float32
}

// Environment is the read-only query surface movement code consumes.
// Owners may rebuild the collider list between frames, so consumers treat
// every call as a fresh read and never cache lengths or indices.
type Environment interface {
	// GroundY returns the walkable ground height.
	//
	// Returns:
	//   - float32: ground height in world units
	GroundY() float32

	// BoundsHalfSize returns half the side length of the square play area.
	//
	// Returns:
	//   - float32: half-extent in world units
	BoundsHalfSize() float32

	// Colliders returns the static circular obstacles for this frame.
	//
	// Returns:
	//   - []Collider: borrowed view, valid for the current frame only
	Colliders() []Collider
}

// Tree is a generated tree. The trunk is the colliding part; the canopy is
// presentation only.
type Tree struct {
	Position     mgl32.Vec3
	TrunkRadius  float32
	Height       float32
	CanopyRadius float32
	Shade        uint8
}

// Rock is non-colliding ground decor.
type Rock struct {
	Position mgl32.Vec3
	Radius   float32
	Shade    uint8
}

// Cloud drifts with the wind above the play area.
type Cloud struct {
	Position mgl32.Vec3
	Size     mgl32.Vec3
	Speed    float32
}

// World is the concrete generated environment. It is intended for
// single-owner use: one goroutine calls Update and reads the accessors.
type World struct {
	seed     uint64
	groundY  float32
	halfSize float32
	wind     mgl32.Vec2

	trees     []Tree
	rocks     []Rock
	clouds    []Cloud
	colliders []Collider
}

// Compile-time interface compliance check
var _ Environment = &World{}

func (w *World) GroundY() float32 {
	return w.groundY
}

func (w *World) BoundsHalfSize() float32 {
	return w.halfSize
}

func (w *World) Colliders() []Collider {
	return w.colliders
}

// Seed returns the seed the world was generated from.
//
// Returns:
//   - uint64: the generation seed
func (w *World) Seed() uint64 {
	return w.seed
}

// Wind returns the horizontal wind direction and strength driving clouds.
//
// Returns:
//   - mgl32.Vec2: wind vector, (x, z) world axes
func (w *World) Wind() mgl32.Vec2 {
	return w.wind
}

// Trees returns the generated trees for rendering.
//
// Returns:
//   - []Tree: borrowed view, do not mutate
func (w *World) Trees() []Tree {
	return w.trees
}

// Rocks returns the generated rocks for rendering.
//
// Returns:
//   - []Rock: borrowed view, do not mutate
func (w *World) Rocks() []Rock {
	return w.rocks
}

// Clouds returns the drifting clouds for rendering.
//
// Returns:
//   - []Cloud: borrowed view, do not mutate
func (w *World) Clouds() []Cloud {
	return w.clouds
}

// Update advances the ambient pieces of the world by one frame. Clouds
// drift with the wind and wrap to the opposite edge at the half-extent.
//
// Parameters:
//   - dt: frame delta time in seconds
func (w *World) Update(dt float32) {
	for i := range w.clouds {
		c := &w.clouds[i]
		c.Position[0] += w.wind.X() * c.Speed * dt
		c.Position[2] += w.wind.Y() * c.Speed * dt

		if c.Position[0] > w.halfSize {
			c.Position[0] = -w.halfSize
		} else if c.Position[0] < -w.halfSize {
			c.Position[0] = w.halfSize
		}
		if c.Position[2] > w.halfSize {
			c.Position[2] = -w.halfSize
		} else if c.Position[2] < -w.halfSize {
			c.Position[2] = w.halfSize
		}
	}
}

// PushOut resolves a circle of the given radius at (x, z) against a single
// collider. When the circles overlap it returns the separating normal
// pointing away from the collider and the penetration depth; movement code
// shifts the circle by normal*depth to restore separation. Coincident
// centers fall back to the +X normal rather than dividing by zero.
//
// Parameters:
//   - x, z: horizontal center of the moving circle
//   - radius: radius of the moving circle
//   - c: the static collider to test against
//
// Returns:
//   - nx, nz: unit separating normal, zero when there is no overlap
//   - depth: penetration depth, zero when there is no overlap
//   - ok: true if the circles overlapped
func PushOut(x, z, radius float32, c Collider) (nx, nz, depth float32, ok bool) {
	dx := x - c.Position.X()
	dz := z - c.Position.Y()
	minDist := radius + c.Radius

	distSqr := dx*dx + dz*dz
	if distSqr >= minDist*minDist {
		return 0, 0, 0, false
	}
	if distSqr < common.Epsilon {
		return 1, 0, minDist, true
	}

	dist := float32(math.Sqrt(float64(distSqr)))
	return dx / dist, dz / dist, minDist - dist, true
}

package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jasonthepenguin/boarscape/common"
)

// rigImpl is the single implementation of Rig. Orbital parameters live here;
// the wrapped Handle only ever receives absolute positions and aim points.
type rigImpl struct {
	mu     *sync.Mutex
	handle Handle

	// Spherical coordinates (offset from the aim point)
	yaw      float32
	phi      float32 // Polar angle from the vertical axis
	distance float32

	// Orbit constraints
	minPhi      float32
	maxPhi      float32
	minDistance float32
	maxDistance float32

	// Input and smoothing settings
	smoothing         float32
	rotateSensitivity float32
	zoomStep          float32
}

// Compile-time interface compliance check
var _ Rig = &rigImpl{}

// NewRig creates an orbit rig driving the given camera handle, with
// defaults tuned for a character-height target. The camera keeps whatever
// position it had until the first Snap or Update.
//
// Parameters:
//   - handle: the camera to drive, must be non-nil
//   - options: functional options to configure the rig
//
// Returns:
//   - Rig: the newly created rig
func NewRig(handle Handle, options ...RigOption) Rig {
	if handle == nil {
		panic("camera: NewRig requires a non-nil Handle")
	}

	r := &rigImpl{
		mu:     &sync.Mutex{},
		handle: handle,

		yaw:      0.0,
		phi:      1.05,
		distance: 6.5,

		minPhi:      0.25,
		maxPhi:      1.45,
		minDistance: 2.5,
		maxDistance: 14.0,

		smoothing:         6.0,
		rotateSensitivity: 0.005,
		zoomStep:          0.9,
	}

	for _, option := range options {
		option(r)
	}

	r.clampPhi()
	r.clampDistance()
	return r
}

// --- internal helpers ---

// offset computes the spherical-to-Cartesian camera offset from the aim
// point. Caller must hold the mutex.
func (r *rigImpl) offset() mgl32.Vec3 {
	sinPhi := float32(math.Sin(float64(r.phi)))
	cosPhi := float32(math.Cos(float64(r.phi)))
	sinYaw := float32(math.Sin(float64(r.yaw)))
	cosYaw := float32(math.Cos(float64(r.yaw)))

	return mgl32.Vec3{
		r.distance * sinPhi * sinYaw,
		r.distance * cosPhi,
		r.distance * sinPhi * cosYaw,
	}
}

// clampPhi keeps phi inside its bounds. Caller must hold the mutex.
func (r *rigImpl) clampPhi() {
	if r.phi < r.minPhi {
		r.phi = r.minPhi
	}
	if r.phi > r.maxPhi {
		r.phi = r.maxPhi
	}
}

// clampDistance keeps distance inside its bounds. Caller must hold the mutex.
func (r *rigImpl) clampDistance() {
	if r.distance < r.minDistance {
		r.distance = r.minDistance
	}
	if r.distance > r.maxDistance {
		r.distance = r.maxDistance
	}
}

// --- Rig implementation ---

func (r *rigImpl) Update(aim mgl32.Vec3, dt float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	desired := aim.Add(r.offset())
	r.handle.SetPosition(common.Damp3(r.handle.Position(), desired, r.smoothing, dt))
	r.handle.LookAt(aim)
}

func (r *rigImpl) Snap(aim mgl32.Vec3) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handle.SetPosition(aim.Add(r.offset()))
	r.handle.LookAt(aim)
}

func (r *rigImpl) Drag(dx, dy float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.yaw -= dx * r.rotateSensitivity
	r.phi += dy * r.rotateSensitivity
	r.clampPhi()
}

func (r *rigImpl) Zoom(delta float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.distance -= delta * r.zoomStep
	r.clampDistance()
}

func (r *rigImpl) Orbit(dYaw, dPhi float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.yaw += dYaw
	r.phi += dPhi
	r.clampPhi()
}

func (r *rigImpl) Yaw() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.yaw
}

func (r *rigImpl) SetYaw(yaw float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.yaw = yaw
}

func (r *rigImpl) Phi() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phi
}

func (r *rigImpl) SetPhi(phi float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.phi = phi
	r.clampPhi()
}

func (r *rigImpl) Distance() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.distance
}

func (r *rigImpl) SetDistance(distance float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.distance = distance
	r.clampDistance()
}

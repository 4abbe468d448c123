package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// raylibHandle adapts a raylib Camera3D to the Handle interface. raylib
// cameras are plain structs mutated between frames, so the adapter holds a
// pointer into the caller's camera and writes fields directly.
type raylibHandle struct {
	cam *rl.Camera3D
}

// Compile-time interface compliance check
var _ Handle = &raylibHandle{}

// NewRaylibHandle wraps a raylib camera so the orbit rig can drive it.
// The camera must outlive the handle; raylib draw calls keep reading it
// every frame.
//
// Parameters:
//   - cam: the raylib camera to drive
//
// Returns:
//   - Handle: the wrapped camera
func NewRaylibHandle(cam *rl.Camera3D) Handle {
	if cam == nil {
		panic("camera: NewRaylibHandle requires a non-nil Camera3D")
	}
	return &raylibHandle{cam: cam}
}

func (h *raylibHandle) Position() mgl32.Vec3 {
	return mgl32.Vec3{h.cam.Position.X, h.cam.Position.Y, h.cam.Position.Z}
}

func (h *raylibHandle) SetPosition(position mgl32.Vec3) {
	h.cam.Position = rl.Vector3{X: position.X(), Y: position.Y(), Z: position.Z()}
}

func (h *raylibHandle) LookAt(point mgl32.Vec3) {
	h.cam.Target = rl.Vector3{X: point.X(), Y: point.Y(), Z: point.Z()}
}

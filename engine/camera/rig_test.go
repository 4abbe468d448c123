package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const floatTolerance = 1e-4

func floatEquals(a, b float32) bool {
	return math.Abs(float64(a-b)) < floatTolerance
}

func vec3Equals(a, b mgl32.Vec3) bool {
	return floatEquals(a.X(), b.X()) && floatEquals(a.Y(), b.Y()) && floatEquals(a.Z(), b.Z())
}

// fakeHandle records the position and aim point the rig writes.
type fakeHandle struct {
	position    mgl32.Vec3
	aim         mgl32.Vec3
	lookAtCalls int
}

func (h *fakeHandle) Position() mgl32.Vec3            { return h.position }
func (h *fakeHandle) SetPosition(position mgl32.Vec3) { h.position = position }
func (h *fakeHandle) LookAt(point mgl32.Vec3)         { h.aim = point; h.lookAtCalls++ }

func TestNewRig_NilHandlePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil handle")
		}
	}()
	NewRig(nil)
}

func TestNewRig_ClampsInitialValues(t *testing.T) {
	r := NewRig(&fakeHandle{}, WithPhi(10), WithDistance(1000))
	if !floatEquals(r.Phi(), 1.45) {
		t.Errorf("initial phi: got %v, want clamped to 1.45", r.Phi())
	}
	if !floatEquals(r.Distance(), 14) {
		t.Errorf("initial distance: got %v, want clamped to 14", r.Distance())
	}
}

func TestSnap_PlacesCameraOnOrbit(t *testing.T) {
	tests := []struct {
		name     string
		yaw, phi float32
		want     mgl32.Vec3
	}{
		{"behind on +Z", 0, math.Pi / 2, mgl32.Vec3{0, 1.1, 5}},
		{"side on +X", math.Pi / 2, math.Pi / 2, mgl32.Vec3{5, 1.1, 0}},
		{"overhead", 0, 0, mgl32.Vec3{0, 6.1, 0}},
	}
	aim := mgl32.Vec3{0, 1.1, 0}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &fakeHandle{}
			r := NewRig(h,
				WithPhiBounds(0, math.Pi),
				WithYaw(tt.yaw),
				WithPhi(tt.phi),
				WithDistance(5),
			)
			r.Snap(aim)

			if !vec3Equals(h.position, tt.want) {
				t.Errorf("position: got %v, want %v", h.position, tt.want)
			}
			if !vec3Equals(h.aim, aim) {
				t.Errorf("aim: got %v, want %v", h.aim, aim)
			}
		})
	}
}

func TestUpdate_DampsTowardDesired(t *testing.T) {
	h := &fakeHandle{position: mgl32.Vec3{100, 50, -80}}
	r := NewRig(h)
	aim := mgl32.Vec3{0, 1.1, 0}

	r.Snap(aim)
	desired := h.position

	h.position = mgl32.Vec3{100, 50, -80}
	prev := h.position.Sub(desired).Len()
	for i := 0; i < 300; i++ {
		r.Update(aim, 1.0/60.0)
		dist := h.position.Sub(desired).Len()
		if dist > prev+floatTolerance {
			t.Fatalf("frame %d: distance to desired grew from %v to %v", i, prev, dist)
		}
		prev = dist
	}
	if prev > 0.01 {
		t.Errorf("camera did not converge, still %v from desired", prev)
	}
}

func TestUpdate_OrientationIsExactWhilePositionLags(t *testing.T) {
	h := &fakeHandle{position: mgl32.Vec3{40, 20, 40}}
	r := NewRig(h)
	aim := mgl32.Vec3{3, 1.1, -2}

	r.Update(aim, 1.0/60.0)

	if !vec3Equals(h.aim, aim) {
		t.Errorf("aim: got %v, want %v", h.aim, aim)
	}
	desired := aim.Add(mgl32.Vec3{0, 0, 0}) // position still far from any orbit point
	if vec3Equals(h.position, desired) {
		t.Error("position snapped instead of damping")
	}
	if h.lookAtCalls != 1 {
		t.Errorf("LookAt calls: got %d, want 1", h.lookAtCalls)
	}
}

func TestUpdate_ZeroDtLeavesPosition(t *testing.T) {
	h := &fakeHandle{position: mgl32.Vec3{10, 10, 10}}
	r := NewRig(h)

	r.Update(mgl32.Vec3{}, 0)
	if !vec3Equals(h.position, mgl32.Vec3{10, 10, 10}) {
		t.Errorf("position moved on zero dt: %v", h.position)
	}
}

func TestZoom_SaturatesAtBounds(t *testing.T) {
	r := NewRig(&fakeHandle{})

	for i := 0; i < 50; i++ {
		r.Zoom(10)
	}
	if !floatEquals(r.Distance(), 2.5) {
		t.Errorf("distance after zooming in: got %v, want 2.5", r.Distance())
	}
	r.Zoom(100)
	if r.Distance() < 2.5 {
		t.Errorf("distance went below minimum: %v", r.Distance())
	}

	for i := 0; i < 50; i++ {
		r.Zoom(-10)
	}
	if !floatEquals(r.Distance(), 14) {
		t.Errorf("distance after zooming out: got %v, want 14", r.Distance())
	}
}

func TestDrag_SaturatesPhiAtBounds(t *testing.T) {
	r := NewRig(&fakeHandle{})

	for i := 0; i < 50; i++ {
		r.Drag(0, -500)
	}
	if !floatEquals(r.Phi(), 0.25) {
		t.Errorf("phi after dragging up: got %v, want 0.25", r.Phi())
	}
	r.Drag(0, -5000)
	if r.Phi() < 0.25 {
		t.Errorf("phi went below minimum: %v", r.Phi())
	}

	for i := 0; i < 50; i++ {
		r.Drag(0, 500)
	}
	if !floatEquals(r.Phi(), 1.45) {
		t.Errorf("phi after dragging down: got %v, want 1.45", r.Phi())
	}
}

func TestDrag_InvertsHorizontal(t *testing.T) {
	r := NewRig(&fakeHandle{}, WithRotateSensitivity(0.01))

	r.Drag(100, 0)
	if !floatEquals(r.Yaw(), -1) {
		t.Errorf("yaw after rightward drag: got %v, want -1", r.Yaw())
	}
}

func TestOrbit_AppliesRawAngles(t *testing.T) {
	r := NewRig(&fakeHandle{}, WithYaw(0), WithPhi(1.0))

	r.Orbit(0.5, 0.2)
	if !floatEquals(r.Yaw(), 0.5) {
		t.Errorf("yaw: got %v, want 0.5", r.Yaw())
	}
	if !floatEquals(r.Phi(), 1.2) {
		t.Errorf("phi: got %v, want 1.2", r.Phi())
	}

	r.Orbit(0, 10)
	if !floatEquals(r.Phi(), 1.45) {
		t.Errorf("phi after large orbit: got %v, want 1.45", r.Phi())
	}
}

func TestSetters_Clamp(t *testing.T) {
	r := NewRig(&fakeHandle{})

	r.SetPhi(-3)
	if !floatEquals(r.Phi(), 0.25) {
		t.Errorf("SetPhi below min: got %v, want 0.25", r.Phi())
	}
	r.SetDistance(0)
	if !floatEquals(r.Distance(), 2.5) {
		t.Errorf("SetDistance below min: got %v, want 2.5", r.Distance())
	}
	r.SetYaw(-42)
	if !floatEquals(r.Yaw(), -42) {
		t.Errorf("SetYaw: got %v, want -42 (unclamped)", r.Yaw())
	}
}

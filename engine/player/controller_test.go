package player

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jasonthepenguin/boarscape/engine/actor"
	"github.com/jasonthepenguin/boarscape/engine/input"
)

// fakeSource records registered callbacks and lets tests fire events.
type fakeSource struct {
	keyDown     func(key input.Key)
	keyUp       func(key input.Key)
	pointerDown func(pointer int64, x, y float32)
	pointerMove func(pointer int64, x, y float32)
	pointerUp   func(pointer int64)
	scroll      func(delta float32)

	setCalls int
}

func (f *fakeSource) SetKeyDownCallback(cb func(key input.Key)) { f.keyDown = cb; f.setCalls++ }
func (f *fakeSource) SetKeyUpCallback(cb func(key input.Key))   { f.keyUp = cb; f.setCalls++ }
func (f *fakeSource) SetPointerDownCallback(cb func(pointer int64, x, y float32)) {
	f.pointerDown = cb
	f.setCalls++
}
func (f *fakeSource) SetPointerMoveCallback(cb func(pointer int64, x, y float32)) {
	f.pointerMove = cb
	f.setCalls++
}
func (f *fakeSource) SetPointerUpCallback(cb func(pointer int64)) { f.pointerUp = cb; f.setCalls++ }
func (f *fakeSource) SetScrollCallback(cb func(delta float32))    { f.scroll = cb; f.setCalls++ }

func (f *fakeSource) press(key input.Key) {
	if f.keyDown != nil {
		f.keyDown(key)
	}
}

func (f *fakeSource) release(key input.Key) {
	if f.keyUp != nil {
		f.keyUp(key)
	}
}

// fakeHandle is an in-memory camera.
type fakeHandle struct {
	position mgl32.Vec3
	aim      mgl32.Vec3
}

func (h *fakeHandle) Position() mgl32.Vec3            { return h.position }
func (h *fakeHandle) SetPosition(position mgl32.Vec3) { h.position = position }
func (h *fakeHandle) LookAt(point mgl32.Vec3)         { h.aim = point }

func newTestController(t *testing.T, options ...Option) (Controller, *fakeSource, *fakeHandle, actor.Actor) {
	t.Helper()
	src := &fakeSource{}
	cam := &fakeHandle{}
	target := actor.NewActor()
	ctrl, err := New(target, cam, &fakeEnv{half: 1000}, src, options...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ctrl, src, cam, target
}

func TestNew_RequiresCollaborators(t *testing.T) {
	src := &fakeSource{}
	cam := &fakeHandle{}
	target := actor.NewActor()
	env := &fakeEnv{half: 100}

	if _, err := New(nil, cam, env, src); err == nil {
		t.Error("nil target accepted")
	}
	if _, err := New(target, nil, env, src); err == nil {
		t.Error("nil camera accepted")
	}
	if _, err := New(target, cam, env, nil); err == nil {
		t.Error("nil source accepted")
	}
	if _, err := New(target, cam, nil, src); err != nil {
		t.Errorf("nil environment rejected: %v", err)
	}
}

func TestNew_ValidatesConfig(t *testing.T) {
	_, err := New(actor.NewActor(), &fakeHandle{}, &fakeEnv{half: 100}, &fakeSource{},
		WithConfig(Config{}))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero config: got %v, want ErrInvalidConfig", err)
	}
}

func TestNew_SnapsCameraOntoOrbit(t *testing.T) {
	_, _, cam, _ := newTestController(t)

	// Defaults: yaw 0, phi 1.05, distance 6.5, aim at (0, 1.1, 0).
	wantY := 1.1 + 6.5*float32(math.Cos(1.05))
	wantZ := 6.5 * float32(math.Sin(1.05))
	if !floatEquals(cam.position.X(), 0) ||
		!floatEquals(cam.position.Y(), wantY) ||
		!floatEquals(cam.position.Z(), wantZ) {
		t.Errorf("camera at %v, want (0, %v, %v)", cam.position, wantY, wantZ)
	}
	if !floatEquals(cam.aim.Y(), 1.1) {
		t.Errorf("aim at %v, want height 1.1", cam.aim)
	}
}

func TestUpdate_WalkScenario(t *testing.T) {
	ctrl, src, _, target := newTestController(t)

	src.press(input.KeyW)
	for i := 0; i < 60; i++ {
		ctrl.Update(dt)
		if target.Position().Y() != 0 {
			t.Fatalf("frame %d: vertical drift to %v", i, target.Position().Y())
		}
		if ctrl.Locomotion().State() != Grounded {
			t.Fatalf("frame %d: left the ground", i)
		}
	}

	pos := target.Position()
	moved := math.Hypot(float64(pos.X()), float64(pos.Z()))
	if moved >= 4.6 || moved < 3.9 {
		t.Errorf("walked %v units in 1s, want within (3.9, 4.6)", moved)
	}
	// Camera starts behind on +Z, so forward is -Z.
	if pos.Z() >= 0 || !floatEquals(pos.X(), 0) {
		t.Errorf("walk direction off camera-forward: %v", pos)
	}
}

func TestUpdate_JumpCallbackFiresOncePerPress(t *testing.T) {
	jumps := 0
	ctrl, src, _, _ := newTestController(t, WithJumpCallback(func() { jumps++ }))

	src.press(input.KeySpace)
	for i := 0; i < 10; i++ {
		ctrl.Update(dt)
	}
	if jumps != 1 {
		t.Fatalf("held jump key fired %d times, want 1", jumps)
	}

	// A fresh press while airborne is consumed and discarded, not queued
	// for landing.
	src.release(input.KeySpace)
	src.press(input.KeySpace)
	for i := 0; i < 80; i++ {
		ctrl.Update(dt)
	}
	if jumps != 1 {
		t.Fatalf("airborne press fired, total %d", jumps)
	}
	if ctrl.Locomotion().State() != Grounded {
		t.Fatal("character never landed")
	}

	src.release(input.KeySpace)
	src.press(input.KeySpace)
	ctrl.Update(dt)
	if jumps != 2 {
		t.Errorf("grounded re-press fired %d total, want 2", jumps)
	}
}

func TestUpdate_MovementChangeFiresOnEdges(t *testing.T) {
	var edges []bool
	ctrl, src, _, _ := newTestController(t,
		WithMovementChangeCallback(func(moving bool) { edges = append(edges, moving) }))

	for i := 0; i < 5; i++ {
		ctrl.Update(dt)
	}
	if len(edges) != 0 {
		t.Fatalf("idle start fired %d edges", len(edges))
	}

	src.press(input.KeyW)
	for i := 0; i < 30; i++ {
		ctrl.Update(dt)
	}
	src.release(input.KeyW)
	for i := 0; i < 30; i++ {
		ctrl.Update(dt)
	}

	if len(edges) != 2 || edges[0] != true || edges[1] != false {
		t.Errorf("edges %v, want [true false]", edges)
	}
	if ctrl.Moving() {
		t.Error("still reported moving after release")
	}
}

func TestUpdate_DragAndZoomReachRig(t *testing.T) {
	ctrl, src, _, _ := newTestController(t)

	startYaw := ctrl.Rig().Yaw()
	src.pointerDown(0, 100, 100)
	src.pointerMove(0, 150, 100)
	ctrl.Update(dt)
	if ctrl.Rig().Yaw() >= startYaw {
		t.Errorf("rightward drag did not lower yaw: %v -> %v", startYaw, ctrl.Rig().Yaw())
	}

	for i := 0; i < 100; i++ {
		src.scroll(5)
		ctrl.Update(dt)
	}
	if !floatEquals(ctrl.Rig().Distance(), 2.5) {
		t.Errorf("distance %v, want saturated at 2.5", ctrl.Rig().Distance())
	}
}

func TestDispose_UnregistersAndGoesInert(t *testing.T) {
	ctrl, src, _, target := newTestController(t)
	if src.setCalls != 6 {
		t.Fatalf("construction made %d Set calls, want 6", src.setCalls)
	}

	ctrl.Dispose()
	if src.keyDown != nil || src.scroll != nil {
		t.Error("Dispose left listeners registered")
	}
	if src.setCalls != 12 {
		t.Errorf("Dispose made %d total Set calls, want 12", src.setCalls)
	}

	ctrl.Dispose()
	if src.setCalls != 12 {
		t.Error("second Dispose re-unregistered")
	}

	before := target.Position()
	ctrl.Update(dt)
	if target.Position() != before {
		t.Error("Update after Dispose moved the target")
	}
}

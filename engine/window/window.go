// Package window owns the raylib window lifecycle: opening, the per-frame
// begin/end bracket, and teardown. Input events are not surfaced here; the
// input package polls raylib directly.
package window

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window provides the platform window the demo draws into. Draw calls run
// between BeginFrame and EndFrame on the thread that created the window.
type Window interface {
	// ShouldClose reports whether the user asked to close the window.
	//
	// Returns:
	//   - bool: true once a close was requested
	ShouldClose() bool

	// FrameTime returns the previous frame's duration.
	//
	// Returns:
	//   - float32: seconds the last frame took
	FrameTime() float32

	// BeginFrame starts a frame and clears it to the configured color.
	BeginFrame()

	// EndFrame submits the frame and waits out the target frame rate.
	EndFrame()

	// Width returns the current client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int

	// Close releases the window and its GL context. Idempotent.
	Close()
}

// raylibWindow is the implementation of the Window interface.
type raylibWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width and height are the initial client area size in pixels.
	width  int32
	height int32

	// targetFPS caps the frame rate. Zero leaves it uncapped.
	targetFPS int32

	// clearColor fills the frame at BeginFrame.
	clearColor color.RGBA

	// closed blocks double teardown.
	closed bool
}

// Compile-time interface compliance check
var _ Window = &raylibWindow{}

// New opens the platform window with the specified options. Applies default
// values first, then each option in order. The window must be created and
// used from the main thread; raylib owns the GL context behind it.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the opened window
func New(options ...WindowBuilderOption) Window {
	w := &raylibWindow{
		title:      "boarscape",
		width:      1280,
		height:     720,
		targetFPS:  60,
		clearColor: color.RGBA{R: 245, G: 245, B: 245, A: 255},
	}
	for _, option := range options {
		option(w)
	}

	rl.InitWindow(w.width, w.height, w.title)
	if w.targetFPS > 0 {
		rl.SetTargetFPS(w.targetFPS)
	}
	return w
}

func (w *raylibWindow) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (w *raylibWindow) FrameTime() float32 {
	return rl.GetFrameTime()
}

func (w *raylibWindow) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(w.clearColor)
}

func (w *raylibWindow) EndFrame() {
	rl.EndDrawing()
}

func (w *raylibWindow) Width() int {
	return rl.GetScreenWidth()
}

func (w *raylibWindow) Height() int {
	return rl.GetScreenHeight()
}

func (w *raylibWindow) Close() {
	if w.closed {
		return
	}
	w.closed = true
	rl.CloseWindow()
}

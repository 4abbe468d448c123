package window

import "image/color"

// WindowBuilderOption is a functional option for configuring a raylibWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *raylibWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *raylibWindow) {
		if title != "" {
			w.title = title
		}
	}
}

// WithSize sets the initial client area size. Non-positive dimensions keep
// the defaults.
//
// Parameters:
//   - width: initial width in pixels
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int32) WindowBuilderOption {
	return func(w *raylibWindow) {
		if width > 0 {
			w.width = width
		}
		if height > 0 {
			w.height = height
		}
	}
}

// WithTargetFPS caps the frame rate. Zero leaves the rate uncapped; negative
// values are ignored.
//
// Parameters:
//   - fps: frames per second to wait for in EndFrame
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTargetFPS(fps int32) WindowBuilderOption {
	return func(w *raylibWindow) {
		if fps >= 0 {
			w.targetFPS = fps
		}
	}
}

// WithClearColor sets the color BeginFrame clears the frame to.
//
// Parameters:
//   - c: the clear color
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithClearColor(c color.RGBA) WindowBuilderOption {
	return func(w *raylibWindow) {
		w.clearColor = c
	}
}

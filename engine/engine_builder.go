package engine

import (
	"github.com/jasonthepenguin/boarscape/internal/logger"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the
// engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithMaxFrameDelta sets the upper bound applied to raw frame deltas before
// they reach the tick callbacks. Values <= 0 are treated as the default
// (0.05 seconds).
//
// Parameters:
//   - seconds: maximum delta time per frame in seconds
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithMaxFrameDelta(seconds float32) EngineBuilderOption {
	return func(e *engine) {
		if seconds <= 0 {
			seconds = 0.05
		}
		e.maxFrameDelta = seconds
	}
}

// WithTickCallback registers a tick callback during engine construction.
// Callbacks run each Step in registration order.
//
// Parameters:
//   - callback: function to call each frame, receiving the delta time in seconds
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickCallback(callback func(deltaTime float32)) EngineBuilderOption {
	return func(e *engine) {
		if callback != nil {
			e.tickCallbacks = append(e.tickCallbacks, callback)
		}
	}
}

// WithLogger sets the logger handed to the profiler. A nil logger keeps the
// no-op default.
//
// Parameters:
//   - log: destination for performance stats
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(log logger.Logger) EngineBuilderOption {
	return func(e *engine) {
		if log != nil {
			e.log = log
		}
	}
}

// Package engine provides the frame stepper that advances the simulation.
// The platform loop owns the thread and the clock; it calls Step once per
// frame and the engine fans the clamped delta out to the registered tick
// callbacks.
package engine

import (
	"github.com/jasonthepenguin/boarscape/engine/profiler"
	"github.com/jasonthepenguin/boarscape/internal/logger"
)

// engine implements the Engine interface.
// Single-owner: the goroutine running the platform loop calls Step and the
// accessors; nothing here is safe for concurrent use.
type engine struct {
	maxFrameDelta float32
	frameCount    uint64
	elapsed       float32

	tickCallbacks []func(deltaTime float32)

	profiler         *profiler.Profiler
	profilingEnabled bool

	log logger.Logger
}

// Engine advances the simulation once per platform frame.
type Engine interface {
	// Step advances the simulation by one frame. The raw delta is clamped
	// to the configured maximum before reaching the tick callbacks, so a
	// long stall (window drag, debugger pause) becomes one slow frame
	// instead of a physics explosion. Negative deltas are treated as zero.
	//
	// Parameters:
	//   - rawDt: measured frame delta time in seconds, unclamped
	Step(rawDt float32)

	// AddTickCallback registers a function called every Step with the
	// clamped delta time. Callbacks run in registration order. Nil
	// callbacks are ignored.
	//
	// Parameters:
	//   - callback: function to call each frame, receiving the delta time in seconds
	AddTickCallback(callback func(deltaTime float32))

	// EnableProfiler enables per-second performance stats output.
	EnableProfiler()

	// DisableProfiler disables performance stats output.
	DisableProfiler()

	// FrameCount returns the number of frames stepped so far.
	//
	// Returns:
	//   - uint64: total Step calls
	FrameCount() uint64

	// Elapsed returns the accumulated clamped simulation time.
	//
	// Returns:
	//   - float32: total simulated seconds
	Elapsed() float32
}

// NewEngine creates a new Engine instance with the provided options.
// The frame delta clamp defaults to 0.05 seconds and profiling starts
// disabled.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		maxFrameDelta: 0.05,
		log:           logger.Nop(),
	}

	for _, opt := range options {
		opt(e)
	}

	e.profiler = profiler.NewProfiler(profiler.WithLogger(e.log))

	return e
}

func (e *engine) Step(rawDt float32) {
	dt := rawDt
	if dt < 0 {
		dt = 0
	}
	if dt > e.maxFrameDelta {
		dt = e.maxFrameDelta
	}

	e.frameCount++
	e.elapsed += dt

	for _, callback := range e.tickCallbacks {
		callback(dt)
	}

	// The profiler sees the raw delta so hitches survive the clamp.
	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(rawDt)
	}
}

func (e *engine) AddTickCallback(callback func(deltaTime float32)) {
	if callback == nil {
		return
	}
	e.tickCallbacks = append(e.tickCallbacks, callback)
}

// EnableProfiler enables per-second performance stats output.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance stats output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) FrameCount() uint64 {
	return e.frameCount
}

func (e *engine) Elapsed() float32 {
	return e.elapsed
}

// Package profiler reports per-second frame and memory statistics through
// the module logger.
package profiler

import (
	"runtime"
	"time"

	"github.com/jasonthepenguin/boarscape/internal/logger"
)

// Profiler tracks frame rate, frame hitches, and memory statistics.
// Emits one structured log line per update interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	maxFrameDelta  float32
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	log            logger.Logger
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithLogger sets the destination logger. A nil logger keeps the no-op
// default.
//
// Parameters:
//   - log: destination for stat lines
//
// Returns:
//   - ProfilerOption: option function to apply
func WithLogger(log logger.Logger) ProfilerOption {
	return func(p *Profiler) {
		if log != nil {
			p.log = log
		}
	}
}

// WithInterval sets how often stats are emitted. Values <= 0 keep the
// default of one second.
//
// Parameters:
//   - interval: time between stat lines
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// NewProfiler creates a new Profiler with the provided options.
// Update interval defaults to 1 second and output to a no-op logger.
//
// Parameters:
//   - options: functional options for profiler configuration
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		frameCount:     0,
		lastTime:       time.Now(),
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
		log:            logger.Nop(),
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// Tick should be called once per frame with the raw (unclamped) frame delta
// so hitches show up in the stats. Emits one log line when the update
// interval has elapsed: FPS, worst frame, heap usage, allocation rate, and
// GC pause times.
//
// Parameters:
//   - rawDt: measured frame delta time in seconds
//
// Returns:
//   - bool: true if stats were emitted this tick, false otherwise
func (p *Profiler) Tick(rawDt float32) bool {
	p.frameCount++
	if rawDt > p.maxFrameDelta {
		p.maxFrameDelta = rawDt
	}

	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	// Alloc is live heap; TotalAlloc is cumulative and tracks churn; Sys is
	// the process footprint from the OS.
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses.
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	p.log.Info("frame stats",
		logger.Field{Key: "fps", Value: fps},
		logger.Field{Key: "max_frame_ms", Value: float64(p.maxFrameDelta) * 1000},
		logger.Field{Key: "heap_mb", Value: allocMB},
		logger.Field{Key: "alloc_mb_s", Value: allocRateMB},
		logger.Field{Key: "gc", Value: int(gcCount)},
		logger.Field{Key: "gc_last_us", Value: lastPauseUs},
		logger.Field{Key: "gc_max_us", Value: maxPauseUs},
		logger.Field{Key: "sys_mb", Value: sysMB},
	)

	p.frameCount = 0
	p.maxFrameDelta = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

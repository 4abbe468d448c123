package engine

import (
	"math"
	"testing"
)

const floatTolerance = 1e-5

func floatEquals(a, b float32) bool {
	return float32(math.Abs(float64(a-b))) <= floatTolerance
}

func TestStep_ClampsFrameDelta(t *testing.T) {
	var dts []float32
	eng := NewEngine(WithTickCallback(func(dt float32) {
		dts = append(dts, dt)
	}))

	eng.Step(0.016)
	eng.Step(0.3)
	eng.Step(-1)

	want := []float32{0.016, 0.05, 0}
	if len(dts) != len(want) {
		t.Fatalf("tick count: got %d, want %d", len(dts), len(want))
	}
	for i := range want {
		if !floatEquals(dts[i], want[i]) {
			t.Errorf("frame %d dt: got %v, want %v", i, dts[i], want[i])
		}
	}
}

func TestStep_CustomMaxFrameDelta(t *testing.T) {
	var last float32
	eng := NewEngine(
		WithMaxFrameDelta(0.1),
		WithTickCallback(func(dt float32) { last = dt }),
	)

	eng.Step(0.3)
	if !floatEquals(last, 0.1) {
		t.Errorf("clamped dt: got %v, want 0.1", last)
	}

	eng = NewEngine(
		WithMaxFrameDelta(-5),
		WithTickCallback(func(dt float32) { last = dt }),
	)
	eng.Step(0.3)
	if !floatEquals(last, 0.05) {
		t.Errorf("non-positive max should keep the default: got %v, want 0.05", last)
	}
}

func TestStep_CallbacksRunInRegistrationOrder(t *testing.T) {
	var order []int
	eng := NewEngine(WithTickCallback(func(float32) {
		order = append(order, 1)
	}))
	eng.AddTickCallback(func(float32) { order = append(order, 2) })
	eng.AddTickCallback(func(float32) { order = append(order, 3) })

	eng.Step(0.016)

	want := []int{1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("callback count: got %d, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("callback order: got %v, want %v", order, want)
			break
		}
	}
}

func TestStep_CountsFramesAndElapsed(t *testing.T) {
	eng := NewEngine()

	eng.Step(0.016)
	eng.Step(0.3)
	eng.Step(-1)

	if got := eng.FrameCount(); got != 3 {
		t.Errorf("frame count: got %d, want 3", got)
	}
	if got := eng.Elapsed(); !floatEquals(got, 0.016+0.05) {
		t.Errorf("elapsed: got %v, want %v", got, 0.016+0.05)
	}
}

func TestAddTickCallback_IgnoresNil(t *testing.T) {
	eng := NewEngine(WithTickCallback(nil))
	eng.AddTickCallback(nil)
	eng.Step(0.016)

	if got := eng.(*engine).tickCallbacks; len(got) != 0 {
		t.Errorf("registered callbacks: got %d, want 0", len(got))
	}
}

func TestProfilerToggle(t *testing.T) {
	eng := NewEngine(WithProfiling(true))
	impl := eng.(*engine)
	if !impl.profilingEnabled {
		t.Error("WithProfiling(true) should enable profiling")
	}

	eng.DisableProfiler()
	if impl.profilingEnabled {
		t.Error("DisableProfiler should disable profiling")
	}

	eng.EnableProfiler()
	if !impl.profilingEnabled {
		t.Error("EnableProfiler should re-enable profiling")
	}

	// Stepping with profiling on goes through the profiler without output
	// until its interval elapses.
	eng.Step(0.016)
}

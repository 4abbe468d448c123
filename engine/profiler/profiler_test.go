package profiler

import (
	"math"
	"testing"
	"time"

	"github.com/jasonthepenguin/boarscape/internal/logger"
)

type recordingLogger struct {
	infos  []string
	fields [][]logger.Field
}

func (l *recordingLogger) Debug(msg string, fields ...logger.Field) {}
func (l *recordingLogger) Info(msg string, fields ...logger.Field) {
	l.infos = append(l.infos, msg)
	l.fields = append(l.fields, fields)
}
func (l *recordingLogger) Warn(msg string, fields ...logger.Field)   {}
func (l *recordingLogger) Error(msg string, fields ...logger.Field)  {}
func (l *recordingLogger) Fatal(msg string, fields ...logger.Field)  {}
func (l *recordingLogger) With(fields ...logger.Field) logger.Logger { return l }
func (l *recordingLogger) Sync() error                               { return nil }

func findField(fields []logger.Field, key string) (any, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

func TestTick_BeforeIntervalIsSilent(t *testing.T) {
	rec := &recordingLogger{}
	p := NewProfiler(WithLogger(rec))

	for i := 0; i < 10; i++ {
		if p.Tick(0.016) {
			t.Fatal("Tick emitted before the interval elapsed")
		}
	}
	if len(rec.infos) != 0 {
		t.Errorf("log lines: got %d, want 0", len(rec.infos))
	}
}

func TestTick_EmitsAfterInterval(t *testing.T) {
	rec := &recordingLogger{}
	p := NewProfiler(WithLogger(rec))

	p.Tick(0.016)
	p.lastTime = time.Now().Add(-2 * time.Second)
	if !p.Tick(0.016) {
		t.Fatal("Tick did not emit after the interval elapsed")
	}

	if len(rec.infos) != 1 || rec.infos[0] != "frame stats" {
		t.Fatalf("log lines: got %v, want one frame stats line", rec.infos)
	}
	for _, key := range []string{"fps", "max_frame_ms", "heap_mb", "alloc_mb_s", "gc", "sys_mb"} {
		if _, ok := findField(rec.fields[0], key); !ok {
			t.Errorf("stat line missing field %q", key)
		}
	}

	// Counters reset after emitting.
	if p.Tick(0.016) {
		t.Error("Tick emitted again immediately after a stat line")
	}
}

func TestTick_TracksWorstFrame(t *testing.T) {
	rec := &recordingLogger{}
	p := NewProfiler(WithLogger(rec))

	p.Tick(0.016)
	p.Tick(0.25)
	p.lastTime = time.Now().Add(-2 * time.Second)
	p.Tick(0.01)

	v, ok := findField(rec.fields[0], "max_frame_ms")
	if !ok {
		t.Fatal("stat line missing max_frame_ms")
	}
	if ms := v.(float64); math.Abs(ms-250) > 0.01 {
		t.Errorf("max_frame_ms: got %v, want 250", ms)
	}

	// The worst-frame tracker resets per window.
	p.Tick(0.02)
	p.lastTime = time.Now().Add(-2 * time.Second)
	p.Tick(0.01)

	v, ok = findField(rec.fields[1], "max_frame_ms")
	if !ok {
		t.Fatal("second stat line missing max_frame_ms")
	}
	if ms := v.(float64); math.Abs(ms-20) > 0.01 {
		t.Errorf("max_frame_ms after reset: got %v, want 20", ms)
	}
}

func TestWithInterval_Override(t *testing.T) {
	p := NewProfiler(WithInterval(250 * time.Millisecond))
	if p.updateInterval != 250*time.Millisecond {
		t.Errorf("interval: got %v, want 250ms", p.updateInterval)
	}

	p = NewProfiler(WithInterval(-1 * time.Second))
	if p.updateInterval != time.Second {
		t.Errorf("non-positive interval should keep the default: got %v", p.updateInterval)
	}
}

func TestWithLogger_NilKeepsNop(t *testing.T) {
	p := NewProfiler(WithLogger(nil))
	p.lastTime = time.Now().Add(-2 * time.Second)
	if !p.Tick(0.016) {
		t.Error("Tick should still emit with the fallback logger")
	}
}

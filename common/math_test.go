package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const floatTolerance = 1e-5

func floatEquals(a, b float32) bool {
	return math.Abs(float64(a-b)) < floatTolerance
}

func TestDamp_ConvergesMonotonically(t *testing.T) {
	current := float32(0)
	target := float32(10)
	prev := current

	for i := 0; i < 600; i++ {
		current = Damp(current, target, 8, 1.0/60.0)
		if current < prev {
			t.Fatalf("step %d: value regressed from %v to %v", i, prev, current)
		}
		if current > target {
			t.Fatalf("step %d: overshot target, got %v", i, current)
		}
		prev = current
	}

	if math.Abs(float64(target-current)) > 1e-3 {
		t.Errorf("after 10s: got %v, want convergence to %v", current, target)
	}
}

func TestDamp_FrameRateIndependent(t *testing.T) {
	// One large step and many small steps covering the same elapsed time
	// must land in the same place.
	coarse := Damp(0, 10, 4, 0.5)

	fine := float32(0)
	for i := 0; i < 50; i++ {
		fine = Damp(fine, 10, 4, 0.01)
	}

	if math.Abs(float64(coarse-fine)) > 1e-3 {
		t.Errorf("coarse %v and fine %v diverged", coarse, fine)
	}
}

func TestDamp_ZeroDtIsIdentity(t *testing.T) {
	if got := Damp(3.5, 10, 8, 0); !floatEquals(got, 3.5) {
		t.Errorf("Damp with dt=0: got %v, want 3.5", got)
	}
}

func TestDampFactor_Bounds(t *testing.T) {
	for _, dt := range []float32{0, 1.0 / 240.0, 1.0 / 60.0, 0.05, 1, 10} {
		f := DampFactor(12, dt)
		if f < 0 || f >= 1 {
			t.Errorf("DampFactor(12, %v) = %v, want [0, 1)", dt, f)
		}
	}
}

func TestDamp3_MatchesScalarForm(t *testing.T) {
	cur := mgl32.Vec3{1, -2, 3}
	tgt := mgl32.Vec3{4, 0, -1}

	got := Damp3(cur, tgt, 6, 1.0/60.0)
	for i := 0; i < 3; i++ {
		want := Damp(cur[i], tgt[i], 6, 1.0/60.0)
		if !floatEquals(got[i], want) {
			t.Errorf("component %d: got %v, want %v", i, got[i], want)
		}
	}
}

func TestSafeNormalize_UnitLength(t *testing.T) {
	v := SafeNormalize(mgl32.Vec3{3, 4, 0}, mgl32.Vec3{0, 0, 1})
	if !floatEquals(v.Len(), 1) {
		t.Errorf("length: got %v, want 1", v.Len())
	}
	if !floatEquals(v.X(), 0.6) || !floatEquals(v.Y(), 0.8) {
		t.Errorf("direction: got %v, want (0.6, 0.8, 0)", v)
	}
}

func TestSafeNormalize_DegenerateFallsBack(t *testing.T) {
	fallback := mgl32.Vec3{0, 0, 1}
	for _, v := range []mgl32.Vec3{{}, {1e-9, 0, 0}, {0, -1e-8, 0}} {
		got := SafeNormalize(v, fallback)
		if got != fallback {
			t.Errorf("SafeNormalize(%v): got %v, want fallback %v", v, got, fallback)
		}
	}
}

func TestSafeNormalize2_Degenerate(t *testing.T) {
	fallback := mgl32.Vec2{1, 0}
	if got := SafeNormalize2(mgl32.Vec2{}, fallback); got != fallback {
		t.Errorf("got %v, want fallback %v", got, fallback)
	}
	got := SafeNormalize2(mgl32.Vec2{0, 2}, fallback)
	if !floatEquals(got.Y(), 1) {
		t.Errorf("got %v, want (0, 1)", got)
	}
}

func TestAngDiff_ShortestPath(t *testing.T) {
	cases := []struct {
		a, b, want float32
	}{
		{0, 0, 0},
		{0, 1, 1},
		{1, 0, -1},
		{0, math.Pi + 0.5, -(math.Pi - 0.5)},
		{-3, 3, 6 - 2*math.Pi},
		{math.Pi - 0.1, -math.Pi + 0.1, 0.2},
	}
	for _, c := range cases {
		if got := AngDiff(c.a, c.b); !floatEquals(got, c.want) {
			t.Errorf("AngDiff(%v, %v): got %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce(0, 0, 7, 3); got != 7 {
		t.Errorf("got %d, want 7", got)
	}
	if got := Coalesce("", "boar"); got != "boar" {
		t.Errorf("got %q, want boar", got)
	}
	if got := Coalesce(0.0, 0.0); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

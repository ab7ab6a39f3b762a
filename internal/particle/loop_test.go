package particle

import (
	"math/rand"
	"testing"
)

func TestLoopRunsOneTickPerStep(t *testing.T) {
	f := NewField(rand.New(rand.NewSource(5)), testOptions(), 150, 0.5)
	f.Initialize(4, 200, 200)

	sched := &ManualScheduler{}
	loop := NewLoop(f, sched)
	if sched.Pending() {
		t.Fatal("expected no frame before Start")
	}

	loop.Start()
	s := &recordingSurface{}
	for i := 0; i < 3; i++ {
		if !sched.Step(s) {
			t.Fatalf("step %d: expected a pending frame", i)
		}
	}

	if loop.Frames() != 3 {
		t.Fatalf("Frames() = %d, want 3", loop.Frames())
	}
	if s.clears != 3 {
		t.Fatalf("clears = %d, want 3", s.clears)
	}
	if len(s.circles) != 12 {
		t.Fatalf("circles = %d, want 12", len(s.circles))
	}
	if !sched.Pending() {
		t.Fatal("expected the loop to request the next frame")
	}
}

func TestManualSchedulerStepWithoutFrame(t *testing.T) {
	sched := &ManualScheduler{}
	if sched.Step(&recordingSurface{}) {
		t.Fatal("expected Step to report no frame")
	}
}

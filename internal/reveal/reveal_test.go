package reveal

import (
	"image"
	"math"
	"testing"
)

func TestCheckRevealsOnce(t *testing.T) {
	o := NewObserver(0.1)
	el := NewElement("about", image.Rect(0, 900, 400, 1100), "fade-in-section")

	var calls int
	o.OnReveal = func(*Element) { calls++ }
	o.Observe(el)

	o.Check(image.Rect(0, 0, 800, 600))
	if el.Visible() {
		t.Fatal("element below the fold should stay hidden")
	}
	if o.Observed() != 1 {
		t.Fatalf("Observed() = %d, want 1", o.Observed())
	}

	o.Check(image.Rect(0, 500, 800, 1100))
	if !el.Visible() {
		t.Fatal("expected element to be revealed")
	}
	if !el.HasClass("fade-in-section") {
		t.Fatal("original classes should be kept")
	}
	if o.Observed() != 0 {
		t.Fatalf("Observed() = %d, want 0 after reveal", o.Observed())
	}

	// Leave and come back.
	o.Check(image.Rect(0, 0, 800, 600))
	o.Check(image.Rect(0, 500, 800, 1100))
	if calls != 1 {
		t.Fatalf("OnReveal calls = %d, want 1", calls)
	}
	if !el.Visible() {
		t.Fatal("revealed is terminal")
	}
}

func TestCheckRespectsThreshold(t *testing.T) {
	o := NewObserver(0.1)
	el := NewElement("s", image.Rect(0, 0, 100, 100))
	o.Observe(el)

	// 5% of the element is inside.
	o.Check(image.Rect(0, 95, 100, 300))
	if el.Visible() {
		t.Fatal("5% overlap should not reveal at threshold 0.1")
	}

	// 10% is inside.
	o.Check(image.Rect(0, 90, 100, 300))
	if !el.Visible() {
		t.Fatal("10% overlap should reveal at threshold 0.1")
	}
}

func TestObserveIgnoresDuplicatesAndRevealed(t *testing.T) {
	o := NewObserver(0)
	el := NewElement("a", image.Rect(0, 0, 10, 10))
	o.Observe(el)
	o.Observe(el)
	if o.Observed() != 1 {
		t.Fatalf("Observed() = %d, want 1", o.Observed())
	}

	done := NewElement("b", image.Rect(0, 0, 10, 10), VisibleClass)
	o.Observe(done)
	if o.Observed() != 1 {
		t.Fatalf("Observed() = %d, want 1 (revealed element skipped)", o.Observed())
	}

	o.Unobserve(el)
	if o.Observed() != 0 {
		t.Fatalf("Observed() = %d, want 0", o.Observed())
	}
}

func TestIntersectionRatio(t *testing.T) {
	ratio, ok := IntersectionRatio(image.Rect(0, 0, 100, 100), image.Rect(50, 0, 200, 200))
	if !ok || math.Abs(ratio-0.5) > 1e-9 {
		t.Fatalf("IntersectionRatio() = %v, %v; want 0.5, true", ratio, ok)
	}
	if _, ok := IntersectionRatio(image.Rect(0, 0, 10, 10), image.Rect(20, 20, 30, 30)); ok {
		t.Fatal("disjoint rectangles should not intersect")
	}
}

func TestFadeReachesFullOpacity(t *testing.T) {
	f := NewFade(60)
	f.Step(false)
	if f.Opacity() != 0 {
		t.Fatalf("hidden fade opacity = %v, want 0", f.Opacity())
	}
	if f.Offset() != Rise {
		t.Fatalf("hidden fade offset = %v, want %v", f.Offset(), Rise)
	}

	prev := 0.0
	for i := 0; i < 240; i++ {
		f.Step(true)
		if f.Opacity() < prev-1e-9 {
			t.Fatalf("frame %d: opacity fell from %v to %v", i, prev, f.Opacity())
		}
		prev = f.Opacity()
	}
	if f.Opacity() < 0.99 {
		t.Fatalf("opacity after 4s = %v, want ~1", f.Opacity())
	}
}

package game

import (
	"image/color"
	"strings"
	"testing"
)

func TestWrapText(t *testing.T) {
	got := wrapText("the quick brown fox jumps", 10)
	want := []string{"the quick", "brown fox", "jumps"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("wrapText() = %q, want %q", got, want)
	}

	got = wrapText("line one\n\nabcdefghijkl", 5)
	want = []string{"line", "one", "", "abcde", "fghij", "kl"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("wrapText() = %q, want %q", got, want)
	}
}

func TestFadedPremultiplies(t *testing.T) {
	got := faded(color.RGBA{R: 200, G: 100, B: 50, A: 255}, 0.5)
	want := color.RGBA{R: 100, G: 50, B: 25, A: 127}
	if got != want {
		t.Fatalf("faded() = %v, want %v", got, want)
	}
	if got := faded(textColor, 0); got.A != 0 {
		t.Fatalf("faded(0).A = %d, want 0", got.A)
	}
}

func TestTail(t *testing.T) {
	if got := tail("héllo", 3); got != "llo" {
		t.Fatalf("tail() = %q, want %q", got, "llo")
	}
	if got := tail("ab", 3); got != "ab" {
		t.Fatalf("tail() = %q, want %q", got, "ab")
	}
}

func TestLayoutSectionsStacksDownward(t *testing.T) {
	sections := newSections(fps)
	pageHeight := layoutSections(sections, 1024, 640)

	prevBottom := 0
	for _, s := range sections {
		b := s.el.Bounds
		if b.Empty() {
			t.Fatalf("section %s has empty bounds", s.el.ID)
		}
		if b.Min.Y < prevBottom {
			t.Fatalf("section %s overlaps the one above", s.el.ID)
		}
		if b.Dx() > maxTextWidth {
			t.Fatalf("section %s is %d wide, want <= %d", s.el.ID, b.Dx(), maxTextWidth)
		}
		prevBottom = b.Max.Y
	}
	if pageHeight < prevBottom {
		t.Fatalf("page height %d shorter than content %d", pageHeight, prevBottom)
	}
}

func TestLayoutFormFieldsDoNotOverlap(t *testing.T) {
	l := layoutForm(100, 60, 600)
	for i := 1; i < len(l.fields); i++ {
		if l.fields[i].Min.Y < l.fields[i-1].Max.Y {
			t.Fatalf("field %d overlaps field %d", i, i-1)
		}
	}
	if l.button.Min.Y < l.fields[len(l.fields)-1].Max.Y {
		t.Fatal("button overlaps the last field")
	}
	if field, ok := l.fieldAt(l.fields[1].Min.Add(l.fields[1].Size().Div(2))); !ok || int(field) != 1 {
		t.Fatalf("fieldAt(center of email) = %v, %v", field, ok)
	}
}

package reveal

import "github.com/charmbracelet/harmonica"

// Rise is how far below its resting place a hidden element sits.
const Rise = 20.0

// Fade eases an element's opacity from 0 to 1 once it is revealed.
type Fade struct {
	spring  harmonica.Spring
	opacity float64
	vel     float64
}

func NewFade(fps int) *Fade {
	return &Fade{spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0)}
}

// Step advances the fade one frame toward visible (1) or hidden (0).
func (f *Fade) Step(visible bool) {
	target := 0.0
	if visible {
		target = 1
	}
	f.opacity, f.vel = f.spring.Update(f.opacity, f.vel, target)
	if f.opacity > 1 {
		f.opacity = 1
	}
	if f.opacity < 0 {
		f.opacity = 0
	}
}

// Opacity in [0, 1].
func (f *Fade) Opacity() float64 { return f.opacity }

// Offset is the vertical shift to apply while fading in.
func (f *Fade) Offset() float64 { return (1 - f.opacity) * Rise }

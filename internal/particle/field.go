package particle

import (
	"image/color"
	"math"
	"math/rand"
	"time"
)

// LineColor is the muted slate used for connections; alpha is set per line.
var LineColor = color.RGBA{R: 100, G: 116, B: 139, A: 255}

// Field owns the particle collection and the canvas size it lives in.
type Field struct {
	Particles []Particle
	Width     float64
	Height    float64

	Options   Options
	Threshold float64
	LineWidth float64

	rng *rand.Rand
}

// NewField returns an empty field. A nil rng gets a time-seeded source.
func NewField(rng *rand.Rand, opts Options, threshold, lineWidth float64) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Field{
		Options:   opts,
		Threshold: threshold,
		LineWidth: lineWidth,
		rng:       rng,
	}
}

// Initialize discards every particle and builds count fresh ones inside
// width x height.
func (f *Field) Initialize(count int, width, height float64) {
	f.Width = width
	f.Height = height
	if count < 0 {
		count = 0
	}
	particles := make([]Particle, count)
	for i := range particles {
		particles[i] = New(f.rng, width, height, f.Options)
	}
	f.Particles = particles
}

// Tick renders one frame. Each particle is updated and drawn, then joined
// to every later particle closer than Threshold. Later particles have not
// moved yet when their connections to earlier ones are measured.
func (f *Field) Tick(s Surface) {
	s.Clear()

	for i := range f.Particles {
		p := &f.Particles[i]
		Update(p, f.Width, f.Height)
		Draw(*p, s)

		for j := i + 1; j < len(f.Particles); j++ {
			q := f.Particles[j]
			d := math.Hypot(p.X-q.X, p.Y-q.Y)
			alpha, ok := ConnectionAlpha(d, f.Threshold)
			if !ok {
				continue
			}
			s.StrokeLine(p.X, p.Y, q.X, q.Y, f.LineWidth, withAlpha(LineColor, alpha))
		}
	}
}

// ConnectionAlpha fades linearly from 1 at distance 0 to 0 at threshold.
// ok is false when no line should be drawn.
func ConnectionAlpha(d, threshold float64) (alpha float64, ok bool) {
	if threshold <= 0 || d >= threshold {
		return 0, false
	}
	return 1 - d/threshold, true
}

// withAlpha returns c at the given opacity, premultiplied as color.RGBA expects.
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package particle

import (
	"image/color"
	"math/rand"
)

// Surface is what particles and connections are drawn onto. The game
// adapts the ebiten screen to it; tests record calls.
type Surface interface {
	Clear()
	FillCircle(cx, cy, r float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}

// Particle is a moving dot. Velocity is in pixels per frame.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  color.RGBA
}

// Options controls how new particles are drawn from the random source.
type Options struct {
	MoveSpeed  float64
	RadiusMin  float64
	RadiusSpan float64
	Palette    []color.RGBA
}

// New places a particle uniformly inside width x height with a small
// symmetric velocity, a radius in [RadiusMin, RadiusMin+RadiusSpan) and
// a random palette colour.
func New(rng *rand.Rand, width, height float64, opts Options) Particle {
	p := Particle{
		X:      rng.Float64() * width,
		Y:      rng.Float64() * height,
		VX:     (rng.Float64() - 0.5) * opts.MoveSpeed,
		VY:     (rng.Float64() - 0.5) * opts.MoveSpeed,
		Radius: rng.Float64()*opts.RadiusSpan + opts.RadiusMin,
	}
	if len(opts.Palette) > 0 {
		p.Color = opts.Palette[rng.Intn(len(opts.Palette))]
	}
	return p
}

// Update moves p by one frame and bounces it off the edges. The flip
// happens after the move, so a coordinate can sit up to one frame's
// travel outside [0, extent] before coming back.
func Update(p *Particle, width, height float64) {
	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 || p.X > width {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > height {
		p.VY = -p.VY
	}
}

// Draw renders p as a filled circle.
func Draw(p Particle, s Surface) {
	s.FillCircle(p.X, p.Y, p.Radius, p.Color)
}

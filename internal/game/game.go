package game

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"time"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/particle-network/internal/audio"
	"github.com/iburimskiy/particle-network/internal/config"
	"github.com/iburimskiy/particle-network/internal/contact"
	"github.com/iburimskiy/particle-network/internal/particle"
	"github.com/iburimskiy/particle-network/internal/reveal"
)

const (
	fps            = 60
	wheelStep      = 40
	arrowStep      = 12
	attachMaxBytes = 16 * 1024
)

var background = color.RGBA{R: 11, G: 17, B: 32, A: 255}

// Game hosts the particle background, the scrolling page and the contact
// form in one ebiten window.
type Game struct {
	cfg *config.Config

	// particles
	field   *particle.Field
	loop    *particle.Loop
	sched   *particle.ManualScheduler
	resizer *particle.Resizer

	// page
	sections   []*section
	observer   *reveal.Observer
	pageHeight int
	scroll     float64
	width      int
	height     int

	// form
	form  *contact.Form
	runes []rune
	ticks int

	player  *audio.Player
	ctx     context.Context
	lastErr error
}

// New wires the game together. player may be nil for no sound.
func New(ctx context.Context, cfg *config.Config, sender contact.Sender, player *audio.Player) (*Game, error) {
	palette, err := cfg.Colors()
	if err != nil {
		return nil, err
	}
	if player == nil {
		player = &audio.Player{}
	}

	g := &Game{
		cfg:      cfg,
		sched:    &particle.ManualScheduler{},
		sections: newSections(fps),
		observer: reveal.NewObserver(cfg.RevealThreshold),
		player:   player,
		ctx:      ctx,
	}

	g.field = particle.NewField(nil, particle.Options{
		MoveSpeed:  cfg.MoveSpeed,
		RadiusMin:  cfg.RadiusMin,
		RadiusSpan: cfg.RadiusSpan,
		Palette:    palette,
	}, cfg.ConnectionDistance, cfg.LineWidth)
	g.loop = particle.NewLoop(g.field, g.sched)
	g.resizer = &particle.Resizer{
		Field:    g.field,
		Count:    cfg.ParticleCount,
		OnResize: g.relayout,
	}

	g.form = contact.NewForm(sender, time.Duration(cfg.SuccessDuration), time.Duration(cfg.ErrorDuration))
	g.form.OnResult = func(s contact.State) {
		if s == contact.Success {
			g.player.Play(audio.CueSuccess)
		} else {
			g.player.Play(audio.CueError)
		}
	}

	for _, s := range g.sections {
		g.observer.Observe(s.el)
	}
	g.observer.OnReveal = func(*reveal.Element) { g.player.Play(audio.CueReveal) }

	g.loop.Start()
	return g, nil
}

func (g *Game) relayout(width, height int) {
	g.width, g.height = width, height
	g.pageHeight = layoutSections(g.sections, width, height)
	g.clampScroll()
	log.Printf("resized to %dx%d, %d particles", width, height, len(g.field.Particles))
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.ticks++

	g.handleScroll()
	g.handleForm()

	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		if err := g.attachFileDialog(); err != nil {
			g.lastErr = err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.player.ToggleMute()
	}

	g.form.Poll(time.Now())

	g.observer.Check(g.viewport())
	for _, s := range g.sections {
		s.fade.Step(s.el.Visible())
	}
	return nil
}

func (g *Game) viewport() image.Rectangle {
	top := int(g.scroll)
	return image.Rect(0, top, g.width, top+g.height)
}

func (g *Game) clampScroll() {
	maxScroll := float64(g.pageHeight - g.height)
	if g.scroll > maxScroll {
		g.scroll = maxScroll
	}
	if g.scroll < 0 {
		g.scroll = 0
	}
}

func (g *Game) handleScroll() {
	_, dy := ebiten.Wheel()
	g.scroll -= dy * wheelStep
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyPageDown) {
		g.scroll += arrowStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyPageUp) {
		g.scroll -= arrowStep
	}
	g.clampScroll()
}

func (g *Game) handleForm() {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if shift {
			g.form.FocusPrev()
		} else {
			g.form.FocusNext()
		}
	}

	g.runes = ebiten.AppendInputChars(g.runes[:0])
	if len(g.runes) > 0 {
		g.form.Type(g.runes)
	}

	if repeating(ebiten.KeyBackspace) {
		g.form.Backspace()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		if shift && g.form.Focused() == contact.FieldProblem {
			g.form.Type([]rune{'\n'})
		} else {
			g.form.Submit(g.ctx)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		pt := image.Pt(mx, my)
		l := g.formLayout()
		if field, ok := l.fieldAt(pt); ok {
			g.form.Focus(field)
		} else if pt.In(l.button) {
			g.form.Submit(g.ctx)
		}
	}
}

// repeating is true on the first press and then at a steady rate while held.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	const delay, interval = 30, 3
	return d >= delay && (d-delay)%interval == 0
}

func (g *Game) attachFileDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Attach project details"),
		zenity.FileFilters{{
			Name:     "Text",
			Patterns: []string{"*.txt", "*.md"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if len(data) > attachMaxBytes {
		return fmt.Errorf("%s is larger than %d KiB", filename, attachMaxBytes/1024)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("%s is not a text file", filename)
	}
	g.form.SetField(contact.FieldProblem, string(data))
	g.form.Focus(contact.FieldProblem)
	g.lastErr = nil
	return nil
}

func (g *Game) contactSection() *section {
	for _, s := range g.sections {
		if s.form {
			return s
		}
	}
	return nil
}

// formLayout places the form in screen space for the current scroll.
func (g *Game) formLayout() formLayout {
	s := g.contactSection()
	if s == nil {
		return formLayout{}
	}
	top := s.el.Bounds.Min.Y - int(g.scroll) + int(s.fade.Offset()) + titleHeight + len(s.lines)*lineH
	return layoutForm(top, s.el.Bounds.Min.X, s.el.Bounds.Dx())
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.sched.Step(screenSurface{img: screen, bg: background})

	face := basicfont.Face7x13
	for _, s := range g.sections {
		opacity := s.fade.Opacity()
		if opacity <= 0.01 {
			continue
		}
		x := s.el.Bounds.Min.X
		y := s.el.Bounds.Min.Y - int(g.scroll) + int(s.fade.Offset())
		if y > g.height || y+s.el.Bounds.Dy() < 0 {
			continue
		}

		text.Draw(screen, s.title, face, x, y+glyphH, faded(textColor, opacity))
		vector.StrokeLine(screen, float32(x), float32(y+glyphH+8), float32(x+len(s.title)*glyphW), float32(y+glyphH+8), 1, faded(accentColor, opacity), false)
		for i, line := range s.lines {
			text.Draw(screen, line, face, x, y+titleHeight+glyphH+i*lineH, faded(mutedColor, opacity))
		}
		if s.form {
			drawForm(screen, g.form, g.formLayout(), opacity, (g.ticks/30)%2 == 0)
		}
	}

	status := "Scroll: wheel/arrows | Tab: next field | Enter: send | F2: attach file | F3: sound | Esc: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, g.height-20)
}

// Layout treats every new outside size as a resize of the canvas.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.resizer.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// screenSurface draws the particle field onto the ebiten screen.
type screenSurface struct {
	img *ebiten.Image
	bg  color.Color
}

func (s screenSurface) Clear() { s.img.Fill(s.bg) }

func (s screenSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), clr, true)
}

func (s screenSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

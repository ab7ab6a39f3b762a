package game

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/particle-network/internal/contact"
)

const (
	inputHeight   = 26
	problemLines  = 6
	buttonWidth   = 160
	buttonHeight  = 36
	fieldLabelGap = 16
)

var (
	textColor    = color.RGBA{R: 226, G: 232, B: 240, A: 255}
	mutedColor   = color.RGBA{R: 148, G: 163, B: 184, A: 255}
	accentColor  = color.RGBA{R: 0x00, G: 0x8F, B: 0xBB, A: 255}
	dangerColor  = color.RGBA{R: 0xEA, G: 0x4B, B: 0x71, A: 255}
	inputBg      = color.RGBA{R: 15, G: 23, B: 42, A: 220}
	inputBorder  = color.RGBA{R: 71, G: 85, B: 105, A: 255}
	successColor = color.RGBA{R: 34, G: 197, B: 94, A: 255}
)

// formLayout holds screen rectangles for the form inside the contact section.
type formLayout struct {
	fields [3]image.Rectangle
	button image.Rectangle
	msgY   int
}

func layoutForm(top, left, width int) formLayout {
	var l formLayout
	y := top
	for i := range l.fields {
		h := inputHeight
		if contact.Field(i) == contact.FieldProblem {
			h = problemLines*lineH + 8
		}
		y += fieldLabelGap
		l.fields[i] = image.Rect(left, y, left+width, y+h)
		y += h + 14
	}
	y += 6
	l.button = image.Rect(left, y, left+buttonWidth, y+buttonHeight)
	l.msgY = y + buttonHeight + 24
	return l
}

// fieldAt returns the field under point, if any.
func (l formLayout) fieldAt(pt image.Point) (contact.Field, bool) {
	for i, r := range l.fields {
		if pt.In(r) {
			return contact.Field(i), true
		}
	}
	return 0, false
}

func drawForm(screen *ebiten.Image, f *contact.Form, l formLayout, opacity float64, cursorOn bool) {
	face := basicfont.Face7x13
	for i, r := range l.fields {
		field := contact.Field(i)
		text.Draw(screen, field.Label(), face, r.Min.X, r.Min.Y-4, faded(mutedColor, opacity))

		border := inputBorder
		if f.Focused() == field {
			border = accentColor
		}
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), faded(inputBg, opacity), false)
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, faded(border, opacity), false)

		cols := (r.Dx() - 12) / glyphW
		value := f.Value(field)
		var lines []string
		if field == contact.FieldProblem {
			lines = wrapText(value, cols)
			if len(lines) > problemLines {
				lines = lines[len(lines)-problemLines:]
			}
		} else {
			lines = []string{tail(value, cols-1)}
		}
		if len(lines) == 0 {
			lines = []string{""}
		}
		if f.Focused() == field && cursorOn {
			lines[len(lines)-1] += "_"
		}
		text.Draw(screen, strings.Join(lines, "\n"), face, r.Min.X+6, r.Min.Y+glyphH+4, faded(textColor, opacity))
	}

	drawButton(screen, f.Button, l.button, opacity)

	if f.Success.Visible {
		text.Draw(screen, f.Success.Text, face, l.button.Min.X, l.msgY, faded(successColor, opacity))
	}
	if f.Error.Visible {
		text.Draw(screen, f.Error.Text, face, l.button.Min.X, l.msgY, faded(dangerColor, opacity))
	}
}

func drawButton(screen *ebiten.Image, b contact.Button, r image.Rectangle, opacity float64) {
	o := opacity * b.Opacity
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), faded(accentColor, o), false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, faded(textColor, o*0.6), false)

	textWidth := len(b.Label) * glyphW
	textX := r.Min.X + (r.Dx()-textWidth)/2
	textY := r.Min.Y + (r.Dy()+glyphH)/2 - 2
	text.Draw(screen, b.Label, basicfont.Face7x13, textX, textY, faded(textColor, o))
}

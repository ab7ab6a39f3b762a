package game

import (
	"image"

	"github.com/iburimskiy/particle-network/internal/reveal"
)

const (
	glyphW = 7
	glyphH = 13
	lineH  = 18

	pageMargin    = 60
	maxTextWidth  = 720
	sectionGap    = 80
	titleHeight   = 36
	contactHeight = 400
)

type section struct {
	el    *reveal.Element
	fade  *reveal.Fade
	title string
	body  string
	lines []string
	form  bool
}

type pageContent struct {
	id, title, body string
	form            bool
}

var content = []pageContent{
	{
		id:    "hero",
		title: "Automation that runs while you sleep",
		body:  "I design data pipelines, integrations and workflow automation for small teams. Scroll down to see what I can build for you.",
	},
	{
		id:    "about",
		title: "About",
		body:  "Ten years of backend work across payments, logistics and analytics. I care about boring, observable systems that keep running after handover.",
	},
	{
		id:    "services",
		title: "Services",
		body:  "Webhook and API integrations.\nScheduled data syncs and reporting.\nProcess automation with n8n and custom services.\nAudits of existing pipelines with a written plan.",
	},
	{
		id:    "process",
		title: "How we work",
		body:  "A short call to map the problem, a fixed-scope proposal, weekly demos, and documentation you can hand to the next engineer.",
	},
	{
		id:    "contact",
		title: "Tell me about your project",
		body:  "Describe the problem in a few lines. I usually reply within one business day.",
		form:  true,
	},
}

func newSections(fps int) []*section {
	out := make([]*section, 0, len(content))
	for _, c := range content {
		out = append(out, &section{
			el:    reveal.NewElement(c.id, image.Rectangle{}, "fade-in-section"),
			fade:  reveal.NewFade(fps),
			title: c.title,
			body:  c.body,
			form:  c.form,
		})
	}
	return out
}

// layoutSections places the sections top to bottom for a window of the
// given size and returns the page height.
func layoutSections(sections []*section, width, height int) int {
	textW := width - 2*pageMargin
	if textW > maxTextWidth {
		textW = maxTextWidth
	}
	if textW < glyphW*10 {
		textW = glyphW * 10
	}

	y := height / 3
	for _, s := range sections {
		s.lines = wrapText(s.body, textW/glyphW)
		h := titleHeight + len(s.lines)*lineH
		if s.form {
			h += contactHeight
		}
		s.el.Bounds = image.Rect(pageMargin, y, pageMargin+textW, y+h)
		y += h + sectionGap
	}
	return y
}
